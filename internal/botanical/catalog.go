// Package botanical holds the species catalog and the calendar, location
// and naming signals used to decide what flower to generate next.
package botanical

import (
	_ "embed"
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

//go:embed species.yaml
var embeddedSpecies []byte

// Rand is the subset of *rand.Rand used for selection.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

type globalRand struct{}

func (globalRand) IntN(n int) int   { return rand.IntN(n) }
func (globalRand) Float64() float64 { return rand.Float64() }

// DefaultRand draws from the goroutine-safe top-level math/rand/v2 source.
var DefaultRand Rand = globalRand{}

// Catalog is an immutable, in-memory species list. Safe for concurrent use
// as long as the Rand it was built with is.
type Catalog struct {
	species []domain.Species
	byName  map[string]int
	rnd     Rand
}

// LoadCatalog parses the embedded species list.
func LoadCatalog(rnd Rand) (*Catalog, error) {
	return ParseCatalog(embeddedSpecies, rnd)
}

// ParseCatalog builds a Catalog from a YAML species list.
func ParseCatalog(data []byte, rnd Rand) (*Catalog, error) {
	var species []domain.Species
	if err := yaml.Unmarshal(data, &species); err != nil {
		return nil, fmt.Errorf("parse species catalog: %w", err)
	}
	return NewCatalog(species, rnd)
}

// NewCatalog validates species and indexes them by scientific name.
func NewCatalog(species []domain.Species, rnd Rand) (*Catalog, error) {
	if rnd == nil {
		rnd = DefaultRand
	}
	c := &Catalog{
		species: species,
		byName:  make(map[string]int, len(species)),
		rnd:     rnd,
	}
	for i, s := range species {
		if s.ScientificName == "" {
			return nil, fmt.Errorf("species #%d: %w", i, domain.NewValidationError("scientific_name", "required"))
		}
		if !s.Rarity.IsValid() {
			return nil, fmt.Errorf("species %s: %w", s.ScientificName, domain.NewValidationError("rarity", "unknown value "+string(s.Rarity)))
		}
		key := domain.NormalizeName(s.ScientificName)
		if _, dup := c.byName[key]; dup {
			return nil, fmt.Errorf("species %s: %w", s.ScientificName, domain.ErrAlreadyExists)
		}
		c.byName[key] = i
	}
	return c, nil
}

// Len returns the number of species in the catalog.
func (c *Catalog) Len() int { return len(c.species) }

// All returns a copy of every species.
func (c *Catalog) All() []domain.Species {
	return slices.Clone(c.species)
}

// ByScientificName looks a species up case-insensitively.
func (c *Catalog) ByScientificName(name string) (domain.Species, bool) {
	i, ok := c.byName[domain.NormalizeName(name)]
	if !ok {
		return domain.Species{}, false
	}
	return c.species[i], true
}

// Random picks any species whose scientific name is not in exclude.
func (c *Catalog) Random(exclude map[string]struct{}) (domain.Species, bool) {
	return c.pick(c.filter(exclude, nil))
}

// Contextual picks a species for the given continent and season. The
// continent narrows first, then the season if anything blooms in it. An
// empty continent skips that filter. Species already in exclude are never
// chosen; when every match is excluded the result falls back to Random.
func (c *Catalog) Contextual(continent domain.Continent, season domain.Season, exclude map[string]struct{}) (domain.Species, bool) {
	candidates := c.filter(exclude, func(s *domain.Species) bool {
		return continent == "" || s.GrowsOn(continent)
	})
	if season != "" {
		inSeason := make([]int, 0, len(candidates))
		for _, i := range candidates {
			if BloomsIn(c.species[i].BloomingSeason, season) {
				inSeason = append(inSeason, i)
			}
		}
		if len(inSeason) > 0 {
			candidates = inSeason
		}
	}
	if len(candidates) == 0 {
		return c.Random(exclude)
	}
	return c.pick(candidates)
}

// Search matches query against scientific names, common names and family.
func (c *Catalog) Search(query string) []domain.Species {
	q := domain.NormalizeName(query)
	if q == "" {
		return nil
	}
	var out []domain.Species
	for _, s := range c.species {
		if matches(s, q) {
			out = append(out, s)
		}
	}
	return out
}

func matches(s domain.Species, q string) bool {
	if strings.Contains(domain.NormalizeName(s.ScientificName), q) || strings.Contains(domain.NormalizeName(s.Family), q) {
		return true
	}
	for _, n := range s.CommonNames {
		if strings.Contains(domain.NormalizeName(n), q) {
			return true
		}
	}
	return false
}

// ByContinent counts species native to each continent.
func (c *Catalog) ByContinent() map[domain.Continent]int {
	out := make(map[domain.Continent]int)
	for _, s := range c.species {
		for _, cont := range s.Continents {
			out[cont]++
		}
	}
	return out
}

func (c *Catalog) filter(exclude map[string]struct{}, keep func(*domain.Species) bool) []int {
	out := make([]int, 0, len(c.species))
	for i := range c.species {
		s := &c.species[i]
		if _, skip := exclude[s.ScientificName]; skip {
			continue
		}
		if keep != nil && !keep(s) {
			continue
		}
		out = append(out, i)
	}
	return out
}

func (c *Catalog) pick(indexes []int) (domain.Species, bool) {
	if len(indexes) == 0 {
		return domain.Species{}, false
	}
	return c.species[indexes[c.rnd.IntN(len(indexes))]], true
}
