package garden

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/heartmarshall/florarium-backend/internal/domain"
	"github.com/heartmarshall/florarium-backend/internal/events"
)

// HerbariumEntry is one collected species, with catalog data when known.
type HerbariumEntry struct {
	ScientificName string          `json:"scientificName"`
	Species        *domain.Species `json:"species,omitempty"`
	FlowerCount    int             `json:"flowerCount"`
}

func validSpeciesName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", domain.NewValidationError("scientific_name", "required")
	}
	return name, nil
}

// AddToHerbarium records a species and flags every matching flower.
func (s *Service) AddToHerbarium(ctx context.Context, name string) error {
	name, err := validSpeciesName(name)
	if err != nil {
		return err
	}
	return s.do(ctx, func() error {
		if _, ok := s.st.herbarium[name]; ok {
			return nil
		}
		s.st.herbarium[name] = struct{}{}
		s.setHerbariumFlag(name, true)
		s.saveHerbarium(ctx)
		s.saveCollections(ctx)
		s.publish(events.HerbariumChanged, nil, name, nil)
		s.log.InfoContext(ctx, "species added to herbarium", slog.String("species", name))
		return nil
	})
}

// RemoveFromHerbarium forgets a species and clears the flag on its flowers.
func (s *Service) RemoveFromHerbarium(ctx context.Context, name string) error {
	name, err := validSpeciesName(name)
	if err != nil {
		return err
	}
	return s.do(ctx, func() error {
		if _, ok := s.st.herbarium[name]; !ok {
			return domain.ErrNotFound
		}
		delete(s.st.herbarium, name)
		s.setHerbariumFlag(name, false)
		s.saveHerbarium(ctx)
		s.saveCollections(ctx)
		s.publish(events.HerbariumChanged, nil, name, nil)
		s.log.InfoContext(ctx, "species removed from herbarium", slog.String("species", name))
		return nil
	})
}

func (s *Service) setHerbariumFlag(name string, in bool) {
	for _, list := range [][]domain.Flower{s.st.discovered, s.st.favorites} {
		for i := range list {
			if list[i].ScientificName == name {
				list[i].IsInHerbarium = in
			}
		}
	}
	if s.st.pending != nil && s.st.pending.ScientificName == name {
		s.st.pending.IsInHerbarium = in
	}
}

// IsSpeciesInHerbarium reports whether name was collected.
func (s *Service) IsSpeciesInHerbarium(ctx context.Context, name string) (bool, error) {
	var in bool
	err := s.do(ctx, func() error {
		_, in = s.st.herbarium[strings.TrimSpace(name)]
		return nil
	})
	return in, err
}

// HerbariumSpeciesCount is the number of collected species.
func (s *Service) HerbariumSpeciesCount(ctx context.Context) (int, error) {
	var n int
	err := s.do(ctx, func() error {
		n = len(s.st.herbarium)
		return nil
	})
	return n, err
}

// HerbariumCompletion is the share of the catalog collected, in [0, 1].
func (s *Service) HerbariumCompletion(ctx context.Context) (float64, error) {
	var c float64
	err := s.do(ctx, func() error {
		c = s.completion()
		return nil
	})
	return c, err
}

func (s *Service) completion() float64 {
	total := s.catalog.Len()
	if total == 0 {
		return 0
	}
	known := 0
	for name := range s.st.herbarium {
		if _, ok := s.catalog.ByScientificName(name); ok {
			known++
		}
	}
	return float64(known) / float64(total)
}

// Herbarium lists collected species sorted by name.
func (s *Service) Herbarium(ctx context.Context) ([]HerbariumEntry, error) {
	var out []HerbariumEntry
	err := s.do(ctx, func() error {
		counts := make(map[string]int)
		for i := range s.st.discovered {
			if n := s.st.discovered[i].ScientificName; n != "" {
				counts[n]++
			}
		}
		out = make([]HerbariumEntry, 0, len(s.st.herbarium))
		for name := range s.st.herbarium {
			e := HerbariumEntry{ScientificName: name, FlowerCount: counts[name]}
			if sp, ok := s.catalog.ByScientificName(name); ok {
				e.Species = &sp
			}
			out = append(out, e)
		}
		slices.SortFunc(out, func(a, b HerbariumEntry) int { return strings.Compare(a.ScientificName, b.ScientificName) })
		return nil
	})
	return out, err
}

// SearchSpecies searches the botanical catalog.
func (s *Service) SearchSpecies(query string) []domain.Species {
	return s.catalog.Search(query)
}
