package botanical

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// zeroRand always picks the first candidate and never draws optional
// modifiers except where IntN(n)==0 is the "yes" branch.
type zeroRand struct{}

func (zeroRand) IntN(int) int     { return 0 }
func (zeroRand) Float64() float64 { return 0 }

// lastRand always picks the last candidate, which makes every optional
// modifier draw a "no".
type lastRand struct{}

func (lastRand) IntN(n int) int   { return n - 1 }
func (lastRand) Float64() float64 { return 0.99 }

func testSpecies() []domain.Species {
	return []domain.Species{
		{ScientificName: "Rosa canina", CommonNames: []string{"Dog Rose"}, Family: "Rosaceae", Rarity: domain.RarityCommon,
			Continents: []domain.Continent{domain.ContinentEurope}, BloomingSeason: "Early to mid-summer"},
		{ScientificName: "Banksia serrata", CommonNames: []string{"Old Man Banksia"}, Family: "Proteaceae", Rarity: domain.RarityUncommon,
			Continents: []domain.Continent{domain.ContinentOceania}, BloomingSeason: "Summer to autumn"},
		{ScientificName: "Galanthus nivalis", CommonNames: []string{"Snowdrop"}, Family: "Amaryllidaceae", Rarity: domain.RarityCommon,
			Continents: []domain.Continent{domain.ContinentEurope}, BloomingSeason: "Late winter"},
	}
}

func TestLoadCatalog_Embedded(t *testing.T) {
	t.Parallel()

	c, err := LoadCatalog(nil)
	require.NoError(t, err)
	require.Greater(t, c.Len(), 20)

	for _, s := range c.All() {
		assert.NotEmpty(t, s.ScientificName)
		assert.NotEmpty(t, s.CommonNames, s.ScientificName)
		assert.NotEmpty(t, s.Continents, s.ScientificName)
		assert.NotEmpty(t, s.ImagePrompt, s.ScientificName)
	}
	assert.Positive(t, c.ByContinent()[domain.ContinentOceania])
}

func TestNewCatalog_RejectsDuplicates(t *testing.T) {
	t.Parallel()

	species := append(testSpecies(), domain.Species{ScientificName: "rosa CANINA", Rarity: domain.RarityCommon})
	_, err := NewCatalog(species, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrAlreadyExists))
}

func TestNewCatalog_RejectsUnknownRarity(t *testing.T) {
	t.Parallel()

	_, err := NewCatalog([]domain.Species{{ScientificName: "X y", Rarity: "Legendary"}}, nil)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrValidation))
}

func TestCatalog_ByScientificName(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog(testSpecies(), nil)
	require.NoError(t, err)

	s, ok := c.ByScientificName("  galanthus NIVALIS ")
	require.True(t, ok)
	assert.Equal(t, "Snowdrop", s.PrimaryName())

	_, ok = c.ByScientificName("Nope")
	assert.False(t, ok)
}

func TestCatalog_ContextualFiltersContinentThenSeason(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog(testSpecies(), zeroRand{})
	require.NoError(t, err)

	s, ok := c.Contextual(domain.ContinentEurope, domain.SeasonWinter, nil)
	require.True(t, ok)
	assert.Equal(t, "Galanthus nivalis", s.ScientificName)

	s, ok = c.Contextual(domain.ContinentOceania, domain.SeasonWinter, nil)
	require.True(t, ok)
	assert.Equal(t, "Banksia serrata", s.ScientificName, "season filter is skipped when nothing blooms")
}

func TestCatalog_ContextualHonoursExclusions(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog(testSpecies(), rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	exclude := map[string]struct{}{"Rosa canina": {}, "Galanthus nivalis": {}}
	for range 20 {
		s, ok := c.Contextual(domain.ContinentEurope, "", exclude)
		require.True(t, ok)
		assert.Equal(t, "Banksia serrata", s.ScientificName, "falls back to the only species not excluded")
	}

	all := map[string]struct{}{"Rosa canina": {}, "Galanthus nivalis": {}, "Banksia serrata": {}}
	_, ok := c.Contextual(domain.ContinentEurope, "", all)
	assert.False(t, ok)
	_, ok = c.Random(all)
	assert.False(t, ok)
}

func TestCatalog_Search(t *testing.T) {
	t.Parallel()

	c, err := NewCatalog(testSpecies(), nil)
	require.NoError(t, err)

	assert.Len(t, c.Search("rose"), 1)
	assert.Len(t, c.Search("ROSACEAE"), 1)
	assert.Len(t, c.Search("banksia"), 1)
	assert.Empty(t, c.Search(""))
	assert.Empty(t, c.Search("cactus"))
}
