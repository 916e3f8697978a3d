package botanical

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

var meaningByFlower = []struct {
	word    string
	meaning string
}{
	{"rose", "Love, devotion and quiet courage"},
	{"lily", "Purity, renewal and a fresh start"},
	{"orchid", "Rare beauty, refinement and strength"},
	{"dahlia", "Grace under change and inner strength"},
	{"iris", "Wisdom, hope and trusted messages"},
	{"lotus", "Rebirth and clarity rising from still water"},
	{"blossom", "The fleeting beauty of the present moment"},
	{"tulip", "Perfect love and cheerful beginnings"},
	{"jasmine", "Grace, sweetness and gentle affection"},
	{"sunflower", "Loyalty, warmth and lasting joy"},
}

// TemplateDetails fills detail fields from catalog data when no text
// generator is available or it failed. species may be nil.
func TemplateDetails(name, descriptor string, species *domain.Species, season domain.Season, continent domain.Continent) domain.FlowerDetails {
	if species != nil {
		return speciesDetails(name, species, season)
	}

	meaning := "Wonder, curiosity and new beginnings"
	lower := strings.ToLower(name + " " + descriptor)
	for _, m := range meaningByFlower {
		if strings.Contains(lower, m.word) {
			meaning = m.meaning
			break
		}
	}
	if season == "" {
		season = domain.SeasonSpring
	}
	origins := "First recorded in faraway gardens, where it was treasured for its unusual colours."
	if continent != "" {
		origins = fmt.Sprintf("First recorded in the gardens of %s, where it was treasured for its unusual colours.", continent)
	}
	return domain.FlowerDetails{
		Meaning:          meaning,
		Properties:       fmt.Sprintf("Soft layered petals shaped like a %s, with a light fragrance that deepens at dusk.", strings.ToLower(descriptor)),
		Origins:          origins,
		Description:      fmt.Sprintf("The %s is an imagined bloom that opens in %s. Each flower is unique, shaped by the moment it was discovered.", name, strings.ToLower(string(season))),
		ShortDescription: fmt.Sprintf("A %s %s bloom.", strings.ToLower(string(season)), strings.ToLower(name)),
		Continent:        continent,
	}
}

func speciesDetails(name string, s *domain.Species, season domain.Season) domain.FlowerDetails {
	meaning := "Admired for its " + strings.ToLower(firstOr(s.Uses, "beauty"))
	if len(s.InterestingFacts) > 0 {
		meaning = s.InterestingFacts[0]
	}

	origins := fmt.Sprintf("A member of the %s family", s.Family)
	if len(s.NativeRegions) > 0 {
		origins += ", native to " + strings.Join(s.NativeRegions, ", ")
	}
	origins += "."

	description := s.Description
	if len(s.InterestingFacts) > 1 {
		description += ". " + strings.Join(s.InterestingFacts[1:], ". ")
	}
	if season != "" && BloomsIn(s.BloomingSeason, season) {
		description += fmt.Sprintf(". In flower now, during %s", strings.ToLower(string(season)))
	}
	description += "."

	var continent domain.Continent
	if len(s.Continents) > 0 {
		continent = s.Continents[0]
	}

	return domain.FlowerDetails{
		Meaning:          meaning,
		Properties:       fmt.Sprintf("%s. Blooms %s. %s", s.Habitat, strings.ToLower(s.BloomingSeason), s.CareInstructions),
		Origins:          origins,
		Description:      description,
		ShortDescription: fmt.Sprintf("%s (%s)", name, s.ScientificName),
		Continent:        continent,
	}
}

func firstOr(values []string, fallback string) string {
	if len(values) == 0 {
		return fallback
	}
	return values[0]
}
