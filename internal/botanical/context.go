package botanical

import (
	"strings"
	"time"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

var countryPalettes = map[string]string{
	"Portugal":       "red and green Portuguese",
	"Spain":          "red and yellow Spanish",
	"France":         "blue, white and red French",
	"Italy":          "green, white and red Italian",
	"Germany":        "black, red and gold German",
	"Brazil":         "green and yellow Brazilian",
	"Japan":          "red and white Japanese",
	"India":          "saffron, white and green Indian",
	"Mexico":         "green, white and red Mexican",
	"Canada":         "red and white Canadian maple",
	"Australia":      "green and gold Australian",
	"United Kingdom": "red, white and blue British",
	"Ireland":        "green, white and orange Irish",
	"Netherlands":    "orange Dutch",
	"Greece":         "blue and white Greek",
	"Sweden":         "blue and yellow Swedish",
	"Norway":         "red, white and blue Norwegian",
	"Denmark":        "red and white Danish",
	"Switzerland":    "red and white Swiss",
	"Austria":        "red and white Austrian",
}

var baseFlowers = []string{"rose", "orchid", "lily", "dahlia", "iris", "bloom", "blossom", "wildflower", "lotus"}

// CountryPalette returns the colour phrase associated with a country.
func CountryPalette(country string) (string, bool) {
	p, ok := countryPalettes[country]
	return p, ok
}

// Context is what was known about the moment and place of generation.
type Context struct {
	Country   string
	City      string
	Continent domain.Continent
	Season    domain.Season
	Holiday   *Holiday
	Zodiac    ZodiacSign
	TimeOfDay string

	modifiers []string
}

// BuildContext gathers calendar and location signals for now. Random draws
// decide which optional signals end up as descriptor modifiers.
func BuildContext(now time.Time, place *domain.Placemark, latitude float64, rnd Rand) Context {
	if rnd == nil {
		rnd = DefaultRand
	}
	c := Context{
		Season: SeasonAt(now, latitude),
		Zodiac: ZodiacOn(now),
	}

	if place != nil {
		c.Country = place.Country
		c.City = place.Locality
		c.Continent = place.Continent
		if palette, ok := CountryPalette(place.Country); ok {
			c.modifiers = append(c.modifiers, palette)
		}
		if place.Locality != "" && rnd.IntN(2) == 0 {
			c.modifiers = append(c.modifiers, place.Locality+"-inspired")
		}
	}
	if rnd.IntN(3) == 0 {
		c.modifiers = append(c.modifiers, strings.ToLower(string(c.Season)))
	}
	if h, ok := HolidayOn(now); ok {
		c.Holiday = &h
		c.modifiers = append(c.modifiers, h.Descriptor)
	}
	if rnd.IntN(3) == 0 {
		c.modifiers = append(c.modifiers, c.Zodiac.Descriptor)
	}
	period, modifier := TimeOfDay(now)
	c.TimeOfDay = period
	if modifier != "" && rnd.IntN(3) == 0 {
		c.modifiers = append(c.modifiers, modifier)
	}
	return c
}

// Modifiers returns the descriptor phrases drawn for this context.
func (c Context) Modifiers() []string { return c.modifiers }

// ShouldUseContext is the one-in-four draw that adds contextual flavour.
func ShouldUseContext(rnd Rand) bool {
	if rnd == nil {
		rnd = DefaultRand
	}
	return rnd.IntN(4) == 0
}

// Descriptor combines one or two modifiers with a base flower type, e.g.
// "moonlit lotus". It returns false when no modifier was drawn.
func (c Context) Descriptor(rnd Rand) (string, bool) {
	if len(c.modifiers) == 0 {
		return "", false
	}
	if rnd == nil {
		rnd = DefaultRand
	}
	base := baseFlowers[rnd.IntN(len(baseFlowers))]
	return strings.Join(c.pickModifiers(rnd), " ") + " " + base, true
}

// Decorate prefixes a species image prompt with drawn modifiers.
func (c Context) Decorate(prompt string, rnd Rand) (string, bool) {
	if len(c.modifiers) == 0 {
		return prompt, false
	}
	if rnd == nil {
		rnd = DefaultRand
	}
	return strings.Join(c.pickModifiers(rnd), " ") + " " + prompt, true
}

func (c Context) pickModifiers(rnd Rand) []string {
	if len(c.modifiers) == 1 {
		return c.modifiers
	}
	picked := make([]string, len(c.modifiers))
	copy(picked, c.modifiers)
	for i := len(picked) - 1; i > 0; i-- {
		j := rnd.IntN(i + 1)
		picked[i], picked[j] = picked[j], picked[i]
	}
	return picked[:1+rnd.IntN(2)]
}

// Meaning renders the context as a short narrative, or "" when nothing
// notable is known.
func (c Context) Meaning() string {
	var parts []string
	if c.City != "" {
		parts = append(parts, "Inspired by the beauty of "+c.City)
	}
	if c.Holiday != nil {
		parts = append(parts, "Celebrating "+c.Holiday.Name)
	}
	if c.Zodiac.Name != "" {
		parts = append(parts, "Embodying the spirit of "+c.Zodiac.Name)
	}
	if c.Season != "" {
		parts = append(parts, "Blooming in the heart of "+string(c.Season))
	}
	return strings.Join(parts, ". ")
}
