package botanical

import (
	"strings"
	"unicode"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

var (
	nameAdjectives = []string{"Crystal", "Moonlight", "Stardust", "Aurora", "Velvet", "Mystic", "Ethereal", "Celestial"}
	nameNouns      = []string{"Rose", "Lily", "Orchid", "Dahlia", "Iris", "Blossom", "Bloom", "Petal"}
)

var descriptors = []string{
	"delicate alpine rose with morning dew",
	"tropical orchid with soft pastel petals",
	"wildflower lily from mountain meadows",
	"sunset dahlia with gradient colors",
	"deep purple iris with velvety texture",
	"cherry blossom with delicate pink petals",
	"garden bloom with layered petals",
	"meadow flower with soft pastels",
	"blue lotus floating on water",
	"golden sunflower facing the sun",
	"winter rose with frost-kissed edges",
	"desert lily with resilient petals",
	"white jasmine with sweet fragrance",
	"violet with deep purple hues",
	"rainforest orchid with exotic patterns",
	"coastal wildflower with salt-spray resilience",
	"spring tulip with perfect symmetry",
	"climbing vine flower with delicate tendrils",
	"pond lily with floating leaves",
	"mountain wildflower with alpine colors",
}

// RandomName returns an invented two-word name like "Velvet Orchid".
func RandomName(rnd Rand) string {
	if rnd == nil {
		rnd = DefaultRand
	}
	return nameAdjectives[rnd.IntN(len(nameAdjectives))] + " " + nameNouns[rnd.IntN(len(nameNouns))]
}

// RandomDescriptor returns one of the stock generation prompts.
func RandomDescriptor(rnd Rand) string {
	if rnd == nil {
		rnd = DefaultRand
	}
	return descriptors[rnd.IntN(len(descriptors))]
}

// RandomContinent returns any continent.
func RandomContinent(rnd Rand) domain.Continent {
	if rnd == nil {
		rnd = DefaultRand
	}
	return domain.AllContinents[rnd.IntN(len(domain.AllContinents))]
}

// NameFromDescriptor derives a display name from a free-text prompt. A
// known flower word is kept together with the word before it; otherwise
// the first two words are used.
func NameFromDescriptor(descriptor string) string {
	words := strings.Fields(strings.ToLower(descriptor))
	if len(words) == 0 {
		return ""
	}
	if len(words) == 1 {
		return titleCase(words)
	}
	for _, flower := range []string{"rose", "orchid", "lily"} {
		for i, w := range words {
			if !strings.Contains(w, flower) {
				continue
			}
			if i == 0 {
				return titleCase(words[:1])
			}
			return titleCase(words[i-1 : i+1])
		}
	}
	return titleCase(words[:2])
}

func titleCase(words []string) string {
	out := make([]string, len(words))
	for i, w := range words {
		r := []rune(w)
		r[0] = unicode.ToUpper(r[0])
		out[i] = string(r)
	}
	return strings.Join(out, " ")
}
