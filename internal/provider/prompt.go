package provider

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

// BotanistPersona is the system prompt shared by text providers.
const BotanistPersona = "You are a knowledgeable botanist and naturalist who names and describes rare and beautiful flowers. " +
	"Your writing is scientifically plausible yet poetic."

// ImagePrompt builds the botanical illustration prompt for req.
func ImagePrompt(req ImageRequest) string {
	if req.IsBouquet {
		flowers := "seasonal flowers"
		if len(req.BouquetFlowers) > 0 {
			flowers = strings.Join(req.BouquetFlowers, ", ")
		}
		prompt := fmt.Sprintf("A beautiful %s bouquet of %s, tied with a silk ribbon, botanical illustration style, "+
			"centered on pure white background, soft watercolor texture, lush arrangement, pastel colors with subtle gradients, "+
			"professional botanical art, highly detailed, 4K", req.Descriptor, flowers)
		if req.PersonalMessage != "" {
			prompt += fmt.Sprintf(", evoking the feeling of: %s", req.PersonalMessage)
		}
		return prompt
	}
	return fmt.Sprintf("A single %s flower, botanical illustration style, centered on pure white background, "+
		"soft watercolor texture, delicate petals, elegant stem with leaves, dreamy and ethereal, pastel colors with subtle gradients, "+
		"professional botanical art, highly detailed, 4K", req.Descriptor)
}

// NamePrompt asks for a two or three word flower name.
func NamePrompt(descriptor string) string {
	return fmt.Sprintf(`Invent an evocative common name for a flower described as "%s".
Answer with the name only: 2-3 words, title case, no quotes, no punctuation.`, descriptor)
}

// CleanName trims model chatter around a generated name.
func CleanName(raw string) string {
	name := strings.TrimSpace(raw)
	if i := strings.IndexByte(name, '\n'); i >= 0 {
		name = name[:i]
	}
	name = strings.Trim(name, "\"'`*. ")
	return strings.TrimSpace(name)
}

// DetailsPrompt asks for the narrative detail fields as JSON.
func DetailsPrompt(req DetailsRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Generate detailed botanical information for a flower called %q which is described as %q.\n", req.Name, req.Descriptor)
	if req.ScientificName != "" {
		fmt.Fprintf(&b, "Its scientific name is %s; stay faithful to the real species.\n", req.ScientificName)
	}
	if req.IsBouquet {
		fmt.Fprintf(&b, "It is a bouquet")
		if req.HolidayName != "" {
			fmt.Fprintf(&b, " celebrating %s", req.HolidayName)
		}
		b.WriteString(".\n")
	}
	if req.Season != "" {
		fmt.Fprintf(&b, "It is currently %s; refer to it when describing blooming.\n", strings.ToLower(string(req.Season)))
	}
	if req.Location != "" {
		fmt.Fprintf(&b, "It was discovered near %s.\n", req.Location)
	}
	if req.Context != "" {
		fmt.Fprintf(&b, "Context: %s.\n", req.Context)
	}
	b.WriteString(`Output ONLY a valid JSON object matching this exact schema:
{
  "meaning": "<cultural and symbolic significance>",
  "properties": "<botanical characteristics, growth patterns, ecological benefits>",
  "origins": "<geographic origins and natural habitat>",
  "detailedDescription": "<appearance, blooming season, fragrance, how it grows>",
  "shortDescription": "<one sentence>",
  "continent": "<one of: North America, South America, Europe, Africa, Asia, Oceania, Antarctica>"
}`)
	return b.String()
}

type detailsPayload struct {
	Meaning             string `json:"meaning"`
	Properties          string `json:"properties"`
	Origins             string `json:"origins"`
	DetailedDescription string `json:"detailedDescription"`
	ShortDescription    string `json:"shortDescription"`
	Continent           string `json:"continent"`
}

// ParseDetails extracts the detail JSON object from a model response.
// An unknown continent is dropped rather than rejected.
func ParseDetails(text string) (domain.FlowerDetails, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return domain.FlowerDetails{}, err
	}
	var p detailsPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return domain.FlowerDetails{}, fmt.Errorf("decode details: %w", err)
	}
	if p.Meaning == "" && p.DetailedDescription == "" {
		return domain.FlowerDetails{}, fmt.Errorf("details response is empty")
	}
	continent := domain.Continent(p.Continent)
	if !continent.IsValid() {
		continent = ""
	}
	return domain.FlowerDetails{
		Meaning:          p.Meaning,
		Properties:       p.Properties,
		Origins:          p.Origins,
		Description:      p.DetailedDescription,
		ShortDescription: p.ShortDescription,
		Continent:        continent,
	}, nil
}

// CopyPrompt asks for a notification title and body as JSON.
func CopyPrompt(req CopyRequest) string {
	what := "a new flower is ready to be revealed"
	if req.Kind == domain.NotificationReminder {
		what = "a flower is still waiting to be revealed"
	}
	extra := ""
	if req.Season != "" {
		extra += fmt.Sprintf(" It is %s.", strings.ToLower(string(req.Season)))
	}
	if req.Location != "" {
		extra += fmt.Sprintf(" The user is near %s.", req.Location)
	}
	return fmt.Sprintf(`Write a short, warm push notification telling the user that %s.%s
Do not reveal the flower's name. Output ONLY JSON: {"title": "<max 40 chars>", "body": "<max 110 chars>"}`, what, extra)
}

// ParseCopy extracts notification copy from a model response.
func ParseCopy(text string) (Copy, error) {
	raw, err := ExtractJSON(text)
	if err != nil {
		return Copy{}, err
	}
	var c Copy
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		return Copy{}, fmt.Errorf("decode copy: %w", err)
	}
	if c.Title == "" || c.Body == "" {
		return Copy{}, fmt.Errorf("copy response is incomplete")
	}
	return c, nil
}

// ExtractJSON finds the outermost JSON object in a string.
func ExtractJSON(s string) (string, error) {
	start := strings.Index(s, "{")
	end := strings.LastIndex(s, "}")
	if start == -1 || end == -1 || end <= start {
		return "", fmt.Errorf("no JSON object found in response")
	}
	out := s[start : end+1]
	if !json.Valid([]byte(out)) {
		return "", fmt.Errorf("response does not contain valid JSON")
	}
	return out, nil
}
