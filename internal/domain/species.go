package domain

import "slices"

// Species is one entry of the botanical catalog.
type Species struct {
	ScientificName     string      `yaml:"scientific_name"     json:"scientificName"`
	CommonNames        []string    `yaml:"common_names"        json:"commonNames"`
	Family             string      `yaml:"family"              json:"family"`
	NativeRegions      []string    `yaml:"native_regions"      json:"nativeRegions"`
	BloomingSeason     string      `yaml:"blooming_season"     json:"bloomingSeason"`
	ConservationStatus string      `yaml:"conservation_status" json:"conservationStatus"`
	Uses               []string    `yaml:"uses"                json:"uses"`
	InterestingFacts   []string    `yaml:"interesting_facts"   json:"interestingFacts"`
	CareInstructions   string      `yaml:"care_instructions"   json:"careInstructions"`
	Rarity             RarityLevel `yaml:"rarity"              json:"rarityLevel"`
	Continents         []Continent `yaml:"continents"          json:"continents"`
	Habitat            string      `yaml:"habitat"             json:"habitat"`
	Description        string      `yaml:"description"         json:"description"`
	ImagePrompt        string      `yaml:"image_prompt"        json:"imagePrompt"`
}

// PrimaryName is the first common name, or the scientific name.
func (s *Species) PrimaryName() string {
	if len(s.CommonNames) > 0 {
		return s.CommonNames[0]
	}
	return s.ScientificName
}

// GrowsOn reports whether the species is native to continent c.
func (s *Species) GrowsOn(c Continent) bool {
	return slices.Contains(s.Continents, c)
}

// BotanicalInfo copies the reference fields carried on a Flower.
func (s *Species) BotanicalInfo() *BotanicalInfo {
	return &BotanicalInfo{
		CommonNames:        slices.Clone(s.CommonNames),
		Family:             s.Family,
		NativeRegions:      slices.Clone(s.NativeRegions),
		BloomingSeason:     s.BloomingSeason,
		ConservationStatus: s.ConservationStatus,
		Uses:               slices.Clone(s.Uses),
		InterestingFacts:   slices.Clone(s.InterestingFacts),
		CareInstructions:   s.CareInstructions,
		Rarity:             s.Rarity,
	}
}
