package domain

// Continent is the continent a flower or species is associated with.
type Continent string

const (
	ContinentNorthAmerica Continent = "North America"
	ContinentSouthAmerica Continent = "South America"
	ContinentEurope       Continent = "Europe"
	ContinentAfrica       Continent = "Africa"
	ContinentAsia         Continent = "Asia"
	ContinentOceania      Continent = "Oceania"
	ContinentAntarctica   Continent = "Antarctica"
)

// AllContinents lists continents in display order.
var AllContinents = []Continent{
	ContinentNorthAmerica,
	ContinentSouthAmerica,
	ContinentEurope,
	ContinentAfrica,
	ContinentAsia,
	ContinentOceania,
	ContinentAntarctica,
}

func (c Continent) String() string { return string(c) }

func (c Continent) IsValid() bool {
	for _, v := range AllContinents {
		if v == c {
			return true
		}
	}
	return false
}

// RarityLevel classifies how rare a species is in the wild.
type RarityLevel string

const (
	RarityCommon        RarityLevel = "Common"
	RarityUncommon      RarityLevel = "Uncommon"
	RarityRare          RarityLevel = "Rare"
	RarityVeryRare      RarityLevel = "Very Rare"
	RarityEndangered    RarityLevel = "Endangered"
	RarityExtinctInWild RarityLevel = "Extinct in Wild"
)

func (r RarityLevel) String() string { return string(r) }

func (r RarityLevel) IsValid() bool {
	return r.SortOrder() >= 0
}

// SortOrder ranks rarity from most common (0) to rarest (5).
// Unknown values return -1.
func (r RarityLevel) SortOrder() int {
	switch r {
	case RarityCommon:
		return 0
	case RarityUncommon:
		return 1
	case RarityRare:
		return 2
	case RarityVeryRare:
		return 3
	case RarityEndangered:
		return 4
	case RarityExtinctInWild:
		return 5
	}
	return -1
}

// Season is a meteorological season.
type Season string

const (
	SeasonSpring Season = "Spring"
	SeasonSummer Season = "Summer"
	SeasonAutumn Season = "Autumn"
	SeasonWinter Season = "Winter"
)

func (s Season) String() string { return string(s) }

// TemperatureUnit is the unit a recorded temperature is expressed in.
type TemperatureUnit string

const (
	Celsius    TemperatureUnit = "C"
	Fahrenheit TemperatureUnit = "F"
)

func (u TemperatureUnit) IsValid() bool {
	return u == Celsius || u == Fahrenheit
}

// ConvertTemperature converts value from one unit to another.
func ConvertTemperature(value float64, from, to TemperatureUnit) float64 {
	if from == to {
		return value
	}
	if from == Celsius && to == Fahrenheit {
		return value*9/5 + 32
	}
	return (value - 32) * 5 / 9
}
