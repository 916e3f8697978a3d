package domain

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/google/uuid"
)

// Flower is one discovered (or pending) flower with its provenance,
// discovery context and ownership chain.
type Flower struct {
	ID             uuid.UUID      `json:"id"`
	Name           string         `json:"name"`
	Descriptor     string         `json:"descriptor"`
	ImageData      []byte         `json:"imageData,omitempty"`
	GeneratedDate  time.Time      `json:"generatedDate"`
	IsFavorite     bool           `json:"isFavorite"`
	ScientificName string         `json:"scientificName,omitempty"`
	Botanical      *BotanicalInfo `json:"botanical,omitempty"`
	Details        *FlowerDetails `json:"details,omitempty"`
	Discovery      Discovery      `json:"discovery"`

	ContextualGeneration bool   `json:"contextualGeneration,omitempty"`
	GenerationContext    string `json:"generationContext,omitempty"`

	IsBouquet      bool     `json:"isBouquet,omitempty"`
	BouquetFlowers []string `json:"bouquetFlowers,omitempty"`
	HolidayName    string   `json:"holidayName,omitempty"`

	IsInHerbarium bool `json:"isInHerbarium,omitempty"`

	OriginalOwner    *Owner  `json:"originalOwner,omitempty"`
	OwnershipHistory []Owner `json:"ownershipHistory,omitempty"`
	TransferToken    string  `json:"transferToken,omitempty"`
	// TransferSetsOriginal records that the live transfer stored its sender
	// as OriginalOwner rather than appending to OwnershipHistory.
	TransferSetsOriginal bool `json:"transferSetsOriginal,omitempty"`
	IsGiftable           bool `json:"isGiftable"`
}

// FlowerDetails holds the narrative fields filled by detail generation.
// A nil *FlowerDetails on a Flower means details were never generated.
type FlowerDetails struct {
	Meaning          string    `json:"meaning"`
	Properties       string    `json:"properties"`
	Origins          string    `json:"origins"`
	Description      string    `json:"description"`
	ShortDescription string    `json:"shortDescription,omitempty"`
	Continent        Continent `json:"continent,omitempty"`
}

// BotanicalInfo is the reference data copied from the species catalog.
type BotanicalInfo struct {
	CommonNames        []string    `json:"commonNames,omitempty"`
	Family             string      `json:"family,omitempty"`
	NativeRegions      []string    `json:"nativeRegions,omitempty"`
	BloomingSeason     string      `json:"bloomingSeason,omitempty"`
	ConservationStatus string      `json:"conservationStatus,omitempty"`
	Uses               []string    `json:"uses,omitempty"`
	InterestingFacts   []string    `json:"interestingFacts,omitempty"`
	CareInstructions   string      `json:"careInstructions,omitempty"`
	Rarity             RarityLevel `json:"rarityLevel,omitempty"`
}

// Discovery is the context captured when a flower was generated and opened.
type Discovery struct {
	Date             *time.Time      `json:"date,omitempty"`
	Latitude         *float64        `json:"latitude,omitempty"`
	Longitude        *float64        `json:"longitude,omitempty"`
	LocationName     string          `json:"locationName,omitempty"`
	WeatherCondition string          `json:"weatherCondition,omitempty"`
	Temperature      *float64        `json:"temperature,omitempty"`
	TemperatureUnit  TemperatureUnit `json:"temperatureUnit,omitempty"`
	DayOfWeek        string          `json:"dayOfWeek,omitempty"`
	FormattedDate    string          `json:"formattedDate,omitempty"`
}

// NewFlower creates a giftable flower with a fresh identity.
func NewFlower(name, descriptor string, generatedAt time.Time) Flower {
	return Flower{
		ID:            uuid.New(),
		Name:          name,
		Descriptor:    descriptor,
		GeneratedDate: generatedAt,
		IsGiftable:    true,
	}
}

// HasDetails reports whether detail generation has run for the flower.
func (f *Flower) HasDetails() bool { return f.Details != nil }

// DisplayDate is the discovery date when known, otherwise the generation date.
func (f *Flower) DisplayDate() time.Time {
	if f.Discovery.Date != nil {
		return *f.Discovery.Date
	}
	return f.GeneratedDate
}

// Continent returns the continent recorded in the details, if any.
func (f *Flower) Continent() (Continent, bool) {
	if f.Details == nil || f.Details.Continent == "" {
		return "", false
	}
	return f.Details.Continent, true
}

// Clone returns a copy that shares no mutable slices or pointers with f.
// ImageData is shared; it is never mutated in place.
func (f Flower) Clone() Flower {
	c := f
	if f.Botanical != nil {
		b := *f.Botanical
		b.CommonNames = slices.Clone(b.CommonNames)
		b.NativeRegions = slices.Clone(b.NativeRegions)
		b.Uses = slices.Clone(b.Uses)
		b.InterestingFacts = slices.Clone(b.InterestingFacts)
		c.Botanical = &b
	}
	if f.Details != nil {
		d := *f.Details
		c.Details = &d
	}
	c.Discovery = f.Discovery.clone()
	c.BouquetFlowers = slices.Clone(f.BouquetFlowers)
	if f.OriginalOwner != nil {
		o := *f.OriginalOwner
		c.OriginalOwner = &o
	}
	c.OwnershipHistory = slices.Clone(f.OwnershipHistory)
	return c
}

func (d Discovery) clone() Discovery {
	c := d
	if d.Date != nil {
		t := *d.Date
		c.Date = &t
	}
	if d.Latitude != nil {
		v := *d.Latitude
		c.Latitude = &v
	}
	if d.Longitude != nil {
		v := *d.Longitude
		c.Longitude = &v
	}
	if d.Temperature != nil {
		v := *d.Temperature
		c.Temperature = &v
	}
	return c
}

// UnmarshalJSON defaults IsGiftable to true for records written before the
// field existed.
func (f *Flower) UnmarshalJSON(data []byte) error {
	type alias Flower
	aux := struct {
		*alias
		IsGiftable *bool `json:"isGiftable"`
	}{alias: (*alias)(f)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.IsGiftable = aux.IsGiftable == nil || *aux.IsGiftable
	return nil
}

// CloneFlowers deep-copies a slice of flowers.
func CloneFlowers(in []Flower) []Flower {
	if in == nil {
		return nil
	}
	out := make([]Flower, len(in))
	for i := range in {
		out[i] = in[i].Clone()
	}
	return out
}

// Collection names one persisted flower list.
type Collection string

const (
	CollectionDiscovered Collection = "discovered"
	CollectionFavorites  Collection = "favorites"
)
