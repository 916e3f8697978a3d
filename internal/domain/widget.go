package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxWidgetFlowers caps the widget projection.
const MaxWidgetFlowers = 20

// WidgetFlower is the lossy per-flower projection read by the widget process.
type WidgetFlower struct {
	ID                    uuid.UUID       `json:"id"`
	Name                  string          `json:"name"`
	Descriptor            string          `json:"descriptor"`
	GeneratedDate         time.Time       `json:"generatedDate"`
	IsFavorite            bool            `json:"isFavorite"`
	DiscoveryLocationName string          `json:"discoveryLocationName,omitempty"`
	WeatherCondition      string          `json:"weatherCondition,omitempty"`
	Temperature           *float64        `json:"temperature,omitempty"`
	TemperatureUnit       TemperatureUnit `json:"temperatureUnit,omitempty"`
	FormattedDate         string          `json:"formattedDate,omitempty"`
	ThumbnailData         []byte          `json:"thumbnailData,omitempty"`
}

// WidgetSnapshot is written wholesale to the shared container.
type WidgetSnapshot struct {
	RecentFlowers  []WidgetFlower `json:"recentFlowers"`
	TotalCount     int            `json:"totalCount"`
	FavoritesCount int            `json:"favoritesCount"`
	LastUpdated    time.Time      `json:"lastUpdated"`
}

// NewWidgetFlower projects f, attaching an already recompressed thumbnail.
func NewWidgetFlower(f *Flower, thumbnail []byte) WidgetFlower {
	w := WidgetFlower{
		ID:                    f.ID,
		Name:                  f.Name,
		Descriptor:            f.Descriptor,
		GeneratedDate:         f.GeneratedDate,
		IsFavorite:            f.IsFavorite,
		DiscoveryLocationName: f.Discovery.LocationName,
		WeatherCondition:      f.Discovery.WeatherCondition,
		TemperatureUnit:       f.Discovery.TemperatureUnit,
		FormattedDate:         f.Discovery.FormattedDate,
		ThumbnailData:         thumbnail,
	}
	if f.Discovery.Temperature != nil {
		t := *f.Discovery.Temperature
		w.Temperature = &t
	}
	return w
}

// WidgetProjection is everything the widget process reads from the shared
// container. It is rewritten in full on every sync.
type WidgetProjection struct {
	Snapshot            WidgetSnapshot
	HasUnrevealedFlower bool
	NextFlowerTime      *time.Time
	PendingFlower       *WidgetFlower
}
