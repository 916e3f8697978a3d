package domain

import (
	"fmt"
	"time"
)

// Location is a geographic coordinate.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Placemark is a human-readable place resolved for a location.
type Placemark struct {
	Locality       string    `json:"locality,omitempty"`
	Country        string    `json:"country,omitempty"`
	ISOCountryCode string    `json:"isoCountryCode,omitempty"`
	Continent      Continent `json:"continent,omitempty"`
}

// DisplayName joins locality and country, skipping empty parts.
func (p Placemark) DisplayName() string {
	switch {
	case p.Locality != "" && p.Country != "":
		return p.Locality + ", " + p.Country
	case p.Locality != "":
		return p.Locality
	default:
		return p.Country
	}
}

// WeatherSnapshot is the most recent observed weather.
type WeatherSnapshot struct {
	Condition   string          `json:"condition"`
	Temperature float64         `json:"temperature"`
	Unit        TemperatureUnit `json:"unit"`
	ObservedAt  time.Time       `json:"observedAt"`
}

// DiscoveryContext bundles what the environment knew at generation time.
// Any field may be nil.
type DiscoveryContext struct {
	Location  *Location
	Placemark *Placemark
	Weather   *WeatherSnapshot
}

// StampDiscovery records location, weather and calendar context on f.
// The discovery date itself is set to at.
func (f *Flower) StampDiscovery(at time.Time, dc DiscoveryContext) {
	if dc.Location != nil {
		lat, lon := dc.Location.Latitude, dc.Location.Longitude
		f.Discovery.Latitude = &lat
		f.Discovery.Longitude = &lon
	}
	if dc.Placemark != nil {
		f.Discovery.LocationName = dc.Placemark.DisplayName()
	}
	if dc.Weather != nil {
		temp := dc.Weather.Temperature
		f.Discovery.WeatherCondition = dc.Weather.Condition
		f.Discovery.Temperature = &temp
		f.Discovery.TemperatureUnit = dc.Weather.Unit
	}
	f.MarkDiscovered(at)
}

// MarkDiscovered sets the discovery date and its formatted forms.
func (f *Flower) MarkDiscovered(at time.Time) {
	f.Discovery.Date = &at
	f.Discovery.DayOfWeek = at.Weekday().String()
	f.Discovery.FormattedDate = FormatOrdinalDate(at)
}

// FormatOrdinalDate renders t as "15th June 2025".
func FormatOrdinalDate(t time.Time) string {
	day := t.Day()
	return fmt.Sprintf("%d%s %s %d", day, OrdinalSuffix(day), t.Month(), t.Year())
}

// OrdinalSuffix returns the English ordinal suffix for day.
func OrdinalSuffix(day int) string {
	switch day % 100 {
	case 11, 12, 13:
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
