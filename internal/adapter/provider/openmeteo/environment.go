package openmeteo

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/tidwall/gjson"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

const (
	defaultBaseURL = "https://api.open-meteo.com/v1/forecast"
	defaultTTL     = 30 * time.Minute
)

// Place is the fixed location the server reports discoveries from.
type Place struct {
	Latitude       float64
	Longitude      float64
	Locality       string
	Country        string
	ISOCountryCode string
	Continent      domain.Continent
}

// Environment serves the configured location and cached Open-Meteo weather.
type Environment struct {
	baseURL    string
	httpClient *http.Client
	place      *Place
	unit       domain.TemperatureUnit
	ttl        time.Duration
	now        func() time.Time
	log        *slog.Logger

	mu      sync.RWMutex
	weather *domain.WeatherSnapshot
}

// NewEnvironment creates an Environment. A nil place disables both
// location and weather.
func NewEnvironment(place *Place, unit domain.TemperatureUnit, logger *slog.Logger) *Environment {
	return NewEnvironmentWithURL(defaultBaseURL, place, unit, logger)
}

// NewEnvironmentWithURL creates an Environment with a custom base URL (for testing).
func NewEnvironmentWithURL(baseURL string, place *Place, unit domain.TemperatureUnit, logger *slog.Logger) *Environment {
	if !unit.IsValid() {
		unit = domain.Celsius
	}
	return &Environment{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
		place:      place,
		unit:       unit,
		ttl:        defaultTTL,
		now:        time.Now,
		log:        logger.With("adapter", "openmeteo"),
	}
}

// Snapshot returns whatever is currently known. It never blocks on the network.
func (e *Environment) Snapshot() domain.DiscoveryContext {
	var dc domain.DiscoveryContext
	if e.place == nil {
		return dc
	}
	dc.Location = &domain.Location{Latitude: e.place.Latitude, Longitude: e.place.Longitude}
	dc.Placemark = &domain.Placemark{
		Locality:       e.place.Locality,
		Country:        e.place.Country,
		ISOCountryCode: e.place.ISOCountryCode,
		Continent:      e.place.Continent,
	}

	e.mu.RLock()
	if e.weather != nil {
		w := *e.weather
		dc.Weather = &w
	}
	e.mu.RUnlock()
	return dc
}

// EnsureFresh refetches the weather when the cached reading is older than the TTL.
func (e *Environment) EnsureFresh(ctx context.Context) error {
	if e.place == nil {
		return nil
	}

	e.mu.RLock()
	fresh := e.weather != nil && e.now().Sub(e.weather.ObservedAt) < e.ttl
	e.mu.RUnlock()
	if fresh {
		return nil
	}

	w, err := e.fetch(ctx)
	if err != nil {
		e.log.WarnContext(ctx, "weather refresh failed", slog.String("error", err.Error()))
		return err
	}

	e.mu.Lock()
	e.weather = w
	e.mu.Unlock()
	return nil
}

func (e *Environment) fetch(ctx context.Context) (*domain.WeatherSnapshot, error) {
	q := url.Values{}
	q.Set("latitude", strconv.FormatFloat(e.place.Latitude, 'f', 4, 64))
	q.Set("longitude", strconv.FormatFloat(e.place.Longitude, 'f', 4, 64))
	q.Set("current", "temperature_2m,weather_code")
	if e.unit == domain.Fahrenheit {
		q.Set("temperature_unit", "fahrenheit")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, e.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: create request: %w", err)
	}
	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("openmeteo: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("openmeteo: unexpected status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("openmeteo: read body: %w", err)
	}

	current := gjson.GetBytes(body, "current")
	temp := current.Get("temperature_2m")
	code := current.Get("weather_code")
	if !temp.Exists() || !code.Exists() {
		return nil, fmt.Errorf("openmeteo: missing current weather")
	}

	return &domain.WeatherSnapshot{
		Condition:   Condition(int(code.Int())),
		Temperature: temp.Float(),
		Unit:        e.unit,
		ObservedAt:  e.now(),
	}, nil
}

// Condition maps a WMO weather code to a short description.
func Condition(code int) string {
	switch {
	case code == 0:
		return "Clear"
	case code <= 2:
		return "Partly Cloudy"
	case code == 3:
		return "Cloudy"
	case code == 45 || code == 48:
		return "Foggy"
	case code >= 51 && code <= 57:
		return "Drizzle"
	case code >= 61 && code <= 67, code >= 80 && code <= 82:
		return "Rain"
	case code >= 71 && code <= 77, code == 85 || code == 86:
		return "Snow"
	case code >= 95:
		return "Thunderstorm"
	}
	return "Unknown"
}
