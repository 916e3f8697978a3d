package config

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/florarium-backend/internal/domain"
)

var (
	imageProviders = []string{"fal", "openai", "placeholder"}
	textProviders  = []string{"openai", "anthropic", "none"}
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if len(c.Auth.JWTSecret) < 32 {
		return fmt.Errorf("auth.jwt_secret must be at least 32 characters (got %d)", len(c.Auth.JWTSecret))
	}
	if c.Auth.TokenTTL <= 0 {
		return fmt.Errorf("auth.token_ttl must be > 0 (got %s)", c.Auth.TokenTTL)
	}

	if c.Database.Enabled && c.Database.DSN == "" {
		return errors.New("database.dsn is required when database.enabled is set")
	}

	if err := c.Generation.validate(); err != nil {
		return fmt.Errorf("generation: %w", err)
	}
	if err := c.Weather.validate(); err != nil {
		return fmt.Errorf("weather: %w", err)
	}
	if err := c.Schedule.validate(); err != nil {
		return fmt.Errorf("schedule: %w", err)
	}

	for name, spec := range map[string]string{
		"badger.gc_spec": c.Badger.GCSpec,
		"sync.spec":      c.Sync.Spec,
		"backup.spec":    c.Backup.Spec,
	} {
		if err := ValidateSpec(spec); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
	}

	if c.Backup.Keep < 1 {
		return fmt.Errorf("backup.keep must be >= 1 (got %d)", c.Backup.Keep)
	}
	if c.RateLimit.Enabled && (c.RateLimit.PerMinute < 1 || c.RateLimit.DevicePerMinute < 1) {
		return errors.New("rate_limit.per_minute and rate_limit.device_per_minute must be >= 1")
	}

	if strings.TrimSpace(c.Device.ID) == "" {
		host, err := os.Hostname()
		if err != nil || host == "" {
			host = "florarium"
		}
		c.Device.ID = host
	}

	return nil
}

func (g *GenerationConfig) validate() error {
	g.ImageProvider = strings.ToLower(strings.TrimSpace(g.ImageProvider))
	g.TextProvider = strings.ToLower(strings.TrimSpace(g.TextProvider))

	if !slices.Contains(imageProviders, g.ImageProvider) {
		return fmt.Errorf("image_provider must be one of %v (got %q)", imageProviders, g.ImageProvider)
	}
	if !slices.Contains(textProviders, g.TextProvider) {
		return fmt.Errorf("text_provider must be one of %v (got %q)", textProviders, g.TextProvider)
	}
	if g.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", g.Timeout)
	}
	if g.PlaceholderSize < 16 || g.ThumbnailSide < 16 {
		return errors.New("placeholder_size and thumbnail_side must be >= 16")
	}
	return nil
}

func (w *WeatherConfig) validate() error {
	if !domain.TemperatureUnit(w.Unit).IsValid() {
		return fmt.Errorf("unit must be C or F (got %q)", w.Unit)
	}
	if !w.Enabled {
		return nil
	}
	if w.Latitude < -90 || w.Latitude > 90 {
		return fmt.Errorf("latitude out of range (got %v)", w.Latitude)
	}
	if w.Longitude < -180 || w.Longitude > 180 {
		return fmt.Errorf("longitude out of range (got %v)", w.Longitude)
	}
	if w.Continent != "" && !domain.Continent(w.Continent).IsValid() {
		return fmt.Errorf("unknown continent %q", w.Continent)
	}
	return nil
}

func (s *ScheduleConfig) validate() error {
	at, err := time.Parse("15:04", s.RevealTime)
	if err != nil {
		return fmt.Errorf("reveal_at must be a clock time like 08:00 (got %q)", s.RevealTime)
	}
	s.RevealAt = time.Duration(at.Hour())*time.Hour + time.Duration(at.Minute())*time.Minute

	if s.Jitter < 0 || s.RevealAt+s.Jitter >= 24*time.Hour {
		return fmt.Errorf("jitter must keep the slot within the day (got %s)", s.Jitter)
	}
	if s.ReminderDelay <= 0 {
		return fmt.Errorf("reminder_delay must be > 0 (got %s)", s.ReminderDelay)
	}
	if err := ValidateSpec(s.TickSpec); err != nil {
		return fmt.Errorf("tick_spec: %w", err)
	}

	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		return fmt.Errorf("timezone: %w", err)
	}
	s.Location = loc
	return nil
}

// ValidateSpec checks a cron spec (five fields or a descriptor such as
// "@every 30m").
func ValidateSpec(spec string) error {
	if _, err := cron.ParseStandard(spec); err != nil {
		return fmt.Errorf("invalid cron spec %q: %w", spec, err)
	}
	return nil
}
