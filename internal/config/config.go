package config

import (
	"net"
	"strconv"
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server     ServerConfig     `yaml:"server"`
	Log        LogConfig        `yaml:"log"`
	Storage    StorageConfig    `yaml:"storage"`
	Badger     BadgerConfig     `yaml:"badger"`
	Database   DatabaseConfig   `yaml:"database"`
	Auth       AuthConfig       `yaml:"auth"`
	Device     DeviceConfig     `yaml:"device"`
	Generation GenerationConfig `yaml:"generation"`
	Weather    WeatherConfig    `yaml:"weather"`
	Schedule   ScheduleConfig   `yaml:"schedule"`
	Sync       SyncConfig       `yaml:"sync"`
	Backup     BackupConfig     `yaml:"backup"`
	CORS       CORSConfig       `yaml:"cors"`
	RateLimit  RateLimitConfig  `yaml:"rate_limit"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Authorization,Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"90s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"15s"`
	MaxBodyBytes    int64         `yaml:"max_body_bytes"   env:"SERVER_MAX_BODY_BYTES"   env-default:"33554432"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// StorageConfig locates the on-disk state of the garden. Empty paths are
// placed under DataDir by Load.
type StorageConfig struct {
	DataDir      string `yaml:"data_dir"       env:"STORAGE_DATA_DIR"       env-default:"./data"`
	SharedDBPath string `yaml:"shared_db_path" env:"STORAGE_SHARED_DB_PATH"`
	InboxDir     string `yaml:"inbox_dir"      env:"STORAGE_INBOX_DIR"`
	BackupsDir   string `yaml:"backups_dir"    env:"STORAGE_BACKUPS_DIR"`
}

// BadgerConfig holds preferences database settings.
type BadgerConfig struct {
	Path           string  `yaml:"path"             env:"BADGER_PATH"`
	InMemory       bool    `yaml:"in_memory"        env:"BADGER_IN_MEMORY"        env-default:"false"`
	SyncWrites     bool    `yaml:"sync_writes"      env:"BADGER_SYNC_WRITES"      env-default:"true"`
	GCSpec         string  `yaml:"gc_spec"          env:"BADGER_GC_SPEC"          env-default:"@every 10m"`
	GCDiscardRatio float64 `yaml:"gc_discard_ratio" env:"BADGER_GC_DISCARD_RATIO" env-default:"0.5"`
}

// DatabaseConfig holds the PostgreSQL cloud sync connection settings.
// The database is optional; without it cloud sync is disabled.
type DatabaseConfig struct {
	Enabled         bool          `yaml:"enabled"            env:"DATABASE_ENABLED"            env-default:"false"`
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"1"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// AuthConfig holds device token settings.
type AuthConfig struct {
	JWTSecret string        `yaml:"jwt_secret" env:"AUTH_JWT_SECRET" env-required:"true"`
	JWTIssuer string        `yaml:"jwt_issuer" env:"AUTH_JWT_ISSUER" env-default:"florarium"`
	TokenTTL  time.Duration `yaml:"token_ttl"  env:"AUTH_TOKEN_TTL"  env-default:"8760h"`
}

// DeviceConfig identifies this garden in exported gifts, backups and
// cloud sync metadata.
type DeviceConfig struct {
	ID        string `yaml:"id"         env:"DEVICE_ID"`
	Name      string `yaml:"name"       env:"DEVICE_NAME"       env-default:"Florarium"`
	OwnerName string `yaml:"owner_name" env:"DEVICE_OWNER_NAME" env-default:"Gardener"`
}

// GenerationConfig selects and configures the image and text providers.
type GenerationConfig struct {
	ImageProvider        string        `yaml:"image_provider"          env:"GEN_IMAGE_PROVIDER"          env-default:"fal"`
	TextProvider         string        `yaml:"text_provider"           env:"GEN_TEXT_PROVIDER"           env-default:"openai"`
	FALKey               string        `yaml:"fal_key"                 env:"FAL_KEY"`
	FALRequestsPerMinute int           `yaml:"fal_requests_per_minute" env:"GEN_FAL_REQUESTS_PER_MINUTE" env-default:"10"`
	OpenAIKey            string        `yaml:"openai_key"              env:"OPENAI_API_KEY"`
	OpenAIModel          string        `yaml:"openai_model"            env:"GEN_OPENAI_MODEL"            env-default:"gpt-4o-mini"`
	AnthropicKey         string        `yaml:"anthropic_key"           env:"ANTHROPIC_API_KEY"`
	AnthropicModel       string        `yaml:"anthropic_model"         env:"GEN_ANTHROPIC_MODEL"         env-default:"claude-3-5-haiku-latest"`
	Timeout              time.Duration `yaml:"timeout"                 env:"GEN_TIMEOUT"                 env-default:"60s"`
	PlaceholderSize      int           `yaml:"placeholder_size"        env:"GEN_PLACEHOLDER_SIZE"        env-default:"512"`
	ThumbnailSide        int           `yaml:"thumbnail_side"          env:"GEN_THUMBNAIL_SIDE"          env-default:"200"`
}

// WeatherConfig places the garden on the map for discovery context.
type WeatherConfig struct {
	Enabled        bool    `yaml:"enabled"          env:"WEATHER_ENABLED"          env-default:"false"`
	Latitude       float64 `yaml:"latitude"         env:"WEATHER_LATITUDE"`
	Longitude      float64 `yaml:"longitude"        env:"WEATHER_LONGITUDE"`
	Locality       string  `yaml:"locality"         env:"WEATHER_LOCALITY"`
	Country        string  `yaml:"country"          env:"WEATHER_COUNTRY"`
	ISOCountryCode string  `yaml:"iso_country_code" env:"WEATHER_ISO_COUNTRY_CODE"`
	Continent      string  `yaml:"continent"        env:"WEATHER_CONTINENT"`
	Unit           string  `yaml:"unit"             env:"WEATHER_UNIT"             env-default:"C"`
}

// ScheduleConfig controls the daily flower slot.
type ScheduleConfig struct {
	// RevealTime is the local clock time of the slot, "HH:MM".
	RevealTime    string        `yaml:"reveal_at"      env:"SCHEDULE_REVEAL_AT"      env-default:"08:00"`
	Jitter        time.Duration `yaml:"jitter"         env:"SCHEDULE_JITTER"         env-default:"0s"`
	Timezone      string        `yaml:"timezone"       env:"SCHEDULE_TIMEZONE"       env-default:"Local"`
	ReminderDelay time.Duration `yaml:"reminder_delay" env:"SCHEDULE_REMINDER_DELAY" env-default:"4h"`
	TickSpec      string        `yaml:"tick_spec"      env:"SCHEDULE_TICK_SPEC"      env-default:"@every 1m"`

	// RevealAt and Location are resolved during validation. RevealAt is the
	// offset from local midnight.
	RevealAt time.Duration  `yaml:"-" env:"-"`
	Location *time.Location `yaml:"-" env:"-"`
}

// SyncConfig controls periodic cloud sync. It only runs when the database
// is enabled.
type SyncConfig struct {
	Account string `yaml:"account" env:"SYNC_ACCOUNT" env-default:"default"`
	Spec    string `yaml:"spec"    env:"SYNC_SPEC"    env-default:"@every 30m"`
}

// BackupConfig controls automatic .bouquet backups.
type BackupConfig struct {
	Enabled bool   `yaml:"enabled" env:"BACKUP_ENABLED" env-default:"true"`
	Spec    string `yaml:"spec"    env:"BACKUP_SPEC"    env-default:"@every 1h"`
	Keep    int    `yaml:"keep"    env:"BACKUP_KEEP"    env-default:"5"`
}

// RateLimitConfig holds per-IP request limits.
type RateLimitConfig struct {
	Enabled         bool          `yaml:"enabled"          env:"RATE_LIMIT_ENABLED"          env-default:"true"`
	PerMinute       int           `yaml:"per_minute"       env:"RATE_LIMIT_PER_MINUTE"       env-default:"120"`
	DevicePerMinute int           `yaml:"device_per_minute" env:"RATE_LIMIT_DEVICE_PER_MINUTE" env-default:"5"`
	CleanupInterval time.Duration `yaml:"cleanup_interval" env:"RATE_LIMIT_CLEANUP_INTERVAL" env-default:"5m"`
}

// Addr returns the listen address of the HTTP server.
func (s ServerConfig) Addr() string {
	return net.JoinHostPort(s.Host, strconv.Itoa(s.Port))
}
