package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// DefaultPath is read when CONFIG_PATH is unset. A missing default file is
// not an error.
const DefaultPath = "./florarium.yaml"

// Load reads configuration with priority ENV > YAML > env-default tags,
// derives storage paths and validates the result. CONFIG_PATH names the
// YAML file; when it is set the file must exist.
func Load() (*Config, error) {
	path := os.Getenv("CONFIG_PATH")
	explicit := path != ""
	if !explicit {
		path = DefaultPath
	}

	var cfg Config
	_, statErr := os.Stat(path)
	switch {
	case statErr == nil:
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	case explicit || !errors.Is(statErr, fs.ErrNotExist):
		return nil, fmt.Errorf("config: file %s: %w", path, statErr)
	default:
		if err := cleanenv.ReadEnv(&cfg); err != nil {
			return nil, fmt.Errorf("config: read env: %w", err)
		}
	}

	cfg.resolvePaths()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// resolvePaths fills storage locations left empty with their place under
// the data directory.
func (c *Config) resolvePaths() {
	dir := c.Storage.DataDir
	if dir == "" {
		dir = "./data"
		c.Storage.DataDir = dir
	}
	fill := func(p *string, name string) {
		if *p == "" {
			*p = filepath.Join(dir, name)
		}
	}
	fill(&c.Storage.SharedDBPath, "shared.db")
	fill(&c.Storage.InboxDir, "inbox")
	fill(&c.Storage.BackupsDir, "backups")
	fill(&c.Badger.Path, "prefs")
}
