// Package config loads runtime configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/pfrederiksen/library-events/internal/logger"
	"github.com/pfrederiksen/library-events/internal/storage"
)

// Config holds the application configuration.
type Config struct {
	DataDir     string       `env:"LIBRARY_EVENTS_DATA_DIR" envDefault:"~/.local/share/library-events"`
	Backend     storage.Kind `env:"LIBRARY_EVENTS_BACKEND" envDefault:"file"`
	LogLevel    string       `env:"LIBRARY_EVENTS_LOG_LEVEL" envDefault:"info"`
	RecentLimit int          `env:"LIBRARY_EVENTS_RECENT_LIMIT" envDefault:"5"`
	TopLimit    int          `env:"LIBRARY_EVENTS_TOP_LIMIT" envDefault:"5"`
}

// Load parses the environment into a Config and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks field values that the environment parser cannot.
func (c Config) Validate() error {
	switch c.Backend {
	case storage.KindFile, storage.KindBadger, storage.KindSQLite, storage.KindMemory:
	default:
		return fmt.Errorf("invalid backend %q (must be file, badger, sqlite or memory)", c.Backend)
	}
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.RecentLimit < 0 {
		return fmt.Errorf("recent limit must not be negative, got %d", c.RecentLimit)
	}
	if c.TopLimit < 0 {
		return fmt.Errorf("top limit must not be negative, got %d", c.TopLimit)
	}
	return nil
}

// Level returns the parsed log level.
func (c Config) Level() logger.Level {
	level, err := logger.ParseLevel(c.LogLevel)
	if err != nil {
		return logger.LevelInfo
	}
	return level
}
