// Package config reads gallery settings from the environment, optionally
// seeded from .env files, and resolves the paths the CLI works with.
package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	FileName    string     `env:"GALLERY_FILE" envDefault:"gallery.yaml"`
	Extensions  []string   `env:"GALLERY_EXTENSIONS" envDefault:"jpg,jpeg,png,gif" envSeparator:","`
	Concurrency int        `env:"GALLERY_CONCURRENCY" envDefault:"0"`
	LogLevel    slog.Level `env:"GALLERY_LOG_LEVEL" envDefault:"INFO"`

	ThumbnailWidth   int    `env:"GALLERY_THUMBNAIL_WIDTH" envDefault:"800"`
	ThumbnailQuality int    `env:"GALLERY_THUMBNAIL_QUALITY" envDefault:"90"`
	ThumbnailDir     string `env:"GALLERY_THUMBNAIL_DIR" envDefault:"thumbnails"`
	SourceDir        string `env:"GALLERY_SOURCE_DIR" envDefault:"galleries"`
}

// Load reads .env from the working directory and the user's config
// directory, when present, then parses the process environment. Variables
// already set are never overridden by a .env file.
func Load() (Config, error) {
	_ = godotenv.Load()
	_ = godotenv.Load(DefaultEnvFile())
	return parse(env.Options{})
}

// FromMap parses settings from vars instead of the process environment.
func FromMap(vars map[string]string) (Config, error) {
	return parse(env.Options{Environment: vars})
}

func parse(opts env.Options) (Config, error) {
	cfg, err := env.ParseAsWithOptions[Config](opts)
	if err != nil {
		return Config{}, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.FileName == "" {
		return fmt.Errorf("GALLERY_FILE cannot be empty")
	}
	if len(c.Extensions) == 0 {
		return fmt.Errorf("GALLERY_EXTENSIONS cannot be empty")
	}
	if c.ThumbnailQuality < 1 || c.ThumbnailQuality > 100 {
		return fmt.Errorf("GALLERY_THUMBNAIL_QUALITY must be between 1 and 100, got %d", c.ThumbnailQuality)
	}
	if c.ThumbnailWidth < 1 {
		return fmt.Errorf("GALLERY_THUMBNAIL_WIDTH must be positive, got %d", c.ThumbnailWidth)
	}
	return nil
}
