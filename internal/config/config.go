// Package config loads server settings from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration. Every field maps to one environment
// variable.
type Config struct {
	Port     string `env:"PORT"      envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
	// LogJSON switches the console writer off for production log shipping.
	LogJSON bool `env:"LOG_JSON" envDefault:"false"`

	DatabasePath     string        `env:"DATABASE_PATH"     envDefault:"portfolio.db"`
	TrackVisitors    bool          `env:"TRACK_VISITORS"    envDefault:"true"`
	VisitorRetention time.Duration `env:"VISITOR_RETENTION" envDefault:"8760h"`

	AdminUsername string `env:"ADMIN_USERNAME"`
	AdminPassword string `env:"ADMIN_PASSWORD"`

	RevealThreshold float64 `env:"REVEAL_THRESHOLD" envDefault:"0.85"`
	ViewportHeight  float64 `env:"VIEWPORT_HEIGHT"  envDefault:"900"`
}

// Load parses the environment. A .env file, if present, has already been
// applied by godotenv/autoload in main.
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

// Validate rejects values env cannot catch on its own: a threshold outside
// (0, 1] and non-positive sizes or durations.
func (c Config) Validate() error {
	if c.RevealThreshold <= 0 || c.RevealThreshold > 1 {
		return fmt.Errorf("REVEAL_THRESHOLD must be in (0, 1], got %v", c.RevealThreshold)
	}
	if c.ViewportHeight <= 0 {
		return fmt.Errorf("VIEWPORT_HEIGHT must be positive, got %v", c.ViewportHeight)
	}
	if c.VisitorRetention <= 0 {
		return fmt.Errorf("VISITOR_RETENTION must be positive, got %v", c.VisitorRetention)
	}
	return nil
}

// AdminCredentials falls back to development credentials when unset. The
// second return reports whether the fallback was used.
func (c Config) AdminCredentials() (user, pass string, fallback bool) {
	user, pass = c.AdminUsername, c.AdminPassword
	if user == "" {
		user, fallback = "admin", true
	}
	if pass == "" {
		pass, fallback = "admin123", true
	}
	return user, pass, fallback
}
