// Package config loads runtime settings from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/brettarda/brett-dev/internal/theme"
)

type Config struct {
	Port      string `env:"PORT" envDefault:"8080"`
	GinMode   string `env:"GIN_MODE" envDefault:"release"`
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogPretty bool   `env:"LOG_PRETTY" envDefault:"false"`

	DatabasePath       string        `env:"DATABASE_PATH" envDefault:"portfolio.db"`
	AnalyticsEnabled   bool          `env:"ANALYTICS_ENABLED" envDefault:"true"`
	AnalyticsRetention time.Duration `env:"ANALYTICS_RETENTION" envDefault:"8760h"`
	AnalyticsSalt      string        `env:"ANALYTICS_SALT"`

	ContentFile  string `env:"CONTENT_FILE"`
	ContentWatch bool   `env:"CONTENT_WATCH" envDefault:"false"`
	ResumePath   string `env:"RESUME_PATH" envDefault:"assets/Resume-Arda_BrettWestley 2025.pdf"`

	ThemeStorageKey string `env:"THEME_STORAGE_KEY" envDefault:"brett-portfolio-theme"`
	ThemeDefault    string `env:"THEME_DEFAULT" envDefault:"dark"`

	AdminUsername string `env:"ADMIN_USERNAME" envDefault:"admin"`
	AdminPassword string `env:"ADMIN_PASSWORD"`
	SecureCookies bool   `env:"SECURE_COOKIES" envDefault:"false"`
}

// Load parses the environment and validates the result. An empty analytics
// salt is replaced with a random one, so hashes do not survive a restart.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.AnalyticsSalt == "" {
		salt, err := randomHex(16)
		if err != nil {
			return nil, err
		}
		cfg.AnalyticsSalt = salt
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port == "" {
		return errors.New("config: PORT must not be empty")
	}
	if _, err := theme.ParsePreference(c.ThemeDefault); err != nil {
		return fmt.Errorf("config: THEME_DEFAULT: %w", err)
	}
	if c.ThemeStorageKey == "" {
		return errors.New("config: THEME_STORAGE_KEY must not be empty")
	}
	if c.AnalyticsEnabled && c.AnalyticsRetention <= 0 {
		return fmt.Errorf("config: ANALYTICS_RETENTION must be positive, got %s", c.AnalyticsRetention)
	}
	if c.AnalyticsEnabled && c.DatabasePath == "" {
		return errors.New("config: DATABASE_PATH is required when analytics is enabled")
	}
	return nil
}

// DefaultTheme is the validated THEME_DEFAULT.
func (c *Config) DefaultTheme() theme.Preference {
	p, err := theme.ParsePreference(c.ThemeDefault)
	if err != nil {
		return theme.Dark
	}
	return p
}

// AdminEnabled reports whether the admin area is mounted.
func (c *Config) AdminEnabled() bool {
	return c.AnalyticsEnabled && c.AdminPassword != ""
}

func randomHex(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random value: %w", err)
	}
	return hex.EncodeToString(b), nil
}

// RandomToken returns a 32-byte hex token.
func RandomToken() (string, error) {
	return randomHex(32)
}
