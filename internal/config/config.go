// Package config provides environment-driven configuration for the client.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all deployment configuration for the client. Values are read
// from the environment; ELEVATE_API_BASE_URL is the only required setting.
type Config struct {
	// APIBaseURL is the origin of the ElevateAI backend, e.g. https://api.elevateai.app.
	APIBaseURL string `envconfig:"API_BASE_URL" required:"true"`

	// GAMeasurementID enables analytics when set. Absence disables analytics
	// without error.
	GAMeasurementID string `envconfig:"GA_MEASUREMENT_ID"`

	// GAAPISecret is the Measurement Protocol API secret paired with
	// GAMeasurementID.
	GAAPISecret string `envconfig:"GA_API_SECRET"`

	// TokenFile overrides where the session token is persisted. Defaults to
	// elevateai/token under the user config directory.
	TokenFile string `envconfig:"TOKEN_FILE"`

	// Verbose enables debug logging and HTTP round-trip dumps.
	Verbose bool `envconfig:"VERBOSE"`
}

// Load reads configuration from ELEVATE_-prefixed environment variables.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("ELEVATE", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize fills derived defaults and validates the configuration.
func (c *Config) normalize() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("ELEVATE_API_BASE_URL is required but not set")
	}
	// Trailing slashes make URL joining ambiguous downstream.
	c.APIBaseURL = strings.TrimRight(c.APIBaseURL, "/")
	if c.TokenFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("failed to resolve user config directory: %w", err)
		}
		c.TokenFile = filepath.Join(dir, "elevateai", "token")
	}
	return nil
}

// AnalyticsEnabled reports whether a measurement ID was supplied.
func (c *Config) AnalyticsEnabled() bool {
	return c.GAMeasurementID != ""
}

// StateDir returns the directory holding client state (token, analytics
// client id).
func (c *Config) StateDir() string {
	return filepath.Dir(c.TokenFile)
}
