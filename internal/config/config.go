package config

import (
	"fmt"
	"net/url"

	pkgconfig "github.com/Srinath-230/e-commerce-frontend-app/pkg/config"
)

// Config holds all configuration for the storefront client.
type Config struct {
	Environment string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`

	// Backend API
	APIBaseURL         string `env:"API_BASE_URL" envDefault:"http://localhost:8080"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"30"`
	MaxConnsPerHost    int    `env:"HTTP_MAX_CONNS_PER_HOST" envDefault:"10"`

	// Fail fast when the backend keeps erroring instead of hanging the UI.
	CircuitBreakerEnabled bool `env:"CIRCUIT_BREAKER_ENABLED" envDefault:"false"`
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load storefront config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// validate checks configuration invariants.
func (c *Config) validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fmt.Errorf("invalid API base URL: %q", c.APIBaseURL)
	}
	if c.HTTPTimeoutSeconds < 1 {
		return fmt.Errorf("invalid HTTP timeout: %d", c.HTTPTimeoutSeconds)
	}
	return nil
}
