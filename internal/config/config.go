// Package config provides centralized configuration for the acceptance
// suite and the standalone fixture server. It loads from CLI flags and
// environment variables, validates, and provides sensible defaults.
//
// PORTFOLIO_BASE_URL points the suite at a live deployment instead of the
// in-process fixture site; HEADLESS=false shows the browser for debugging.
package config

import (
	"flag"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"
)

// Config holds all suite and fixture-server configuration.
type Config struct {
	// Fixture server settings
	ListenAddr string

	// Target override: when non-empty the browser tests run against this
	// URL instead of an in-process fixture server.
	BaseURL string

	// Browser settings
	Headless bool

	// Wait budgets
	DefaultTimeout time.Duration
	PollInterval   time.Duration
}

// ParseFlags registers and parses the fixture-server CLI flags.
// Call before Load.
func ParseFlags() (addr string) {
	flag.StringVar(&addr, "addr", "", "Listen address (default :8080, overrides LISTEN_ADDR env var)")
	flag.Parse()
	return addr
}

// Load builds configuration from environment variables and flag values.
// The addr flag overrides the LISTEN_ADDR env var if non-empty.
func Load(addr string) (*Config, error) {
	cfg := &Config{}

	cfg.ListenAddr = getEnvOrDefault("LISTEN_ADDR", ":8080")
	if addr != "" {
		cfg.ListenAddr = addr
	}

	cfg.BaseURL = strings.TrimRight(strings.TrimSpace(os.Getenv("PORTFOLIO_BASE_URL")), "/")
	cfg.Headless = os.Getenv("HEADLESS") != "false"
	cfg.DefaultTimeout = parseDurationOrDefault("UITEST_TIMEOUT", 5*time.Second)
	cfg.PollInterval = parseDurationOrDefault("UITEST_POLL_INTERVAL", 100*time.Millisecond)

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []string

	if c.BaseURL != "" {
		u, err := url.Parse(c.BaseURL)
		if err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Sprintf("PORTFOLIO_BASE_URL %q is not an absolute URL", c.BaseURL))
		}
	}
	if c.DefaultTimeout <= 0 {
		errs = append(errs, "UITEST_TIMEOUT must be positive")
	}
	if c.PollInterval <= 0 {
		errs = append(errs, "UITEST_POLL_INTERVAL must be positive")
	}
	if c.PollInterval >= c.DefaultTimeout && c.DefaultTimeout > 0 {
		errs = append(errs, "UITEST_POLL_INTERVAL must be shorter than UITEST_TIMEOUT")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

func getEnvOrDefault(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func parseDurationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return d
}
