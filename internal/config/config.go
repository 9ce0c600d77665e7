// Package config loads styring's runtime configuration from the environment.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/caarlos0/env/v11"
)

// DefaultBackendURL is used when STYRING_BACKEND_URL is unset. A terminal
// client has no page origin to fall back to, so "same origin" means the
// backend on the local machine.
const DefaultBackendURL = "http://localhost:8000"

// sessionDBRelPath is the session database location relative to XDG_DATA_HOME.
const sessionDBRelPath = "styring/session.db"

// Config holds all configuration for the client and the dev backend.
type Config struct {
	BackendURL    string `env:"STYRING_BACKEND_URL"`
	DBPath        string `env:"STYRING_DB"`
	HTTPTimeoutMs int    `env:"STYRING_HTTP_TIMEOUT_MS" envDefault:"0"`
	LogCalls      bool   `env:"STYRING_LOG_CALLS" envDefault:"false"`

	DevServerAddr   string `env:"STYRING_DEVSERVER_ADDR" envDefault:":8000"`
	DevServerSecret string `env:"STYRING_DEVSERVER_SECRET" envDefault:"styring-dev-secret"`
}

// Load reads Config from environment variables and normalizes it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.HTTPTimeoutMs < 0 {
		return Config{}, fmt.Errorf("STYRING_HTTP_TIMEOUT_MS must be >= 0, got %d", cfg.HTTPTimeoutMs)
	}
	cfg.BackendURL = NormalizeBackendURL(cfg.BackendURL)
	return cfg, nil
}

// NormalizeBackendURL trims whitespace and trailing slashes so paths can be
// appended directly. An empty value resolves to DefaultBackendURL.
func NormalizeBackendURL(raw string) string {
	u := strings.TrimRight(strings.TrimSpace(raw), "/")
	if u == "" {
		return DefaultBackendURL
	}
	return u
}

// HTTPTimeout returns the per-request timeout. Zero means no timeout.
func (c Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutMs) * time.Millisecond
}

// SessionDBPath returns STYRING_DB when set, otherwise a path under the XDG
// data directory (created on demand).
func (c Config) SessionDBPath() (string, error) {
	if c.DBPath != "" {
		return c.DBPath, nil
	}
	path, err := xdg.DataFile(sessionDBRelPath)
	if err != nil {
		return "", fmt.Errorf("resolving session database path: %w", err)
	}
	return path, nil
}
