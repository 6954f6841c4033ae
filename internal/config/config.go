// Package config assembles the client's runtime settings from layered
// sources: built-in defaults, then a .env file / environment variables,
// then an optional JSON file, then command-line flags. Later sources win.
package config

import "time"

// Config holds runtime settings for the CareConnect client.
type Config struct {
	// APIBaseURL is the backend base path, e.g. "http://localhost:8000/api".
	APIBaseURL string
	// RequestTimeout is the fixed ceiling on any single API request.
	RequestTimeout time.Duration
	// DatabasePath is the sqlite file holding tokens and pending profiles.
	DatabasePath string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "careconnect.db"
	c.LogLevel = "info"
}

// Load constructs a Config by applying defaults and overlaying each source
// in precedence order.
func Load() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJSON(cfg)
	parseFlags(cfg)
	return cfg
}
