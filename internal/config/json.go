package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/hbridge/careconnect-cli/internal/flagx"
)

// jsonConfig is the DTO for file-based configuration. The timeout is given
// in whole seconds.
type jsonConfig struct {
	APIBaseURL            string `json:"api_base_url"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
	DatabasePath          string `json:"database_path"`
	LogLevel              string `json:"log_level"`
}

// parseJSON overlays cfg with values from the JSON file named by the
// -c/-config flag. No flag, no file, nothing happens. A file that exists
// but cannot be read or parsed panics: a config explicitly pointed at must
// not be silently ignored.
func parseJSON(cfg *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	if jc.DatabasePath != "" {
		cfg.DatabasePath = jc.DatabasePath
	}
	if jc.LogLevel != "" {
		cfg.LogLevel = jc.LogLevel
	}
}
