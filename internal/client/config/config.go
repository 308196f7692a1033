package config

import (
	"os"
	"time"
)

// Config holds runtime settings for the itemvault CLI.
//
// Fields:
//   - APIBaseURL: base URL of the backend REST API, including the /api path.
//   - RequestTimeout: per-request HTTP timeout.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - DatabaseDSN: path/DSN of the local SQLite database.
type Config struct {
	APIBaseURL          string
	RequestTimeout      time.Duration
	OnlineCheckInterval time.Duration
	DatabaseDSN         string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api"
	c.RequestTimeout = 10 * time.Second
	c.OnlineCheckInterval = 3 * time.Second
	c.DatabaseDSN = "itemvault.db"
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), command-line flags (if present) and finally the
// environment. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	parseEnv(cfg)
	return cfg
}

// parseEnv overlays the API base URL from the environment; this is the
// canonical way to point the client at another deployment.
func parseEnv(cfg *Config) {
	if v, ok := os.LookupEnv("ITEMVAULT_API_URL"); ok && v != "" {
		cfg.APIBaseURL = v
	}
}
