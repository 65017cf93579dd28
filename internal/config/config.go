package config

import "time"

// Config holds runtime settings for the pi_system client.
//
// Fields:
//   - APIBaseURL: scheme://host[:port] of the backend REST API.
//   - RequestTimeout: per-request timeout for remote calls.
//   - SessionDBPath: path of the local session database file.
//
// Units: RequestTimeout is a time.Duration (e.g. 30*time.Second).
type Config struct {
	APIBaseURL     string
	SessionDBPath  string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://127.0.0.1:8080"
	c.SessionDBPath = "session.db"
	c.RequestTimeout = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present) and command-line flags (if present). Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
