// Package config loads runtime configuration for the pi_system client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-u string   base URL of the backend REST API
//	-d string   path of the local session database file
//	-t int      request timeout (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the timeout, so values can be
// either strings like "30s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "https://api.pisystem.example",
//	  "session_db_path": "session.db",
//	  "request_timeout": "30s"
//	}
//
// Primary API
//
//   - type Config                     — holds APIBaseURL, SessionDBPath, RequestTimeout
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
//
// Note: This package does not read environment variables directly; use the
// JSON file or flags to configure values.
package config
