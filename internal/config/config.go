// Package config handles configuration loading and defaults.
package config

import "fmt"

// Default values.
const (
	DefaultAddr      = ":8080"
	DefaultBaseURL   = "http://localhost:8080"
	DefaultSeedCount = 10
	DefaultLogLevel  = "info"
	DefaultLogFormat = "text"
)

// Config holds the full configuration for todod.
type Config struct {
	// Server
	Addr string `toml:"addr"`

	// Client base URL used by the tui subcommand.
	BaseURL string `toml:"base_url"`

	// Number of synthetic records seeded at startup.
	SeedCount int `toml:"seed_count"`

	// Logging configuration
	LogLevel      string `toml:"log_level"`
	LogFormat     string `toml:"log_format"`
	LogTimestamps bool   `toml:"log_timestamps"`
	LogCaller     bool   `toml:"log_caller"`
}

func setDefaults(cfg *Config) {
	cfg.Addr = DefaultAddr
	cfg.BaseURL = DefaultBaseURL
	cfg.SeedCount = DefaultSeedCount
	cfg.LogLevel = DefaultLogLevel
	cfg.LogFormat = DefaultLogFormat
	cfg.LogTimestamps = true
}

// finalizeConfig validates the assembled configuration.
func finalizeConfig(cfg *Config) error {
	if cfg.Addr == "" {
		return fmt.Errorf("addr must not be empty")
	}
	if cfg.SeedCount < 0 {
		return fmt.Errorf("seed_count must be non-negative, got %d", cfg.SeedCount)
	}
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q, must be one of: debug, info, warn, error", cfg.LogLevel)
	}
	switch cfg.LogFormat {
	case "text", "json", "logfmt":
	default:
		return fmt.Errorf("invalid log_format %q, must be one of: text, json, logfmt", cfg.LogFormat)
	}
	return nil
}
