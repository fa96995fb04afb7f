package config

import (
	"os"
	"strings"

	"github.com/marcus/sitestamp/internal/stamp"
)

// Environment variables read by Load.
const (
	EnvOutput    = "SITESTAMP_OUTPUT"
	EnvLogLevel  = "SITESTAMP_LOG_LEVEL"
	EnvLogFormat = "SITESTAMP_LOG_FORMAT"
)

// Config holds the CLI settings, loaded from environment variables.
type Config struct {
	OutputPath string
	LogLevel   string // "debug", "info", "warn" (default), "error"
	LogFormat  string // "text" (default) or "json"
}

// Load reads configuration from environment variables with defaults.
func Load() Config {
	cfg := Config{
		OutputPath: stamp.DefaultOutputPath,
		LogLevel:   "warn",
		LogFormat:  "text",
	}

	if v := strings.TrimSpace(os.Getenv(EnvOutput)); v != "" {
		cfg.OutputPath = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}

	return cfg
}
