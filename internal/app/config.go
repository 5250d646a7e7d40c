package app

import (
	"errors"
	"fmt"
)

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// Threshold and Limit are the raw command-line texts. They are validated
	// by Run, not here, so the user sees the decimal diagnostics in order.
	Threshold string
	Limit     string
	// ParamsPath names an HCL parameter file that supplies both values
	// instead of Threshold and Limit.
	ParamsPath string

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy ready for NewApp.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.ParamsPath != "" && (cfg.Threshold != "" || cfg.Limit != "") {
		return nil, errors.New("threshold and limit cannot be combined with a parameter file")
	}

	switch cfg.LogFormat {
	case "":
		cfg.LogFormat = "text"
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "":
		cfg.LogLevel = "warn"
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}
