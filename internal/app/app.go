package app

import (
	"io"
	"log/slog"

	"github.com/specialistvlad/clampsum/internal/config"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	in     io.Reader
	outW   io.Writer
	logger *slog.Logger
	config *Config
	loader config.Loader
}

// NewApp is the constructor for the main application. Input is read from in,
// results go to outW and logs to logW. loader may be nil when cfg does not
// name a parameter file.
func NewApp(in io.Reader, outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.", "level", cfg.LogLevel, "format", cfg.LogFormat)

	return &App{
		in:     in,
		outW:   outW,
		logger: logger,
		config: cfg,
		loader: loader,
	}
}
