package app

import (
	"io"
	"log/slog"

	"github.com/vk/tfgraph/internal/config"
	"github.com/vk/tfgraph/internal/extract"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW      io.Writer
	logger    *slog.Logger
	config    *Config
	extractor *extract.Extractor
}

// NewApp is the constructor for the main application. The graph document is
// written to outW when no output path is configured; logs go to logW so the
// document stream stays clean.
func NewApp(outW, logW io.Writer, cfg *Config, loader config.Loader) *App {
	logger := newLogger(cfg.LogLevel, cfg.LogFormat, logW)
	logger.Debug("Logger configured successfully.")

	var opts []extract.Option
	if len(cfg.CloudPrefixes) > 0 {
		opts = append(opts, extract.WithCloudPrefixes(cfg.CloudPrefixes...))
	}
	opts = append(opts, extract.WithWorkers(cfg.WorkerCount))

	return &App{
		outW:      outW,
		logger:    logger,
		config:    cfg,
		extractor: extract.New(loader, opts...),
	}
}
