package main

import (
	"io"

	"github.com/osse101/ColorDuel_Go/internal/config"
	"github.com/osse101/ColorDuel_Go/internal/logger"
)

// loggerConfig starts from the environment's preset and applies explicit app settings.
// The preset decides whether source locations are attached.
func loggerConfig(cfg *config.Config) logger.Config {
	preset := logger.ForEnvironment(cfg.Environment)

	return logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		preset.AddSource,
	)
}

// initLogger initializes the logger using centralized app configuration
func initLogger(cfg *config.Config, w io.Writer) {
	logger.InitLoggerWithWriter(loggerConfig(cfg), w)
}
