// Package logger configures the application's structured logging.
//
// It uses zerolog: console output with colors in development, plain JSON
// everywhere else, with the level taken from config.
package logger

import (
	"os"
	"time"

	"github.com/paramtour/paramtour/internal/config"
	"github.com/rs/zerolog"
)

// New builds the application's root logger from config.
//
// An unknown level falls back to info rather than failing startup;
// logging is not worth refusing to boot over.
func New(cfg *config.Config) *zerolog.Logger {
	level, err := zerolog.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = zerolog.InfoLevel
	}

	var logger zerolog.Logger
	if cfg.Primary.Env == "development" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
			Level(level).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stderr).
			Level(level).
			With().
			Timestamp().
			Str("service", "paramtour").
			Str("env", cfg.Primary.Env).
			Logger()
	}

	return &logger
}
