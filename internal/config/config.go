// Package config manages application configuration.
//
// It layers values from three sources (low to high precedence):
//  1. built-in defaults
//  2. an optional YAML file pointed to by PARAMTOUR_CONFIG
//  3. environment variables with the PARAMTOUR_ prefix
//
// Values are unmarshaled into structured Go types and validated so the
// app fails fast on bad config. A `.env` file, when present, is loaded
// into the process environment before anything else via godotenv.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	// Side-effect import: if a `.env` file exists it is loaded into the
	// process env before our code reads env vars. No explicit call needed.
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config is the root configuration object for the application.
//
// The `koanf:"..."` tags specify where koanf maps values from; nested
// struct fields use dot notation, so PARAMTOUR_SERVER.PORT becomes
// server.port -> Config.Server.Port.
type Config struct {
	Primary Primary       `koanf:"primary" validate:"required"`
	Server  ServerConfig  `koanf:"server" validate:"required"`
	Logging LoggingConfig `koanf:"logging" validate:"required"`
}

// Primary holds top-level information about the runtime environment,
// used to tag logs and switch console/JSON output.
type Primary struct {
	Env string `koanf:"env" validate:"required,oneof=development staging production"`
}

// ServerConfig groups settings for the HTTP server runtime.
// Timeouts are stored as seconds.
type ServerConfig struct {
	Port               string   `koanf:"port" validate:"required"`
	ReadTimeout        int      `koanf:"read_timeout" validate:"required"`
	WriteTimeout       int      `koanf:"write_timeout" validate:"required"`
	IdleTimeout        int      `koanf:"idle_timeout" validate:"required"`
	CORSAllowedOrigins []string `koanf:"cors_allowed_origins" validate:"required"`
}

// LoggingConfig controls the zerolog setup.
type LoggingConfig struct {
	Level string `koanf:"level" validate:"required"`
}

// Default returns the built-in configuration, suitable for local runs
// without any environment setup.
func Default() *Config {
	return &Config{
		Primary: Primary{Env: "development"},
		Server: ServerConfig{
			Port:               "8080",
			ReadTimeout:        10,
			WriteTimeout:       10,
			IdleTimeout:        60,
			CORSAllowedOrigins: []string{"*"},
		},
		Logging: LoggingConfig{Level: "info"},
	}
}

// Load builds the Config by layering defaults, an optional file, and env
// vars, then validates the result.
func Load() (*Config, error) {
	cfg := Default()

	// "." is the key-path delimiter koanf uses to represent nesting,
	// e.g. "server.port" means Config.Server.Port.
	k := koanf.New(".")

	// Optional YAML file, for deployments that prefer files over env.
	if path := os.Getenv("PARAMTOUR_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("could not load config file %s: %w", path, err)
		}
	}

	// Environment variables: strip the prefix and lowercase the rest.
	// PARAMTOUR_SERVER.PORT -> "server.port".
	err := k.Load(env.Provider("PARAMTOUR_", ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, "PARAMTOUR_"))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("could not load env variables: %w", err)
	}

	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("could not unmarshal config: %w", err)
	}

	// The validator reads `validate:"..."` tags on struct fields; any
	// missing required field or out-of-range value fails startup.
	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}
