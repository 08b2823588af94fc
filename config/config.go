// Package config loads the host process configuration. Values come from an
// optional TOML file layered under environment variables, so a packaged
// install can ship a config file while a dev shell overrides single values.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"
)

// Config carries the host process settings consumed at bootstrap.
type Config struct {
	// Debug enables debug-level logging and the dev console transport.
	Debug bool `env:"SYNTA_DEBUG" toml:"debug"`
	// LogFormat selects the structured log encoding: "json" or "text".
	LogFormat string `env:"SYNTA_LOG_FORMAT" toml:"log_format"`
	// Version is the application version reported by the System namespace.
	// Normally stamped at build time; the file/env override exists for
	// development builds.
	Version string `env:"SYNTA_VERSION" toml:"version"`
}

// defaults returns the baseline configuration.
func defaults() Config {
	return Config{
		LogFormat: "json",
		Version:   "0.0.0-dev",
	}
}

// Load builds the configuration: defaults, then the TOML file at path (if
// any), then environment variables. An empty path skips the file layer; a
// missing file at a non-empty path is an error so typos fail loudly.
func Load(path string) (*Config, error) {
	cfg := defaults()
	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file %q: %w", path, err)
		}
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &cfg, nil
}
