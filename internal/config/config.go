// Package config provides configuration loading for lintrun.
//
// Configuration covers ambient settings only (logging). The pipeline itself —
// tools, arguments, order, policies, target path — is compiled in and not
// configurable.
package config

import (
	"fmt"

	"github.com/fenrislabs/lintrun/internal/logging"
)

// Config holds the complete lintrun configuration.
type Config struct {
	Logging logging.Config `koanf:"logging"`
}

// Validate checks configuration for errors.
func (c *Config) Validate() error {
	if err := c.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	return nil
}

// applyDefaults sets default values for missing configuration fields.
func applyDefaults(cfg *Config) {
	defaults := logging.NewDefaultConfig()
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaults.Level
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaults.Format
	}
}
