package config

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file. An empty path skips the
// file and starts from DefaultConfig.
func Load(_ context.Context, path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}

		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.applyDefaults()

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate checks a configuration for errors. It does not modify cfg.
func Validate(cfg *Config) error {
	if len(cfg.Inputs) == 0 {
		return errors.New("inputs: at least one input is required")
	}
	for i, in := range cfg.Inputs {
		if in == "" {
			return fmt.Errorf("inputs[%d]: must not be empty", i)
		}
	}

	if cfg.Delimiter == "" {
		return errors.New("delimiter: must not be empty")
	}

	if cfg.Filter.Source == "" {
		return errors.New("filter.source: must not be empty")
	}
	if cfg.Filter.Level == "" {
		return errors.New("filter.level: must not be empty")
	}

	switch OutputFormat(cfg.Output) {
	case OutputText, OutputJSON:
	default:
		return fmt.Errorf("output: invalid format %q (must be text or json)", cfg.Output)
	}

	if cfg.Limit < 0 {
		return fmt.Errorf("limit: must be >= 0, got %d", cfg.Limit)
	}

	return nil
}
