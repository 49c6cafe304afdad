package config

import (
	"os"
	"strings"

	"github.com/ccollicutt/failsum/pkg/analyzer"
	"github.com/ccollicutt/failsum/pkg/parser"
)

// Default values for configuration.
const (
	DefaultInput  = "logs/sample_logs.json"
	DefaultOutput = string(OutputText)
)

// Environment variable names.
const (
	EnvInputs    = "FAILSUM_INPUTS"
	EnvDelimiter = "FAILSUM_DELIMITER"
)

// DefaultConfig returns a configuration with the built-in input, filter
// and delimiter.
func DefaultConfig() *Config {
	return &Config{
		Inputs:    []string{DefaultInput},
		Delimiter: parser.DefaultDelimiter,
		Filter: FilterConfig{
			Source: analyzer.DefaultSource,
			Level:  analyzer.DefaultLevel,
		},
		Output: DefaultOutput,
	}
}

// applyDefaults fills fields a config file left explicitly empty.
func (c *Config) applyDefaults() {
	if c.Output == "" {
		c.Output = DefaultOutput
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() {
	if v := os.Getenv(EnvInputs); v != "" {
		var inputs []string
		for _, p := range strings.Split(v, ",") {
			if p = strings.TrimSpace(p); p != "" {
				inputs = append(inputs, p)
			}
		}
		if len(inputs) > 0 {
			c.Inputs = inputs
		}
	}

	// The delimiter keeps its trailing space, so it is not trimmed.
	if v := os.Getenv(EnvDelimiter); v != "" {
		c.Delimiter = v
	}
}
