// Package config provides configuration loading and validation for FailSum.
package config

// Config is the root configuration structure loaded from YAML.
type Config struct {
	// Inputs lists record files or glob patterns, loaded in sorted order.
	Inputs []string `yaml:"inputs"`

	// Delimiter is the literal prefix that introduces a failure reason.
	Delimiter string `yaml:"delimiter"`

	// Filter selects the records to summarize.
	Filter FilterConfig `yaml:"filter"`

	// Output is the report format (text or json).
	Output string `yaml:"output,omitempty"`

	// Limit keeps only the top N groups. Zero means all.
	Limit int `yaml:"limit,omitempty"`

	// MetricsFile, if set, receives run metrics in Prometheus text format.
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// FilterConfig defines exact-match record filters.
type FilterConfig struct {
	Source string `yaml:"source"`
	Level  string `yaml:"level"`
}

// OutputFormat names a report format.
type OutputFormat string

const (
	OutputText OutputFormat = "text"
	OutputJSON OutputFormat = "json"
)
