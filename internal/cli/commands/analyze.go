package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/failsum/pkg/analyzer"
	"github.com/ccollicutt/failsum/pkg/config"
	"github.com/ccollicutt/failsum/pkg/loader"
	"github.com/ccollicutt/failsum/pkg/metrics"
	"github.com/ccollicutt/failsum/pkg/output"
)

// Exit codes.
const (
	ExitCodeOK      = 0
	ExitCodeMatches = 1
	ExitCodeError   = 2
)

// ExitCode is set by commands to indicate the result
var ExitCode = ExitCodeOK

// AnalyzeOptions holds command-line options for the analyze command.
type AnalyzeOptions struct {
	ConfigPath  string
	Output      string
	Source      string
	Level       string
	Delimiter   string
	Limit       int
	MetricsFile string
	Verbose     bool
	Quiet       bool
	FailOnMatch bool
}

// NewAnalyzeCommand creates the analyze command.
func NewAnalyzeCommand() *cobra.Command {
	opts := &AnalyzeOptions{}

	cmd := &cobra.Command{
		Use:   "analyze [input...]",
		Short: "Summarize failures by service and reason",
		Long: `Load exported log records, keep the records from the configured source
and level, extract the failure reason following the literal delimiter, and
print failure counts per service and reason, most frequent first.

Inputs are JSON arrays of objects with "log.source", "level", "content" and
an optional "service" field. Files ending in .gz or .zst are decompressed.
Positional inputs (paths or globs) replace the configured inputs.

Exit codes:
  0 - Analysis completed
  1 - Failures found and --fail-on-match was set
  2 - Configuration, load or runtime error`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Configuration file (YAML)")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", config.DefaultOutput, "Output format (text|json)")
	cmd.Flags().StringVar(&opts.Source, "source", analyzer.DefaultSource, "Required log.source value")
	cmd.Flags().StringVar(&opts.Level, "level", analyzer.DefaultLevel, "Required level value")
	cmd.Flags().StringVar(&opts.Delimiter, "delimiter", "", "Literal prefix preceding the failure reason")
	cmd.Flags().IntVar(&opts.Limit, "limit", 0, "Show only the top N groups (0 = all)")
	cmd.Flags().StringVar(&opts.MetricsFile, "metrics-file", "", "Write run metrics to this file in Prometheus text format")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Show pipeline statistics")
	cmd.Flags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Summary only, no details")
	cmd.Flags().BoolVar(&opts.FailOnMatch, "fail-on-match", false, "Exit with code 1 when any failure is found")

	return cmd
}

func runAnalyze(cmd *cobra.Command, args []string, opts *AnalyzeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	runID := uuid.NewString()

	cfg, err := config.Load(ctx, opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	applyFlagOverrides(cmd, args, cfg, opts)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}

	formatter, err := output.NewFormatter(cfg.Output, output.FormatOptions{
		Verbose: opts.Verbose,
		Quiet:   opts.Quiet,
	})
	if err != nil {
		return err
	}

	files, err := loader.ExpandGlobs(cfg.Inputs)
	if err != nil {
		return fmt.Errorf("expanding inputs: %w", err)
	}

	var m *metrics.Handler
	if cfg.MetricsFile != "" {
		m = metrics.New()
	}

	start := time.Now()
	entry := log.WithFields(logrus.Fields{"run_id": runID, "inputs": len(files)})
	entry.Debug("loading records")

	records, err := loader.LoadFiles(ctx, files)
	if err != nil {
		if m != nil {
			m.MarkFailed()
			writeMetrics(entry, m, cfg.MetricsFile)
		}
		return err
	}

	a := analyzer.NewAnalyzer(
		analyzer.WithSource(cfg.Filter.Source),
		analyzer.WithLevel(cfg.Filter.Level),
		analyzer.WithDelimiter(cfg.Delimiter),
		analyzer.WithLimit(cfg.Limit),
	)
	result := a.Analyze(records)

	entry.WithFields(logrus.Fields{
		"records_read":    result.Stats.RecordsRead,
		"records_matched": result.Stats.RecordsMatched,
		"records_parsed":  result.Stats.RecordsParsed,
		"groups":          result.Stats.Groups,
	}).Debug("analysis complete")

	report := output.NewReport(result, output.Metadata{
		RunID:      runID,
		Inputs:     files,
		Source:     cfg.Filter.Source,
		Level:      cfg.Filter.Level,
		Delimiter:  cfg.Delimiter,
		AnalyzedAt: start,
		Duration:   time.Since(start),
	})

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	if m != nil {
		m.Observe(result)
		writeMetrics(entry, m, cfg.MetricsFile)
	}

	if opts.FailOnMatch && report.HasFailures() {
		ExitCode = ExitCodeMatches
	}

	return nil
}

// applyFlagOverrides copies explicitly set flags and positional inputs over
// the loaded configuration.
func applyFlagOverrides(cmd *cobra.Command, args []string, cfg *config.Config, opts *AnalyzeOptions) {
	if len(args) > 0 {
		cfg.Inputs = args
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if flags.Changed("source") {
		cfg.Filter.Source = opts.Source
	}
	if flags.Changed("level") {
		cfg.Filter.Level = opts.Level
	}
	if flags.Changed("delimiter") {
		cfg.Delimiter = opts.Delimiter
	}
	if flags.Changed("limit") {
		cfg.Limit = opts.Limit
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = opts.MetricsFile
	}
}

// writeMetrics writes the metrics file. Errors are logged but don't fail the run.
func writeMetrics(log *logrus.Entry, m *metrics.Handler, path string) {
	if err := m.WriteFile(path); err != nil {
		log.WithError(err).Warn("metrics not written")
		return
	}
	log.WithField("path", path).Debug("metrics written")
}
