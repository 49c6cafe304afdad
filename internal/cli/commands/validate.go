package commands

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/failsum/pkg/config"
	"github.com/ccollicutt/failsum/pkg/loader"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a configuration file",
		Long: `Validate a FailSum configuration file without running analysis.

Checks:
  - YAML syntax
  - Required fields (inputs, delimiter, filter)
  - Output format and limit
  - Input file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	configPath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	log, err := newLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Validating %s...\n", configPath)

	cfg, err := config.Load(ctx, configPath)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	fmt.Fprintf(out, "\nConfiguration valid!\n")
	fmt.Fprintf(out, "  Inputs:    %d pattern(s)\n", len(cfg.Inputs))
	fmt.Fprintf(out, "  Delimiter: %q\n", cfg.Delimiter)
	fmt.Fprintf(out, "  Filter:    log.source == %q, level == %q\n", cfg.Filter.Source, cfg.Filter.Level)
	fmt.Fprintf(out, "  Output:    %s\n", cfg.Output)

	files, err := loader.ExpandGlobs(cfg.Inputs)
	if err != nil {
		log.WithError(err).Warn("error expanding input patterns")
		return nil
	}

	fmt.Fprintf(out, "\nInput files:\n")
	for _, f := range files {
		if _, err := os.Stat(f); err != nil {
			log.WithField("path", f).Warn("input file not found")
			fmt.Fprintf(out, "  - %s (missing)\n", f)
			continue
		}
		fmt.Fprintf(out, "  - %s\n", f)
	}

	return nil
}
