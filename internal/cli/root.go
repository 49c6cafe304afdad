// Package cli provides the command-line interface for FailSum.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/failsum/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	return run(os.Args[1:], os.Stdout, os.Stderr)
}

// run executes the root command with the given arguments and maps the
// outcome to an exit code.
func run(args []string, stdout, stderr io.Writer) int {
	commands.ExitCode = commands.ExitCodeOK

	rootCmd := NewRootCommand()
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.Execute(); err != nil {
		// SilenceErrors prevents Cobra from printing this itself
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
		return commands.ExitCodeError
	}
	return commands.ExitCode
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "failsum",
		Short: "Summarize function invocation failures in exported logs",
		Long: `FailSum reads exported structured log records, keeps the error records
from one log source, extracts the failure reason that follows a literal
prefix in each message, and counts failures per service and reason.

It is the offline equivalent of:

  fetch logs
  | filter log.source == "dql-exercise"
  | filter level == "ERROR"
  | parse content, "FunctionInvocation failed due to " LD reason
  | summarize failures = count(), by: { service, reason }
  | sort failures desc`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&commands.LogLevel, "log-level", commands.LogLevel,
		"Diagnostic log level on stderr (debug|info|warn|error)")

	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
