package output

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats reports as human-readable text.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	if !report.HasFailures() {
		if _, err := fmt.Fprintln(w, NoResultsMessage); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "FailSum: %d groups, %d failures, %d records read\n",
		len(report.Groups),
		report.Summary.TotalFailures,
		report.Summary.RecordsRead)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	var b strings.Builder

	b.WriteString("\nFailures by service and reason\n")
	b.WriteString(strings.Repeat("-", 40))
	b.WriteString("\n")

	if !report.HasFailures() {
		b.WriteString(NoResultsMessage + "\n")
	}

	for _, g := range report.Groups {
		fmt.Fprintf(&b, "Service: %-20s | Reason: %-15s | Failures: %d\n",
			g.ServiceLabel(), g.Reason, g.Count)
	}

	if f.opts.Verbose {
		f.formatStats(report, &b)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TextFormatter) formatStats(report *Report, b *strings.Builder) {
	s := report.Summary
	b.WriteString("\n---\n")
	fmt.Fprintf(b, "Records read: %d, matched filter: %d, parsed: %d\n",
		s.RecordsRead, s.RecordsMatched, s.RecordsParsed)
	fmt.Fprintf(b, "Groups: %d, total failures: %d\n", s.Groups, s.TotalFailures)

	if len(report.Metadata.Inputs) > 0 {
		fmt.Fprintf(b, "Inputs: %s\n", strings.Join(report.Metadata.Inputs, ", "))
	}
	fmt.Fprintf(b, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
}
