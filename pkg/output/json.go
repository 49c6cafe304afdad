package output

import (
	"context"
	"encoding/json"
	"io"
)

// JSONFormatter formats reports as JSON.
type JSONFormatter struct {
	opts FormatOptions
}

// quietReport is the quiet-mode document: summary fields at the top level
// plus the empty-result notice, if any.
type quietReport struct {
	Summary
	Notice string `json:"notice,omitempty"`
}

// NewJSONFormatter creates a new JSON formatter with the given options.
func NewJSONFormatter(opts FormatOptions) *JSONFormatter {
	return &JSONFormatter{opts: opts}
}

// Name returns the format name.
func (f *JSONFormatter) Name() string {
	return "json"
}

// Format writes the report as one indented JSON document. Groups are
// always an array, empty when nothing matched.
func (f *JSONFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)

	if f.opts.Quiet {
		return enc.Encode(quietReport{Summary: report.Summary, Notice: report.Notice})
	}

	doc := *report
	if doc.Groups == nil {
		doc.Groups = []GroupRow{}
	}
	return enc.Encode(&doc)
}
