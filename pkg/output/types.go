// Package output provides formatting of failure summaries.
package output

import (
	"time"

	"github.com/ccollicutt/failsum/pkg/analyzer"
)

// NoResultsMessage is printed when no failures match.
const NoResultsMessage = "No matching failures found."

// Report is the complete output of a run.
type Report struct {
	Summary  Summary    `json:"summary"`
	Groups   []GroupRow `json:"groups"`
	Metadata Metadata   `json:"metadata"`

	// Notice is NoResultsMessage when no group was found.
	Notice string `json:"notice,omitempty"`
}

// Summary provides aggregate statistics.
type Summary struct {
	RecordsRead    int `json:"records_read"`
	RecordsMatched int `json:"records_matched"`
	RecordsParsed  int `json:"records_parsed"`
	Groups         int `json:"groups"`
	TotalFailures  int `json:"total_failures"`
}

// GroupRow is one reported (service, reason) group. Service is nil when
// the records carried no service.
type GroupRow struct {
	Service *string `json:"service"`
	Reason  string  `json:"reason"`
	Count   int     `json:"count"`
}

// ServiceLabel returns the service name for display.
func (g GroupRow) ServiceLabel() string {
	if g.Service == nil {
		return "<none>"
	}
	return *g.Service
}

// Metadata provides context about the run.
type Metadata struct {
	RunID      string        `json:"run_id,omitempty"`
	Inputs     []string      `json:"inputs,omitempty"`
	Source     string        `json:"source,omitempty"`
	Level      string        `json:"level,omitempty"`
	Delimiter  string        `json:"delimiter,omitempty"`
	AnalyzedAt time.Time     `json:"analyzed_at"`
	Duration   time.Duration `json:"duration_ns"`
}

// NewReport creates a Report from a pipeline result.
func NewReport(result *analyzer.Result, meta Metadata) *Report {
	report := &Report{
		Groups:   make([]GroupRow, 0, len(result.Groups)),
		Metadata: meta,
		Summary: Summary{
			RecordsRead:    result.Stats.RecordsRead,
			RecordsMatched: result.Stats.RecordsMatched,
			RecordsParsed:  result.Stats.RecordsParsed,
			Groups:         result.Stats.Groups,
			TotalFailures:  result.TotalFailures(),
		},
	}

	for _, g := range result.Groups {
		row := GroupRow{Reason: g.Key.Reason, Count: g.Count}
		if g.Key.HasService {
			svc := g.Key.Service
			row.Service = &svc
		}
		report.Groups = append(report.Groups, row)
	}

	if !report.HasFailures() {
		report.Notice = NoResultsMessage
	}

	return report
}

// HasFailures returns true if any group was reported.
func (r *Report) HasFailures() bool {
	return len(r.Groups) > 0
}
