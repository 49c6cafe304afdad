package output

import (
	"time"

	"github.com/ccollicutt/failsum/pkg/analyzer"
)

func strPtr(s string) *string {
	return &s
}

func createTestResult() *analyzer.Result {
	return &analyzer.Result{
		Groups: []analyzer.Group{
			{Key: analyzer.NewKey(strPtr("svc2"), "out of memory"), Count: 3},
			{Key: analyzer.NewKey(strPtr("svc1"), "timeout"), Count: 1},
			{Key: analyzer.NewKey(nil, "throttled"), Count: 1},
		},
		Stats: analyzer.Stats{
			RecordsRead:    10,
			RecordsMatched: 7,
			RecordsParsed:  5,
			Groups:         3,
		},
	}
}

func createTestReport() *Report {
	return NewReport(createTestResult(), Metadata{
		RunID:      "test-run",
		Inputs:     []string{"logs/sample_logs.json"},
		Source:     "dql-exercise",
		Level:      "ERROR",
		AnalyzedAt: time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC),
		Duration:   25 * time.Millisecond,
	})
}

func createEmptyReport() *Report {
	return NewReport(&analyzer.Result{}, Metadata{})
}
