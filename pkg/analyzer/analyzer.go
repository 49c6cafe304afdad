package analyzer

import (
	"github.com/ccollicutt/failsum/pkg/loader"
	"github.com/ccollicutt/failsum/pkg/parser"
)

// Default filter values.
const (
	DefaultSource = "dql-exercise"
	DefaultLevel  = "ERROR"
)

// Analyzer runs the filter, parse, aggregate and sort pipeline over a set
// of records.
type Analyzer struct {
	source    string
	level     string
	extractor *parser.Extractor
	limit     int
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithSource sets the required "log.source" value.
func WithSource(source string) Option {
	return func(a *Analyzer) {
		a.source = source
	}
}

// WithLevel sets the required level value.
func WithLevel(level string) Option {
	return func(a *Analyzer) {
		a.level = level
	}
}

// WithDelimiter sets the literal prefix that introduces the failure reason.
func WithDelimiter(delimiter string) Option {
	return func(a *Analyzer) {
		a.extractor = parser.NewExtractor(delimiter)
	}
}

// WithLimit keeps only the top n groups. Zero or less keeps all groups.
func WithLimit(n int) Option {
	return func(a *Analyzer) {
		a.limit = n
	}
}

// NewAnalyzer creates an Analyzer with the default filter and delimiter,
// modified by opts.
func NewAnalyzer(opts ...Option) *Analyzer {
	a := &Analyzer{
		source:    DefaultSource,
		level:     DefaultLevel,
		extractor: parser.NewExtractor(parser.DefaultDelimiter),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Analyze summarizes failures in records. Records are not modified.
func (a *Analyzer) Analyze(records []loader.LogRecord) *Result {
	summary := NewSummary()
	stats := Stats{RecordsRead: len(records)}

	for i := range records {
		rec := &records[i]

		if !a.matches(rec) {
			continue
		}
		stats.RecordsMatched++

		reason, ok := a.extractor.Extract(rec.Content)
		if !ok {
			continue
		}
		stats.RecordsParsed++

		summary.Increment(NewKey(rec.Service, reason))
	}

	groups := summary.Groups()
	stats.Groups = len(groups)

	if a.limit > 0 && len(groups) > a.limit {
		groups = groups[:a.limit]
	}

	return &Result{Groups: groups, Stats: stats}
}

func (a *Analyzer) matches(rec *loader.LogRecord) bool {
	return rec.Source == a.source && rec.Level == a.level
}
