// Package analyzer implements the failure summary pipeline:
// filter, parse, aggregate and sort.
package analyzer

// Key identifies an aggregation group.
//
// Equality is structural: two keys are equal when service presence, service
// and reason all match exactly. An absent service is distinct from "".
type Key struct {
	Service    string
	HasService bool
	Reason     string
}

// NewKey builds a Key from an optional service and a reason.
func NewKey(service *string, reason string) Key {
	if service == nil {
		return Key{Reason: reason}
	}
	return Key{Service: *service, HasService: true, Reason: reason}
}

// Group is one aggregated (service, reason) pair and its failure count.
type Group struct {
	Key   Key
	Count int
}

// Stats describes how the input was reduced by each pipeline stage.
type Stats struct {
	// RecordsRead is the number of input records.
	RecordsRead int

	// RecordsMatched is the number of records that passed the source and
	// level filter.
	RecordsMatched int

	// RecordsParsed is the number of filtered records that yielded a
	// non-empty reason.
	RecordsParsed int

	// Groups is the number of distinct (service, reason) keys.
	Groups int
}

// Result is the sorted output of a pipeline run.
type Result struct {
	// Groups is ordered by count descending. See Sort for tie-breaking.
	Groups []Group

	Stats Stats
}

// Empty reports whether no failures were found.
func (r *Result) Empty() bool {
	return len(r.Groups) == 0
}

// TotalFailures returns the sum of all group counts.
func (r *Result) TotalFailures() int {
	total := 0
	for _, g := range r.Groups {
		total += g.Count
	}
	return total
}
