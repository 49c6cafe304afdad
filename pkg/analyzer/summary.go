package analyzer

import (
	"cmp"
	"slices"
)

// Summary counts failures per Key.
type Summary struct {
	counts map[Key]int
}

// NewSummary creates an empty Summary.
func NewSummary() *Summary {
	return &Summary{counts: make(map[Key]int)}
}

// entry returns the current count for key, inserting zero first if the key
// has not been seen.
func (s *Summary) entry(key Key) int {
	n, ok := s.counts[key]
	if !ok {
		s.counts[key] = 0
	}
	return n
}

// Increment adds one to the count for key.
func (s *Summary) Increment(key Key) {
	s.counts[key] = s.entry(key) + 1
}

// Count returns the count for key, or 0 if absent.
func (s *Summary) Count(key Key) int {
	return s.counts[key]
}

// Len returns the number of distinct keys.
func (s *Summary) Len() int {
	return len(s.counts)
}

// Groups returns every key and count, sorted with Sort.
func (s *Summary) Groups() []Group {
	groups := make([]Group, 0, len(s.counts))
	for k, n := range s.counts {
		groups = append(groups, Group{Key: k, Count: n})
	}
	Sort(groups)
	return groups
}

// Sort orders groups by count descending. Equal counts are ordered by
// service (absent first, then lexicographic) and then by reason, so the
// output does not depend on map iteration order.
func Sort(groups []Group) {
	slices.SortStableFunc(groups, compareGroups)
}

func compareGroups(a, b Group) int {
	if c := cmp.Compare(b.Count, a.Count); c != 0 {
		return c
	}
	if a.Key.HasService != b.Key.HasService {
		if !a.Key.HasService {
			return -1
		}
		return 1
	}
	if c := cmp.Compare(a.Key.Service, b.Key.Service); c != 0 {
		return c
	}
	return cmp.Compare(a.Key.Reason, b.Key.Reason)
}
