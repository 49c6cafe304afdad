package loader

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandGlobs resolves input paths and glob patterns into a sorted,
// deduplicated list of files. A pattern with no matches is kept as a literal
// path so that loading it reports a proper not-found error.
func ExpandGlobs(patterns []string) ([]string, error) {
	seen := make(map[string]struct{})
	var files []string

	add := func(p string) {
		if _, ok := seen[p]; ok {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, pattern := range patterns {
		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid input pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			add(pattern)
			continue
		}
		for _, m := range matches {
			add(m)
		}
	}

	sort.Strings(files)

	return files, nil
}
