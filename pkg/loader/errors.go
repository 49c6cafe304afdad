package loader

import "fmt"

// LoadError reports an input that could not be read or decoded.
// It is fatal for the run.
type LoadError struct {
	// Path is the input that failed. Empty for in-memory data.
	Path string

	// Err is the underlying cause.
	Err error
}

func (e *LoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading records: %v", e.Err)
	}
	return fmt.Sprintf("loading records from %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
