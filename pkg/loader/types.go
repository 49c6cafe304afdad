// Package loader reads exported log records into memory.
package loader

// LogRecord is a single exported log entry.
//
// Records are created by the loader and treated as read-only afterwards.
type LogRecord struct {
	// Source is the "log.source" attribute.
	Source string

	// Level is the severity, e.g. "ERROR".
	Level string

	// Content is the free-text message.
	Content string

	// Service is the originating component. Nil when the field is missing
	// or null.
	Service *string
}

// ServiceName returns the service and whether it was present.
func (r *LogRecord) ServiceName() (string, bool) {
	if r.Service == nil {
		return "", false
	}
	return *r.Service, true
}
