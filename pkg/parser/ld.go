// Package parser provides literal-delimiter (LD) extraction of fields from
// free-text log content.
package parser

import (
	"strings"
	"unicode"
)

// DefaultDelimiter is the literal prefix that introduces a function
// invocation failure reason.
const DefaultDelimiter = "FunctionInvocation failed due to "

// ParseLD extracts the text following a literal delimiter.
//
// The delimiter must appear at the very start of content, byte for byte.
// On a match the remainder is returned with surrounding whitespace trimmed
// (see IsSpace) and ok is true. Empty content, or content that does not begin with the
// delimiter, reports ok == false.
func ParseLD(content, delimiter string) (string, bool) {
	if content == "" {
		return "", false
	}

	rest, found := strings.CutPrefix(content, delimiter)
	if !found {
		return "", false
	}

	return strings.TrimFunc(rest, IsSpace), true
}

// IsSpace reports whether r is trimmed from extracted reasons. It is
// unicode.IsSpace plus the ASCII separators U+001C..U+001F, which
// exported messages may carry as record/unit separators.
func IsSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}

// Extractor binds a delimiter so callers can pass the parsing rule around
// as a value.
type Extractor struct {
	delimiter string
}

// NewExtractor creates an Extractor for the given delimiter.
func NewExtractor(delimiter string) *Extractor {
	return &Extractor{delimiter: delimiter}
}

// Delimiter returns the literal prefix this extractor matches.
func (e *Extractor) Delimiter() string {
	return e.delimiter
}

// Extract applies ParseLD with the bound delimiter. A match whose remainder
// is empty after trimming is reported as no match.
func (e *Extractor) Extract(content string) (string, bool) {
	reason, ok := ParseLD(content, e.delimiter)
	if !ok || reason == "" {
		return "", false
	}
	return reason, true
}
