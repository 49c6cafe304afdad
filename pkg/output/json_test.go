package output

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
)

func TestNewJSONFormatter(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})
	if f == nil {
		t.Fatal("NewJSONFormatter() returned nil")
	}
	if f.Name() != "json" {
		t.Errorf("Name() = %q, want %q", f.Name(), "json")
	}
}

func TestJSONFormatter_Format(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var parsed Report
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}

	if len(parsed.Groups) != 3 {
		t.Fatalf("len(Groups) = %d, want 3", len(parsed.Groups))
	}
	if parsed.Groups[0].Reason != "out of memory" || parsed.Groups[0].Count != 3 {
		t.Errorf("Groups[0] = %+v", parsed.Groups[0])
	}
	if parsed.Groups[2].Service != nil {
		t.Errorf("Groups[2].Service = %v, want null", *parsed.Groups[2].Service)
	}
	if parsed.Metadata.RunID != "test-run" {
		t.Errorf("RunID = %q, want test-run", parsed.Metadata.RunID)
	}
}

func TestJSONFormatter_Format_Empty(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createEmptyReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if string(raw["groups"]) != "[]" {
		t.Errorf("groups = %s, want []", raw["groups"])
	}
}

func TestJSONFormatter_Format_Quiet(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{Quiet: true})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var parsed Summary
	if err := json.Unmarshal(buf.Bytes(), &parsed); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if parsed.TotalFailures != 5 {
		t.Errorf("TotalFailures = %d, want 5", parsed.TotalFailures)
	}
}

func TestJSONFormatter_Format_EmptyNotice(t *testing.T) {
	tests := []struct {
		name  string
		quiet bool
	}{
		{"full", false},
		{"quiet", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewJSONFormatter(FormatOptions{Quiet: tt.quiet})

			var buf bytes.Buffer
			if err := f.Format(context.Background(), createEmptyReport(), &buf); err != nil {
				t.Fatalf("Format() error = %v", err)
			}

			var raw map[string]json.RawMessage
			if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
				t.Fatalf("Output is not valid JSON: %v", err)
			}
			var notice string
			if err := json.Unmarshal(raw["notice"], &notice); err != nil {
				t.Fatalf("notice missing: %v\n%s", err, buf.String())
			}
			if notice != NoResultsMessage {
				t.Errorf("notice = %q, want %q", notice, NoResultsMessage)
			}
		})
	}
}

func TestJSONFormatter_Format_NoNoticeWithGroups(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), createTestReport(), &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if _, ok := raw["notice"]; ok {
		t.Errorf("notice should be omitted when groups exist:\n%s", buf.String())
	}
}

func TestJSONFormatter_Format_NilGroups(t *testing.T) {
	f := NewJSONFormatter(FormatOptions{})

	var buf bytes.Buffer
	if err := f.Format(context.Background(), &Report{}, &buf); err != nil {
		t.Fatalf("Format() error = %v", err)
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("Output is not valid JSON: %v", err)
	}
	if string(raw["groups"]) != "[]" {
		t.Errorf("groups = %s, want []", raw["groups"])
	}
}
