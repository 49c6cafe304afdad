package loader

import (
	"os"
	"path/filepath"
	"testing"
)

func TestExpandGlobs_Pattern(t *testing.T) {
	dir := t.TempDir()
	for _, f := range []string{"b.json", "a.json", "c.txt"} {
		if err := os.WriteFile(filepath.Join(dir, f), []byte("[]"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	result, err := ExpandGlobs([]string{filepath.Join(dir, "*.json")})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}

	want := []string{filepath.Join(dir, "a.json"), filepath.Join(dir, "b.json")}
	if len(result) != len(want) {
		t.Fatalf("ExpandGlobs() = %v, want %v", result, want)
	}
	for i := range want {
		if result[i] != want[i] {
			t.Errorf("ExpandGlobs()[%d] = %q, want %q", i, result[i], want[i])
		}
	}
}

func TestExpandGlobs_NoMatchKeptLiteral(t *testing.T) {
	pattern := filepath.Join(t.TempDir(), "missing.json")

	result, err := ExpandGlobs([]string{pattern})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	if len(result) != 1 || result[0] != pattern {
		t.Errorf("ExpandGlobs() = %v, want [%s]", result, pattern)
	}
}

func TestExpandGlobs_Deduplicates(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "logs.json")
	if err := os.WriteFile(file, []byte("[]"), 0644); err != nil {
		t.Fatal(err)
	}

	result, err := ExpandGlobs([]string{file, filepath.Join(dir, "*.json")})
	if err != nil {
		t.Fatalf("ExpandGlobs() error = %v", err)
	}
	if len(result) != 1 {
		t.Errorf("ExpandGlobs() returned %d files, want 1", len(result))
	}
}

func TestExpandGlobs_InvalidPattern(t *testing.T) {
	if _, err := ExpandGlobs([]string{"[invalid"}); err == nil {
		t.Error("ExpandGlobs() expected error for invalid pattern")
	}
}
