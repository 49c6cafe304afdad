package loader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/valyala/fastjson"
)

// Field names in the exported record objects.
const (
	FieldSource  = "log.source"
	FieldLevel   = "level"
	FieldContent = "content"
	FieldService = "service"
)

// Load reads a JSON array of log records from path.
//
// Files ending in .gz are gunzipped and files ending in .zst or .zstd are
// zstd-decoded before parsing. Any failure is returned as a *LoadError.
func Load(ctx context.Context, path string) ([]LogRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := readFile(path)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	records, err := decode(data)
	if err != nil {
		return nil, &LoadError{Path: path, Err: err}
	}

	return records, nil
}

// LoadFiles loads each path in order and concatenates the records.
// The first failure aborts the whole load.
func LoadFiles(ctx context.Context, paths []string) ([]LogRecord, error) {
	var all []LogRecord
	for _, path := range paths {
		records, err := Load(ctx, path)
		if err != nil {
			return nil, err
		}
		all = append(all, records...)
	}
	return all, nil
}

// Decode parses an in-memory JSON array of log records.
func Decode(data []byte) ([]LogRecord, error) {
	records, err := decode(data)
	if err != nil {
		return nil, &LoadError{Err: err}
	}
	return records, nil
}

func readFile(path string) ([]byte, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided input paths are expected
	if err != nil {
		return nil, err
	}
	defer f.Close()

	r, closeFn, err := decompressor(path, f)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading: %w", err)
	}
	return data, nil
}

// decompressor wraps r according to the file extension.
func decompressor(path string, r io.Reader) (io.Reader, func(), error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("opening gzip stream: %w", err)
		}
		return zr, func() { _ = zr.Close() }, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, nil, fmt.Errorf("opening zstd stream: %w", err)
		}
		return zr, zr.Close, nil
	default:
		return r, func() {}, nil
	}
}

func decode(data []byte) ([]LogRecord, error) {
	var p fastjson.Parser
	v, err := p.ParseBytes(data)
	if err != nil {
		return nil, fmt.Errorf("invalid JSON: %w", err)
	}

	if v.Type() != fastjson.TypeArray {
		return nil, fmt.Errorf("expected a JSON array of records, got %s", v.Type())
	}

	items, err := v.Array()
	if err != nil {
		return nil, err
	}

	records := make([]LogRecord, 0, len(items))
	for i, item := range items {
		if item.Type() != fastjson.TypeObject {
			return nil, fmt.Errorf("record %d: expected object, got %s", i, item.Type())
		}
		records = append(records, recordFromValue(item))
	}

	return records, nil
}

func recordFromValue(v *fastjson.Value) LogRecord {
	rec := LogRecord{
		Source:  stringField(v, FieldSource),
		Level:   stringField(v, FieldLevel),
		Content: stringField(v, FieldContent),
	}

	if sv := v.Get(FieldService); sv != nil && sv.Type() == fastjson.TypeString {
		s := string(sv.GetStringBytes())
		rec.Service = &s
	}

	return rec
}

// stringField returns the string value of a top-level key. Missing keys and
// non-string values yield "".
func stringField(v *fastjson.Value, key string) string {
	f := v.Get(key)
	if f == nil || f.Type() != fastjson.TypeString {
		return ""
	}
	return string(f.GetStringBytes())
}

// IsLoadError reports whether err is, or wraps, a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
