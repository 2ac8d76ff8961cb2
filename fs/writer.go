// Package fs provides file-based persistence for wiki records.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/wikidex/wikidex"
)

// Ensure Writer implements wikidex.RecordWriter at compile time.
var _ wikidex.RecordWriter = (*Writer)(nil)

// Writer persists records as a human-readable JSON file. Writes are
// atomic: content goes to a temporary file in the same directory which
// is then renamed over the target, so a reader never observes a
// truncated file during a scheduled refresh.
type Writer struct {
	path string
}

// NewWriter creates a new Writer targeting the given file path.
func NewWriter(path string) *Writer {
	return &Writer{path: path}
}

// WriteRecords writes the full record set to the target file.
func (w *Writer) WriteRecords(ctx context.Context, recs []*wikidex.Record) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := MarshalRecords(recs)
	if err != nil {
		return err
	}

	dir := filepath.Dir(w.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(w.path)+".tmp")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), w.path)
}

// MarshalRecords serializes records as indented JSON. HTML escaping is
// disabled so non-ASCII wiki content stays readable in the output file.
func MarshalRecords(recs []*wikidex.Record) ([]byte, error) {
	if recs == nil {
		recs = []*wikidex.Record{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(recs); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ReadRecords loads records previously written by a Writer.
func ReadRecords(path string) ([]*wikidex.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var recs []*wikidex.Record
	if err := json.Unmarshal(data, &recs); err != nil {
		return nil, err
	}
	return recs, nil
}
