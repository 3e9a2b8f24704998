package csvio

import (
	"encoding/csv"
	"io"
	"os"
	"path/filepath"

	"pytick/internal/errors"
)

// Write serializes a table as CSV to w, header first.
func Write(w io.Writer, t Table) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(t.Header); err != nil {
		return errors.NewIOError("writing CSV header", err)
	}
	for _, row := range t.Rows {
		if err := cw.Write(row); err != nil {
			return errors.NewIOError("writing CSV row", err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return errors.NewIOError("flushing CSV output", err)
	}
	return nil
}

// WriteFile serializes a table as CSV to the named file, creating parent
// directories as needed.
func WriteFile(path string, t Table) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.NewIOError("creating directory "+dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.NewIOError("creating "+path, err)
	}
	defer f.Close()
	if err := Write(f, t); err != nil {
		return err
	}
	if err := f.Close(); err != nil {
		return errors.NewIOError("closing "+path, err)
	}
	return nil
}
