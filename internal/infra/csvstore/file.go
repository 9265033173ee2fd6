// Package csvstore persists hosts, guests and reservations as CSV files.
//
// Every mutation is a whole-file rewrite: records are read, changed in memory,
// written to a sibling ".tmp" file and renamed over the original, so readers
// never observe a half-written file.
package csvstore

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/staybook/internal/domain"
)

// readRecords returns the data rows of a CSV file (header skipped).
// A missing file yields no rows and no error.
func readRecords(op, path string, width int) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, domain.DataAccess(op, path, err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = width
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, domain.DataAccess(op, path, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[1:], nil
}

// writeRecords replaces path with header+rows. Atomic-ish write: tmp then rename.
func writeRecords(op, path string, header []string, rows [][]string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return domain.DataAccess(op+".mkdir", filepath.Dir(path), err)
	}

	tmp := path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return domain.DataAccess(op+".write", tmp, err)
	}

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return domain.DataAccess(op+".write", tmp, err)
	}
	if err := w.WriteAll(rows); err != nil {
		_ = f.Close()
		_ = os.Remove(tmp)
		return domain.DataAccess(op+".write", tmp, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return domain.DataAccess(op+".write", tmp, err)
	}

	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return domain.DataAccess(op+".rename", path, err)
	}
	return nil
}

// malformed reports a row that cannot be decoded. Line numbers are 1-based and
// count the header.
func malformed(op, path string, row int, err error) error {
	return domain.DataAccess(op, path, fmt.Errorf("line %d: %w", row+2, err))
}
