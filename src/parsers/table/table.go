// Package table holds the rectangular text table every delimiter strategy produces.
package table

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrEmptyInput means the source had no non-blank rows.
	ErrEmptyInput = errors.New("no columns to parse from file")
	// ErrInconsistentWidth means a row had more fields than the first row.
	ErrInconsistentWidth = errors.New("inconsistent number of fields")
)

// Table is a header-less text table. Every row has exactly Width fields.
type Table struct {
	Rows  [][]string
	Width int
}

// Normalize builds a Table from raw records. Blank records are dropped, the
// first remaining record fixes the width, shorter records are padded with
// empty fields and longer ones fail with ErrInconsistentWidth.
func Normalize(records [][]string) (Table, error) {
	var t Table
	for _, rec := range records {
		if isBlank(rec) {
			continue
		}
		if t.Width == 0 {
			t.Width = len(rec)
		}
		if len(rec) > t.Width {
			return Table{}, fmt.Errorf("%w: expected %d fields in row %d, saw %d", ErrInconsistentWidth, t.Width, len(t.Rows)+1, len(rec))
		}
		row := make([]string, t.Width)
		copy(row, rec)
		t.Rows = append(t.Rows, row)
	}
	if len(t.Rows) == 0 {
		return Table{}, ErrEmptyInput
	}
	return t, nil
}

func isBlank(rec []string) bool {
	for _, f := range rec {
		if strings.TrimSpace(f) != "" {
			return false
		}
	}
	return true
}
