// backend/src/parsers/parser.go
package parsers

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/username/punchlog/backend/src/logger"
	"github.com/username/punchlog/backend/src/parsers/table"
)

var (
	ErrEmptyInput        = table.ErrEmptyInput
	ErrInconsistentWidth = table.ErrInconsistentWidth
	errNoStrategies      = errors.New("no parsing strategies configured")
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// InvalidColumnCountError reports a table narrower than the column layout needs.
type InvalidColumnCountError struct {
	Got int
}

func (e *InvalidColumnCountError) Error() string {
	return fmt.Sprintf("invalid format: expected %d-%d columns, got %d", MinColumns, MaxColumns, e.Got)
}

// ParseWithFallback tries each strategy in order on file and returns the first
// table that is at least MinColumns wide, together with the strategy name.
//
// When every strategy fails to parse, the last parse error is returned. When
// some strategy parsed but produced too few columns, the widest of those
// tables is returned with an *InvalidColumnCountError.
func ParseWithFallback(file io.ReadSeeker, strategies []TableParser) (table.Table, string, error) {
	if len(strategies) == 0 {
		return table.Table{}, "", errNoStrategies
	}

	var (
		lastErr    error
		narrow     *table.Table
		narrowName string
	)
	for _, p := range strategies {
		if _, err := file.Seek(0, io.SeekStart); err != nil {
			return table.Table{}, "", fmt.Errorf("failed to rewind file: %w", err)
		}
		t, err := p.Parse(skipBOM(file))
		if err != nil {
			logger.L.Debug("Parse strategy failed", "strategy", p.Name(), "error", err)
			lastErr = err
			continue
		}
		if t.Width < MinColumns {
			logger.L.Debug("Parse strategy produced too few columns", "strategy", p.Name(), "columns", t.Width)
			if narrow == nil || t.Width > narrow.Width {
				narrow, narrowName = &t, p.Name()
			}
			continue
		}
		return t, p.Name(), nil
	}

	if narrow != nil {
		return *narrow, narrowName, &InvalidColumnCountError{Got: narrow.Width}
	}
	return table.Table{}, "", lastErr
}

// skipBOM drops a leading UTF-8 byte order mark so it does not end up in the first field.
func skipBOM(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}
	return br
}
