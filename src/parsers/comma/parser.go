// backend/src/parsers/comma/parser.go
package comma

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/username/punchlog/backend/src/parsers/table"
)

// CommaParser reads comma-separated logs. Fields are kept as text; quoting
// follows encoding/csv with lazy quotes.
type CommaParser struct{}

func NewParser() *CommaParser {
	return &CommaParser{}
}

func (p *CommaParser) Name() string { return "comma" }

func (p *CommaParser) Parse(file io.Reader) (table.Table, error) {
	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	records, err := reader.ReadAll()
	if err != nil {
		return table.Table{}, fmt.Errorf("comma parser: failed to read all CSV records: %w", err)
	}

	t, err := table.Normalize(records)
	if err != nil {
		return table.Table{}, fmt.Errorf("comma parser: %w", err)
	}
	return t, nil
}
