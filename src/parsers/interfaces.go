package parsers

import (
	"io"

	"github.com/username/punchlog/backend/src/parsers/table"
)

// TableParser turns one delimited text file into a rectangular table of text fields.
type TableParser interface {
	Name() string
	Parse(file io.Reader) (table.Table, error)
}
