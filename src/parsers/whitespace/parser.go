// backend/src/parsers/whitespace/parser.go
package whitespace

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/username/punchlog/backend/src/parsers/table"
)

// maxLineBytes bounds a single log line.
const maxLineBytes = 1024 * 1024

// WhitespaceParser splits each line on runs of whitespace (spaces or tabs).
type WhitespaceParser struct{}

// NewParser creates a new instance of the WhitespaceParser.
func NewParser() *WhitespaceParser {
	return &WhitespaceParser{}
}

// Name identifies the strategy in logs.
func (p *WhitespaceParser) Name() string { return "whitespace" }

// Parse reads every line of file into a rectangular table.
func (p *WhitespaceParser) Parse(file io.Reader) (table.Table, error) {
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var records [][]string
	for scanner.Scan() {
		records = append(records, strings.Fields(scanner.Text()))
	}
	if err := scanner.Err(); err != nil {
		return table.Table{}, fmt.Errorf("whitespace parser: failed to read lines: %w", err)
	}

	t, err := table.Normalize(records)
	if err != nil {
		return table.Table{}, fmt.Errorf("whitespace parser: %w", err)
	}
	return t, nil
}
