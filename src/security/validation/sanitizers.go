package validation

import (
	"strings"
	"unicode"
)

// formulaPrefixes start a formula (or a DDE payload) in common spreadsheet software.
const formulaPrefixes = "=+-@\t\r"

// SanitizeForFormulaInjection quotes a cell value that would otherwise be read as a formula.
func SanitizeForFormulaInjection(s string) string {
	trimmed := strings.TrimSpace(s)
	if trimmed != "" && strings.ContainsRune(formulaPrefixes, rune(trimmed[0])) {
		return "'" + s
	}
	return s
}

// SanitizeCell prepares a text value for a spreadsheet cell: control characters
// are dropped and formula prefixes are neutralized.
func SanitizeCell(s string) string {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsPrint(r) || r == ' ' {
			return r
		}
		return -1
	}, s)
	return SanitizeForFormulaInjection(cleaned)
}
