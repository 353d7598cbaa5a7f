// backend/src/parsers/factory.go
package parsers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/username/punchlog/backend/src/parsers/comma"
	"github.com/username/punchlog/backend/src/parsers/whitespace"
)

const (
	DelimiterWhitespace = "whitespace"
	DelimiterComma      = "comma"
)

// ErrUnknownDelimiter is returned by GetParser for an unsupported strategy name.
var ErrUnknownDelimiter = errors.New("no parser available for delimiter")

func GetParser(delimiter string) (TableParser, error) {
	switch delimiter {
	case DelimiterWhitespace:
		return whitespace.NewParser(), nil
	case DelimiterComma:
		return comma.NewParser(), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownDelimiter, delimiter)
	}
}

// DefaultStrategyOrder is the delimiter chain used when none is configured.
var DefaultStrategyOrder = []string{DelimiterWhitespace, DelimiterComma}

// StrategiesFor resolves delimiter names to parsers, keeping their order.
func StrategiesFor(delimiters []string) ([]TableParser, error) {
	if len(delimiters) == 0 {
		return nil, errNoStrategies
	}
	strategies := make([]TableParser, 0, len(delimiters))
	for _, d := range delimiters {
		p, err := GetParser(strings.ToLower(strings.TrimSpace(d)))
		if err != nil {
			return nil, err
		}
		strategies = append(strategies, p)
	}
	return strategies, nil
}

// DefaultStrategies returns the parsers for DefaultStrategyOrder, primary first.
func DefaultStrategies() []TableParser {
	strategies, err := StrategiesFor(DefaultStrategyOrder)
	if err != nil {
		panic(err)
	}
	return strategies
}
