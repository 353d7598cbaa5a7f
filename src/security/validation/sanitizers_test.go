package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeCell(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"001", "001"},
		{"=SUM(A1:A2)", "'=SUM(A1:A2)"},
		{"+1", "'+1"},
		{"@cmd", "'@cmd"},
		{"  -2", "'  -2"},
		{"a\x00b", "ab"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, SanitizeCell(tt.in), "input %q", tt.in)
	}
}
