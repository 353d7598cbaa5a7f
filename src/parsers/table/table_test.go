package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("pads short rows and skips blank ones", func(t *testing.T) {
		got, err := Normalize([][]string{
			{"001", "John", "Doe", "1700000000", "DeviceA"},
			{},
			{" ", ""},
			{"002", "Jane"},
		})
		require.NoError(t, err)
		assert.Equal(t, 5, got.Width)
		assert.Equal(t, [][]string{
			{"001", "John", "Doe", "1700000000", "DeviceA"},
			{"002", "Jane", "", "", ""},
		}, got.Rows)
	})

	t.Run("longer row than the first fails", func(t *testing.T) {
		_, err := Normalize([][]string{{"a", "b"}, {"a", "b", "c"}})
		assert.ErrorIs(t, err, ErrInconsistentWidth)
	})

	t.Run("no rows", func(t *testing.T) {
		_, err := Normalize([][]string{{""}, nil})
		assert.ErrorIs(t, err, ErrEmptyInput)
	})
}
