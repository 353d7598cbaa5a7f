package logger

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error_log.txt")
	require.NoError(t, os.WriteFile(path, []byte("stale content from a previous run\n"), 0o644))

	runAt := time.Date(2024, 3, 1, 8, 5, 9, 123456000, time.FixedZone("X", 3600))
	el, err := OpenErrorLog(path, runAt)
	require.NoError(t, err)

	fmt.Fprintf(el, "File:%s -> Row:%d -> Duplicate data\n", "a.log", 2)
	_, err = el.Write([]byte("File-Name: a.log: ROW: 3. Missing device\n"))
	require.NoError(t, err)
	assert.Equal(t, 2, el.Lines())
	require.NoError(t, el.Close())

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t,
		"Error log for attendance processing\n"+
			"Run at: 2024-03-01T07:05:09.123456Z\n\n"+
			"File:a.log -> Row:2 -> Duplicate data\n"+
			"File-Name: a.log: ROW: 3. Missing device\n",
		string(content))
}

func TestOpenErrorLog_MissingDirectory(t *testing.T) {
	_, err := OpenErrorLog(filepath.Join(t.TempDir(), "missing", "error_log.txt"), time.Now())
	assert.Error(t, err)
}
