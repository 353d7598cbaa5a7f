package logger

import (
	"bufio"
	"fmt"
	"os"
	"time"
)

const errorLogTitle = "Error log for attendance processing"

// ErrorLog is the per-run diagnostic file. It is truncated on open, starts with
// a banner carrying the UTC run time and is append-only afterwards.
type ErrorLog struct {
	file  *os.File
	w     *bufio.Writer
	lines int
}

// OpenErrorLog creates (or truncates) path and writes the run banner.
func OpenErrorLog(path string, runAt time.Time) (*ErrorLog, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open error log '%s': %w", path, err)
	}
	el := &ErrorLog{file: f, w: bufio.NewWriter(f)}
	if _, err := fmt.Fprintf(el.w, "%s\nRun at: %sZ\n\n", errorLogTitle, runAt.UTC().Format("2006-01-02T15:04:05.000000")); err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to write error log banner to '%s': %w", path, err)
	}
	return el, nil
}

// Write appends raw bytes; it lets validators and processors take a plain io.Writer.
func (e *ErrorLog) Write(p []byte) (int, error) {
	for _, b := range p {
		if b == '\n' {
			e.lines++
		}
	}
	return e.w.Write(p)
}

// Lines reports how many lines were appended after the banner.
func (e *ErrorLog) Lines() int {
	return e.lines
}

// Close flushes buffered diagnostics and closes the file.
func (e *ErrorLog) Close() error {
	flushErr := e.w.Flush()
	closeErr := e.file.Close()
	if flushErr != nil {
		return fmt.Errorf("failed to flush error log: %w", flushErr)
	}
	return closeErr
}
