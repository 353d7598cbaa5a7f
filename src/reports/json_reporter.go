package reports

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/username/punchlog/backend/src/logger"
	"github.com/username/punchlog/backend/src/models"
)

// JSONReporter writes the summary as an object keyed by ISO date, indented by
// two spaces, without escaping HTML or non-ASCII characters.
type JSONReporter struct{}

func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

func (r *JSONReporter) Write(summary models.AttendanceSummary, path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create JSON report '%s': %w", path, err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close JSON report '%s': %w", path, closeErr)
		}
	}()

	w := bufio.NewWriter(file)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(summary); err != nil {
		return fmt.Errorf("failed to encode JSON report: %w", err)
	}
	if err := w.Flush(); err != nil {
		return fmt.Errorf("failed to write JSON report '%s': %w", path, err)
	}

	logger.L.Info("JSON report written", "path", path, "dates", len(summary), "entries", summary.EntryCount())
	return nil
}
