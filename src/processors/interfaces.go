package processors

import (
	"io"

	"github.com/username/punchlog/backend/src/models"
)

// RecordProcessor validates, converts and de-duplicates raw rows. Diagnostics go to sink.
type RecordProcessor interface {
	Process(rows []models.RawRow, sink io.Writer) []models.CleanedRecord
	Stats() ProcessStats
}

// Aggregator turns cleaned records into the per-day attendance summary.
type Aggregator interface {
	Process(records []models.CleanedRecord) models.AttendanceSummary
}
