// Package reports writes the attendance summary to disk.
package reports

import (
	"github.com/username/punchlog/backend/src/models"
)

// Reporter serializes a summary to path.
type Reporter interface {
	Write(summary models.AttendanceSummary, path string) error
}

// Row is one (date, employee) line of the flattened summary.
type Row struct {
	Date         string
	EmpCode      string
	FirstPunch   string
	LastPunch    string
	TotalPunches int
	WorkingHours string
	LateEntry    bool
	EarlyExit    bool
}

// Rows flattens the summary in its own order: by date, then employee.
func Rows(summary models.AttendanceSummary) []Row {
	rows := make([]Row, 0, summary.EntryCount())
	for _, day := range summary {
		for _, e := range day.Entries {
			rows = append(rows, Row{
				Date:         day.Date,
				EmpCode:      e.EmpCode,
				FirstPunch:   e.FirstPunch,
				LastPunch:    e.LastPunch,
				TotalPunches: e.TotalPunches,
				WorkingHours: e.WorkingHours,
				LateEntry:    bool(e.LateEntry),
				EarlyExit:    bool(e.EarlyExit),
			})
		}
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "Yes"
	}
	return "No"
}
