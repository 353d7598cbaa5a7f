package reports

import (
	"fmt"

	"github.com/username/punchlog/backend/src/logger"
	"github.com/username/punchlog/backend/src/models"
	"github.com/username/punchlog/backend/src/security/validation"
	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// XLSXHeaders is the header row of the spreadsheet report.
var XLSXHeaders = []interface{}{
	"Date", "Emp Code", "First Punch", "Last Punch", "Total Punches", "Working Hours", "Late Entry", "Early Exit",
}

// XLSXReporter writes one sheet with a header row and one row per (date, employee).
type XLSXReporter struct {
	sheetName string
}

// NewXLSXReporter returns a reporter writing to sheetName, or Sheet1 when empty.
func NewXLSXReporter(sheetName string) *XLSXReporter {
	if sheetName == "" {
		sheetName = defaultSheetName
	}
	return &XLSXReporter{sheetName: sheetName}
}

// Write does nothing when the summary has no entries. Text cells are sanitized
// since the summary may come from a decoded JSON report rather than the loader.
func (r *XLSXReporter) Write(summary models.AttendanceSummary, path string) error {
	rows := Rows(summary)
	if len(rows) == 0 {
		logger.L.Info("No attendance rows, spreadsheet not written", "path", path)
		return nil
	}

	f := excelize.NewFile()
	defer f.Close()

	if r.sheetName != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, r.sheetName); err != nil {
			return fmt.Errorf("failed to name sheet '%s': %w", r.sheetName, err)
		}
	}

	if err := f.SetSheetRow(r.sheetName, "A1", &XLSXHeaders); err != nil {
		return fmt.Errorf("failed to write spreadsheet header: %w", err)
	}
	if style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}}); err == nil {
		if err := f.SetRowStyle(r.sheetName, 1, 1, style); err != nil {
			logger.L.Warn("Failed to style spreadsheet header", "error", err)
		}
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return fmt.Errorf("failed to address spreadsheet row %d: %w", i+2, err)
		}
		values := []interface{}{
			validation.SanitizeCell(row.Date),
			validation.SanitizeCell(row.EmpCode),
			validation.SanitizeCell(row.FirstPunch),
			validation.SanitizeCell(row.LastPunch),
			row.TotalPunches,
			validation.SanitizeCell(row.WorkingHours),
			yesNo(row.LateEntry),
			yesNo(row.EarlyExit),
		}
		if err := f.SetSheetRow(r.sheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write spreadsheet row %d: %w", i+2, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save spreadsheet '%s': %w", path, err)
	}
	logger.L.Info("Spreadsheet report written", "path", path, "rows", len(rows))
	return nil
}
