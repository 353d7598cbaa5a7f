package reports

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/username/punchlog/backend/src/models"
	"github.com/xuri/excelize/v2"
)

func sampleSummary() models.AttendanceSummary {
	return models.AttendanceSummary{
		{Date: "2023-11-14", Entries: []models.DailySummaryEntry{
			{EmpCode: "001", FirstPunch: "09:00", LastPunch: "13:30", TotalPunches: 3, WorkingHours: "03:30", LateEntry: false, EarlyExit: true},
		}},
		{Date: "2023-11-15", Entries: []models.DailySummaryEntry{
			{EmpCode: "10", FirstPunch: "09:45", LastPunch: "16:00", TotalPunches: 2, WorkingHours: "05:15", LateEntry: true, EarlyExit: true},
			{EmpCode: "9", FirstPunch: "08:00", LastPunch: "18:00", TotalPunches: 2, WorkingHours: "09:00"},
		}},
	}
}

func TestRows(t *testing.T) {
	rows := Rows(sampleSummary())
	require.Len(t, rows, 3)
	assert.Equal(t, Row{Date: "2023-11-15", EmpCode: "10", FirstPunch: "09:45", LastPunch: "16:00", TotalPunches: 2, WorkingHours: "05:15", LateEntry: true, EarlyExit: true}, rows[1])
	assert.Empty(t, Rows(nil))
}

func TestJSONReporter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_summary.json")
	summary := sampleSummary()[:1]

	require.NoError(t, NewJSONReporter().Write(summary, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, `{
  "2023-11-14": [
    {
      "emp_code": "001",
      "first_punch": "09:00",
      "last_punch": "13:30",
      "total_punches": 3,
      "working_hours": "03:30",
      "late_entry": 0,
      "early_exit": 1
    }
  ]
}
`, string(content))
}

func TestJSONReporter_WriteEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_summary.json")
	require.NoError(t, NewJSONReporter().Write(models.AttendanceSummary{}, path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "{}\n", string(content))
}

func TestJSONReporter_WriteFailsOnMissingDirectory(t *testing.T) {
	err := NewJSONReporter().Write(sampleSummary(), filepath.Join(t.TempDir(), "missing", "out.json"))
	assert.Error(t, err)
}

func TestXLSXReporter_Write(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_summary.xlsx")
	require.NoError(t, NewXLSXReporter("").Write(sampleSummary(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Sheet1"}, f.GetSheetList())
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"Date", "Emp Code", "First Punch", "Last Punch", "Total Punches", "Working Hours", "Late Entry", "Early Exit"},
		{"2023-11-14", "001", "09:00", "13:30", "3", "03:30", "No", "Yes"},
		{"2023-11-15", "10", "09:45", "16:00", "2", "05:15", "Yes", "Yes"},
		{"2023-11-15", "9", "08:00", "18:00", "2", "09:00", "No", "No"},
	}, rows)

	cellType, err := f.GetCellType("Sheet1", "E2")
	require.NoError(t, err)
	assert.NotEqual(t, excelize.CellTypeSharedString, cellType)
}

func TestXLSXReporter_CustomSheetName(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_summary.xlsx")
	require.NoError(t, NewXLSXReporter("Attendance").Write(sampleSummary(), path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	assert.Equal(t, []string{"Attendance"}, f.GetSheetList())
}

func TestXLSXReporter_EmptySummaryWritesNothing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "attendance_summary.xlsx")
	require.NoError(t, NewXLSXReporter("").Write(models.AttendanceSummary{}, path))

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))
}

func TestReporters_AgreeOnEntries(t *testing.T) {
	dir := t.TempDir()
	jsonPath := filepath.Join(dir, "attendance_summary.json")
	xlsxPath := filepath.Join(dir, "attendance_summary.xlsx")
	summary := sampleSummary()

	require.NoError(t, NewJSONReporter().Write(summary, jsonPath))
	require.NoError(t, NewXLSXReporter("").Write(summary, xlsxPath))

	content, err := os.ReadFile(jsonPath)
	require.NoError(t, err)
	var fromJSON models.AttendanceSummary
	require.NoError(t, fromJSON.UnmarshalJSON(content))

	f, err := excelize.OpenFile(xlsxPath)
	require.NoError(t, err)
	defer f.Close()
	sheet, err := f.GetRows("Sheet1")
	require.NoError(t, err)

	jsonRows := Rows(fromJSON)
	require.Len(t, sheet, len(jsonRows)+1)
	for i, r := range jsonRows {
		assert.Equal(t, []string{
			r.Date, r.EmpCode, r.FirstPunch, r.LastPunch, strconv.Itoa(r.TotalPunches), r.WorkingHours,
			yesNo(r.LateEntry), yesNo(r.EarlyExit),
		}, sheet[i+1])
	}
}

func TestXLSXReporter_SanitizesTextCells(t *testing.T) {
	var summary models.AttendanceSummary
	require.NoError(t, summary.UnmarshalJSON([]byte(`{"2023-11-14":[{"emp_code":"=HYPERLINK(\"http://x\")","first_punch":"@09:00","last_punch":"13:30","total_punches":2,"working_hours":"+03:30","late_entry":0,"early_exit":1}]}`)))

	path := filepath.Join(t.TempDir(), "attendance_summary.xlsx")
	require.NoError(t, NewXLSXReporter("").Write(summary, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Sheet1")
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"2023-11-14", `'=HYPERLINK("http://x")`, "'@09:00", "13:30", "2", "'+03:30", "No", "Yes"}, rows[1])
}
