package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlagJSON(t *testing.T) {
	out, err := json.Marshal(struct {
		A Flag `json:"a"`
		B Flag `json:"b"`
	}{A: true})
	require.NoError(t, err)
	assert.Equal(t, `{"a":1,"b":0}`, string(out))

	var f Flag
	require.NoError(t, json.Unmarshal([]byte("1"), &f))
	assert.True(t, bool(f))
	require.NoError(t, json.Unmarshal([]byte("0"), &f))
	assert.False(t, bool(f))
}

func TestAttendanceSummaryJSON(t *testing.T) {
	summary := AttendanceSummary{
		{Date: "2023-11-15", Entries: []DailySummaryEntry{{EmpCode: "10", FirstPunch: "09:45", LastPunch: "16:00", TotalPunches: 2, WorkingHours: "05:15", LateEntry: true, EarlyExit: true}}},
		{Date: "2023-11-14", Entries: nil},
	}

	out, err := json.Marshal(summary)
	require.NoError(t, err)
	assert.Equal(t,
		`{"2023-11-15":[{"emp_code":"10","first_punch":"09:45","last_punch":"16:00","total_punches":2,"working_hours":"05:15","late_entry":1,"early_exit":1}],"2023-11-14":[]}`,
		string(out))

	var back AttendanceSummary
	require.NoError(t, json.Unmarshal(out, &back))
	require.Len(t, back, 2)
	assert.Equal(t, "2023-11-15", back[0].Date)
	assert.Equal(t, summary[0].Entries, back[0].Entries)
	assert.Equal(t, 1, back.EntryCount())
}

func TestAttendanceSummaryJSON_Empty(t *testing.T) {
	out, err := json.Marshal(AttendanceSummary{})
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))

	out, err = json.Marshal(AttendanceSummary(nil))
	require.NoError(t, err)
	assert.Equal(t, `{}`, string(out))
}

func TestRawRowTrimmed(t *testing.T) {
	row := RawRow{Info: RowInfo{FileName: "a.log", RowNumber: 2}, EmpCode: " 001\t", FirstName: "John ", Device: "  Main Gate "}
	got := row.Trimmed()
	assert.Equal(t, "001", got.EmpCode)
	assert.Equal(t, "John", got.FirstName)
	assert.Equal(t, "Main Gate", got.Device)
	assert.Equal(t, row.Info, got.Info)
}
