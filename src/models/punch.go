// backend/src/models/punch.go
package models

import (
	"strings"
	"time"
)

// RowInfo locates a row inside an input file. RowNumber is 1-based and counts
// data rows only (blank lines are not numbered).
type RowInfo struct {
	FileName  string
	RowNumber int
}

// RawRow holds the untrimmed text fields read from one line of an attendance log.
// Device is empty when the source table only had four columns.
type RawRow struct {
	Info      RowInfo
	EmpCode   string
	FirstName string
	LastName  string
	Timestamp string
	Device    string
}

// Trimmed returns a copy of the row with surrounding whitespace removed from every field.
func (r RawRow) Trimmed() RawRow {
	return RawRow{
		Info:      r.Info,
		EmpCode:   strings.TrimSpace(r.EmpCode),
		FirstName: strings.TrimSpace(r.FirstName),
		LastName:  strings.TrimSpace(r.LastName),
		Timestamp: strings.TrimSpace(r.Timestamp),
		Device:    strings.TrimSpace(r.Device),
	}
}

// CleanedRecord is a validated, de-duplicated punch.
type CleanedRecord struct {
	EmpCode   string    `json:"emp_code"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Epoch     int64     `json:"-"`         // Raw epoch seconds as read from the log
	Timestamp time.Time `json:"timestamp"` // Always UTC
	Device    string    `json:"device"`
	Date      time.Time `json:"date"` // UTC midnight of Timestamp
}

// DedupKey identifies a punch for at-most-once inclusion across a run.
type DedupKey struct {
	EmpCode string
	Epoch   int64
	Device  string
}

func (r CleanedRecord) Key() DedupKey {
	return DedupKey{EmpCode: r.EmpCode, Epoch: r.Epoch, Device: r.Device}
}
