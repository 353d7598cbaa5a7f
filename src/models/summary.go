// backend/src/models/summary.go
package models

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Flag is a boolean rendered as 1/0 in JSON reports.
type Flag bool

func (f Flag) MarshalJSON() ([]byte, error) {
	if f {
		return []byte("1"), nil
	}
	return []byte("0"), nil
}

func (f *Flag) UnmarshalJSON(data []byte) error {
	switch strings.TrimSpace(string(data)) {
	case "1", "true":
		*f = true
	default:
		*f = false
	}
	return nil
}

// DailySummaryEntry is one employee's attendance for one day.
type DailySummaryEntry struct {
	EmpCode      string `json:"emp_code"`
	FirstPunch   string `json:"first_punch"`   // HH:MM, UTC
	LastPunch    string `json:"last_punch"`    // HH:MM, UTC
	TotalPunches int    `json:"total_punches"` // >= 1
	WorkingHours string `json:"working_hours"` // HH:MM
	LateEntry    Flag   `json:"late_entry"`
	EarlyExit    Flag   `json:"early_exit"`
}

// DailySummary groups the entries of a single ISO date (YYYY-MM-DD).
type DailySummary struct {
	Date    string
	Entries []DailySummaryEntry
}

// AttendanceSummary is ordered by ascending date. Its JSON form is an object
// keyed by date, keeping that order.
type AttendanceSummary []DailySummary

func (s AttendanceSummary) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, day := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(day.Date); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		entries := day.Entries
		if entries == nil {
			entries = []DailySummaryEntry{}
		}
		if err := enc.Encode(entries); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')
	// Encoder terminates every value with a newline; compact drops them.
	var out bytes.Buffer
	if err := json.Compact(&out, buf.Bytes()); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func (s *AttendanceSummary) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	if _, err := dec.Token(); err != nil {
		return err
	}
	var out AttendanceSummary
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		date, _ := tok.(string)
		var entries []DailySummaryEntry
		if err := dec.Decode(&entries); err != nil {
			return err
		}
		out = append(out, DailySummary{Date: date, Entries: entries})
	}
	*s = out
	return nil
}

// EntryCount returns the number of (date, employee) entries.
func (s AttendanceSummary) EntryCount() int {
	n := 0
	for _, day := range s {
		n += len(day.Entries)
	}
	return n
}
