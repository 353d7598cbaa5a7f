package validation

import (
	"fmt"
	"io"
	"regexp"
	"unicode"

	"github.com/username/punchlog/backend/src/models"
)

var (
	employeeIDPattern = regexp.MustCompile(`^\d+$`)
	namePattern       = regexp.MustCompile(`^[A-Za-z]+$`)
	devicePattern     = regexp.MustCompile(`^[A-Za-z0-9\s]+$`)
)

// IsEmployeeID reports whether s is a non-empty run of ASCII digits.
func IsEmployeeID(s string) bool {
	return employeeIDPattern.MatchString(s)
}

// IsValidName accepts ASCII letters only. Spaces and hyphens are rejected.
func IsValidName(s string) bool {
	return namePattern.MatchString(s)
}

// IsNumeric reports whether every rune of s is a decimal digit. Non-ASCII
// digits pass here and are rejected later by the integer conversion.
func IsNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// IsValidDevice accepts letters, digits and whitespace.
func IsValidDevice(s string) bool {
	return devicePattern.MatchString(s)
}

func report(sink io.Writer, info models.RowInfo, format string, args ...any) {
	fmt.Fprintf(sink, "File-Name: %s: ROW: %d. %s\n", info.FileName, info.RowNumber, fmt.Sprintf(format, args...))
}

// CheckEmployeeID validates a required numeric employee code.
func CheckEmployeeID(empID string, sink io.Writer, info models.RowInfo) bool {
	if empID == "" {
		report(sink, info, "Missing employee ID")
		return false
	}
	if !IsEmployeeID(empID) {
		report(sink, info, "Employee ID invalid: '%s' - must contain only numbers", empID)
		return false
	}
	return true
}

// CheckFirstName validates a required alphabetic first name.
func CheckFirstName(firstName string, sink io.Writer, info models.RowInfo) bool {
	return checkName("first name", "First name", firstName, sink, info)
}

// CheckLastName validates a required alphabetic last name.
func CheckLastName(lastName string, sink io.Writer, info models.RowInfo) bool {
	return checkName("last name", "Last name", lastName, sink, info)
}

func checkName(label, title, value string, sink io.Writer, info models.RowInfo) bool {
	if value == "" {
		report(sink, info, "Missing %s", label)
		return false
	}
	if !IsValidName(value) {
		report(sink, info, "%s character invalid: '%s' - must contain only letters, spaces, and hyphens", title, value)
		return false
	}
	return true
}

// CheckTimestamp validates a required all-digit epoch value.
func CheckTimestamp(timestamp string, sink io.Writer, info models.RowInfo) bool {
	if timestamp == "" {
		report(sink, info, "Missing timestamp")
		return false
	}
	if !IsNumeric(timestamp) {
		report(sink, info, "Timestamp is not valid number: '%s' - must contain only numbers", timestamp)
		return false
	}
	return true
}

// CheckDevice validates a required device name.
func CheckDevice(device string, sink io.Writer, info models.RowInfo) bool {
	if device == "" {
		report(sink, info, "Missing device")
		return false
	}
	if !IsValidDevice(device) {
		report(sink, info, "Device name invalid: '%s' - must contain only letters, numbers, and spaces", device)
		return false
	}
	return true
}

// ValidateRow runs every field check, so one row can report several problems.
// The row is valid only if all checks pass. Fields are expected to be trimmed.
func ValidateRow(row models.RawRow, sink io.Writer) bool {
	checks := []bool{
		CheckEmployeeID(row.EmpCode, sink, row.Info),
		CheckFirstName(row.FirstName, sink, row.Info),
		CheckLastName(row.LastName, sink, row.Info),
		CheckTimestamp(row.Timestamp, sink, row.Info),
		CheckDevice(row.Device, sink, row.Info),
	}
	for _, ok := range checks {
		if !ok {
			return false
		}
	}
	return true
}
