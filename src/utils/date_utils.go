package utils

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultDateFormat  = "2006-01-02"
	DefaultClockFormat = "15:04"
)

// ClockTime is a time of day with second precision, independent of any date.
type ClockTime struct {
	Hour, Minute, Second int
}

// ParseClock parses "HH:MM" or "HH:MM:SS" in 24-hour form.
func ParseClock(s string) (ClockTime, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return ClockTime{}, fmt.Errorf("invalid clock value '%s': expected HH:MM", s)
	}
	var vals [3]int
	limits := [3]int{23, 59, 59}
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil || len(p) != 2 || n < 0 || n > limits[i] {
			return ClockTime{}, fmt.Errorf("invalid clock value '%s': expected HH:MM", s)
		}
		vals[i] = n
	}
	return ClockTime{Hour: vals[0], Minute: vals[1], Second: vals[2]}, nil
}

// MustParseClock is ParseClock for constants.
func MustParseClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

// SecondsOfDay returns the number of seconds since midnight.
func (c ClockTime) SecondsOfDay() int {
	return c.Hour*3600 + c.Minute*60 + c.Second
}

func (c ClockTime) String() string {
	if c.Second != 0 {
		return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
	}
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// TimeOfDay returns the clock reading of t in its own location.
func TimeOfDay(t time.Time) ClockTime {
	return ClockTime{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()}
}

// TimeOfDayAfter reports whether t's time of day is strictly later than c.
// Sub-second precision counts, so 09:30:00.5 is after 09:30.
func TimeOfDayAfter(t time.Time, c ClockTime) bool {
	return clockNanos(t) > int64(c.SecondsOfDay())*int64(time.Second)
}

// TimeOfDayBefore reports whether t's time of day is strictly earlier than c.
func TimeOfDayBefore(t time.Time, c ClockTime) bool {
	return clockNanos(t) < int64(c.SecondsOfDay())*int64(time.Second)
}

func clockNanos(t time.Time) int64 {
	return int64(TimeOfDay(t).SecondsOfDay())*int64(time.Second) + int64(t.Nanosecond())
}

// DateOf truncates t to UTC midnight.
func DateOf(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DefaultDateFormat)
}

// FormatClock renders the UTC time of day of t as HH:MM.
func FormatClock(t time.Time) string {
	return t.UTC().Format(DefaultClockFormat)
}

// FormatHoursMinutes renders d as HH:MM using only the remainder after whole
// days; negative durations render as 00:00.
func FormatHoursMinutes(d time.Duration) string {
	if d < 0 {
		return "00:00"
	}
	secs := int64(d/time.Second) % 86400
	return fmt.Sprintf("%02d:%02d", secs/3600, (secs%3600)/60)
}
