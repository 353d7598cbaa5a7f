package processors

import (
	"time"

	"github.com/username/punchlog/backend/src/utils"
)

// AttendancePolicy holds the thresholds used to classify a working day.
type AttendancePolicy struct {
	LateEntryCutoff   utils.ClockTime // first punch strictly after this is a late entry
	EarlyExitCutoff   utils.ClockTime // last punch strictly before this is an early exit
	BreakGapThreshold time.Duration   // a consecutive gap longer than this counts as a break
	BreakDeduction    time.Duration   // unpaid break subtracted once per day
}

// DefaultPolicy is 09:30 / 17:00 with one unpaid hour for any gap over an hour.
func DefaultPolicy() AttendancePolicy {
	return AttendancePolicy{
		LateEntryCutoff:   utils.ClockTime{Hour: 9, Minute: 30},
		EarlyExitCutoff:   utils.ClockTime{Hour: 17},
		BreakGapThreshold: time.Hour,
		BreakDeduction:    time.Hour,
	}
}
