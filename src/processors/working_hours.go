package processors

import (
	"sort"
	"time"

	"github.com/username/punchlog/backend/src/utils"
)

// CalculateWorkingHours returns last punch minus first punch. If the largest
// gap between consecutive punches exceeds the break threshold, one break
// deduction is subtracted. The result is never negative.
func CalculateWorkingHours(punches []time.Time, policy AttendancePolicy) time.Duration {
	if len(punches) == 0 {
		return 0
	}

	sorted := make([]time.Time, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	working := sorted[len(sorted)-1].Sub(sorted[0])

	if len(sorted) >= 2 && largestGap(sorted) > policy.BreakGapThreshold {
		working -= policy.BreakDeduction
	}
	if working < 0 {
		working = 0
	}
	return working
}

// largestGap expects punches in chronological order.
func largestGap(sorted []time.Time) time.Duration {
	var gap time.Duration
	for i := 1; i < len(sorted); i++ {
		if d := sorted[i].Sub(sorted[i-1]); d > gap {
			gap = d
		}
	}
	return gap
}

// IsLateEntry reports a first punch strictly after the late-entry cutoff.
func IsLateEntry(firstPunch time.Time, policy AttendancePolicy) bool {
	return utils.TimeOfDayAfter(firstPunch.UTC(), policy.LateEntryCutoff)
}

// IsEarlyExit reports a last punch strictly before the early-exit cutoff.
func IsEarlyExit(lastPunch time.Time, policy AttendancePolicy) bool {
	return utils.TimeOfDayBefore(lastPunch.UTC(), policy.EarlyExitCutoff)
}
