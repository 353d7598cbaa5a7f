// backend/src/processors/summary_processor.go
package processors

import (
	"sort"
	"time"

	"github.com/username/punchlog/backend/src/logger"
	"github.com/username/punchlog/backend/src/models"
	"github.com/username/punchlog/backend/src/utils"
)

// SummaryProcessor builds the per-day, per-employee attendance summary.
type SummaryProcessor struct {
	policy AttendancePolicy
}

func NewSummaryProcessor(policy AttendancePolicy) *SummaryProcessor {
	return &SummaryProcessor{policy: policy}
}

// Process groups records by UTC date and employee. Dates come out ascending,
// employees in plain string order ("10" before "9") and punches chronologically,
// so the result does not depend on the input order.
func (p *SummaryProcessor) Process(records []models.CleanedRecord) models.AttendanceSummary {
	punchesByDate := groupPunchesByDateAndEmployee(records)

	dates := make([]string, 0, len(punchesByDate))
	for date := range punchesByDate {
		dates = append(dates, date)
	}
	sort.Strings(dates)

	summary := make(models.AttendanceSummary, 0, len(dates))
	for _, date := range dates {
		byEmployee := punchesByDate[date]

		empCodes := make([]string, 0, len(byEmployee))
		for empCode := range byEmployee {
			empCodes = append(empCodes, empCode)
		}
		sort.Strings(empCodes)

		day := models.DailySummary{Date: date, Entries: make([]models.DailySummaryEntry, 0, len(empCodes))}
		for _, empCode := range empCodes {
			day.Entries = append(day.Entries, p.summarizeDay(empCode, byEmployee[empCode]))
		}
		summary = append(summary, day)
	}
	return summary
}

func (p *SummaryProcessor) summarizeDay(empCode string, punches []time.Time) models.DailySummaryEntry {
	sort.Slice(punches, func(i, j int) bool { return punches[i].Before(punches[j]) })

	firstPunch := punches[0]
	lastPunch := punches[len(punches)-1]
	totalPunches := len(punches)

	lateEntry := IsLateEntry(firstPunch, p.policy)
	earlyExit := IsEarlyExit(lastPunch, p.policy)

	if totalPunches == 1 {
		thresholdLate, thresholdEarly := classifySinglePunch(firstPunch, p.policy)
		// Single-punch days always carry both flags; the threshold result is only logged.
		logger.L.Debug("Single punch day flagged as late entry and early exit",
			"empCode", empCode, "punch", utils.FormatClock(firstPunch),
			"thresholdLate", thresholdLate, "thresholdEarly", thresholdEarly)
		lateEntry, earlyExit = true, true
	}

	return models.DailySummaryEntry{
		EmpCode:      empCode,
		FirstPunch:   utils.FormatClock(firstPunch),
		LastPunch:    utils.FormatClock(lastPunch),
		TotalPunches: totalPunches,
		WorkingHours: utils.FormatHoursMinutes(CalculateWorkingHours(punches, p.policy)),
		LateEntry:    models.Flag(lateEntry),
		EarlyExit:    models.Flag(earlyExit),
	}
}

// classifySinglePunch applies the cutoffs to a lone punch: after the late cutoff
// is late only, otherwise before the early cutoff is early only, else neither.
func classifySinglePunch(punch time.Time, policy AttendancePolicy) (late, early bool) {
	switch {
	case IsLateEntry(punch, policy):
		return true, false
	case IsEarlyExit(punch, policy):
		return false, true
	default:
		return false, false
	}
}

func groupPunchesByDateAndEmployee(records []models.CleanedRecord) map[string]map[string][]time.Time {
	grouped := make(map[string]map[string][]time.Time)
	for _, rec := range records {
		date := utils.FormatDate(rec.Date)
		if _, ok := grouped[date]; !ok {
			grouped[date] = make(map[string][]time.Time)
		}
		grouped[date][rec.EmpCode] = append(grouped[date][rec.EmpCode], rec.Timestamp)
	}
	return grouped
}
