package attendance

import (
	"math"

	"github.com/hrportal/hr-backend-go/internal/domain/attendance"
)

// A day counts as complete at or above this many worked hours.
const fullDayThresholdHours = 9.0

// Summarize reduces a set of daily records into monthly statistics.
//
// Only statuses that count toward hours (present, late, half-day) enter the
// totals. A zero-hour row is neither complete nor insufficient; it is a
// placeholder for a day with no usable clock data.
func Summarize(records []attendance.Attendance) attendance.MonthlySummary {
	var summary attendance.MonthlySummary

	for _, rec := range records {
		if !rec.Status.CountsTowardHours() {
			continue
		}

		summary.TotalDays++
		summary.TotalHours += rec.TotalHours
		summary.TotalOvertime += rec.OvertimeHours
		summary.TotalLateMinutes += rec.LateMinutes

		switch {
		case rec.TotalHours >= fullDayThresholdHours:
			summary.CompleteDays++
		case rec.TotalHours > 0:
			summary.InsufficientDays++
		}
	}

	summary.TotalHours = round2(summary.TotalHours)
	summary.TotalOvertime = round2(summary.TotalOvertime)
	if summary.TotalDays > 0 {
		summary.AverageHours = round2(summary.TotalHours / float64(summary.TotalDays))
	}

	return summary
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
