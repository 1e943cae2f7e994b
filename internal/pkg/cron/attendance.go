package cron

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hrportal/hr-backend-go/internal/domain/attendance"
)

type AttendanceJobs struct {
	attendanceRepo attendance.AttendanceRepository
}

func NewAttendanceJobs(attendanceRepo attendance.AttendanceRepository) *AttendanceJobs {
	return &AttendanceJobs{
		attendanceRepo: attendanceRepo,
	}
}

func (j *AttendanceJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("mark_absent_employees", 1*time.Hour, j.MarkAbsentEmployees)
}

// MarkAbsentEmployees backfills an absent record for every active employee who
// has no attendance row for the previous day. The insert ignores conflicts, so
// running it more than once for the same day is harmless.
func (j *AttendanceJobs) MarkAbsentEmployees(ctx context.Context) error {
	// Only run at midnight (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	slog.Info("Cron: Starting mark-absent-employees job")

	yesterday := time.Now().UTC().AddDate(0, 0, -1)

	marked, err := j.attendanceRepo.MarkAbsentees(ctx, yesterday)
	if err != nil {
		return fmt.Errorf("failed to mark absentees: %w", err)
	}

	if marked == 0 {
		slog.Info("Cron: No absentees to mark", "date", yesterday.Format("2006-01-02"))
		return nil
	}

	slog.Info("Cron: Marked absent employees", "date", yesterday.Format("2006-01-02"), "count", marked)
	return nil
}
