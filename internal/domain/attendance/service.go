package attendance

import (
	"context"
)

// AttendanceService defines business logic for attendance operations
type AttendanceService interface {
	// UpsertDailyRecord validates a clock event, runs the geofence gate when
	// applicable, derives hour totals and writes the single record for
	// (employee, date). Rejections come back as domain errors; the stored
	// record and geofence outcome come back on acceptance.
	UpsertDailyRecord(ctx context.Context, req UpsertAttendanceRequest) (UpsertResult, error)

	// GetMonth retrieves one employee's records for a calendar month keyed by date
	GetMonth(ctx context.Context, employeeID string, year, month int) (MonthViewResponse, error)

	// MonthlySummary reduces one employee's month into summary statistics
	MonthlySummary(ctx context.Context, employeeID string, year, month int) (MonthlySummaryResponse, error)

	// Approve marks a day's record as approved
	Approve(ctx context.Context, employeeID string, date string) (AttendanceResponse, error)

	// Delete removes a day's record entirely
	Delete(ctx context.Context, employeeID string, date string) error
}
