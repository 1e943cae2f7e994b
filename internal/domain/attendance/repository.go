package attendance

import (
	"context"
	"time"
)

// AttendanceRepository defines data access methods for attendance records.
// The table carries a unique constraint on (employee_id, date); Upsert relies
// on it for idempotence, so concurrent writes for the same key serialize in
// the store rather than in application code.
type AttendanceRepository interface {
	// Upsert inserts or overwrites the single record for (employeeID, date)
	Upsert(ctx context.Context, attendance Attendance) (Attendance, error)

	// GetByEmployeeAndDate retrieves the record for one employee on one date
	GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (Attendance, error)

	// ListByMonth retrieves all records for an employee in a calendar month,
	// ordered by date, with work location details joined in
	ListByMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]Attendance, error)

	// Approve marks the record for (employeeID, date) as approved
	Approve(ctx context.Context, employeeID string, date time.Time) error

	// Delete removes the record for (employeeID, date) entirely
	Delete(ctx context.Context, employeeID string, date time.Time) error

	// MarkAbsentees inserts absent rows for active employees with no record on
	// the given date and returns how many were created
	MarkAbsentees(ctx context.Context, date time.Time) (int64, error)
}
