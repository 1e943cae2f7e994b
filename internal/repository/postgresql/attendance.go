package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hrportal/hr-backend-go/internal/domain/attendance"
	"github.com/hrportal/hr-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

// Clock columns are TIME; they travel as "HH24:MI" strings on both sides so
// the domain never deals with timestamp timezones for time-of-day values.

// Upsert implements attendance.AttendanceRepository.
func (a *attendanceRepository) Upsert(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (
			employee_id, date, clock_in, clock_out, break_start, break_end,
			total_hours, break_hours, overtime_hours, late_minutes, early_leaving_minutes,
			status, work_from_home, location, notes,
			latitude, longitude, location_accuracy, is_within_geofence,
			work_location_id, distance_from_work
		) VALUES (
			$1, $2, $3::time, $4::time, $5::time, $6::time,
			$7, $8, $9, $10, $11,
			$12::attendance_status, $13, $14, $15,
			$16, $17, $18, $19,
			$20, $21
		)
		ON CONFLICT (employee_id, date) DO UPDATE SET
			clock_in = EXCLUDED.clock_in,
			clock_out = EXCLUDED.clock_out,
			break_start = EXCLUDED.break_start,
			break_end = EXCLUDED.break_end,
			total_hours = EXCLUDED.total_hours,
			break_hours = EXCLUDED.break_hours,
			overtime_hours = EXCLUDED.overtime_hours,
			late_minutes = EXCLUDED.late_minutes,
			early_leaving_minutes = EXCLUDED.early_leaving_minutes,
			status = EXCLUDED.status,
			work_from_home = EXCLUDED.work_from_home,
			location = EXCLUDED.location,
			notes = EXCLUDED.notes,
			latitude = EXCLUDED.latitude,
			longitude = EXCLUDED.longitude,
			location_accuracy = EXCLUDED.location_accuracy,
			is_within_geofence = EXCLUDED.is_within_geofence,
			work_location_id = EXCLUDED.work_location_id,
			distance_from_work = EXCLUDED.distance_from_work,
			updated_at = NOW()
		RETURNING id, is_approved, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.EmployeeID,
		att.Date,
		att.ClockIn,
		att.ClockOut,
		att.BreakStart,
		att.BreakEnd,
		att.TotalHours,
		att.BreakHours,
		att.OvertimeHours,
		att.LateMinutes,
		att.EarlyLeavingMinutes,
		string(att.Status),
		att.WorkFromHome,
		att.Location,
		att.Notes,
		att.Latitude,
		att.Longitude,
		att.LocationAccuracy,
		att.IsWithinGeofence,
		att.WorkLocationID,
		att.DistanceFromWork,
	).Scan(&att.ID, &att.IsApproved, &att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to upsert attendance: %w", err)
	}

	return att, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date,
			   to_char(a.clock_in, 'HH24:MI'), to_char(a.clock_out, 'HH24:MI'),
			   to_char(a.break_start, 'HH24:MI'), to_char(a.break_end, 'HH24:MI'),
			   a.total_hours, a.break_hours, a.overtime_hours,
			   a.late_minutes, a.early_leaving_minutes,
			   a.status::text, a.work_from_home, a.location, a.notes,
			   a.latitude, a.longitude, a.location_accuracy, a.is_within_geofence,
			   a.work_location_id, a.distance_from_work, a.is_approved,
			   a.created_at, a.updated_at,
			   wl.name AS work_location_name,
			   wl.address AS work_location_address
		FROM attendance a
		LEFT JOIN work_locations wl ON wl.id = a.work_location_id
		WHERE a.employee_id = $1
		  AND a.date = $2
	`

	var att attendance.Attendance
	var status string
	err := q.QueryRow(ctx, query, employeeID, date).Scan(
		&att.ID, &att.EmployeeID, &att.Date,
		&att.ClockIn, &att.ClockOut,
		&att.BreakStart, &att.BreakEnd,
		&att.TotalHours, &att.BreakHours, &att.OvertimeHours,
		&att.LateMinutes, &att.EarlyLeavingMinutes,
		&status, &att.WorkFromHome, &att.Location, &att.Notes,
		&att.Latitude, &att.Longitude, &att.LocationAccuracy, &att.IsWithinGeofence,
		&att.WorkLocationID, &att.DistanceFromWork, &att.IsApproved,
		&att.CreatedAt, &att.UpdatedAt,
		&att.WorkLocationName,
		&att.WorkLocationAddress,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance by employee and date: %w", err)
	}

	att.Status = attendance.Status(status)
	return att, nil
}

// ListByMonth implements attendance.AttendanceRepository.
func (a *attendanceRepository) ListByMonth(ctx context.Context, employeeID string, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT a.id, a.employee_id, a.date,
			   to_char(a.clock_in, 'HH24:MI'), to_char(a.clock_out, 'HH24:MI'),
			   to_char(a.break_start, 'HH24:MI'), to_char(a.break_end, 'HH24:MI'),
			   a.total_hours, a.break_hours, a.overtime_hours,
			   a.late_minutes, a.early_leaving_minutes,
			   a.status::text, a.work_from_home, a.location, a.notes,
			   a.latitude, a.longitude, a.location_accuracy, a.is_within_geofence,
			   a.work_location_id, a.distance_from_work, a.is_approved,
			   a.created_at, a.updated_at,
			   wl.name AS work_location_name,
			   wl.address AS work_location_address
		FROM attendance a
		LEFT JOIN work_locations wl ON wl.id = a.work_location_id
		WHERE a.employee_id = $1
		  AND a.date >= make_date($2, $3, 1)
		  AND a.date < make_date($2, $3, 1) + INTERVAL '1 month'
		ORDER BY a.date
	`

	rows, err := q.Query(ctx, query, employeeID, year, int(month))
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance by month: %w", err)
	}
	defer rows.Close()

	var attendances []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var status string
		err := rows.Scan(
			&att.ID, &att.EmployeeID, &att.Date,
			&att.ClockIn, &att.ClockOut,
			&att.BreakStart, &att.BreakEnd,
			&att.TotalHours, &att.BreakHours, &att.OvertimeHours,
			&att.LateMinutes, &att.EarlyLeavingMinutes,
			&status, &att.WorkFromHome, &att.Location, &att.Notes,
			&att.Latitude, &att.Longitude, &att.LocationAccuracy, &att.IsWithinGeofence,
			&att.WorkLocationID, &att.DistanceFromWork, &att.IsApproved,
			&att.CreatedAt, &att.UpdatedAt,
			&att.WorkLocationName,
			&att.WorkLocationAddress,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		att.Status = attendance.Status(status)
		attendances = append(attendances, att)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read attendance rows: %w", err)
	}

	return attendances, nil
}

// Approve implements attendance.AttendanceRepository.
func (a *attendanceRepository) Approve(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance
		SET is_approved = TRUE, updated_at = NOW()
		WHERE employee_id = $1 AND date = $2
	`

	commandTag, err := q.Exec(ctx, query, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to approve attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// Delete implements attendance.AttendanceRepository.
func (a *attendanceRepository) Delete(ctx context.Context, employeeID string, date time.Time) error {
	q := GetQuerier(ctx, a.db)

	query := `DELETE FROM attendance WHERE employee_id = $1 AND date = $2`

	commandTag, err := q.Exec(ctx, query, employeeID, date)
	if err != nil {
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}

// MarkAbsentees implements attendance.AttendanceRepository.
// ON CONFLICT DO NOTHING keeps the job idempotent when it overlaps a late
// manual entry for the same day.
func (a *attendanceRepository) MarkAbsentees(ctx context.Context, date time.Time) (int64, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance (employee_id, date, status)
		SELECT e.employee_code, $1, 'absent'::attendance_status
		FROM employees e
		WHERE e.status = 'active'
		ON CONFLICT (employee_id, date) DO NOTHING
	`

	commandTag, err := q.Exec(ctx, query, date)
	if err != nil {
		return 0, fmt.Errorf("failed to mark absentees: %w", err)
	}

	return commandTag.RowsAffected(), nil
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}
