package attendance

import (
	"time"
)

// Status is the closed set of attendance states. It is stored as a PostgreSQL
// enum; free-form strings are rejected at validation time.
type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusLate    Status = "late"
	StatusHalfDay Status = "half-day"
	StatusSick    Status = "sick"
	StatusLeave   Status = "leave"
)

// Valid reports whether s is a known attendance status.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusHalfDay, StatusSick, StatusLeave:
		return true
	}
	return false
}

// CountsTowardHours reports whether records with this status contribute to
// monthly hour totals. Absence and leave days keep their rows but are
// excluded from hour statistics.
func (s Status) CountsTowardHours() bool {
	switch s {
	case StatusPresent, StatusLate, StatusHalfDay:
		return true
	}
	return false
}

type Attendance struct {
	ID         string
	EmployeeID string
	Date       time.Time

	// Time-of-day values, "HH:MM" on a 24-hour clock.
	ClockIn    *string
	ClockOut   *string
	BreakStart *string
	BreakEnd   *string

	// Derived hour totals.
	TotalHours    float64
	BreakHours    float64
	OvertimeHours float64

	LateMinutes         int
	EarlyLeavingMinutes int

	Status       Status
	WorkFromHome bool
	Location     *string
	Notes        *string

	// Geolocation evidence.
	Latitude         *float64
	Longitude        *float64
	LocationAccuracy *float64
	IsWithinGeofence bool
	WorkLocationID   *string
	DistanceFromWork *int

	IsApproved bool
	CreatedAt  time.Time
	UpdatedAt  time.Time

	// Joined from work_locations on reads.
	WorkLocationName    *string
	WorkLocationAddress *string
}

// MonthlySummary aggregates one employee's records for a single month.
// It is computed on demand and never persisted.
type MonthlySummary struct {
	TotalDays        int
	TotalHours       float64
	AverageHours     float64
	CompleteDays     int
	InsufficientDays int
	TotalOvertime    float64
	TotalLateMinutes int
}
