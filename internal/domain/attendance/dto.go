package attendance

import (
	"github.com/hrportal/hr-backend-go/internal/pkg/validator"
)

// ========================================
// ATTENDANCE DTOs
// ========================================

type UpsertAttendanceRequest struct {
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`

	ClockIn    *string `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`

	Status       Status  `json:"status"`
	WorkFromHome bool    `json:"work_from_home"`
	Location     *string `json:"location"`
	Notes        *string `json:"notes"`

	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	LocationAccuracy *float64 `json:"location_accuracy"`

	// Stored as reported, not derived.
	OvertimeHours       *float64 `json:"overtime_hours"`
	LateMinutes         *int     `json:"late_minutes"`
	EarlyLeavingMinutes *int     `json:"early_leaving_minutes"`
}

func (r *UpsertAttendanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.Date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date is required",
		})
	} else if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	for field, value := range map[string]*string{
		"clock_in":    r.ClockIn,
		"clock_out":   r.ClockOut,
		"break_start": r.BreakStart,
		"break_end":   r.BreakEnd,
	} {
		if value != nil && *value != "" && !validator.IsValidClockTime(*value) {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: field + " must be in HH:MM format",
			})
		}
	}

	if r.Status != "" && !r.Status.Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of: present, absent, late, half-day, sick, leave",
		})
	}

	if r.Latitude != nil && !validator.IsValidLatitude(*r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if r.Longitude != nil && !validator.IsValidLongitude(*r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if (r.Latitude == nil) != (r.Longitude == nil) {
		errs = append(errs, validator.ValidationError{
			Field:   "coordinates",
			Message: "latitude and longitude must be supplied together",
		})
	}

	if r.LocationAccuracy != nil && *r.LocationAccuracy < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "location_accuracy",
			Message: "location_accuracy must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type AttendanceResponse struct {
	ID         string `json:"id"`
	EmployeeID string `json:"employee_id"`
	Date       string `json:"date"`

	ClockIn    *string `json:"clock_in"`
	ClockOut   *string `json:"clock_out"`
	BreakStart *string `json:"break_start"`
	BreakEnd   *string `json:"break_end"`

	TotalHours    float64 `json:"total_hours"`
	BreakHours    float64 `json:"break_hours"`
	OvertimeHours float64 `json:"overtime_hours"`

	LateMinutes         int `json:"late_minutes"`
	EarlyLeavingMinutes int `json:"early_leaving_minutes"`

	Status       Status  `json:"status"`
	WorkFromHome bool    `json:"work_from_home"`
	Location     *string `json:"location"`
	Notes        *string `json:"notes"`

	Latitude            *float64 `json:"latitude"`
	Longitude           *float64 `json:"longitude"`
	LocationAccuracy    *float64 `json:"location_accuracy"`
	IsWithinGeofence    bool     `json:"is_within_geofence"`
	WorkLocationID      *string  `json:"work_location_id"`
	WorkLocationName    *string  `json:"work_location_name,omitempty"`
	WorkLocationAddress *string  `json:"work_location_address,omitempty"`
	DistanceFromWork    *int     `json:"distance_from_work"`

	IsApproved bool `json:"is_approved"`
}

// GeofenceInfo is returned alongside the stored record whenever geofence
// evaluation ran, so the caller can see what was decided and why.
type GeofenceInfo struct {
	IsWithinGeofence bool    `json:"is_within_geofence"`
	WorkLocationID   *string `json:"work_location_id,omitempty"`
	WorkLocationName *string `json:"work_location_name,omitempty"`
	DistanceMeters   *int    `json:"distance_meters,omitempty"`
}

type UpsertResult struct {
	Record       AttendanceResponse `json:"record"`
	GeofenceInfo *GeofenceInfo      `json:"geofence_info,omitempty"`
}

// MonthViewResponse maps ISO dates to that day's record, matching how the
// calendar UI consumes the month.
type MonthViewResponse map[string]AttendanceResponse

type MonthlySummaryResponse struct {
	TotalDays        int     `json:"total_days"`
	TotalHours       float64 `json:"total_hours"`
	AverageHours     float64 `json:"average_hours"`
	CompleteDays     int     `json:"complete_days"`
	InsufficientDays int     `json:"insufficient_days"`
	TotalOvertime    float64 `json:"total_overtime"`
	TotalLateMinutes int     `json:"total_late_minutes"`
}
