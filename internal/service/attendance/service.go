package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/hrportal/hr-backend-go/internal/domain/attendance"
	"github.com/hrportal/hr-backend-go/internal/domain/worklocation"
	"github.com/hrportal/hr-backend-go/internal/pkg/database"
	"github.com/hrportal/hr-backend-go/internal/pkg/geofence"
	"github.com/hrportal/hr-backend-go/internal/pkg/timeclock"
	"github.com/hrportal/hr-backend-go/internal/pkg/validator"
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
	worklocation.WorkLocationRepository

	// GPS accuracy above this many meters is rejected before any geofence work.
	accuracyThresholdMeters float64
}

// UpsertDailyRecord implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) UpsertDailyRecord(ctx context.Context, req attendance.UpsertAttendanceRequest) (attendance.UpsertResult, error) {
	if err := req.Validate(); err != nil {
		return attendance.UpsertResult{}, err
	}

	date, _ := validator.IsValidDate(req.Date)

	status := req.Status
	if status == "" {
		status = attendance.StatusPresent
	}

	att := attendance.Attendance{
		EmployeeID:   req.EmployeeID,
		Date:         date,
		ClockIn:      req.ClockIn,
		ClockOut:     req.ClockOut,
		BreakStart:   req.BreakStart,
		BreakEnd:     req.BreakEnd,
		Status:       status,
		WorkFromHome: req.WorkFromHome,
		Location:     req.Location,
		Notes:        req.Notes,
	}

	var geofenceInfo *attendance.GeofenceInfo

	// Geofencing applies only to on-site attendance with reported coordinates.
	if !req.WorkFromHome && req.Latitude != nil && req.Longitude != nil {
		if req.LocationAccuracy != nil && *req.LocationAccuracy > a.accuracyThresholdMeters {
			return attendance.UpsertResult{}, attendance.ErrInaccurateLocation
		}

		zones, err := a.WorkLocationRepository.ListActive(ctx)
		if err != nil {
			return attendance.UpsertResult{}, fmt.Errorf("failed to load active work locations: %w", err)
		}

		result := geofence.Resolve(geofence.Point{
			Latitude:  *req.Latitude,
			Longitude: *req.Longitude,
		}, zones)

		if !result.Within {
			if result.Closest == nil {
				return attendance.UpsertResult{}, worklocation.ErrNoActiveLocations
			}
			return attendance.UpsertResult{}, &attendance.OutsideGeofenceError{
				DistanceMeters:       result.DistanceMeters,
				RequiredRadiusMeters: result.Closest.Location.RadiusMeters,
				ClosestLocationName:  result.Closest.Location.Name,
			}
		}

		distance := result.Matched.DistanceMeters
		att.Latitude = req.Latitude
		att.Longitude = req.Longitude
		att.LocationAccuracy = req.LocationAccuracy
		att.IsWithinGeofence = true
		att.WorkLocationID = &result.Matched.Location.ID
		att.DistanceFromWork = &distance

		geofenceInfo = &attendance.GeofenceInfo{
			IsWithinGeofence: true,
			WorkLocationID:   att.WorkLocationID,
			WorkLocationName: &result.Matched.Location.Name,
			DistanceMeters:   &distance,
		}
	}

	att.TotalHours = timeclock.WorkedHours(req.ClockIn, req.ClockOut, req.BreakStart, req.BreakEnd)
	att.BreakHours = timeclock.BreakHours(req.BreakStart, req.BreakEnd)

	// Overtime and lateness are stored as reported, not derived.
	if req.OvertimeHours != nil {
		att.OvertimeHours = *req.OvertimeHours
	}
	if req.LateMinutes != nil {
		att.LateMinutes = *req.LateMinutes
	}
	if req.EarlyLeavingMinutes != nil {
		att.EarlyLeavingMinutes = *req.EarlyLeavingMinutes
	}

	stored, err := a.AttendanceRepository.Upsert(ctx, att)
	if err != nil {
		return attendance.UpsertResult{}, fmt.Errorf("failed to upsert attendance record: %w", err)
	}

	return attendance.UpsertResult{
		Record:       mapAttendanceToResponse(stored),
		GeofenceInfo: geofenceInfo,
	}, nil
}

// GetMonth implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetMonth(ctx context.Context, employeeID string, year, month int) (attendance.MonthViewResponse, error) {
	if err := validateMonthArgs(employeeID, year, month); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.ListByMonth(ctx, employeeID, year, time.Month(month))
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for month: %w", err)
	}

	view := make(attendance.MonthViewResponse, len(records))
	for _, rec := range records {
		view[rec.Date.Format("2006-01-02")] = mapAttendanceToResponse(rec)
	}

	return view, nil
}

// MonthlySummary implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) MonthlySummary(ctx context.Context, employeeID string, year, month int) (attendance.MonthlySummaryResponse, error) {
	if err := validateMonthArgs(employeeID, year, month); err != nil {
		return attendance.MonthlySummaryResponse{}, err
	}

	records, err := a.AttendanceRepository.ListByMonth(ctx, employeeID, year, time.Month(month))
	if err != nil {
		return attendance.MonthlySummaryResponse{}, fmt.Errorf("failed to list attendance for summary: %w", err)
	}

	summary := Summarize(records)

	return attendance.MonthlySummaryResponse{
		TotalDays:        summary.TotalDays,
		TotalHours:       summary.TotalHours,
		AverageHours:     summary.AverageHours,
		CompleteDays:     summary.CompleteDays,
		InsufficientDays: summary.InsufficientDays,
		TotalOvertime:    summary.TotalOvertime,
		TotalLateMinutes: summary.TotalLateMinutes,
	}, nil
}

// Approve implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Approve(ctx context.Context, employeeID string, dateStr string) (attendance.AttendanceResponse, error) {
	date, err := parseKeyArgs(employeeID, dateStr)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	if err := a.AttendanceRepository.Approve(ctx, employeeID, date); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to approve attendance: %w", err)
	}

	updated, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, date)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get approved attendance: %w", err)
	}

	return mapAttendanceToResponse(updated), nil
}

// Delete implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Delete(ctx context.Context, employeeID string, dateStr string) error {
	date, err := parseKeyArgs(employeeID, dateStr)
	if err != nil {
		return err
	}

	if err := a.AttendanceRepository.Delete(ctx, employeeID, date); err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.ErrAttendanceNotFound
		}
		return fmt.Errorf("failed to delete attendance: %w", err)
	}

	return nil
}

func validateMonthArgs(employeeID string, year, month int) error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	if year < 2000 || year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year must be between 2000 and 2100",
		})
	}
	if month < 1 || month > 12 {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

func parseKeyArgs(employeeID string, dateStr string) (time.Time, error) {
	var errs validator.ValidationErrors

	if validator.IsEmpty(employeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}
	date, ok := validator.IsValidDate(dateStr)
	if !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "date must be in YYYY-MM-DD format",
		})
	}

	if len(errs) > 0 {
		return time.Time{}, errs
	}
	return date, nil
}

// mapAttendanceToResponse converts an Attendance entity to AttendanceResponse
func mapAttendanceToResponse(att attendance.Attendance) attendance.AttendanceResponse {
	return attendance.AttendanceResponse{
		ID:                  att.ID,
		EmployeeID:          att.EmployeeID,
		Date:                att.Date.Format("2006-01-02"),
		ClockIn:             att.ClockIn,
		ClockOut:            att.ClockOut,
		BreakStart:          att.BreakStart,
		BreakEnd:            att.BreakEnd,
		TotalHours:          att.TotalHours,
		BreakHours:          att.BreakHours,
		OvertimeHours:       att.OvertimeHours,
		LateMinutes:         att.LateMinutes,
		EarlyLeavingMinutes: att.EarlyLeavingMinutes,
		Status:              att.Status,
		WorkFromHome:        att.WorkFromHome,
		Location:            att.Location,
		Notes:               att.Notes,
		Latitude:            att.Latitude,
		Longitude:           att.Longitude,
		LocationAccuracy:    att.LocationAccuracy,
		IsWithinGeofence:    att.IsWithinGeofence,
		WorkLocationID:      att.WorkLocationID,
		WorkLocationName:    att.WorkLocationName,
		WorkLocationAddress: att.WorkLocationAddress,
		DistanceFromWork:    att.DistanceFromWork,
		IsApproved:          att.IsApproved,
	}
}

func NewAttendanceService(
	db *database.DB,
	attendanceRepo attendance.AttendanceRepository,
	workLocationRepo worklocation.WorkLocationRepository,
	accuracyThresholdMeters float64,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                      db,
		AttendanceRepository:    attendanceRepo,
		WorkLocationRepository:  workLocationRepo,
		accuracyThresholdMeters: accuracyThresholdMeters,
	}
}
