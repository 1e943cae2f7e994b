package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/hrportal/hr-backend-go/internal/domain/attendance"
	"github.com/hrportal/hr-backend-go/internal/domain/worklocation"
	"github.com/hrportal/hr-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Geofence rejections carry the numbers the client needs to guide the user.
	var geofenceErr *attendance.OutsideGeofenceError
	if errors.As(err, &geofenceErr) {
		BadRequest(w, geofenceErr.Error(), map[string]string{
			"distance_meters":        strconv.Itoa(geofenceErr.DistanceMeters),
			"required_radius_meters": strconv.Itoa(geofenceErr.RequiredRadiusMeters),
			"closest_location":       geofenceErr.ClosestLocationName,
		})
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInaccurateLocation):
		BadRequest(w, "Location accuracy is too low, please enable precise location and try again", nil)

	// Work location domain errors
	case errors.Is(err, worklocation.ErrWorkLocationNotFound):
		NotFound(w, "Work location not found")
	case errors.Is(err, worklocation.ErrNoActiveLocations):
		BadRequest(w, "No active work locations are configured", nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
