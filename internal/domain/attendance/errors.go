package attendance

import (
	"errors"
	"fmt"
)

// Attendance domain errors
var (
	ErrAttendanceNotFound = errors.New("attendance record not found")

	// ErrInaccurateLocation is a precondition rejection: the reported GPS
	// accuracy exceeds the allowed threshold, so no geofence evaluation or
	// persistence is attempted.
	ErrInaccurateLocation = errors.New("location accuracy is too low, please try again in an open area")
)

// OutsideGeofenceError is a policy rejection: the reported position resolved
// outside every active work location. It carries the context the caller needs
// for actionable feedback.
type OutsideGeofenceError struct {
	DistanceMeters       int
	RequiredRadiusMeters int
	ClosestLocationName  string
}

func (e *OutsideGeofenceError) Error() string {
	if e.ClosestLocationName == "" {
		return "you are outside every active work location"
	}
	return fmt.Sprintf("you are %dm away from %s, please move within %dm to clock in",
		e.DistanceMeters, e.ClosestLocationName, e.RequiredRadiusMeters)
}
