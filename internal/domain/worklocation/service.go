package worklocation

import (
	"context"
)

// WorkLocationService defines business logic for work location administration
// and location validation.
type WorkLocationService interface {
	// Create registers a new work location (active by default)
	Create(ctx context.Context, req CreateWorkLocationRequest) (WorkLocationResponse, error)

	// Get retrieves a single work location by ID
	Get(ctx context.Context, id string) (WorkLocationResponse, error)

	// List retrieves all work locations
	List(ctx context.Context) ([]WorkLocationResponse, error)

	// Update updates a work location (partial update)
	Update(ctx context.Context, req UpdateWorkLocationRequest) (WorkLocationResponse, error)

	// Delete removes a work location
	Delete(ctx context.Context, id string) error

	// ValidateLocation checks a reported position against the active geofence
	// snapshot without persisting anything.
	ValidateLocation(ctx context.Context, req ValidateLocationRequest) (LocationCheckResponse, error)
}

// LocationCheckResponse reports the outcome of a geofence preview.
type LocationCheckResponse struct {
	IsAccurate       bool                  `json:"is_accurate"`
	Accuracy         *float64              `json:"accuracy,omitempty"`
	IsWithinGeofence bool                  `json:"is_within_geofence"`
	WorkLocation     *WorkLocationResponse `json:"work_location,omitempty"`
	ClosestLocation  *WorkLocationResponse `json:"closest_location,omitempty"`
	DistanceMeters   *int                  `json:"distance_meters,omitempty"`
}
