package worklocation

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/hrportal/hr-backend-go/internal/domain/worklocation"
	"github.com/hrportal/hr-backend-go/internal/pkg/database"
	"github.com/hrportal/hr-backend-go/internal/pkg/geofence"
	"github.com/hrportal/hr-backend-go/internal/pkg/validator"
)

// defaultRadiusMeters applies when a location is created without a radius.
const defaultRadiusMeters = 100

type WorkLocationServiceImpl struct {
	db *database.DB
	worklocation.WorkLocationRepository

	// GPS accuracy above this many meters makes a validation check inconclusive.
	accuracyThresholdMeters float64
}

// Create implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) Create(ctx context.Context, req worklocation.CreateWorkLocationRequest) (worklocation.WorkLocationResponse, error) {
	if err := req.Validate(); err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	radius := req.RadiusMeters
	if radius == 0 {
		radius = defaultRadiusMeters
	}

	loc := worklocation.WorkLocation{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Address:      req.Address,
		Latitude:     req.Latitude,
		Longitude:    req.Longitude,
		RadiusMeters: radius,
		IsActive:     true,
	}

	created, err := s.WorkLocationRepository.Create(ctx, loc)
	if err != nil {
		return worklocation.WorkLocationResponse{}, fmt.Errorf("failed to create work location: %w", err)
	}

	return mapWorkLocationToResponse(created), nil
}

// Get implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) Get(ctx context.Context, id string) (worklocation.WorkLocationResponse, error) {
	if !validator.IsValidUUID(id) {
		return worklocation.WorkLocationResponse{}, worklocation.ErrWorkLocationNotFound
	}

	loc, err := s.WorkLocationRepository.GetByID(ctx, id)
	if err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	return mapWorkLocationToResponse(loc), nil
}

// List implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) List(ctx context.Context) ([]worklocation.WorkLocationResponse, error) {
	locations, err := s.WorkLocationRepository.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list work locations: %w", err)
	}

	responses := make([]worklocation.WorkLocationResponse, 0, len(locations))
	for _, loc := range locations {
		responses = append(responses, mapWorkLocationToResponse(loc))
	}

	return responses, nil
}

// Update implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) Update(ctx context.Context, req worklocation.UpdateWorkLocationRequest) (worklocation.WorkLocationResponse, error) {
	if err := req.Validate(); err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	if err := s.WorkLocationRepository.Update(ctx, req); err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	loc, err := s.WorkLocationRepository.GetByID(ctx, req.ID)
	if err != nil {
		return worklocation.WorkLocationResponse{}, err
	}

	return mapWorkLocationToResponse(loc), nil
}

// Delete implements worklocation.WorkLocationService.
func (s *WorkLocationServiceImpl) Delete(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return worklocation.ErrWorkLocationNotFound
	}

	return s.WorkLocationRepository.Delete(ctx, id)
}

// ValidateLocation implements worklocation.WorkLocationService.
//
// It runs the same accuracy gate and geofence resolution a clock event would,
// but persists nothing, so the client can show the user where they stand
// before committing an attendance record.
func (s *WorkLocationServiceImpl) ValidateLocation(ctx context.Context, req worklocation.ValidateLocationRequest) (worklocation.LocationCheckResponse, error) {
	if err := req.Validate(); err != nil {
		return worklocation.LocationCheckResponse{}, err
	}

	check := worklocation.LocationCheckResponse{
		IsAccurate: true,
		Accuracy:   req.Accuracy,
	}

	if req.Accuracy != nil && *req.Accuracy > s.accuracyThresholdMeters {
		check.IsAccurate = false
		return check, nil
	}

	zones, err := s.WorkLocationRepository.ListActive(ctx)
	if err != nil {
		return worklocation.LocationCheckResponse{}, fmt.Errorf("failed to load active work locations: %w", err)
	}

	result := geofence.Resolve(geofence.Point{
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}, zones)

	if result.Within {
		matched := mapWorkLocationToResponse(result.Matched.Location)
		distance := result.Matched.DistanceMeters
		check.IsWithinGeofence = true
		check.WorkLocation = &matched
		check.DistanceMeters = &distance
		return check, nil
	}

	if result.Closest != nil {
		closest := mapWorkLocationToResponse(result.Closest.Location)
		distance := result.Closest.DistanceMeters
		check.ClosestLocation = &closest
		check.DistanceMeters = &distance
	}

	return check, nil
}

func mapWorkLocationToResponse(loc worklocation.WorkLocation) worklocation.WorkLocationResponse {
	return worklocation.WorkLocationResponse{
		ID:           loc.ID,
		Name:         loc.Name,
		Address:      loc.Address,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		RadiusMeters: loc.RadiusMeters,
		IsActive:     loc.IsActive,
	}
}

// NewWorkLocationService creates a new work location service instance
func NewWorkLocationService(
	db *database.DB,
	workLocationRepo worklocation.WorkLocationRepository,
	accuracyThresholdMeters float64,
) worklocation.WorkLocationService {
	return &WorkLocationServiceImpl{
		db:                      db,
		WorkLocationRepository:  workLocationRepo,
		accuracyThresholdMeters: accuracyThresholdMeters,
	}
}
