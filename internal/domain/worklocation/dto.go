package worklocation

import (
	"github.com/hrportal/hr-backend-go/internal/pkg/validator"
)

// ========================================
// WORK LOCATION DTOs
// ========================================

type CreateWorkLocationRequest struct {
	Name         string  `json:"name"`
	Address      *string `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
}

func (r *CreateWorkLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if r.RadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UpdateWorkLocationRequest struct {
	ID           string   `json:"-"`
	Name         *string  `json:"name"`
	Address      *string  `json:"address"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`
	RadiusMeters *int     `json:"radius_meters"`
	IsActive     *bool    `json:"is_active"`
}

func (r *UpdateWorkLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
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

	if r.RadiusMeters != nil && *r.RadiusMeters < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "radius_meters",
			Message: "radius_meters must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type WorkLocationResponse struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Address      *string `json:"address"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
	RadiusMeters int     `json:"radius_meters"`
	IsActive     bool    `json:"is_active"`
}

type ValidateLocationRequest struct {
	Latitude  float64  `json:"latitude"`
	Longitude float64  `json:"longitude"`
	Accuracy  *float64 `json:"accuracy"`
}

func (r *ValidateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
