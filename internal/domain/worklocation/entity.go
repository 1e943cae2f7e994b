package worklocation

import (
	"time"
)

type WorkLocation struct {
	ID           string
	Name         string
	Address      *string
	Latitude     float64
	Longitude    float64
	RadiusMeters int
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
