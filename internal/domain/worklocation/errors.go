package worklocation

import "errors"

// Work location domain errors
var (
	ErrWorkLocationNotFound = errors.New("work location not found")
	ErrNoActiveLocations    = errors.New("no active work locations configured")
)
