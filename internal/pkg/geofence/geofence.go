// Package geofence decides whether a reported position counts as "at work".
//
// Resolution is a pure computation over a caller-supplied snapshot of work
// locations; nothing here touches the network or the database.
package geofence

import (
	"math"

	"github.com/hrportal/hr-backend-go/internal/domain/worklocation"
	"github.com/hrportal/hr-backend-go/internal/pkg/geo"
)

// Point is a reported position.
type Point struct {
	Latitude  float64
	Longitude float64
}

// Candidate pairs a work location with the distance to the reported point.
type Candidate struct {
	Location       worklocation.WorkLocation
	DistanceMeters int
}

// Result is the outcome of a single resolution. It is produced per evaluation
// and never persisted.
//
// When Within is true, Matched holds the containing location and
// DistanceMeters the distance to its center. When Within is false and the
// zone set was non-empty, Closest holds the nearest location for caller
// guidance. An empty zone set yields a zero-value Result with Within false
// and no Closest.
type Result struct {
	Within         bool
	Matched        *Candidate
	Closest        *Candidate
	DistanceMeters int
}

// Resolve scans all supplied locations and reports containment.
//
// Containment means the haversine distance to a location's center does not
// exceed its radius. When several locations contain the point, the closest
// one wins; the scan order of the snapshot does not matter. Distances are
// reported as whole meters.
func Resolve(point Point, locations []worklocation.WorkLocation) Result {
	var (
		matched    *Candidate
		closest    *Candidate
		minMatched = math.Inf(1)
		minOverall = math.Inf(1)
	)

	for _, loc := range locations {
		distance := geo.HaversineDistance(point.Latitude, point.Longitude, loc.Latitude, loc.Longitude)

		if distance < minOverall {
			minOverall = distance
			closest = &Candidate{Location: loc, DistanceMeters: int(math.Round(distance))}
		}

		if distance <= float64(loc.RadiusMeters) && distance < minMatched {
			minMatched = distance
			matched = &Candidate{Location: loc, DistanceMeters: int(math.Round(distance))}
		}
	}

	if matched != nil {
		return Result{
			Within:         true,
			Matched:        matched,
			DistanceMeters: matched.DistanceMeters,
		}
	}

	if closest == nil {
		// Empty snapshot: not within, distance undefined.
		return Result{}
	}

	return Result{
		Within:         false,
		Closest:        closest,
		DistanceMeters: closest.DistanceMeters,
	}
}
