// Package geofence decides whether the device is inside the catchment of
// any registered attendance machine. Pure functions only; callers that
// have no location fix must not call Evaluate and should surface a
// location error instead.
package geofence

import (
	"math"

	"github.com/hrmviet/chamcong-go/internal/domain/machine"
)

// earthRadiusMeters is the WGS-84 mean Earth radius.
const earthRadiusMeters = 6371000.0

// Result identifies the matched machine, if any.
type Result struct {
	InRange bool
	Machine *machine.Machine
}

// Distance returns the Haversine great-circle distance between two
// coordinates in meters.
func Distance(a, b machine.Coordinate) float64 {
	dLat := (b.Latitude - a.Latitude) * (math.Pi / 180.0)
	dLon := (b.Longitude - a.Longitude) * (math.Pi / 180.0)

	lat1 := a.Latitude * (math.Pi / 180.0)
	lat2 := b.Latitude * (math.Pi / 180.0)

	h := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	c := 2 * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))

	return earthRadiusMeters * c
}

// Evaluate returns the FIRST machine in list order whose allowed radius
// contains the current coordinate (inclusive boundary). It deliberately
// does not look for the nearest machine: input order is the tie-break,
// matching the backend's registry ordering contract. Machines with NaN
// coordinates or a negative radius are skipped.
func Evaluate(current machine.Coordinate, machines []machine.Machine) Result {
	for i := range machines {
		m := &machines[i]
		if math.IsNaN(m.Coordinate.Latitude) || math.IsNaN(m.Coordinate.Longitude) {
			continue
		}
		if m.AllowedRadiusMeters < 0 {
			continue
		}
		if Distance(current, m.Coordinate) <= m.AllowedRadiusMeters {
			return Result{InRange: true, Machine: m}
		}
	}
	return Result{}
}
