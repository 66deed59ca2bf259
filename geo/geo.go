// Package geo provides great-circle distance between geographic coordinates.
//
// The geodesic A* heuristic uses Haversine as its estimate: a straight-line
// (great-circle) distance never overestimates a route whose edge weights are
// at least the real-world travel distance they represent, which is exactly
// the admissibility precondition documented on astar.Geodesic.
//
// Complexity: O(1) per call, a handful of trigonometric operations.
package geo

import (
	"math"

	"github.com/katalvlaran/lvlpath/core"
)

// EarthRadiusMeters is the mean spherical earth radius used by Haversine.
const EarthRadiusMeters = 6371.0 * 1000

// Haversine returns the great-circle distance between a and b in meters,
// assuming a spherical earth of radius EarthRadiusMeters.
//
// The result is always ≥ 0 and is 0 when a == b.
func Haversine(a, b core.Coord) float64 {
	phi1 := radians(a.Lat)
	phi2 := radians(b.Lat)
	dPhi := radians(b.Lat - a.Lat)
	dLambda := radians(b.Lon - a.Lon)

	s := math.Sin(dPhi/2)*math.Sin(dPhi/2) +
		math.Cos(phi1)*math.Cos(phi2)*
			math.Sin(dLambda/2)*math.Sin(dLambda/2)
	c := 2 * math.Atan2(math.Sqrt(s), math.Sqrt(1-s))

	return EarthRadiusMeters * c
}

// radians converts decimal degrees to radians.
func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
