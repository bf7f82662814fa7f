package spatial

import (
	"math"

	"github.com/golang/geo/s2"
)

// Constants
const (
	EarthRadiusMeters = 6371000.0 // Earth's mean radius in meters
)

// HaversineDistance calculates the great-circle distance between two points
// in meters using the Haversine formula
func HaversineDistance(lat1, lon1, lat2, lon2 float64) float64 {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)
	return p1.Distance(p2).Radians() * EarthRadiusMeters
}

// Midpoint calculates the midpoint between two points
func Midpoint(lat1, lon1, lat2, lon2 float64) (float64, float64) {
	p1 := s2.LatLngFromDegrees(lat1, lon1)
	p2 := s2.LatLngFromDegrees(lat2, lon2)

	// Use S2 interpolation
	mid := s2.Interpolate(0.5, s2.PointFromLatLng(p1), s2.PointFromLatLng(p2))
	midLatLng := s2.LatLngFromPoint(mid)

	return midLatLng.Lat.Degrees(), midLatLng.Lng.Degrees()
}

// PathLengthMeters accumulates the haversine length of a polyline given as
// (lat, lon) pairs.
func PathLengthMeters(latLons [][2]float64) float64 {
	total := 0.0
	for i := 1; i < len(latLons); i++ {
		total += HaversineDistance(
			latLons[i-1][0], latLons[i-1][1],
			latLons[i][0], latLons[i][1],
		)
	}
	return total
}

// Round2 rounds to 2 decimal places (distances are reported at cm precision)
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round3 rounds to 3 decimal places (slope percents)
func Round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
