package spatial

import (
	"math"
	"testing"
)

func TestHaversineDistance(t *testing.T) {
	// Union Square → Washington Square Park, roughly 770 m
	d := HaversineDistance(40.7359, -73.9911, 40.7308, -73.9973)
	if d < 700 || d > 850 {
		t.Errorf("HaversineDistance = %f, expected ~770m", d)
	}

	// Zero distance for identical points
	if d := HaversineDistance(40.73, -73.99, 40.73, -73.99); d != 0 {
		t.Errorf("distance between identical points = %f, expected 0", d)
	}
}

func TestMidpoint(t *testing.T) {
	lat, lon := Midpoint(40.0, -74.0, 41.0, -73.0)
	if math.Abs(lat-40.5) > 0.01 {
		t.Errorf("midpoint lat = %f, expected ~40.5", lat)
	}
	if math.Abs(lon-(-73.5)) > 0.01 {
		t.Errorf("midpoint lon = %f, expected ~-73.5", lon)
	}
}

func TestPathLengthMeters(t *testing.T) {
	points := [][2]float64{
		{40.730, -73.997},
		{40.732, -73.995},
		{40.735, -73.985},
	}

	total := PathLengthMeters(points)
	sum := HaversineDistance(40.730, -73.997, 40.732, -73.995) +
		HaversineDistance(40.732, -73.995, 40.735, -73.985)

	if math.Abs(total-sum) > 1e-9 {
		t.Errorf("PathLengthMeters = %f, expected %f", total, sum)
	}

	if PathLengthMeters(nil) != 0 {
		t.Error("empty path should have zero length")
	}
}

func TestBoundingBoxAround(t *testing.T) {
	box := BoundingBoxAround(40.730, -73.997, 40.735, -73.985, 3000)

	wantLatBuf := 3000.0 / MetersPerDegreeLat
	wantLonBuf := 3000.0 / MetersPerDegreeLon

	if math.Abs(box.North-(40.735+wantLatBuf)) > 1e-9 {
		t.Errorf("North = %f", box.North)
	}
	if math.Abs(box.South-(40.730-wantLatBuf)) > 1e-9 {
		t.Errorf("South = %f", box.South)
	}
	if math.Abs(box.East-(-73.985+wantLonBuf)) > 1e-9 {
		t.Errorf("East = %f", box.East)
	}
	if math.Abs(box.West-(-73.997-wantLonBuf)) > 1e-9 {
		t.Errorf("West = %f", box.West)
	}

	// Argument order must not matter
	swapped := BoundingBoxAround(40.735, -73.985, 40.730, -73.997, 3000)
	if box != swapped {
		t.Errorf("box differs when points are swapped: %+v vs %+v", box, swapped)
	}
}
