package models

import (
	"fmt"
	"strconv"
	"strings"
)

// Coordinate is a WGS84 point in degrees. Treated as an immutable value.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// ParseCoordinate parses a "lat,lon" string as sent by the frontend.
func ParseCoordinate(s string) (Coordinate, error) {
	parts := strings.Split(strings.TrimSpace(s), ",")
	if len(parts) != 2 {
		return Coordinate{}, fmt.Errorf("invalid coordinate %q: want \"lat,lon\"", s)
	}

	lat, err := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid latitude %q", parts[0])
	}
	lon, err := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err != nil {
		return Coordinate{}, fmt.Errorf("invalid longitude %q", parts[1])
	}

	if lat < -90 || lat > 90 {
		return Coordinate{}, fmt.Errorf("latitude %f out of range", lat)
	}
	if lon < -180 || lon > 180 {
		return Coordinate{}, fmt.Errorf("longitude %f out of range", lon)
	}

	return Coordinate{Lat: lat, Lon: lon}, nil
}
