package gpxexport

import (
	"strings"
	"testing"

	"github.com/tkrajina/gpxgo/gpx"

	"github.com/walkwithme/backend-go/internal/models"
)

func TestBuild(t *testing.T) {
	coords := []models.Coordinate{
		{Lat: 40.730, Lon: -73.997},
		{Lat: 40.733, Lon: -73.991},
		{Lat: 40.735, Lon: -73.985},
	}

	out, err := Build(coords)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	doc, err := gpx.ParseBytes(out)
	if err != nil {
		t.Fatalf("output does not parse as GPX: %v", err)
	}

	if len(doc.Tracks) != 1 || len(doc.Tracks[0].Segments) != 1 {
		t.Fatalf("tracks/segments = %d/%d, want 1/1", len(doc.Tracks), len(doc.Tracks[0].Segments))
	}
	points := doc.Tracks[0].Segments[0].Points
	if len(points) != 3 {
		t.Fatalf("points = %d, want 3", len(points))
	}
	if points[0].Latitude != 40.730 || points[0].Longitude != -73.997 {
		t.Errorf("first point = (%v, %v)", points[0].Latitude, points[0].Longitude)
	}
	if !strings.Contains(string(out), `version="1.1"`) {
		t.Error("expected GPX 1.1 document")
	}
}

func TestBuildEmpty(t *testing.T) {
	if _, err := Build(nil); err == nil {
		t.Fatal("expected error for empty coordinate list")
	}
}
