package routing

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/walkwithme/backend-go/internal/models"
)

func TestSelectRegionLoop(t *testing.T) {
	loader := &stubLoader{g: diamondGraph()}
	start := models.Coordinate{Lat: 40.730, Lon: -73.997}

	if _, err := SelectRegion(context.Background(), loader, start, nil); err != nil {
		t.Fatalf("SelectRegion: %v", err)
	}

	if len(loader.pointCalls) != 1 || loader.bboxCalls != 0 {
		t.Fatalf("calls = %d point, %d bbox, want 1 point only", len(loader.pointCalls), loader.bboxCalls)
	}
	call := loader.pointCalls[0]
	if call.lat != start.Lat || call.lon != start.Lon || call.radiusM != 3000 {
		t.Errorf("loop call = %+v, want start point with 3000 m radius", call)
	}
}

func TestSelectRegionCoincidentEndpoints(t *testing.T) {
	loader := &stubLoader{g: diamondGraph()}
	start := models.Coordinate{Lat: 40.730, Lon: -73.997}
	end := start

	if _, err := SelectRegion(context.Background(), loader, start, &end); err != nil {
		t.Fatalf("SelectRegion: %v", err)
	}

	if len(loader.pointCalls) != 1 {
		t.Fatalf("point calls = %d, want 1", len(loader.pointCalls))
	}
	call := loader.pointCalls[0]
	if call.radiusM != 3000 {
		t.Errorf("radius = %v, want floor of 3000 m", call.radiusM)
	}
	if math.Abs(call.lat-start.Lat) > 1e-9 || math.Abs(call.lon-start.Lon) > 1e-9 {
		t.Errorf("midpoint = (%v, %v), want start itself", call.lat, call.lon)
	}
}

func TestSelectRegionShortHop(t *testing.T) {
	loader := &stubLoader{g: diamondGraph()}
	start := models.Coordinate{Lat: 40.730, Lon: -73.997}
	// Roughly 1.3 km north: well under the bbox threshold.
	end := models.Coordinate{Lat: 40.742, Lon: -73.997}

	if _, err := SelectRegion(context.Background(), loader, start, &end); err != nil {
		t.Fatalf("SelectRegion: %v", err)
	}

	if len(loader.pointCalls) != 1 || loader.bboxCalls != 0 {
		t.Fatalf("calls = %d point, %d bbox, want point strategy", len(loader.pointCalls), loader.bboxCalls)
	}
	call := loader.pointCalls[0]
	if call.radiusM <= 3000 || call.radiusM >= 5500 {
		t.Errorf("radius = %v, want half-distance plus slack", call.radiusM)
	}
	if call.lat <= start.Lat || call.lat >= end.Lat {
		t.Errorf("midpoint lat = %v, want between %v and %v", call.lat, start.Lat, end.Lat)
	}
}

func TestSelectRegionLongHaulBBox(t *testing.T) {
	loader := &stubLoader{g: diamondGraph()}
	start := models.Coordinate{Lat: 40.730, Lon: -73.997}
	// Roughly 10 km north: past the 5 km threshold.
	end := models.Coordinate{Lat: 40.820, Lon: -73.997}

	if _, err := SelectRegion(context.Background(), loader, start, &end); err != nil {
		t.Fatalf("SelectRegion: %v", err)
	}

	if loader.bboxCalls != 1 || len(loader.pointCalls) != 0 {
		t.Fatalf("calls = %d point, %d bbox, want bbox strategy", len(loader.pointCalls), loader.bboxCalls)
	}
}

func TestSelectRegionEmptyGraph(t *testing.T) {
	loader := &stubLoader{g: nil}
	start := models.Coordinate{Lat: 40.730, Lon: -73.997}

	_, err := SelectRegion(context.Background(), loader, start, nil)
	if err == nil {
		t.Fatal("expected error for empty graph")
	}

	var rerr *RouteError
	if !errors.As(err, &rerr) {
		t.Fatalf("error type = %T, want *RouteError", err)
	}
	if rerr.Kind != KindNetworkNotFound {
		t.Errorf("kind = %q, want %q", rerr.Kind, KindNetworkNotFound)
	}
	if len(rerr.Hints) == 0 {
		t.Error("expected recovery hints")
	}
}

func TestSelectRegionLoaderError(t *testing.T) {
	cause := errors.New("overpass: status 504")
	loader := &stubLoader{err: cause}
	start := models.Coordinate{Lat: 40.730, Lon: -73.997}

	_, err := SelectRegion(context.Background(), loader, start, nil)

	var rerr *RouteError
	if !errors.As(err, &rerr) {
		t.Fatalf("error type = %T, want *RouteError", err)
	}
	if rerr.Kind != KindNetworkNotFound {
		t.Errorf("kind = %q, want %q", rerr.Kind, KindNetworkNotFound)
	}
	if !errors.Is(err, cause) {
		t.Error("expected wrapped loader error")
	}
}
