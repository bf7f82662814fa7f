package routing

import (
	"context"

	"github.com/walkwithme/backend-go/internal/graph"
	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/spatial"
)

// Region sizing constants (meters).
const (
	loopRadiusM     = 3000 // local disc for loop walks
	minPointRadiusM = 3000 // floor for the point-radius strategy
	bboxBufferM     = 3000 // expansion around a long-haul bounding box
	bboxThresholdM  = 5000 // start→end distance at which bbox takes over
	radiusSlackM    = 3000 // extra margin beyond half the start→end distance
)

// GraphLoader materializes a street-network graph for a region. Implemented
// by the Overpass client (optionally behind its cache) and by test stubs.
type GraphLoader interface {
	LoadByPoint(ctx context.Context, lat, lon, radiusM float64) (*graph.Graph, error)
	LoadByBBox(ctx context.Context, north, south, east, west float64) (*graph.Graph, error)
}

// SelectRegion picks the region-loading strategy and fetches the graph.
//
// Without an end the request is a loop: a fixed 3 km disc around start.
// With an end, short hops use a disc at the midpoint sized to cover both
// points; anything from 5 km up switches to a buffered bounding box. An
// empty result is a hard NetworkNotFound failure, never retried here.
func SelectRegion(ctx context.Context, loader GraphLoader, start models.Coordinate, end *models.Coordinate) (*graph.Graph, error) {
	if end == nil {
		g, err := loader.LoadByPoint(ctx, start.Lat, start.Lon, loopRadiusM)
		return checkRegion(g, err)
	}

	d := spatial.HaversineDistance(start.Lat, start.Lon, end.Lat, end.Lon)

	if d < bboxThresholdM {
		radius := d/2 + radiusSlackM
		if radius < minPointRadiusM {
			radius = minPointRadiusM
		}
		midLat, midLon := spatial.Midpoint(start.Lat, start.Lon, end.Lat, end.Lon)
		g, err := loader.LoadByPoint(ctx, midLat, midLon, radius)
		return checkRegion(g, err)
	}

	box := spatial.BoundingBoxAround(start.Lat, start.Lon, end.Lat, end.Lon, bboxBufferM)
	g, err := loader.LoadByBBox(ctx, box.North, box.South, box.East, box.West)
	return checkRegion(g, err)
}

// checkRegion converts loader failures and empty graphs into the structured
// NetworkNotFound error.
func checkRegion(g *graph.Graph, err error) (*graph.Graph, error) {
	if err != nil {
		return nil, errNetworkNotFound(err)
	}
	if g.IsEmpty() {
		return nil, errNetworkNotFound(nil)
	}
	return g, nil
}
