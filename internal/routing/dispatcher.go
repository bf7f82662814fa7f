package routing

import (
	"context"
	"log"
	"math/rand"

	"github.com/pkg/errors"

	"github.com/walkwithme/backend-go/internal/elevation"
	"github.com/walkwithme/backend-go/internal/graph"
	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/spatial"
	"github.com/walkwithme/backend-go/internal/weather"
)

// DefaultLoopDuration is the loop walk duration when the caller gives none.
const DefaultLoopDuration = 20

// WeatherService classifies current conditions at a point.
type WeatherService interface {
	Current(ctx context.Context, lat, lon float64) weather.Condition
}

// DaylightService reports whether it is night at a point.
type DaylightService interface {
	IsNight(ctx context.Context, lat, lon float64) bool
}

// Planner is the route dispatcher: one generic point-to-point pipeline
// parametrized by a weight model, plus the loop synthesizer. It holds no
// per-request state and is safe for concurrent use.
type Planner struct {
	loader   GraphLoader
	elev     elevation.Service
	analyzer *elevation.Analyzer
	weather  WeatherService
	daylight DaylightService
	randIntn func(n int) int
}

// NewPlanner wires the dispatcher to its collaborators.
func NewPlanner(loader GraphLoader, elev elevation.Service, w WeatherService, d DaylightService) *Planner {
	return &Planner{
		loader:   loader,
		elev:     elev,
		analyzer: elevation.NewAnalyzer(elev),
		weather:  w,
		daylight: d,
		randIntn: rand.Intn,
	}
}

// ComputeRoute resolves a request to a RouteResult or a structured
// *RouteError. The mode fully selects the pipeline; every call terminates
// with one or the other, never partial output.
func (p *Planner) ComputeRoute(ctx context.Context, start models.Coordinate, end *models.Coordinate, mode models.Mode, durationMinutes int) (*models.RouteResult, error) {
	if !models.ValidMode(mode) {
		return nil, newRouteError(KindInvalidMode,
			"Invalid mode. Choose from shortest, safe, scenic, explore, elevation, best, loop.", nil)
	}

	if mode == models.ModeLoop {
		if durationMinutes <= 0 {
			durationMinutes = DefaultLoopDuration
		}
		return p.loopRoute(ctx, start, durationMinutes)
	}

	if end == nil {
		return nil, newRouteError(KindEmptyInput, "Missing end coordinate.", nil)
	}

	log.Printf("[dispatcher] mode=%s start=(%.5f,%.5f) end=(%.5f,%.5f)",
		mode, start.Lat, start.Lon, end.Lat, end.Lon)

	g, err := SelectRegion(ctx, p.loader, start, end)
	if err != nil {
		return nil, err
	}

	table, blend, err := p.weightTable(ctx, g, mode, start)
	if err != nil {
		return nil, err
	}

	orig, err := g.NearestNode(start.Lat, start.Lon)
	if err != nil {
		return nil, errSnapFailed(err)
	}
	dest, err := g.NearestNode(end.Lat, end.Lon)
	if err != nil {
		return nil, errSnapFailed(err)
	}

	path, err := g.ShortestPath(orig, dest, table)
	if err != nil {
		if errors.Is(err, graph.ErrNoPath) {
			return nil, errNoPath(err, noPathHints(mode)...)
		}
		return nil, errSnapFailed(err)
	}

	coords := g.Coordinates(path.Nodes)
	profile := p.analyzer.Analyze(ctx, coords)

	return &models.RouteResult{
		Mode:        mode,
		Start:       start,
		End:         end,
		Coordinates: coords,
		DistanceM:   spatial.Round2(path.LengthM(g)),
		Weights:     blend,
		Elevation:   &profile,
	}, nil
}

// weightTable builds the cost table for the mode. Only the best mode
// returns a non-nil blend, which the result echoes back to the caller.
func (p *Planner) weightTable(ctx context.Context, g *graph.Graph, mode models.Mode, start models.Coordinate) (WeightTable, *models.WeightBlend, error) {
	switch mode {
	case models.ModeShortest:
		return ShortestWeights(g), nil, nil

	case models.ModeSafe:
		// Day/night resolved by the daylight signal; lookup failure
		// already defaults to day inside the service.
		if p.daylight.IsNight(ctx, start.Lat, start.Lon) {
			log.Printf("[dispatcher] safe mode resolved to night ruleset")
			return SafetyNightWeights(g), nil, nil
		}
		return SafetyDayWeights(g), nil, nil

	case models.ModeScenic:
		return ScenicWeights(g), nil, nil

	case models.ModeExplore:
		return ExploreWeights(g), nil, nil

	case models.ModeElevation:
		elevs := p.nodeElevations(ctx, g)
		return SlopeWeights(g, elevs), nil, nil

	case models.ModeBest:
		cond := p.weather.Current(ctx, start.Lat, start.Lon)
		night := p.daylight.IsNight(ctx, start.Lat, start.Lon)
		blend := BlendFor(cond, night)
		log.Printf("[dispatcher] best mode: weather=%s night=%v blend=%+v", cond, night, blend)
		return CombinedWeights(g, blend), &blend, nil

	default:
		return nil, nil, newRouteError(KindInvalidMode, "Unhandled mode.", nil)
	}
}

// nodeElevations annotates every graph node through the same chunked batch
// interface the profile analyzer uses. The result is a request-scoped side
// map; nothing is written onto the graph.
func (p *Planner) nodeElevations(ctx context.Context, g *graph.Graph) map[int64]float64 {
	ids := g.NodeIDs()
	coords := make([]models.Coordinate, 0, len(ids))
	for _, id := range ids {
		n, _ := g.Node(id)
		coords = append(coords, models.Coordinate{Lat: n.Lat, Lon: n.Lon})
	}

	values := p.elev.LookupBatch(ctx, coords)

	elevs := make(map[int64]float64, len(ids))
	for i, id := range ids {
		if i < len(values) {
			elevs[id] = values[i]
		}
	}
	return elevs
}

// noPathHints returns the remediation suggestions for a disconnected pair.
// Shortest mode carries the detailed cross-water guidance.
func noPathHints(mode models.Mode) []string {
	if mode == models.ModeShortest {
		return []string{
			"This route may cross water or highways.",
			"For NYC ↔ NJ: Use PATH train or Ferry.",
			"Choose a route near a walkable bridge.",
		}
	}
	return nil
}
