package routing

import (
	"context"

	"github.com/walkwithme/backend-go/internal/graph"
	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/weather"
)

// pointCall records one LoadByPoint invocation.
type pointCall struct {
	lat, lon, radiusM float64
}

// stubLoader hands back a fixed graph and records how it was asked for.
type stubLoader struct {
	g          *graph.Graph
	err        error
	pointCalls []pointCall
	bboxCalls  int
}

func (s *stubLoader) LoadByPoint(_ context.Context, lat, lon, radiusM float64) (*graph.Graph, error) {
	s.pointCalls = append(s.pointCalls, pointCall{lat, lon, radiusM})
	return s.g, s.err
}

func (s *stubLoader) LoadByBBox(_ context.Context, _, _, _, _ float64) (*graph.Graph, error) {
	s.bboxCalls++
	return s.g, s.err
}

// stubElevation returns a fixed elevation for every coordinate.
type stubElevation struct {
	value   float64
	byCoord func(models.Coordinate) float64
}

func (s *stubElevation) LookupBatch(_ context.Context, coords []models.Coordinate) []float64 {
	out := make([]float64, len(coords))
	for i, c := range coords {
		if s.byCoord != nil {
			out[i] = s.byCoord(c)
		} else {
			out[i] = s.value
		}
	}
	return out
}

// stubWeather reports a fixed condition.
type stubWeather struct {
	cond weather.Condition
}

func (s *stubWeather) Current(_ context.Context, _, _ float64) weather.Condition {
	if s.cond == "" {
		return weather.ConditionClear
	}
	return s.cond
}

// stubDaylight reports a fixed night flag.
type stubDaylight struct {
	night bool
}

func (s *stubDaylight) IsNight(_ context.Context, _, _ float64) bool {
	return s.night
}

// newTestPlanner builds a planner over the stubs with deterministic
// midpoint selection.
func newTestPlanner(loader *stubLoader, elev *stubElevation, w *stubWeather, d *stubDaylight) *Planner {
	p := NewPlanner(loader, elev, w, d)
	p.randIntn = func(n int) int { return n / 2 }
	return p
}

// diamondGraph builds two routes between nodes 1 and 4: via node 2
// (100+100 m) and via node 3 (150+300 m). Edges are added in both
// directions, as the Overpass parser does.
func diamondGraph() *graph.Graph {
	g := graph.New()
	g.AddNode(graph.Node{ID: 1, Lat: 40.730, Lon: -73.997})
	g.AddNode(graph.Node{ID: 2, Lat: 40.733, Lon: -73.991})
	g.AddNode(graph.Node{ID: 3, Lat: 40.728, Lon: -73.990})
	g.AddNode(graph.Node{ID: 4, Lat: 40.735, Lon: -73.985})

	addBoth(g, graph.Edge{From: 1, To: 2, LengthM: 100})
	addBoth(g, graph.Edge{From: 2, To: 4, LengthM: 100})
	addBoth(g, graph.Edge{From: 1, To: 3, LengthM: 150})
	addBoth(g, graph.Edge{From: 3, To: 4, LengthM: 300})
	return g
}

func addBoth(g *graph.Graph, e graph.Edge) {
	g.AddEdge(e)
	g.AddEdge(graph.Edge{From: e.To, To: e.From, LengthM: e.LengthM, Tags: e.Tags})
}

// taggedGraph builds a single-segment graph whose one way carries the
// given tags, in both directions.
func taggedGraph(tags graph.Tags, lengthM float64) *graph.Graph {
	g := graph.New()
	g.AddNode(graph.Node{ID: 1, Lat: 40.730, Lon: -73.997})
	g.AddNode(graph.Node{ID: 2, Lat: 40.731, Lon: -73.996})
	addBoth(g, graph.Edge{From: 1, To: 2, LengthM: lengthM, Tags: tags})
	return g
}
