package routing

import (
	"math"
	"testing"

	"github.com/walkwithme/backend-go/internal/graph"
	"github.com/walkwithme/backend-go/internal/weather"
)

// nastyGraph packs edges that trip every multiplicative rule at once,
// including a zero-length edge.
func nastyGraph() *graph.Graph {
	g := graph.New()
	g.AddNode(graph.Node{ID: 1, Lat: 40.730, Lon: -73.997})
	g.AddNode(graph.Node{ID: 2, Lat: 40.731, Lon: -73.996})
	g.AddNode(graph.Node{ID: 3, Lat: 40.732, Lon: -73.995})
	g.AddNode(graph.Node{ID: 4, Lat: 40.733, Lon: -73.994})

	addBoth(g, graph.Edge{From: 1, To: 2, LengthM: 0, Tags: graph.Tags{
		Highway: "primary", Sidewalk: "no", Lit: "no", Surface: "gravel",
	}})
	addBoth(g, graph.Edge{From: 2, To: 3, LengthM: 80, Tags: graph.Tags{
		Highway: "path", Landuse: "industrial", Surface: "dirt",
	}})
	addBoth(g, graph.Edge{From: 3, To: 4, LengthM: 120, Tags: graph.Tags{
		Leisure: "park", Natural: "water", Name: "River Garden Walk", Amenity: "cafe",
	}})
	return g
}

func TestWeightTablesStrictlyPositive(t *testing.T) {
	g := nastyGraph()
	elevs := map[int64]float64{1: 0, 2: 40, 3: 0, 4: -30}

	tables := map[string]WeightTable{
		"shortest":     ShortestWeights(g),
		"safety_day":   SafetyDayWeights(g),
		"safety_night": SafetyNightWeights(g),
		"scenic":       ScenicWeights(g),
		"explore":      ExploreWeights(g),
		"slope":        SlopeWeights(g, elevs),
		"combined":     CombinedWeights(g, BlendFor(weather.ConditionClear, false)),
	}

	for name, table := range tables {
		if len(table) != g.NumEdges() {
			t.Errorf("%s: table length = %d, want %d", name, len(table), g.NumEdges())
		}
		for i, w := range table {
			if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
				t.Errorf("%s: edge %d weight = %v, want strictly positive finite", name, i, w)
			}
		}
	}
}

func TestSafetyNightAtLeastDay(t *testing.T) {
	g := nastyGraph()
	day := SafetyDayWeights(g)
	night := SafetyNightWeights(g)

	for i := range day {
		if night[i] < day[i] {
			t.Errorf("edge %d: night weight %v below day weight %v", i, night[i], day[i])
		}
	}
}

func TestSafetyDayPenalties(t *testing.T) {
	g := taggedGraph(graph.Tags{Highway: "primary", Sidewalk: "no", Surface: "gravel"}, 100)
	table := SafetyDayWeights(g)

	// 100 * 2.0 * 2.5 * 1.5
	want := 750.0
	if math.Abs(table[0]-want) > 1e-9 {
		t.Errorf("weight = %v, want %v", table[0], want)
	}
}

func TestScenicRewardsParks(t *testing.T) {
	park := ScenicWeights(taggedGraph(graph.Tags{Leisure: "park", Highway: "footway"}, 100))
	industrial := ScenicWeights(taggedGraph(graph.Tags{Landuse: "industrial", Highway: "primary"}, 100))

	if park[0] >= 100 {
		t.Errorf("park edge weight %v, want below base length", park[0])
	}
	if industrial[0] <= 100 {
		t.Errorf("industrial edge weight %v, want above base length", industrial[0])
	}
}

func TestExploreNameKeywords(t *testing.T) {
	plain := ExploreWeights(taggedGraph(graph.Tags{Highway: "residential"}, 100))
	riverside := ExploreWeights(taggedGraph(graph.Tags{Highway: "residential", Name: "Riverside Park Lane"}, 100))

	if riverside[0] >= plain[0] {
		t.Errorf("riverside weight %v not below plain %v", riverside[0], plain[0])
	}
}

func TestSlopeWeightsAsymmetry(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: 1, Lat: 40.730, Lon: -73.997})
	g.AddNode(graph.Node{ID: 2, Lat: 40.731, Lon: -73.996})
	addBoth(g, graph.Edge{From: 1, To: 2, LengthM: 100})

	// 10 m rise over 100 m: slope +0.1 uphill, -0.1 downhill.
	elevs := map[int64]float64{1: 0, 2: 10}
	table := SlopeWeights(g, elevs)

	var up, down float64
	for i, e := range g.Edges() {
		if e.From == 1 {
			up = table[i]
		} else {
			down = table[i]
		}
	}

	if math.Abs(up-250) > 1e-9 {
		t.Errorf("uphill weight = %v, want 250", up)
	}
	if math.Abs(down-150) > 1e-9 {
		t.Errorf("downhill weight = %v, want 150", down)
	}

	// Ascent surcharge (150) is three times the descent surcharge (50).
	if math.Abs((up-100)/(down-100)-3) > 1e-9 {
		t.Errorf("surcharge ratio = %v, want 3", (up-100)/(down-100))
	}
}

func TestSlopeWeightsMissingElevations(t *testing.T) {
	g := diamondGraph()
	table := SlopeWeights(g, map[int64]float64{})

	for i, e := range g.Edges() {
		if math.Abs(table[i]-e.LengthM) > 1e-9 {
			t.Errorf("edge %d: weight = %v, want flat length %v", i, table[i], e.LengthM)
		}
	}
}
