package routing

import (
	"math"
	"testing"

	"github.com/walkwithme/backend-go/internal/graph"
	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/weather"
)

func TestBlendFor(t *testing.T) {
	tests := []struct {
		name  string
		cond  weather.Condition
		night bool
		want  models.WeightBlend
	}{
		{"night overrides rain", weather.ConditionRain, true, models.WeightBlend{Short: 1.0, Safe: 3.0, Scenic: 0.4, Explore: 0.6}},
		{"night overrides clear", weather.ConditionClear, true, models.WeightBlend{Short: 1.0, Safe: 3.0, Scenic: 0.4, Explore: 0.6}},
		{"rain", weather.ConditionRain, false, models.WeightBlend{Short: 1.0, Safe: 2.0, Scenic: 0.2, Explore: 0.7}},
		{"snow", weather.ConditionSnow, false, models.WeightBlend{Short: 1.0, Safe: 2.5, Scenic: 0.4, Explore: 0.6}},
		{"hot", weather.ConditionHot, false, models.WeightBlend{Short: 1.2, Safe: 1.0, Scenic: 1.0, Explore: 0.6}},
		{"cold", weather.ConditionCold, false, models.WeightBlend{Short: 1.0, Safe: 1.7, Scenic: 1.0, Explore: 0.8}},
		{"clear", weather.ConditionClear, false, models.WeightBlend{Short: 0.6, Safe: 1.0, Scenic: 2.0, Explore: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BlendFor(tt.cond, tt.night)
			if got != tt.want {
				t.Errorf("BlendFor(%q, %v) = %+v, want %+v", tt.cond, tt.night, got, tt.want)
			}
		})
	}
}

func TestCombinedWeightsPlainEdge(t *testing.T) {
	// With no penalizable tags every sub-weight equals the base length,
	// so the combined cost is length times the coefficient sum.
	g := taggedGraph(graph.Tags{Highway: "residential"}, 200)
	blend := models.WeightBlend{Short: 0.6, Safe: 1.0, Scenic: 2.0, Explore: 1.5}

	table := CombinedWeights(g, blend)
	want := 200 * (0.6 + 1.0 + 2.0 + 1.5)
	if math.Abs(table[0]-want) > 1e-9 {
		t.Errorf("combined weight = %v, want %v", table[0], want)
	}
}

func TestCombinedWeightsFavorsSafeStreetAtNight(t *testing.T) {
	g := graph.New()
	g.AddNode(graph.Node{ID: 1, Lat: 40.730, Lon: -73.997})
	g.AddNode(graph.Node{ID: 2, Lat: 40.731, Lon: -73.996})
	g.AddNode(graph.Node{ID: 3, Lat: 40.732, Lon: -73.995})
	addBoth(g, graph.Edge{From: 1, To: 2, LengthM: 100, Tags: graph.Tags{Lit: "no", Sidewalk: "no"}})
	addBoth(g, graph.Edge{From: 2, To: 3, LengthM: 100, Tags: graph.Tags{Highway: "residential"}})

	blend := BlendFor(weather.ConditionClear, true)
	table := CombinedWeights(g, blend)

	var unlit, lit float64
	for i, e := range g.Edges() {
		switch {
		case e.From == 1 && e.To == 2:
			unlit = table[i]
		case e.From == 2 && e.To == 3:
			lit = table[i]
		}
	}

	if unlit <= lit {
		t.Errorf("unlit edge weight %v not above lit edge weight %v under night blend", unlit, lit)
	}
}
