package routing

import (
	"strings"

	"github.com/walkwithme/backend-go/internal/graph"
)

// WeightTable is a per-request edge cost table, indexed by edge index. It is
// handed to the shortest-path search instead of being written onto the graph,
// so a cached graph instance can serve concurrent requests for different
// modes without racing.
type WeightTable []float64

// baseLength floors an edge's length at 1 m so every weight stays strictly
// positive: a zero weight would create degenerate zero-cost paths.
func baseLength(e graph.Edge) float64 {
	if e.LengthM < 1 {
		return 1
	}
	return e.LengthM
}

// ShortestWeights costs every edge by its base length.
func ShortestWeights(g *graph.Graph) WeightTable {
	table := make(WeightTable, g.NumEdges())
	for i, e := range g.Edges() {
		table[i] = baseLength(e)
	}
	return table
}

// SafetyDayWeights penalizes edges that are uncomfortable to walk in
// daylight: big roads, missing sidewalks, loose surfaces.
func SafetyDayWeights(g *graph.Graph) WeightTable {
	table := make(WeightTable, g.NumEdges())
	for i, e := range g.Edges() {
		w := baseLength(e)

		if e.Tags.Highway == "primary" || e.Tags.Highway == "secondary" {
			w *= 2.0
		}
		if e.Tags.Sidewalk == "no" {
			w *= 2.5
		}
		if e.Tags.Surface == "dirt" || e.Tags.Surface == "gravel" {
			w *= 1.5
		}

		table[i] = w
	}
	return table
}

// SafetyNightWeights applies the stricter night ruleset: unlit streets,
// parks, alleys and fast roads all get heavy penalties.
func SafetyNightWeights(g *graph.Graph) WeightTable {
	table := make(WeightTable, g.NumEdges())
	for i, e := range g.Edges() {
		w := baseLength(e)

		if e.Tags.Lit == "no" {
			w *= 4.0
		}
		if e.Tags.Sidewalk == "no" {
			w *= 5.0
		}
		if e.Tags.Highway == "path" {
			w *= 3.5
		}
		if e.Tags.Highway == "service" || e.Tags.Highway == "track" {
			w *= 3.0
		}
		if e.Tags.Highway == "primary" || e.Tags.Highway == "secondary" {
			w *= 4.0
		}

		table[i] = w
	}
	return table
}

// ScenicWeights rewards parks, waterfront and greenery and penalizes
// industrial zones, busy roads and rough surfaces.
func ScenicWeights(g *graph.Graph) WeightTable {
	table := make(WeightTable, g.NumEdges())
	for i, e := range g.Edges() {
		w := baseLength(e)

		switch e.Tags.Landuse {
		case "grass", "meadow", "forest":
			w *= 0.5
		case "industrial", "commercial":
			w *= 2.0
		}

		switch e.Tags.Leisure {
		case "park", "garden", "nature_reserve":
			w *= 0.4
		}

		switch e.Tags.Natural {
		case "water", "wetland":
			w *= 0.5
		}

		switch e.Tags.Highway {
		case "footway", "path":
			w *= 0.6
		case "primary", "secondary", "tertiary":
			w *= 2.0
		}

		switch e.Tags.Surface {
		case "asphalt", "concrete":
			w *= 1.3
		case "paving_stones":
			w *= 1.1
		case "dirt", "gravel":
			w *= 1.5
		}

		table[i] = w
	}
	return table
}

// ExploreWeights favors pleasant, lively, charming streets and avoids
// boring or stressful ones.
func ExploreWeights(g *graph.Graph) WeightTable {
	table := make(WeightTable, g.NumEdges())
	for i, e := range g.Edges() {
		w := baseLength(e)
		name := strings.ToLower(e.Tags.Name)

		switch e.Tags.Highway {
		case "path", "footway", "living_street":
			w *= 0.7
		case "primary", "secondary", "trunk":
			w *= 2.0
		case "service", "track":
			w *= 2.3
		}

		if strings.Contains(name, "park") || strings.Contains(name, "garden") {
			w *= 0.6
		}
		if strings.Contains(name, "river") || strings.Contains(name, "water") || strings.Contains(name, "lake") {
			w *= 0.55
		}

		switch e.Tags.Amenity {
		case "cafe", "restaurant", "bar", "pub", "ice_cream":
			w *= 0.7
		}

		if strings.Contains(name, "mural") || strings.Contains(name, "art") || strings.Contains(name, "historic") {
			w *= 0.75
		}

		if e.Tags.Surface == "gravel" || e.Tags.Surface == "dirt" {
			w *= 1.8
		}
		if e.Tags.Lit == "no" {
			w *= 1.5
		}

		table[i] = w
	}
	return table
}

// SlopeWeights costs edges by grade using the per-request elevation side
// map. Ascent is penalized three times harder than descent of the same
// magnitude; nodes missing from the map count as elevation 0, flattening
// the local slope there.
func SlopeWeights(g *graph.Graph, elevations map[int64]float64) WeightTable {
	table := make(WeightTable, g.NumEdges())
	for i, e := range g.Edges() {
		length := baseLength(e)

		rise := elevations[e.To] - elevations[e.From]
		slope := rise / length

		if slope > 0 {
			table[i] = length * (1 + slope*15)
		} else {
			table[i] = length * (1 - slope*5)
		}
	}
	return table
}
