package routing

import (
	"strings"

	"github.com/walkwithme/backend-go/internal/graph"
	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/weather"
)

// BlendFor maps the AI signal to the weight multipliers. Night overrides
// weather; the table is fixed and the coefficients are not normalized.
func BlendFor(cond weather.Condition, isNight bool) models.WeightBlend {
	if isNight {
		return models.WeightBlend{Short: 1.0, Safe: 3.0, Scenic: 0.4, Explore: 0.6}
	}

	switch cond {
	case weather.ConditionRain:
		return models.WeightBlend{Short: 1.0, Safe: 2.0, Scenic: 0.2, Explore: 0.7}
	case weather.ConditionSnow:
		return models.WeightBlend{Short: 1.0, Safe: 2.5, Scenic: 0.4, Explore: 0.6}
	case weather.ConditionHot:
		return models.WeightBlend{Short: 1.2, Safe: 1.0, Scenic: 1.0, Explore: 0.6}
	case weather.ConditionCold:
		return models.WeightBlend{Short: 1.0, Safe: 1.7, Scenic: 1.0, Explore: 0.8}
	default:
		// Perfect day: wander
		return models.WeightBlend{Short: 0.6, Safe: 1.0, Scenic: 2.0, Explore: 1.5}
	}
}

// subWeights holds the simplified single-pass safety/scenic/explore costs
// the AI blend combines. These are deliberately lighter rulesets than the
// standalone models; see DESIGN.md for the recorded divergence.
type subWeights struct {
	safe    WeightTable
	scenic  WeightTable
	explore WeightTable
}

// computeSubWeights builds all three component tables in one pass over the
// edges.
func computeSubWeights(g *graph.Graph) subWeights {
	n := g.NumEdges()
	sub := subWeights{
		safe:    make(WeightTable, n),
		scenic:  make(WeightTable, n),
		explore: make(WeightTable, n),
	}

	for i, e := range g.Edges() {
		base := baseLength(e)
		name := strings.ToLower(e.Tags.Name)

		safe := base
		if e.Tags.Highway == "primary" || e.Tags.Highway == "secondary" {
			safe *= 2
		}
		if e.Tags.Sidewalk == "no" {
			safe *= 3
		}
		if e.Tags.Lit == "no" {
			safe *= 2
		}
		sub.safe[i] = safe

		scenic := base
		if strings.Contains(name, "park") || strings.Contains(name, "garden") {
			scenic *= 0.7
		}
		if strings.Contains(name, "river") || strings.Contains(name, "lake") || strings.Contains(name, "water") {
			scenic *= 0.6
		}
		if e.Tags.Surface == "dirt" || e.Tags.Surface == "gravel" {
			scenic *= 1.3
		}
		sub.scenic[i] = scenic

		explore := base
		switch e.Tags.Highway {
		case "path", "footway", "living_street":
			explore *= 0.7
		}
		switch e.Tags.Amenity {
		case "cafe", "restaurant", "bar", "ice_cream":
			explore *= 0.7
		}
		sub.explore[i] = explore
	}

	return sub
}

// CombinedWeights mixes length and the three sub-weights with the blend
// multipliers into a single cost table.
func CombinedWeights(g *graph.Graph, blend models.WeightBlend) WeightTable {
	sub := computeSubWeights(g)
	table := make(WeightTable, g.NumEdges())

	for i, e := range g.Edges() {
		table[i] = blend.Short*baseLength(e) +
			blend.Safe*sub.safe[i] +
			blend.Scenic*sub.scenic[i] +
			blend.Explore*sub.explore[i]
	}
	return table
}
