package routing

import (
	"context"
	"log"

	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/spatial"
)

// loopRoute synthesizes a closed walk from start back to start: AI-combined
// weights over the local disc, a uniformly random midpoint node, and two
// shortest-path legs joined with the duplicated midpoint dropped.
//
// durationMinutes is echoed into the result but does not yet influence the
// midpoint choice; see DESIGN.md.
func (p *Planner) loopRoute(ctx context.Context, start models.Coordinate, durationMinutes int) (*models.RouteResult, error) {
	log.Printf("[dispatcher] loop start=(%.5f,%.5f) duration=%dmin", start.Lat, start.Lon, durationMinutes)

	g, err := SelectRegion(ctx, p.loader, start, nil)
	if err != nil {
		return nil, err
	}

	cond := p.weather.Current(ctx, start.Lat, start.Lon)
	night := p.daylight.IsNight(ctx, start.Lat, start.Lon)
	blend := BlendFor(cond, night)
	table := CombinedWeights(g, blend)

	orig, err := g.NearestNode(start.Lat, start.Lon)
	if err != nil {
		return nil, newRouteError(KindEmptyInput, "Empty walking graph.", err)
	}

	ids := g.NodeIDs()
	mid := ids[p.randIntn(len(ids))]

	out, err := g.ShortestPath(orig, mid, table)
	if err != nil {
		return nil, errLoopFailed(err)
	}
	back, err := g.ShortestPath(mid, orig, table)
	if err != nil {
		return nil, errLoopFailed(err)
	}

	// Join the legs into a closed walk, dropping the midpoint the second
	// leg repeats.
	nodes := append([]int64{}, out.Nodes...)
	if len(back.Nodes) > 0 {
		nodes = append(nodes, back.Nodes[1:]...)
	}

	return &models.RouteResult{
		Mode:            models.ModeLoop,
		Start:           start,
		DurationMinutes: durationMinutes,
		Coordinates:     g.Coordinates(nodes),
		DistanceM:       spatial.Round2(out.LengthM(g) + back.LengthM(g)),
		Weights:         &blend,
	}, nil
}
