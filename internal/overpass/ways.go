package overpass

import (
	"encoding/json"

	"github.com/paulmach/orb"

	"github.com/walkwithme/backend-go/internal/spatial"
)

// Way is one OSM way kept intact as a polyline, used by trail discovery.
// Line points are (lon, lat) per the orb convention.
type Way struct {
	ID      int64
	Name    string
	Highway string
	Surface string
	Line    orb.LineString
	LengthM float64
}

// parseWays converts an Overpass response body into way polylines, skipping
// ways whose geometry is incomplete in the response window.
func parseWays(body []byte) ([]Way, error) {
	var resp overpassResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	nodes := make(map[int64]orb.Point)
	for _, el := range resp.Elements {
		if el.Type == "node" {
			nodes[el.ID] = orb.Point{el.Lon, el.Lat}
		}
	}

	var ways []Way
	for _, el := range resp.Elements {
		if el.Type != "way" || len(el.Nodes) < 2 {
			continue
		}

		line := make(orb.LineString, 0, len(el.Nodes))
		complete := true
		for _, id := range el.Nodes {
			pt, ok := nodes[id]
			if !ok {
				complete = false
				break
			}
			line = append(line, pt)
		}
		if !complete {
			continue
		}

		length := 0.0
		for i := 1; i < len(line); i++ {
			length += spatial.HaversineDistance(line[i-1][1], line[i-1][0], line[i][1], line[i][0])
		}

		ways = append(ways, Way{
			ID:      el.ID,
			Name:    el.Tags["name"],
			Highway: el.Tags["highway"],
			Surface: el.Tags["surface"],
			Line:    line,
			LengthM: length,
		})
	}

	return ways, nil
}
