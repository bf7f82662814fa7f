package overpass

import (
	"encoding/json"

	"github.com/walkwithme/backend-go/internal/graph"
	"github.com/walkwithme/backend-go/internal/spatial"
)

// element is one entry of an Overpass JSON response.
type element struct {
	Type  string            `json:"type"`
	ID    int64             `json:"id"`
	Lat   float64           `json:"lat,omitempty"`
	Lon   float64           `json:"lon,omitempty"`
	Nodes []int64           `json:"nodes,omitempty"`
	Tags  map[string]string `json:"tags,omitempty"`
}

type overpassResponse struct {
	Elements []element `json:"elements"`
}

// parseGraph converts an Overpass response body into a routing graph. Each
// consecutive node pair of a way becomes two directed edges so the slope
// model can cost uphill and downhill independently.
func parseGraph(body []byte) (*graph.Graph, error) {
	var resp overpassResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return nil, err
	}

	g := graph.New()

	// First pass: nodes
	for _, el := range resp.Elements {
		if el.Type != "node" {
			continue
		}
		g.AddNode(graph.Node{ID: el.ID, Lat: el.Lat, Lon: el.Lon})
	}

	// Second pass: ways → directed edge pairs
	for _, el := range resp.Elements {
		if el.Type != "way" || len(el.Nodes) < 2 {
			continue
		}

		tags := tagsFromMap(el.Tags)
		for i := 1; i < len(el.Nodes); i++ {
			from, okFrom := g.Node(el.Nodes[i-1])
			to, okTo := g.Node(el.Nodes[i])
			if !okFrom || !okTo {
				// Way references a node outside the response window
				continue
			}

			length := spatial.HaversineDistance(from.Lat, from.Lon, to.Lat, to.Lon)
			g.AddEdge(graph.Edge{From: from.ID, To: to.ID, LengthM: length, Tags: tags})
			g.AddEdge(graph.Edge{From: to.ID, To: from.ID, LengthM: length, Tags: tags})
		}
	}

	return g, nil
}

// tagsFromMap plucks the attributes the weight models care about.
func tagsFromMap(m map[string]string) graph.Tags {
	return graph.Tags{
		Highway:  m["highway"],
		Surface:  m["surface"],
		Lit:      m["lit"],
		Sidewalk: m["sidewalk"],
		Name:     m["name"],
		Amenity:  m["amenity"],
		Landuse:  m["landuse"],
		Natural:  m["natural"],
		Leisure:  m["leisure"],
	}
}
