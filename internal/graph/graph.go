package graph

import (
	"github.com/pkg/errors"

	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/spatial"
)

// ErrNoNodes is returned when an operation needs at least one node.
var ErrNoNodes = errors.New("graph has no nodes")

// Node is a street-network intersection.
type Node struct {
	ID  int64
	Lat float64
	Lon float64
}

// Tags carries the OSM attributes the weight models look at. Absent tags are
// empty strings.
type Tags struct {
	Highway  string
	Surface  string
	Lit      string
	Sidewalk string
	Name     string
	Amenity  string
	Landuse  string
	Natural  string
	Leisure  string
}

// Edge is a directed street segment. Walkable ways produce one edge per
// direction, so the two directions can carry different slope costs.
type Edge struct {
	From    int64
	To      int64
	LengthM float64
	Tags    Tags
}

// Graph is an adjacency-list street multigraph. Edges are addressed by index,
// which lets per-request weight tables stay outside the shared structure.
type Graph struct {
	nodes map[int64]Node
	order []int64 // node IDs in insertion order
	edges []Edge
	adj   map[int64][]int // node ID -> outgoing edge indices
}

// New creates an empty graph.
func New() *Graph {
	return &Graph{
		nodes: make(map[int64]Node),
		adj:   make(map[int64][]int),
	}
}

// AddNode inserts or replaces a node.
func (g *Graph) AddNode(n Node) {
	if _, exists := g.nodes[n.ID]; !exists {
		g.order = append(g.order, n.ID)
	}
	g.nodes[n.ID] = n
}

// AddEdge appends a directed edge. Both endpoints must already exist.
func (g *Graph) AddEdge(e Edge) {
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.adj[e.From] = append(g.adj[e.From], idx)
}

// Node returns the node with the given ID.
func (g *Graph) Node(id int64) (Node, bool) {
	n, ok := g.nodes[id]
	return n, ok
}

// NodeIDs returns all node IDs in insertion order, so callers that pick
// nodes (e.g. the loop midpoint) behave deterministically under a seeded
// random source.
func (g *Graph) NodeIDs() []int64 {
	ids := make([]int64, len(g.order))
	copy(ids, g.order)
	return ids
}

// NumNodes returns the node count.
func (g *Graph) NumNodes() int { return len(g.nodes) }

// NumEdges returns the directed edge count.
func (g *Graph) NumEdges() int { return len(g.edges) }

// Edges returns the backing edge slice. Callers must not modify it; weight
// models read tags from it and write costs into their own tables.
func (g *Graph) Edges() []Edge { return g.edges }

// Edge returns the edge at the given index.
func (g *Graph) Edge(idx int) Edge { return g.edges[idx] }

// IsEmpty reports whether the graph is unusable for routing. A graph with
// nodes but no edges cannot produce any path either.
func (g *Graph) IsEmpty() bool {
	return g == nil || len(g.nodes) == 0 || len(g.edges) == 0
}

// NearestNode snaps a coordinate to the closest graph node by great-circle
// distance.
func (g *Graph) NearestNode(lat, lon float64) (int64, error) {
	if g == nil || len(g.nodes) == 0 {
		return 0, ErrNoNodes
	}

	var (
		bestID   int64
		bestDist = -1.0
	)
	for _, id := range g.order {
		n := g.nodes[id]
		d := spatial.HaversineDistance(lat, lon, n.Lat, n.Lon)
		if bestDist < 0 || d < bestDist {
			bestDist = d
			bestID = id
		}
	}
	return bestID, nil
}

// Coordinates maps a node path to its (lat, lon) sequence.
func (g *Graph) Coordinates(nodeIDs []int64) []models.Coordinate {
	coords := make([]models.Coordinate, 0, len(nodeIDs))
	for _, id := range nodeIDs {
		if n, ok := g.nodes[id]; ok {
			coords = append(coords, models.Coordinate{Lat: n.Lat, Lon: n.Lon})
		}
	}
	return coords
}
