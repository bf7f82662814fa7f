package graph

import (
	"container/heap"

	"github.com/pkg/errors"
)

// ErrNoPath is returned when the destination is unreachable from the origin.
var ErrNoPath = errors.New("no path between nodes")

// Path is the result of a shortest-path query: the node sequence and the
// edge indices traversed between consecutive nodes.
type Path struct {
	Nodes    []int64
	EdgeIdxs []int
}

// LengthM sums the base lengths of the traversed edges, independent of the
// weight table the search ran on.
func (p Path) LengthM(g *Graph) float64 {
	total := 0.0
	for _, idx := range p.EdgeIdxs {
		total += g.Edge(idx).LengthM
	}
	return total
}

// pqItem is a priority queue entry for Dijkstra
type pqItem struct {
	node     int64
	priority float64
}

type priorityQueue []*pqItem

func (pq priorityQueue) Len() int            { return len(pq) }
func (pq priorityQueue) Less(i, j int) bool  { return pq[i].priority < pq[j].priority }
func (pq priorityQueue) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *priorityQueue) Push(x interface{}) { *pq = append(*pq, x.(*pqItem)) }
func (pq *priorityQueue) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]
	return item
}

// ShortestPath runs Dijkstra from startID to goalID using weights as the
// per-edge cost table, indexed by edge index. The table length must equal
// NumEdges. The graph itself is never written to, so a cached instance can
// serve concurrent requests with different tables.
func (g *Graph) ShortestPath(startID, goalID int64, weights []float64) (Path, error) {
	if g.IsEmpty() {
		return Path{}, ErrNoNodes
	}
	if len(weights) != len(g.edges) {
		return Path{}, errors.Errorf("weight table has %d entries, graph has %d edges", len(weights), len(g.edges))
	}
	if _, ok := g.nodes[startID]; !ok {
		return Path{}, errors.Errorf("start node %d not in graph", startID)
	}
	if _, ok := g.nodes[goalID]; !ok {
		return Path{}, errors.Errorf("goal node %d not in graph", goalID)
	}

	dist := map[int64]float64{startID: 0}
	cameFrom := make(map[int64]int64)
	cameVia := make(map[int64]int)
	closed := make(map[int64]bool)

	pq := &priorityQueue{}
	heap.Init(pq)
	heap.Push(pq, &pqItem{node: startID, priority: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*pqItem)
		current := item.node

		if current == goalID {
			return g.reconstruct(cameFrom, cameVia, startID, goalID), nil
		}
		if closed[current] {
			continue
		}
		closed[current] = true

		for _, edgeIdx := range g.adj[current] {
			e := g.edges[edgeIdx]
			tentative := dist[current] + weights[edgeIdx]

			if old, ok := dist[e.To]; !ok || tentative < old {
				dist[e.To] = tentative
				cameFrom[e.To] = current
				cameVia[e.To] = edgeIdx
				heap.Push(pq, &pqItem{node: e.To, priority: tentative})
			}
		}
	}

	return Path{}, ErrNoPath
}

// reconstruct walks the predecessor maps back from goal to start.
func (g *Graph) reconstruct(cameFrom map[int64]int64, cameVia map[int64]int, startID, goalID int64) Path {
	var (
		nodes []int64
		edges []int
	)
	for cur := goalID; ; {
		nodes = append(nodes, cur)
		if cur == startID {
			break
		}
		edges = append(edges, cameVia[cur])
		cur = cameFrom[cur]
	}

	// Reverse into start → goal order
	for i, j := 0, len(nodes)-1; i < j; i, j = i+1, j-1 {
		nodes[i], nodes[j] = nodes[j], nodes[i]
	}
	for i, j := 0, len(edges)-1; i < j; i, j = i+1, j-1 {
		edges[i], edges[j] = edges[j], edges[i]
	}

	return Path{Nodes: nodes, EdgeIdxs: edges}
}
