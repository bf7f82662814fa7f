package overpass

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/walkwithme/backend-go/internal/graph"
)

// Loader is the region-loading surface the cache wraps.
type Loader interface {
	LoadByPoint(ctx context.Context, lat, lon, radiusM float64) (*graph.Graph, error)
	LoadByBBox(ctx context.Context, north, south, east, west float64) (*graph.Graph, error)
}

// CachingLoader memoizes region fetches in a bounded FIFO map. Cache hits
// return the shared graph instance: that is safe because weight models keep
// their costs in request-scoped side tables and never write to the graph.
// A miss always re-fetches; the cache is never required for correctness.
type CachingLoader struct {
	inner Loader

	mu      sync.Mutex
	entries map[string]*graph.Graph
	order   []string
	maxSize int
}

// NewCachingLoader wraps a loader with a cache holding up to maxSize regions.
func NewCachingLoader(inner Loader, maxSize int) *CachingLoader {
	return &CachingLoader{
		inner:   inner,
		entries: make(map[string]*graph.Graph),
		maxSize: maxSize,
	}
}

// LoadByPoint serves a point-radius region from cache when possible.
func (c *CachingLoader) LoadByPoint(ctx context.Context, lat, lon, radiusM float64) (*graph.Graph, error) {
	key := fmt.Sprintf("pt:%.4f:%.4f:%.0f", lat, lon, radiusM)
	if g, ok := c.get(key); ok {
		log.Printf("[overpass] cache hit: %s", key)
		return g, nil
	}

	g, err := c.inner.LoadByPoint(ctx, lat, lon, radiusM)
	if err != nil {
		return nil, err
	}
	c.put(key, g)
	return g, nil
}

// LoadByBBox serves a bounding-box region from cache when possible.
func (c *CachingLoader) LoadByBBox(ctx context.Context, north, south, east, west float64) (*graph.Graph, error) {
	key := fmt.Sprintf("bb:%.4f:%.4f:%.4f:%.4f", north, south, east, west)
	if g, ok := c.get(key); ok {
		log.Printf("[overpass] cache hit: %s", key)
		return g, nil
	}

	g, err := c.inner.LoadByBBox(ctx, north, south, east, west)
	if err != nil {
		return nil, err
	}
	c.put(key, g)
	return g, nil
}

func (c *CachingLoader) get(key string) (*graph.Graph, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	g, ok := c.entries[key]
	return g, ok
}

// put stores an entry, evicting the oldest one once the bound is reached.
// Empty graphs are not cached so a later request re-checks coverage.
func (c *CachingLoader) put(key string, g *graph.Graph) {
	if g.IsEmpty() {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.entries[key]; exists {
		return
	}

	if len(c.order) >= c.maxSize && c.maxSize > 0 {
		oldest := c.order[0]
		c.order = c.order[1:]
		delete(c.entries, oldest)
	}

	c.entries[key] = g
	c.order = append(c.order, key)
}
