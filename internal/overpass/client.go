package overpass

import (
	"context"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/pkg/errors"

	"github.com/walkwithme/backend-go/internal/graph"
)

// walkFilter selects ways a pedestrian can use. Motorways and their links are
// excluded outright, as are ways explicitly closed to foot traffic.
const walkFilter = `["highway"]["highway"!~"motorway|motorway_link|trunk_link"]["foot"!~"no"]["area"!="yes"]`

// trailFilter matches the hiking-oriented subset used by trail discovery.
const trailFilter = `["highway"~"path|footway|track|bridleway"]`

// Client talks to an Overpass API endpoint and materializes street-network
// graphs for a region.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
}

// NewClient creates an Overpass client. timeout bounds a single fetch; the
// client retries a failed call a small, fixed number of times with
// exponential backoff.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: 2,
	}
}

// LoadByPoint fetches the walkable network within radiusM meters of a point.
func (c *Client) LoadByPoint(ctx context.Context, lat, lon, radiusM float64) (*graph.Graph, error) {
	log.Printf("[overpass] point loader: center=(%.5f, %.5f) r=%.0fm", lat, lon, radiusM)
	query := buildAroundQuery(walkFilter, lat, lon, radiusM)
	return c.fetchGraph(ctx, query)
}

// LoadByBBox fetches the walkable network inside a bounding box.
func (c *Client) LoadByBBox(ctx context.Context, north, south, east, west float64) (*graph.Graph, error) {
	log.Printf("[overpass] bbox loader: N=%.5f S=%.5f E=%.5f W=%.5f", north, south, east, west)
	query := buildBBoxQuery(walkFilter, north, south, east, west)
	return c.fetchGraph(ctx, query)
}

// TrailWays fetches hiking-style ways around a point as raw polylines,
// keeping each way intact for the trail scorer.
func (c *Client) TrailWays(ctx context.Context, lat, lon, radiusM float64) ([]Way, error) {
	log.Printf("[overpass] trail loader: center=(%.5f, %.5f) r=%.0fm", lat, lon, radiusM)
	query := buildAroundQuery(trailFilter, lat, lon, radiusM)

	body, err := c.fetchBody(ctx, query)
	if err != nil {
		return nil, err
	}
	return parseWays(body)
}

// buildAroundQuery assembles a point-radius Overpass QL query.
func buildAroundQuery(filter string, lat, lon, radiusM float64) string {
	return fmt.Sprintf(
		"[out:json][timeout:25];(way%s(around:%.0f,%.6f,%.6f);>;);out body;",
		filter, radiusM, lat, lon,
	)
}

// buildBBoxQuery assembles a bounding-box Overpass QL query. Overpass wants
// (south, west, north, east) order.
func buildBBoxQuery(filter string, north, south, east, west float64) string {
	return fmt.Sprintf(
		"[out:json][timeout:25];(way%s(%.6f,%.6f,%.6f,%.6f);>;);out body;",
		filter, south, west, north, east,
	)
}

// fetchGraph runs the query and parses the response into a routing graph.
func (c *Client) fetchGraph(ctx context.Context, query string) (*graph.Graph, error) {
	body, err := c.fetchBody(ctx, query)
	if err != nil {
		return nil, err
	}

	g, err := parseGraph(body)
	if err != nil {
		return nil, errors.Wrap(err, "overpass response parse failed")
	}

	log.Printf("[overpass] built graph: %d nodes, %d edges", g.NumNodes(), g.NumEdges())
	return g, nil
}

// fetchBody runs the query with bounded retry.
func (c *Client) fetchBody(ctx context.Context, query string) ([]byte, error) {
	var body []byte

	operation := func() error {
		b, err := c.post(ctx, query)
		if err != nil {
			return err
		}
		body = b
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, errors.Wrap(err, "overpass fetch failed")
	}

	return body, nil
}

// post submits the query as an interpreter form post.
func (c *Client) post(ctx context.Context, query string) ([]byte, error) {
	form := url.Values{"data": {query}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("User-Agent", "WalkWithMe/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("overpass returned status %d", resp.StatusCode)
	}

	return io.ReadAll(resp.Body)
}
