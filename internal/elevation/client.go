package elevation

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/walkwithme/backend-go/internal/models"
)

// batchSize is the maximum number of locations per lookup call.
const batchSize = 100

// Client queries the Open-Elevation lookup endpoint in batches.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
}

// NewClient creates an elevation client with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: 2,
	}
}

// LookupBatch resolves elevations for the given coordinates, chunking the
// request into batches of at most 100 locations. A failed chunk fills with
// zeros instead of aborting the whole lookup; the result always aligns 1:1
// with the input.
func (c *Client) LookupBatch(ctx context.Context, coords []models.Coordinate) []float64 {
	elevations := make([]float64, 0, len(coords))

	for i := 0; i < len(coords); i += batchSize {
		end := i + batchSize
		if end > len(coords) {
			end = len(coords)
		}
		chunk := coords[i:end]

		vals, err := c.fetchChunk(ctx, chunk)
		if err != nil {
			log.Printf("[elevation] chunk lookup failed, filling %d zeros: %v", len(chunk), err)
			vals = make([]float64, len(chunk))
		}
		elevations = append(elevations, vals...)
	}

	return elevations
}

// fetchChunk performs a single lookup call with bounded retry.
func (c *Client) fetchChunk(ctx context.Context, chunk []models.Coordinate) ([]float64, error) {
	locs := make([]string, len(chunk))
	for i, coord := range chunk {
		locs[i] = fmt.Sprintf("%.6f,%.6f", coord.Lat, coord.Lon)
	}

	endpoint := c.baseURL + "?locations=" + url.QueryEscape(strings.Join(locs, "|"))

	var parsed struct {
		Results []struct {
			Elevation *float64 `json:"elevation"`
		} `json:"results"`
	}

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if err != nil {
			return err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("elevation service returned status %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&parsed)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return nil, err
	}

	if len(parsed.Results) != len(chunk) {
		return nil, fmt.Errorf("elevation service returned %d results for %d locations",
			len(parsed.Results), len(chunk))
	}

	// Null elevations become 0
	vals := make([]float64, len(chunk))
	for i, r := range parsed.Results {
		if r.Elevation != nil {
			vals[i] = *r.Elevation
		}
	}
	return vals, nil
}
