package daylight

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Client fetches sun times from the sunrise-sunset.org JSON API and decides
// whether it is currently night at a location.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
	now        func() time.Time
}

// NewClient creates a daylight client with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: 1,
		now:        time.Now,
	}
}

// IsNight reports whether the current time falls outside [sunrise, sunset)
// at the location. Any lookup failure assumes daytime so a route request
// never aborts on sun data.
func (c *Client) IsNight(ctx context.Context, lat, lon float64) bool {
	sunrise, sunset, err := c.sunTimes(ctx, lat, lon)
	if err != nil {
		log.Printf("[daylight] lookup failed, assuming day: %v", err)
		return false
	}

	now := c.now().UTC()
	return now.Before(sunrise) || !now.Before(sunset)
}

// sunTimes performs the lookup with bounded retry. The API returns ISO 8601
// timestamps when formatted=0 is requested.
func (c *Client) sunTimes(ctx context.Context, lat, lon float64) (sunrise, sunset time.Time, err error) {
	endpoint := fmt.Sprintf("%s?lat=%.6f&lng=%.6f&formatted=0", c.baseURL, lat, lon)

	var parsed struct {
		Results struct {
			Sunrise string `json:"sunrise"`
			Sunset  string `json:"sunset"`
		} `json:"results"`
		Status string `json:"status"`
	}

	operation := func() error {
		req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
		if reqErr != nil {
			return reqErr
		}

		resp, doErr := c.httpClient.Do(req)
		if doErr != nil {
			return doErr
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("daylight service returned status %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&parsed)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err = backoff.Retry(operation, policy); err != nil {
		return time.Time{}, time.Time{}, err
	}

	if parsed.Status != "" && parsed.Status != "OK" {
		return time.Time{}, time.Time{}, fmt.Errorf("daylight service status %q", parsed.Status)
	}

	sunrise, err = time.Parse(time.RFC3339, parsed.Results.Sunrise)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad sunrise %q: %w", parsed.Results.Sunrise, err)
	}
	sunset, err = time.Parse(time.RFC3339, parsed.Results.Sunset)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("bad sunset %q: %w", parsed.Results.Sunset, err)
	}

	return sunrise.UTC(), sunset.UTC(), nil
}
