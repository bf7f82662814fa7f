package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Condition is the coarse weather class the AI blend understands.
type Condition string

const (
	ConditionRain  Condition = "rain"
	ConditionSnow  Condition = "snow"
	ConditionHot   Condition = "hot"
	ConditionCold  Condition = "cold"
	ConditionClear Condition = "clear"
)

// WMO weather interpretation codes reported by Open-Meteo.
var (
	rainCodes = map[int]bool{61: true, 63: true, 65: true}
	snowCodes = map[int]bool{71: true, 73: true, 75: true}
)

// Client fetches current conditions from the Open-Meteo forecast endpoint.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries uint64
}

// NewClient creates a weather client with the given request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		maxRetries: 1,
	}
}

// Current classifies the weather at a location. Any lookup failure falls
// back to clear so a route request never aborts on weather.
func (c *Client) Current(ctx context.Context, lat, lon float64) Condition {
	code, tempC, err := c.fetch(ctx, lat, lon)
	if err != nil {
		log.Printf("[weather] lookup failed, assuming clear: %v", err)
		return ConditionClear
	}
	return Classify(code, tempC)
}

// Classify maps a WMO code and temperature to a condition. Code checks take
// priority over the temperature thresholds.
func Classify(code int, tempC float64) Condition {
	switch {
	case rainCodes[code]:
		return ConditionRain
	case snowCodes[code]:
		return ConditionSnow
	case tempC > 30:
		return ConditionHot
	case tempC < 5:
		return ConditionCold
	default:
		return ConditionClear
	}
}

// fetch performs the current-weather call with bounded retry.
func (c *Client) fetch(ctx context.Context, lat, lon float64) (int, float64, error) {
	endpoint := fmt.Sprintf("%s?latitude=%.6f&longitude=%.6f&current_weather=true", c.baseURL, lat, lon)

	var parsed struct {
		CurrentWeather struct {
			WeatherCode int     `json:"weathercode"`
			Temperature float64 `json:"temperature"`
		} `json:"current_weather"`
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
			return fmt.Errorf("weather service returned status %d", resp.StatusCode)
		}

		return json.NewDecoder(resp.Body).Decode(&parsed)
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewExponentialBackOff(), c.maxRetries), ctx)
	if err := backoff.Retry(operation, policy); err != nil {
		return 0, 0, err
	}

	return parsed.CurrentWeather.WeatherCode, parsed.CurrentWeather.Temperature, nil
}
