package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/walkwithme/backend-go/internal/spatial"
)

// Suggestion is one autocomplete candidate, ranked best-first.
type Suggestion struct {
	Label string  `json:"label"`
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
}

// candidate carries the internal ranking state for a suggestion.
type candidate struct {
	Suggestion
	source string
	score  float64
}

// Client talks to Photon (primary) and Nominatim (fallback) and blends both
// result sets with fuzzy-text and proximity scoring.
type Client struct {
	photonURL    string
	nominatimURL string
	httpClient   *http.Client
}

// NewClient creates a geocoding client with the given request timeout.
func NewClient(photonURL, nominatimURL string, timeout time.Duration) *Client {
	return &Client{
		photonURL:    photonURL,
		nominatimURL: nominatimURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Autocomplete queries both providers and returns up to limit suggestions.
// When a user anchor point is known, nearby places are boosted and far-away
// weak text matches are dropped.
func (c *Client) Autocomplete(ctx context.Context, query string, userLat, userLon *float64, limit int) []Suggestion {
	query = strings.TrimSpace(query)
	if query == "" || limit <= 0 {
		return nil
	}

	var all []candidate
	all = append(all, c.photonSearch(ctx, query, userLat, userLon, limit)...)
	all = append(all, c.nominatimSearch(ctx, query, limit)...)

	geoBias := userLat != nil && userLon != nil

	var ranked []candidate
	for _, cand := range all {
		score := similarity(query, cand.Label)

		if geoBias {
			distKm := spatial.HaversineDistance(*userLat, *userLon, cand.Lat, cand.Lon) / 1000

			// Far-away weak matches are noise
			if distKm > 50 && score < 85 {
				continue
			}
			if distKm < 10 {
				score += 30
			}
			score += max(0, 20-distKm)
		}

		if cand.source == "photon" {
			score += 10
		}

		cand.score = score
		ranked = append(ranked, cand)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	out := make([]Suggestion, len(ranked))
	for i, cand := range ranked {
		out[i] = cand.Suggestion
	}
	return out
}

// similarity scores query against label on a 0–100 scale using normalized
// Levenshtein distance.
func similarity(query, label string) float64 {
	a := strings.ToLower(query)
	b := strings.ToLower(label)
	if a == b {
		return 100
	}

	longest := len(a)
	if len(b) > longest {
		longest = len(b)
	}
	if longest == 0 {
		return 0
	}

	dist := fuzzy.LevenshteinDistance(a, b)
	return 100 * (1 - float64(dist)/float64(longest))
}

// photonSearch queries the Photon API, biased toward the user when known.
func (c *Client) photonSearch(ctx context.Context, query string, userLat, userLon *float64, limit int) []candidate {
	params := url.Values{
		"q":     {query},
		"limit": {strconv.Itoa(limit)},
	}
	if userLat != nil && userLon != nil {
		params.Set("lat", fmt.Sprintf("%.6f", *userLat))
		params.Set("lon", fmt.Sprintf("%.6f", *userLon))
	}

	var parsed struct {
		Features []struct {
			Properties struct {
				Name    string `json:"name"`
				Street  string `json:"street"`
				City    string `json:"city"`
				State   string `json:"state"`
				Country string `json:"country"`
			} `json:"properties"`
			Geometry struct {
				Coordinates []float64 `json:"coordinates"` // lon, lat
			} `json:"geometry"`
		} `json:"features"`
	}

	if err := c.getJSON(ctx, c.photonURL+"?"+params.Encode(), &parsed); err != nil {
		log.Printf("[geocode] photon search failed: %v", err)
		return nil
	}

	var results []candidate
	for _, f := range parsed.Features {
		if len(f.Geometry.Coordinates) < 2 {
			continue
		}
		parts := []string{
			f.Properties.Name, f.Properties.Street,
			f.Properties.City, f.Properties.State, f.Properties.Country,
		}
		var nonEmpty []string
		for _, p := range parts {
			if p != "" {
				nonEmpty = append(nonEmpty, p)
			}
		}

		results = append(results, candidate{
			Suggestion: Suggestion{
				Label: strings.Join(nonEmpty, ", "),
				Lat:   f.Geometry.Coordinates[1],
				Lon:   f.Geometry.Coordinates[0],
			},
			source: "photon",
		})
	}
	return results
}

// nominatimSearch queries the Nominatim search endpoint.
func (c *Client) nominatimSearch(ctx context.Context, query string, limit int) []candidate {
	params := url.Values{
		"q":              {query},
		"format":         {"json"},
		"limit":          {strconv.Itoa(limit)},
		"addressdetails": {"1"},
	}

	var parsed []struct {
		DisplayName string `json:"display_name"`
		Lat         string `json:"lat"`
		Lon         string `json:"lon"`
	}

	if err := c.getJSON(ctx, c.nominatimURL+"/search?"+params.Encode(), &parsed); err != nil {
		log.Printf("[geocode] nominatim search failed: %v", err)
		return nil
	}

	var results []candidate
	for _, item := range parsed {
		lat, err1 := strconv.ParseFloat(item.Lat, 64)
		lon, err2 := strconv.ParseFloat(item.Lon, 64)
		if err1 != nil || err2 != nil {
			continue
		}
		results = append(results, candidate{
			Suggestion: Suggestion{Label: item.DisplayName, Lat: lat, Lon: lon},
			source:     "nominatim",
		})
	}
	return results
}

// ReverseGeocode resolves a coordinate to a display address via Nominatim.
func (c *Client) ReverseGeocode(ctx context.Context, lat, lon float64) (string, error) {
	params := url.Values{
		"lat":    {fmt.Sprintf("%.6f", lat)},
		"lon":    {fmt.Sprintf("%.6f", lon)},
		"format": {"json"},
	}

	var parsed struct {
		DisplayName string `json:"display_name"`
	}
	if err := c.getJSON(ctx, c.nominatimURL+"/reverse?"+params.Encode(), &parsed); err != nil {
		return "", err
	}
	if parsed.DisplayName == "" {
		return "", fmt.Errorf("no address found for %.6f,%.6f", lat, lon)
	}
	return parsed.DisplayName, nil
}

// getJSON performs a GET and decodes the JSON body.
func (c *Client) getJSON(ctx context.Context, endpoint string, into interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", "WalkWithMe/1.0")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	return json.NewDecoder(resp.Body).Decode(into)
}
