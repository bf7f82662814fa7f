package models

// Difficulty buckets for a route's elevation profile.
const (
	DifficultyEasy     = "Easy"
	DifficultyModerate = "Moderate"
	DifficultyHard     = "Hard"
	DifficultyVeryHard = "Very Hard"
)

// ElevationProfile describes the vertical character of a route. Elevations
// align 1:1 with the route coordinates; Slopes has one entry per segment
// (len(coordinates)-1) as percent grade.
type ElevationProfile struct {
	Elevations      []float64 `json:"elevations"`
	ElevationGainM  float64   `json:"elevation_gain_m"`
	ElevationLossM  float64   `json:"elevation_loss_m"`
	Slopes          []float64 `json:"slopes"`
	MaxSlopePercent float64   `json:"max_slope_percent"`
	Difficulty      string    `json:"difficulty"`
}
