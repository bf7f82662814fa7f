package models

// Mode selects the route personality applied by the dispatcher.
type Mode string

const (
	ModeShortest  Mode = "shortest"
	ModeSafe      Mode = "safe"
	ModeScenic    Mode = "scenic"
	ModeExplore   Mode = "explore"
	ModeElevation Mode = "elevation"
	ModeBest      Mode = "best"
	ModeLoop      Mode = "loop"
)

// ValidMode reports whether the mode is one the dispatcher understands.
// The HTTP layer rejects anything else before any core call is made.
func ValidMode(m Mode) bool {
	switch m {
	case ModeShortest, ModeSafe, ModeScenic, ModeExplore, ModeElevation, ModeBest, ModeLoop:
		return true
	}
	return false
}

// RequiresEnd reports whether the mode needs a destination. Loop routes
// start and finish at the same coordinate and ignore any end parameter.
func (m Mode) RequiresEnd() bool {
	return m != ModeLoop
}

// WeightBlend holds the AI multipliers applied when combining the short,
// safe, scenic and explore edge costs. Coefficients are independent and
// deliberately not normalized.
type WeightBlend struct {
	Short   float64 `json:"short"`
	Safe    float64 `json:"safe"`
	Scenic  float64 `json:"scenic"`
	Explore float64 `json:"explore"`
}

// RouteResult is the outcome of a successful dispatch. Immutable once built.
type RouteResult struct {
	Mode            Mode              `json:"mode"`
	Start           Coordinate        `json:"start"`
	End             *Coordinate       `json:"end,omitempty"`
	DurationMinutes int               `json:"duration_minutes,omitempty"`
	Coordinates     []Coordinate      `json:"coordinates"`
	DistanceM       float64           `json:"distance_m,omitempty"`
	Weights         *WeightBlend      `json:"weights,omitempty"`
	Elevation       *ElevationProfile `json:"elevation,omitempty"`
}
