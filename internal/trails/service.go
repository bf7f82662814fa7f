package trails

import (
	"context"
	"sort"
	"strings"

	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/walkwithme/backend-go/internal/elevation"
	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/overpass"
	"github.com/walkwithme/backend-go/internal/spatial"
)

// Trail is a scored hiking segment near the user.
type Trail struct {
	Name              string         `json:"name"`
	LengthM           float64        `json:"length_m"`
	ElevationGainM    float64        `json:"elevation_gain_m"`
	DifficultyLevel   string         `json:"difficulty_level"`
	DifficultyScore   float64        `json:"difficulty_score"`
	ScenicScore       int            `json:"scenic_score"`
	SafetyScore       int            `json:"safety_score"`
	DistanceFromUserM float64        `json:"distance_from_user_m"`
	Geometry          orb.LineString `json:"geometry_coords"`
}

// WayLoader fetches trail-style ways around a point.
type WayLoader interface {
	TrailWays(ctx context.Context, lat, lon, radiusM float64) ([]overpass.Way, error)
}

// Service discovers and scores trails near a coordinate.
type Service struct {
	loader WayLoader
	elev   elevation.Service
}

// NewService creates a trail discovery service.
func NewService(loader WayLoader, elev elevation.Service) *Service {
	return &Service{loader: loader, elev: elev}
}

// trailSearchRadiusM bounds the Overpass window we search in; the per-trail
// distance filter is applied on top of it.
const trailSearchRadiusM = 4000

// FindNearby returns trails whose start lies within maxDistanceM of the
// user, scored and sorted gentlest-and-most-scenic first.
func (s *Service) FindNearby(ctx context.Context, lat, lon, maxDistanceM float64, limit int) ([]Trail, error) {
	ways, err := s.loader.TrailWays(ctx, lat, lon, trailSearchRadiusM)
	if err != nil {
		return nil, errors.Wrap(err, "trail discovery failed")
	}

	var found []Trail
	for _, way := range ways {
		if len(way.Line) == 0 {
			continue
		}

		first := way.Line[0]
		dist := spatial.HaversineDistance(lat, lon, first[1], first[0])
		if dist > maxDistanceM {
			continue
		}

		gain := s.elevationGain(ctx, way.Line)
		level, score := scoreDifficulty(way.LengthM, gain)

		name := way.Name
		if name == "" {
			name = "Unnamed Trail"
		}

		found = append(found, Trail{
			Name:              name,
			LengthM:           spatial.Round2(way.LengthM),
			ElevationGainM:    spatial.Round2(gain),
			DifficultyLevel:   level,
			DifficultyScore:   score,
			ScenicScore:       scoreScenic(way),
			SafetyScore:       scoreSafety(way),
			DistanceFromUserM: spatial.Round2(dist),
			Geometry:          way.Line,
		})
	}

	// Gentle trails first, ties broken by scenic appeal
	sort.SliceStable(found, func(i, j int) bool {
		if found[i].DifficultyScore != found[j].DifficultyScore {
			return found[i].DifficultyScore < found[j].DifficultyScore
		}
		return found[i].ScenicScore > found[j].ScenicScore
	})

	if limit > 0 && len(found) > limit {
		found = found[:limit]
	}
	return found, nil
}

// elevationGain sums the positive elevation deltas along a trail line.
func (s *Service) elevationGain(ctx context.Context, line orb.LineString) float64 {
	coords := make([]models.Coordinate, len(line))
	for i, pt := range line {
		coords[i] = models.Coordinate{Lat: pt[1], Lon: pt[0]}
	}

	elevations := s.elev.LookupBatch(ctx, coords)
	gain, _ := elevation.GainLoss(elevations)
	return gain
}

// scoreDifficulty applies a Naismith-like rule: one point per km plus one
// point per 100 m of climb.
func scoreDifficulty(lengthM, gainM float64) (string, float64) {
	score := lengthM/1000 + gainM/100

	level := "Hard"
	switch {
	case score < 2:
		level = "Easy"
	case score < 5:
		level = "Moderate"
	}
	return level, spatial.Round2(score)
}

// scoreScenic rewards water/park names and natural surfaces.
func scoreScenic(way overpass.Way) int {
	score := 0
	name := strings.ToLower(way.Name)

	if strings.Contains(name, "park") || strings.Contains(name, "lake") || strings.Contains(name, "river") {
		score += 2
	}
	switch way.Surface {
	case "dirt", "gravel", "ground":
		score++
	case "paved":
		score--
	}
	return score
}

// scoreSafety prefers maintained surfaces.
func scoreSafety(way overpass.Way) int {
	score := 0
	switch way.Surface {
	case "dirt", "ground":
		score++
	case "paved":
		score += 2
	case "rocky":
		score--
	}
	return score
}
