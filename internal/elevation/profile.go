package elevation

import (
	"context"

	"github.com/walkwithme/backend-go/internal/models"
	"github.com/walkwithme/backend-go/internal/spatial"
)

// Service is the batch lookup surface the analyzer needs. Satisfied by
// *Client and by test stubs.
type Service interface {
	LookupBatch(ctx context.Context, coords []models.Coordinate) []float64
}

// smoothingKernel is a DC-preserving 3-tap low-pass filter: a constant
// series passes through unchanged, noise spikes are damped.
var smoothingKernel = [3]float64{0.25, 0.5, 0.25}

// Analyzer turns a route's coordinates into an elevation profile.
type Analyzer struct {
	service Service
}

// NewAnalyzer creates a profile analyzer backed by the given lookup service.
func NewAnalyzer(service Service) *Analyzer {
	return &Analyzer{service: service}
}

// Analyze produces the full elevation profile for a coordinate sequence:
// smoothed elevations, gain/loss, per-segment grades and a difficulty label.
// An empty input yields a zeroed Easy profile.
func (a *Analyzer) Analyze(ctx context.Context, coords []models.Coordinate) models.ElevationProfile {
	if len(coords) == 0 {
		return models.ElevationProfile{
			Elevations: []float64{},
			Slopes:     []float64{},
			Difficulty: models.DifficultyEasy,
		}
	}

	raw := a.service.LookupBatch(ctx, coords)
	elevations := Smooth(raw)

	gain, loss := GainLoss(elevations)
	slopes := Slopes(coords, elevations)

	maxSlope := 0.0
	for _, s := range slopes {
		if s > maxSlope {
			maxSlope = s
		}
	}

	return models.ElevationProfile{
		Elevations:      elevations,
		ElevationGainM:  spatial.Round2(gain),
		ElevationLossM:  spatial.Round2(loss),
		Slopes:          slopes,
		MaxSlopePercent: maxSlope,
		Difficulty:      ClassifyDifficulty(gain, maxSlope),
	}
}

// Smooth applies the 3-tap kernel as a same-length convolution. Boundary
// samples only see the kernel taps that fall inside the series; the used
// taps are renormalized so a constant series passes through unchanged.
func Smooth(elev []float64) []float64 {
	smoothed := make([]float64, len(elev))
	for i := range elev {
		acc := smoothingKernel[1] * elev[i]
		wsum := smoothingKernel[1]
		if i > 0 {
			acc += smoothingKernel[0] * elev[i-1]
			wsum += smoothingKernel[0]
		}
		if i < len(elev)-1 {
			acc += smoothingKernel[2] * elev[i+1]
			wsum += smoothingKernel[2]
		}
		smoothed[i] = acc / wsum
	}
	return smoothed
}

// GainLoss sums the positive and negative consecutive deltas of a series.
func GainLoss(elevations []float64) (gain, loss float64) {
	for i := 1; i < len(elevations); i++ {
		diff := elevations[i] - elevations[i-1]
		if diff > 0 {
			gain += diff
		} else {
			loss += -diff
		}
	}
	return gain, loss
}

// Slopes computes the percent grade of each segment. Segments shorter than
// one meter get slope 0, avoiding distance-noise blowups.
func Slopes(coords []models.Coordinate, elevations []float64) []float64 {
	slopes := make([]float64, 0, len(coords))
	for i := 1; i < len(coords); i++ {
		d := spatial.HaversineDistance(
			coords[i-1].Lat, coords[i-1].Lon,
			coords[i].Lat, coords[i].Lon,
		)
		if d < 1 {
			slopes = append(slopes, 0)
			continue
		}
		grade := (elevations[i] - elevations[i-1]) / d * 100
		slopes = append(slopes, spatial.Round3(grade))
	}
	return slopes
}

// ClassifyDifficulty buckets a route by total gain and steepest grade.
// First matching rule wins; thresholds are exclusive.
func ClassifyDifficulty(gainM, maxSlope float64) string {
	switch {
	case gainM < 50 && maxSlope < 6:
		return models.DifficultyEasy
	case gainM < 150 && maxSlope < 12:
		return models.DifficultyModerate
	case gainM < 300 && maxSlope < 18:
		return models.DifficultyHard
	default:
		return models.DifficultyVeryHard
	}
}
