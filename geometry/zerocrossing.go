package geometry

import (
	"math"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

// ZeroCrossingConfig controls crossing detection (§4.4).
type ZeroCrossingConfig struct {
	Threshold   float64 // mm, default 0.01
	MinInterval float64 // meters, default 1.0
}

// NewDefaultZeroCrossingConfig returns the default thresholds (§4.4).
func NewDefaultZeroCrossingConfig() ZeroCrossingConfig {
	return ZeroCrossingConfig{Threshold: 0.01, MinInterval: 1.0}
}

// DetectZeroCrossings scans r for sign changes per §4.4: a crossing exists
// where consecutive samples have strictly opposite signs (whatever their
// magnitude), or where exactly one of the two magnitudes is within the
// threshold of zero while the other is not. Crossings closer together
// than MinInterval are suppressed (the later one dropped).
func DetectZeroCrossings(r trackdata.ResampledSeries, cfg ZeroCrossingConfig) []trackdata.ZeroCrossing {
	values := r.Values()
	var crossings []trackdata.ZeroCrossing

	for i := 1; i < len(values); i++ {
		prev, cur := values[i-1], values[i]
		if !isCrossing(prev, cur, cfg.Threshold) {
			continue
		}

		frac := math.Abs(prev) / (math.Abs(prev) + math.Abs(cur))
		dist := r.DistanceAt(i-1) + r.Tau*frac

		crossing := trackdata.ZeroCrossing{
			Distance:    dist,
			IndexBefore: i - 1,
			Type:        crossingType(prev, cur),
		}

		if len(crossings) > 0 && dist-crossings[len(crossings)-1].Distance < cfg.MinInterval {
			continue // suppress: drop the later crossing
		}
		crossings = append(crossings, crossing)
	}
	return crossings
}

func isCrossing(prev, cur, threshold float64) bool {
	if prev*cur < 0 {
		return true
	}
	prevSmall := math.Abs(prev) <= threshold
	curSmall := math.Abs(cur) <= threshold
	return prevSmall != curSmall
}

func crossingType(prev, cur float64) trackdata.CrossingType {
	switch {
	case prev < 0 && cur >= 0:
		return trackdata.CrossingAscending
	case prev >= 0 && cur < 0:
		return trackdata.CrossingDescending
	default:
		return trackdata.CrossingNeutral
	}
}
