package correction

import (
	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackerr"
)

// DefaultFixedPointSupport is the default one-sided ramp length (meters)
// over which a fixed-point anchor decays back to zero (§4.5).
const DefaultFixedPointSupport = 20.0

// FixedPointTolerance is the maximum |movement| allowed at a fixed-point
// anchor after caps/gradient clamping, per the §8 property
// "|m(d*)| <= 1e-6".
const FixedPointTolerance = 1e-6

// ApplyFixedPoints adjusts plan so that movement (restored-plan) is zero
// at each fixed distance in fixedPoints, by adding a ramp that is 1 at the
// fixed point and decays linearly to 0 over support meters on each side
// (§4.5). Fixed points are applied in order; later points take precedence
// over earlier ramps at the distances they cover.
func ApplyFixedPoints(restored trackdata.ResampledSeries, plan trackdata.PlanLine, fixedPoints []float64, support float64) trackdata.PlanLine {
	if support <= 0 {
		support = DefaultFixedPointSupport
	}
	values := append([]float64(nil), plan.Values()...)
	restoredValues := restored.Values()
	distances := plan.Distances()

	for _, fp := range fixedPoints {
		idx := nearestIndex(distances, fp)
		if idx < 0 {
			continue
		}
		residual := restoredValues[idx] - values[idx] // movement at the anchor before this pass
		for i, d := range distances {
			frac := 1 - absf(d-distances[idx])/support
			if frac <= 0 {
				continue
			}
			values[i] += frac * residual
		}
	}
	return replacePlanValues(plan, values)
}

// VerifyFixedPoints reports trackerr.ErrInfeasibleConstraints if movement
// at any requested fixed-point distance exceeds FixedPointTolerance. A
// fixed point is anchored to 0 by ApplyFixedPoints before caps/gradient
// clamping and MTT correction run; those later passes can pull it away
// from 0 again when a neighboring section's caps or gradient limit
// conflict with the anchor, so the anchor guarantee must be re-checked
// on the final movement rather than assumed (§4.5, §8).
func VerifyFixedPoints(distances []float64, movement []float64, fixedPoints []float64) error {
	for _, fp := range fixedPoints {
		idx := nearestIndex(distances, fp)
		if idx < 0 || idx >= len(movement) {
			continue
		}
		if absf(movement[idx]) > FixedPointTolerance {
			return trackerr.ErrInfeasibleConstraints
		}
	}
	return nil
}

func nearestIndex(distances []float64, target float64) int {
	best, bestDist := -1, 0.0
	for i, d := range distances {
		if diff := absf(d - target); best < 0 || diff < bestDist {
			best, bestDist = i, diff
		}
	}
	return best
}

func absf(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}

func replacePlanValues(p trackdata.PlanLine, values []float64) trackdata.PlanLine {
	samples := make([]trackdata.Sample, len(values))
	for i, d := range p.Distances() {
		samples[i] = trackdata.Sample{Distance: d, Value: values[i]}
	}
	return trackdata.PlanLine{Series: trackdata.NewSeries(samples), Tau: p.Tau, D0: p.D0}
}
