package geometry

import (
	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackerr"
)

// PlanLineConfig controls plan-line generation (§4.4).
type PlanLineConfig struct {
	Mode trackdata.PlanMode

	// PlanRestoredBased: Gaussian low-pass sigma in meters.
	GaussianSigma float64

	// PlanConvexUpward: zero-crossing detection for the envelope anchors
	// (zero-point mode does not use it).
	ZeroCrossing ZeroCrossingConfig

	// PlanConvexUpward: optional movement limits enforced on the envelope.
	Limits *trackdata.MovementLimits
}

// NewDefaultPlanLineConfig returns a convex-upward configuration with the
// spec's default zero-crossing parameters and a 10 m Gaussian sigma.
func NewDefaultPlanLineConfig() PlanLineConfig {
	return PlanLineConfig{
		Mode:          trackdata.PlanConvexUpward,
		GaussianSigma: 10.0,
		ZeroCrossing:  NewDefaultZeroCrossingConfig(),
	}
}

// GeneratePlanLine builds a PlanLine aligned to r's distances, per the
// mode selected in cfg (§4.4).
func GeneratePlanLine(r trackdata.ResampledSeries, cfg PlanLineConfig) (trackdata.PlanLine, error) {
	switch cfg.Mode {
	case trackdata.PlanZeroPoint:
		return zeroPointPlanLine(r), nil
	case trackdata.PlanRestoredBased:
		return restoredBasedPlanLine(r, cfg.GaussianSigma)
	case trackdata.PlanConvexUpward:
		return convexUpwardPlanLine(r, cfg.ZeroCrossing, cfg.Limits)
	default:
		return trackdata.PlanLine{}, trackerr.ErrIncompatibleConstraints
	}
}

func newPlanLine(r trackdata.ResampledSeries, values []float64) trackdata.PlanLine {
	out := make([]trackdata.Sample, len(values))
	for i, d := range r.Distances() {
		out[i] = trackdata.Sample{Distance: d, Value: values[i]}
	}
	return trackdata.PlanLine{Series: trackdata.NewSeries(out), Tau: r.Tau, D0: r.D0}
}

// zeroPointPlanLine is the flat-zero target: the restored waveform crosses
// it exactly at its own zero crossings (§4.4).
func zeroPointPlanLine(r trackdata.ResampledSeries) trackdata.PlanLine {
	return newPlanLine(r, make([]float64, r.N()))
}

// restoredBasedPlanLine low-passes the restored waveform with a wide
// Gaussian to track its long-wavelength trend (§4.4).
func restoredBasedPlanLine(r trackdata.ResampledSeries, sigmaMeters float64) (trackdata.PlanLine, error) {
	smoothed, err := GaussianSmooth(r, sigmaMeters)
	if err != nil {
		return trackdata.PlanLine{}, err
	}
	return newPlanLine(r, smoothed.Values()), nil
}

// convexUpwardPlanLine builds a piecewise-linear lower envelope of the
// restored signal anchored at zero crossings, then clamps it down wherever
// it would otherwise exceed the restored value, so movement = restored -
// plan is never negative (§4.4, taking the strict lower-envelope reading
// of "convex upward"). Upward-cap/gradient limits are applied afterward
// if given.
func convexUpwardPlanLine(r trackdata.ResampledSeries, zcCfg ZeroCrossingConfig, limits *trackdata.MovementLimits) (trackdata.PlanLine, error) {
	restored := r.Values()
	n := len(restored)

	crossings := DetectZeroCrossings(r, zcCfg)

	anchorIdx := make([]int, 0, len(crossings)+2)
	anchorVal := make([]float64, 0, len(crossings)+2)
	anchorIdx = append(anchorIdx, 0)
	anchorVal = append(anchorVal, restored[0])
	for _, c := range crossings {
		idx := c.IndexBefore
		anchorIdx = append(anchorIdx, idx)
		anchorVal = append(anchorVal, restored[idx])
	}
	anchorIdx = append(anchorIdx, n-1)
	anchorVal = append(anchorVal, restored[n-1])

	plan := make([]float64, n)
	seg := 0
	for i := 0; i < n; i++ {
		for seg < len(anchorIdx)-2 && i > anchorIdx[seg+1] {
			seg++
		}
		i0, i1 := anchorIdx[seg], anchorIdx[seg+1]
		v0, v1 := anchorVal[seg], anchorVal[seg+1]
		var interp float64
		if i1 == i0 {
			interp = v0
		} else {
			frac := float64(i-i0) / float64(i1-i0)
			interp = v0 + frac*(v1-v0)
		}
		if interp > restored[i] {
			interp = restored[i] // enforce plan <= restored (movement >= 0)
		}
		plan[i] = interp
	}

	if limits != nil {
		applyUpwardCapToPlan(plan, restored, r.Tau, *limits)
	}

	return newPlanLine(r, plan), nil
}

// applyUpwardCapToPlan re-raises the plan line wherever the implied upward
// movement (restored-plan) would exceed the configured cap, and smooths
// the transition with the gradient limit when enabled.
func applyUpwardCapToPlan(plan, restored []float64, tau float64, limits trackdata.MovementLimits) {
	if limits.MaxUp <= 0 {
		return
	}
	for i := range plan {
		if m := restored[i] - plan[i]; m > limits.MaxUp {
			plan[i] = restored[i] - limits.MaxUp
		}
	}
	if limits.EnableGradient && limits.GradientMMPerM > 0 {
		clampGradient(plan, tau, limits.GradientMMPerM)
	}
}

// clampGradient ensures |plan[i]-plan[i-1]| <= gradientMMPerM*tau by
// pulling later points toward earlier ones when the step is too steep.
func clampGradient(plan []float64, tau, gradientMMPerM float64) {
	maxStep := gradientMMPerM * tau
	for i := 1; i < len(plan); i++ {
		d := plan[i] - plan[i-1]
		if d > maxStep {
			plan[i] = plan[i-1] + maxStep
		} else if d < -maxStep {
			plan[i] = plan[i-1] - maxStep
		}
	}
}
