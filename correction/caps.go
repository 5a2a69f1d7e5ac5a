package correction

import (
	"sort"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

// ApplyCaps clamps movement to the global/section-override limits and, if
// enabled, smooths the transitions between differing caps so that the
// per-sample slope never exceeds GradientMMPerM (§4.5). Returns the capped
// movement and any diagnostics raised (cap overrides in effect, gradient
// clamping applied).
func ApplyCaps(movement []float64, distances []float64, tau float64, limits trackdata.MovementLimits) ([]float64, []trackdata.Diagnostic) {
	out := append([]float64(nil), movement...)
	var diags []trackdata.Diagnostic

	sections := append([]trackdata.SectionCaps(nil), limits.Sections...)
	sort.SliceStable(sections, func(i, j int) bool { return sections[i].Priority > sections[j].Priority })

	overrideUsed := false
	for i, d := range distances {
		maxUp, maxDown := limits.MaxUp, limits.MaxDown
		for _, s := range sections {
			if d >= s.Start && d <= s.End {
				maxUp, maxDown = s.MaxUp, s.MaxDown
				overrideUsed = true
				break
			}
		}
		if out[i] > maxUp {
			out[i] = maxUp
		} else if out[i] < -maxDown {
			out[i] = -maxDown
		}
	}
	if overrideUsed {
		diags = append(diags, trackdata.Diagnostic{Code: trackdata.WCapOverride, Message: "section movement cap overrides applied"})
	}

	if limits.EnableGradient && limits.GradientMMPerM > 0 {
		clamped := smoothGradient(out, tau, limits.GradientMMPerM)
		if clamped {
			diags = append(diags, trackdata.Diagnostic{Code: trackdata.WGradientClamped, Message: "movement gradient clamped at cap boundary"})
		}
	}

	return out, diags
}

// smoothGradient pulls each sample toward its predecessor when the step
// between them exceeds gradientMMPerM*tau, and reports whether any
// adjustment was made.
func smoothGradient(values []float64, tau, gradientMMPerM float64) bool {
	maxStep := gradientMMPerM * tau
	clamped := false
	for i := 1; i < len(values); i++ {
		d := values[i] - values[i-1]
		if d > maxStep {
			values[i] = values[i-1] + maxStep
			clamped = true
		} else if d < -maxStep {
			values[i] = values[i-1] - maxStep
			clamped = true
		}
	}
	return clamped
}
