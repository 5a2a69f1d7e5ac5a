// Package correction implements component E: raw movement, fixed-point
// anchoring, movement caps with gradient limits, MTT chord-induced
// correction, convex plan-line correction, and quality statistics
// (spec §4.5).
package correction

import "github.com/itsuki-jitera/rail-track-app-sub005/trackdata"

// RawMovement computes m[i] = restored[i] - plan[i] at each aligned
// distance (§4.5). Positive values mean the track must be lifted/shifted
// toward the plan.
func RawMovement(restored trackdata.ResampledSeries, plan trackdata.PlanLine) []float64 {
	n := restored.N()
	if pn := plan.Len(); pn < n {
		n = pn
	}
	out := make([]float64, n)
	restoredValues := restored.Values()
	planValues := plan.Values()
	for i := 0; i < n; i++ {
		out[i] = restoredValues[i] - planValues[i]
	}
	return out
}
