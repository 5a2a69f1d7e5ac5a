package correction

import "github.com/itsuki-jitera/rail-track-app-sub005/trackdata"

// EnforceConvexMovement re-lowers plan wherever the computed movement is
// negative, so that m[i] = restored[i] - plan[i] >= 0 everywhere a section
// is flagged convex (§4.5). The re-lowered plan is passed back through a
// tight gradient clamp to keep it continuous at the edges of the
// correction, then capped at restored once more; where the two conflict,
// non-negative movement wins over the gradient limit.
func EnforceConvexMovement(restored trackdata.ResampledSeries, plan trackdata.PlanLine, tau float64) (trackdata.PlanLine, []float64) {
	restoredValues := restored.Values()
	planValues := append([]float64(nil), plan.Values()...)
	n := len(planValues)
	if len(restoredValues) < n {
		n = len(restoredValues)
	}

	movement := make([]float64, n)
	for i := 0; i < n; i++ {
		if planValues[i] > restoredValues[i] {
			planValues[i] = restoredValues[i]
		}
		movement[i] = restoredValues[i] - planValues[i]
	}

	const continuityGradientMMPerM = 5.0
	smoothGradient(planValues, tau, continuityGradientMMPerM)
	for i := 0; i < n; i++ {
		if planValues[i] > restoredValues[i] {
			planValues[i] = restoredValues[i]
		}
		movement[i] = restoredValues[i] - planValues[i]
	}

	return replacePlanValues(plan, planValues), movement
}
