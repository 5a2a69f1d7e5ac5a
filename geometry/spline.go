package geometry

import (
	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackerr"
)

// ControlPoint is one knot of a plan-line spline fit.
type ControlPoint struct {
	Distance float64
	Value    float64
}

// CubicSplineFit fits a natural cubic spline through points (sorted by
// distance) and evaluates it at every distance in r, producing a new
// PlanLine (§4.4). The second derivatives at the knots solve a tridiagonal
// system, found here with the standard Thomas algorithm.
func CubicSplineFit(r trackdata.ResampledSeries, points []ControlPoint) (trackdata.PlanLine, error) {
	n := len(points)
	if n < 2 {
		return trackdata.PlanLine{}, trackerr.ErrInvalidChord
	}

	h := make([]float64, n-1)
	for i := 0; i < n-1; i++ {
		h[i] = points[i+1].Distance - points[i].Distance
	}

	lower := make([]float64, n)
	diag := make([]float64, n)
	upper := make([]float64, n)
	rhs := make([]float64, n)

	diag[0], diag[n-1] = 1, 1 // natural boundary: second derivative = 0 at ends
	for i := 1; i < n-1; i++ {
		lower[i] = h[i-1]
		diag[i] = 2 * (h[i-1] + h[i])
		upper[i] = h[i]
		rhs[i] = 6 * ((points[i+1].Value-points[i].Value)/h[i] - (points[i].Value-points[i-1].Value)/h[i-1])
	}

	m := solveTridiagonal(lower, diag, upper, rhs)

	values := make([]float64, r.N())
	seg := 0
	for i, d := range r.Distances() {
		for seg < n-2 && d > points[seg+1].Distance {
			seg++
		}
		values[i] = evalSplineSegment(points, m, seg, d)
	}
	return newPlanLine(r, values), nil
}

func evalSplineSegment(points []ControlPoint, m []float64, seg int, d float64) float64 {
	x0, x1 := points[seg].Distance, points[seg+1].Distance
	y0, y1 := points[seg].Value, points[seg+1].Value
	hseg := x1 - x0
	if hseg == 0 {
		return y0
	}
	a := (x1 - d) / hseg
	b := (d - x0) / hseg
	return a*y0 + b*y1 +
		((a*a*a-a)*m[seg]+(b*b*b-b)*m[seg+1])*(hseg*hseg)/6
}

// solveTridiagonal solves Ax=rhs for a tridiagonal A given by lower,
// diag, upper (all length n, lower[0] and upper[n-1] unused) via the
// Thomas algorithm.
func solveTridiagonal(lower, diag, upper, rhs []float64) []float64 {
	n := len(diag)
	cp := make([]float64, n)
	dp := make([]float64, n)

	cp[0] = upper[0] / diag[0]
	dp[0] = rhs[0] / diag[0]
	for i := 1; i < n; i++ {
		denom := diag[i] - lower[i]*cp[i-1]
		if i < n-1 {
			cp[i] = upper[i] / denom
		}
		dp[i] = (rhs[i] - lower[i]*dp[i-1]) / denom
	}

	x := make([]float64, n)
	x[n-1] = dp[n-1]
	for i := n - 2; i >= 0; i-- {
		x[i] = dp[i] - cp[i]*x[i+1]
	}
	return x
}
