package signal

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// PearsonCorrelation computes the Pearson correlation coefficient of a and
// b over their common prefix length (§4.1). Returns 0 when either series
// has zero variance.
func PearsonCorrelation(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	if n == 0 {
		return 0
	}
	a, b = a[:n], b[:n]

	if popVariance(a, stat.Mean(a, nil)) == 0 || popVariance(b, stat.Mean(b, nil)) == 0 {
		return 0
	}
	return stat.Correlation(a, b, nil)
}

// InfNorm returns the maximum absolute value in x (the ∞-norm used by the
// linearity/idempotence property tests in spec §8).
func InfNorm(x []float64) float64 {
	max := 0.0
	for _, v := range x {
		if a := math.Abs(v); a > max {
			max = a
		}
	}
	return max
}

// InfNormDiff returns ‖a-b‖∞ over the common prefix length.
func InfNormDiff(a, b []float64) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	max := 0.0
	for i := 0; i < n; i++ {
		if d := math.Abs(a[i] - b[i]); d > max {
			max = d
		}
	}
	return max
}
