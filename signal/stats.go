package signal

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Statistics holds the descriptive statistics of a value series (§4.1).
type Statistics struct {
	Min, Max      float64
	Mean          float64
	Variance      float64 // population variance
	StdDev        float64 // population sigma
	Median        float64
	P25, P75, P95 float64
	RMS           float64
	Skewness      float64 // population skewness
	Kurtosis      float64 // excess kurtosis
}

// ComputeStatistics returns the descriptive statistics of values. The
// population convention (divide by n, not n-1) is used throughout, per
// spec §4.1: variance, skewness and kurtosis are accumulated by hand
// (popVariance, popMoment) rather than through gonum's Moment family,
// whose unbiased/weighted conventions don't match §4.1's plain 1/n
// divisor without extra bookkeeping; the nearest-rank percentiles
// (§4.1) are likewise hand-rolled (nearestRankQuantile) since gonum's
// stat.Quantile only offers the interpolated conventions. Only
// stat.Mean is used from gonum here.
func ComputeStatistics(values []float64) Statistics {
	n := len(values)
	if n == 0 {
		return Statistics{}
	}

	sorted := append([]float64(nil), values...)
	sort.Float64s(sorted)

	mean := stat.Mean(values, nil)
	variance := popVariance(values, mean)
	sigma := math.Sqrt(variance)

	var skew, kurt float64
	if sigma > 0 {
		skew = popMoment(values, mean, sigma, 3)
		kurt = popMoment(values, mean, sigma, 4) - 3
	}

	sumSq := 0.0
	for _, v := range values {
		sumSq += v * v
	}
	rms := math.Sqrt(sumSq / float64(n))

	return Statistics{
		Min:      sorted[0],
		Max:      sorted[n-1],
		Mean:     mean,
		Variance: variance,
		StdDev:   sigma,
		Median:   nearestRankQuantile(sorted, 0.5),
		P25:      nearestRankQuantile(sorted, 0.25),
		P75:      nearestRankQuantile(sorted, 0.75),
		P95:      nearestRankQuantile(sorted, 0.95),
		RMS:      rms,
		Skewness: skew,
		Kurtosis: kurt,
	}
}

func popVariance(values []float64, mean float64) float64 {
	sum := 0.0
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return sum / float64(len(values))
}

func popMoment(values []float64, mean, sigma float64, order float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += math.Pow((v-mean)/sigma, order)
	}
	return sum / float64(len(values))
}

// nearestRankQuantile implements the nearest-rank percentile over an
// already-sorted slice, as required by spec §4.1 (not gonum's default
// interpolated quantile).
func nearestRankQuantile(sorted []float64, p float64) float64 {
	n := len(sorted)
	if n == 0 {
		return 0
	}
	if n == 1 {
		return sorted[0]
	}
	rank := int(math.Ceil(p * float64(n)))
	if rank < 1 {
		rank = 1
	}
	if rank > n {
		rank = n
	}
	return sorted[rank-1]
}
