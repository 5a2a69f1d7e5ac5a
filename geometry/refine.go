package geometry

import (
	"github.com/itsuki-jitera/rail-track-app-sub005/signal"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

// ClampOutliers replaces values beyond threshold*sigma from the mean with
// the mean (§4.4 outlier clamp refinement).
func ClampOutliers(p trackdata.PlanLine, threshold float64) trackdata.PlanLine {
	values := p.Values()
	stats := signal.ComputeStatistics(values)
	out := make([]float64, len(values))
	bound := threshold * stats.StdDev
	for i, v := range values {
		if v-stats.Mean > bound || stats.Mean-v > bound {
			out[i] = stats.Mean
		} else {
			out[i] = v
		}
	}
	return replacePlanValues(p, out)
}

// IterativeSmooth repeatedly averages each interior point with its
// neighbors, p[i] <- (1-k)*p[i] + k*(p[i-1]+p[i+1])/2, until the maximum
// per-iteration change falls below convergenceThreshold or maxIterations
// is reached (§4.4).
func IterativeSmooth(p trackdata.PlanLine, k float64, convergenceThreshold float64, maxIterations int) trackdata.PlanLine {
	if maxIterations <= 0 {
		maxIterations = 10
	}
	cur := append([]float64(nil), p.Values()...)
	for iter := 0; iter < maxIterations; iter++ {
		next := append([]float64(nil), cur...)
		maxChange := 0.0
		for i := 1; i < len(cur)-1; i++ {
			neighborAvg := (cur[i-1] + cur[i+1]) / 2
			v := (1-k)*cur[i] + k*neighborAvg
			if d := v - cur[i]; d > maxChange || -d > maxChange {
				if d < 0 {
					d = -d
				}
				maxChange = d
			}
			next[i] = v
		}
		cur = next
		if maxChange < convergenceThreshold {
			break
		}
	}
	return replacePlanValues(p, cur)
}

// LocalWindowSmooth applies a centered moving average of windowPoints
// points to the samples whose distance falls within [startD, endD]
// (§4.4 local window smoothing).
func LocalWindowSmooth(p trackdata.PlanLine, startD, endD float64, windowPoints int) trackdata.PlanLine {
	if windowPoints < 1 {
		windowPoints = 1
	}
	half := windowPoints / 2
	values := p.Values()
	out := append([]float64(nil), values...)
	for i, d := range p.Distances() {
		if d < startD || d > endD {
			continue
		}
		lo := i - half
		if lo < 0 {
			lo = 0
		}
		hi := i + half
		if hi > len(values)-1 {
			hi = len(values) - 1
		}
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += values[j]
		}
		out[i] = sum / float64(hi-lo+1)
	}
	return replacePlanValues(p, out)
}

func replacePlanValues(p trackdata.PlanLine, values []float64) trackdata.PlanLine {
	samples := make([]trackdata.Sample, len(values))
	for i, d := range p.Distances() {
		samples[i] = trackdata.Sample{Distance: d, Value: values[i]}
	}
	return trackdata.PlanLine{Series: trackdata.NewSeries(samples), Tau: p.Tau, D0: p.D0}
}
