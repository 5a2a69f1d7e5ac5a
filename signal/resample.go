// Package signal implements the equal-interval resampling, interpolation,
// windowing and statistics primitives of component A (spec §4.1).
package signal

import (
	"sort"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackerr"
)

// tieEpsilon is the distance tolerance within which a target sample is
// considered to coincide with an input sample (§4.7 resample tie-break).
const tieEpsilon = 1e-9

// DefaultTau is the default sampling interval in meters.
const DefaultTau = 0.25

// Resample produces a ResampledSeries at step tau covering the input's
// distance span, using linear interpolation between the two enclosing
// input samples and clamping to endpoint values outside the input range.
func Resample(s trackdata.Series, tau float64) (trackdata.ResampledSeries, error) {
	if len(s.Samples) == 0 {
		return trackdata.ResampledSeries{}, trackerr.ErrEmptyInput
	}
	if !sort.SliceIsSorted(s.Samples, func(i, j int) bool { return s.Samples[i].Distance < s.Samples[j].Distance }) {
		return trackdata.ResampledSeries{}, trackerr.ErrNonMonotonic
	}

	dMin := s.Samples[0].Distance
	dMax := s.Samples[len(s.Samples)-1].Distance
	if dMax < dMin {
		dMin, dMax = dMax, dMin
	}

	n := int((dMax-dMin)/tau) + 1
	if n < 1 {
		n = 1
	}
	out := make([]trackdata.Sample, n)

	idx := 0 // lower-bound cursor into s.Samples, advanced monotonically
	for k := 0; k < n; k++ {
		d := dMin + float64(k)*tau
		v := interpolateAt(s.Samples, d, &idx)
		out[k] = trackdata.Sample{Distance: d, Value: v}
	}

	return trackdata.ResampledSeries{
		Series: trackdata.NewSeries(out),
		Tau:    tau,
		D0:     dMin,
	}, nil
}

// interpolateAt evaluates the piecewise-linear interpolant of samples at
// distance d, advancing the shared cursor idx (samples are traversed in
// increasing distance order by the caller, so idx only moves forward).
func interpolateAt(samples []trackdata.Sample, d float64, idx *int) float64 {
	n := len(samples)
	if d <= samples[0].Distance+tieEpsilon {
		return samples[0].Value // clamp below range, or tie with first sample
	}
	if d >= samples[n-1].Distance-tieEpsilon {
		return samples[n-1].Value // clamp above range, or tie with last sample
	}

	i := *idx
	for i < n-1 && samples[i+1].Distance < d-tieEpsilon {
		i++
	}
	*idx = i

	a, b := samples[i], samples[i+1]
	if abs(d-a.Distance) <= tieEpsilon {
		return a.Value
	}
	if abs(d-b.Distance) <= tieEpsilon {
		return b.Value
	}
	frac := (d - a.Distance) / (b.Distance - a.Distance)
	return a.Value + frac*(b.Value-a.Value)
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
