// Package geometry implements component D: versine and eccentric-versine
// computation, measurement-characteristic conversion, zero-crossing
// detection, and plan-line generation and refinement (spec §4.4).
package geometry

import (
	"math"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackerr"
)

// VersineMode selects the sign/amplitude convention of the symmetric
// versine computation.
type VersineMode int

const (
	// ModeY1 is the standard mid-chord-offset form.
	ModeY1 VersineMode = iota
	// ModeY2 is the sign-inverted, doubled-amplitude complementary form.
	ModeY2
)

// SupportedChords lists the preset symmetric chord lengths (meters).
var SupportedChords = []float64{5, 10, 20, 40}

func chordSupported(length float64) bool {
	for _, c := range SupportedChords {
		if length == c {
			return true
		}
	}
	return false
}

// round implements banker's rounding (round-half-to-even), as required by
// §4.7 for chord half-counts.
func round(x float64) int {
	return int(math.RoundToEven(x))
}

// Versine computes the symmetric versine of r at the given preset chord
// length and mode (§4.4). V[i] = (y[i-n]+y[i+n])/2 - y[i] for mode Y1,
// or the sign-inverted doubled form 2*y[i]-y[i-n]-y[i+n] for mode Y2.
// Boundary indices (i<n or i>=N-n) are exactly 0.
func Versine(r trackdata.ResampledSeries, chordLength float64, mode VersineMode) (trackdata.Series, error) {
	if !chordSupported(chordLength) {
		return trackdata.Series{}, trackerr.ErrUnsupportedChord
	}
	n := round((chordLength / 2) / r.Tau)
	values := r.Values()
	out := make([]trackdata.Sample, len(values))
	for i, d := range r.Distances() {
		if i < n || i >= len(values)-n {
			out[i] = trackdata.Sample{Distance: d, Value: 0}
			continue
		}
		y := values[i]
		before := values[i-n]
		after := values[i+n]
		var v float64
		if mode == ModeY1 {
			v = (before+after)/2 - y
		} else {
			v = 2*y - before - after
		}
		out[i] = trackdata.Sample{Distance: d, Value: v}
	}
	return trackdata.NewSeries(out), nil
}

// EccentricVersine computes the asymmetric-chord versine with forward arm
// p and backward arm q (meters), per §4.4:
// y_e[i] = x[i] - (p*x[i-qn] + q*x[i+pn]) / (p+q), zero outside
// [qn, N-pn).
func EccentricVersine(r trackdata.ResampledSeries, p, q float64) (trackdata.Series, error) {
	if p <= 0 || q <= 0 {
		return trackdata.Series{}, trackerr.ErrInvalidChord
	}
	pn := round(p / r.Tau)
	qn := round(q / r.Tau)
	values := r.Values()
	n := len(values)
	out := make([]trackdata.Sample, n)
	for i, d := range r.Distances() {
		if i < qn || i >= n-pn {
			out[i] = trackdata.Sample{Distance: d, Value: 0}
			continue
		}
		ve := values[i] - (p*values[i-qn]+q*values[i+pn])/(p+q)
		out[i] = trackdata.Sample{Distance: d, Value: ve}
	}
	return trackdata.NewSeries(out), nil
}
