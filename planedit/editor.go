// Package planedit implements the pure-function plan-line editor
// operations consumed by an external UI (spec §4.6), plus the bounded
// undo/redo ring backing them (spec §3, §9).
package planedit

import (
	"math"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackerr"
)

func indexAt(p trackdata.PlanLine, d float64) (int, error) {
	distances := p.Distances()
	if len(distances) == 0 || d < distances[0] || d > distances[len(distances)-1] {
		return -1, trackerr.ErrOutOfRange
	}
	best, bestDiff := 0, math.Abs(distances[0]-d)
	for i, dd := range distances {
		if diff := math.Abs(dd - d); diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best, nil
}

func withValues(p trackdata.PlanLine, values []float64) trackdata.PlanLine {
	samples := make([]trackdata.Sample, len(values))
	for i, d := range p.Distances() {
		samples[i] = trackdata.Sample{Distance: d, Value: values[i]}
	}
	return trackdata.PlanLine{Series: trackdata.NewSeries(samples), Tau: p.Tau, D0: p.D0}
}

// SetStraight linearly interpolates plan values between (startD,startV)
// and (endD,endV), leaving samples outside [startD,endD] untouched.
func SetStraight(p trackdata.PlanLine, startD, endD, startV, endV float64) (trackdata.PlanLine, error) {
	if endD <= startD {
		return trackdata.PlanLine{}, trackerr.ErrInvalidParams
	}
	values := append([]float64(nil), p.Values()...)
	for i, d := range p.Distances() {
		if d < startD || d > endD {
			continue
		}
		frac := (d - startD) / (endD - startD)
		values[i] = startV + frac*(endV-startV)
	}
	return withValues(p, values), nil
}

// SetCircularArc writes a circular-arc profile of the given radius between
// startD and endD, centered on centerV, using the sagitta approximation
// offset(x) = x^2/(2*radius) about the segment midpoint, signed by
// direction (right is positive, left is negative), consistent with the
// radius/cant convention of trackdata.CurveSpec.
func SetCircularArc(p trackdata.PlanLine, startD, endD, radius, centerV float64, direction trackdata.CurveDirection) (trackdata.PlanLine, error) {
	if endD <= startD || radius <= 0 {
		return trackdata.PlanLine{}, trackerr.ErrInvalidParams
	}
	sign := 1.0
	if direction == trackdata.DirectionLeft {
		sign = -1.0
	}
	mid := (startD + endD) / 2
	values := append([]float64(nil), p.Values()...)
	for i, d := range p.Distances() {
		if d < startD || d > endD {
			continue
		}
		x := d - mid
		values[i] = centerV + sign*(x*x)/(2*radius)
	}
	return withValues(p, values), nil
}

// InsertPoint sets the plan value at the nearest sample to d (clamped to
// [minV,maxV] if the bounds are non-zero-width).
func InsertPoint(p trackdata.PlanLine, d, v, minV, maxV float64) (trackdata.PlanLine, error) {
	idx, err := indexAt(p, d)
	if err != nil {
		return trackdata.PlanLine{}, err
	}
	if maxV > minV {
		if v < minV {
			v = minV
		}
		if v > maxV {
			v = maxV
		}
	}
	values := append([]float64(nil), p.Values()...)
	values[idx] = v
	return withValues(p, values), nil
}

// DeletePoint resets the plan value at the nearest sample to d back to 0.
func DeletePoint(p trackdata.PlanLine, d float64) (trackdata.PlanLine, error) {
	idx, err := indexAt(p, d)
	if err != nil {
		return trackdata.PlanLine{}, err
	}
	values := append([]float64(nil), p.Values()...)
	values[idx] = 0
	return withValues(p, values), nil
}

// MovePoint shifts the plan value at the nearest sample to d by deltaV,
// clamped to [minV,maxV] if the bounds are non-zero-width.
func MovePoint(p trackdata.PlanLine, d, deltaV, minV, maxV float64) (trackdata.PlanLine, error) {
	idx, err := indexAt(p, d)
	if err != nil {
		return trackdata.PlanLine{}, err
	}
	values := append([]float64(nil), p.Values()...)
	v := values[idx] + deltaV
	if maxV > minV {
		if v < minV {
			v = minV
		}
		if v > maxV {
			v = maxV
		}
	}
	values[idx] = v
	return withValues(p, values), nil
}

// SmoothSection applies a centered moving average of windowPoints points
// to the samples within [startD, endD].
func SmoothSection(p trackdata.PlanLine, startD, endD float64, windowPoints int) (trackdata.PlanLine, error) {
	if endD <= startD {
		return trackdata.PlanLine{}, trackerr.ErrInvalidParams
	}
	if windowPoints < 1 {
		windowPoints = 1
	}
	half := windowPoints / 2
	values := append([]float64(nil), p.Values()...)
	for i, d := range p.Distances() {
		if d < startD || d > endD {
			continue
		}
		lo, hi := i-half, i+half
		if lo < 0 {
			lo = 0
		}
		if hi > len(values)-1 {
			hi = len(values) - 1
		}
		sum := 0.0
		for j := lo; j <= hi; j++ {
			sum += p.Values()[j]
		}
		values[i] = sum / float64(hi-lo+1)
	}
	return withValues(p, values), nil
}
