package geometry

import (
	"math"
	"testing"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

func newSeriesFromValues(values []float64, tau float64) trackdata.ResampledSeries {
	samples := make([]trackdata.Sample, len(values))
	for i, v := range values {
		samples[i] = trackdata.Sample{Distance: float64(i) * tau, Value: v}
	}
	return trackdata.ResampledSeries{Series: trackdata.NewSeries(samples), Tau: tau}
}

func TestDetectZeroCrossingsSingleAscending(t *testing.T) {
	r := newSeriesFromValues([]float64{-1, -0.5, 0.5, 1, 1}, 1)
	crossings := DetectZeroCrossings(r, NewDefaultZeroCrossingConfig())
	if len(crossings) != 1 {
		t.Fatalf("got %d crossings, want 1: %+v", len(crossings), crossings)
	}
	if crossings[0].Type != trackdata.CrossingAscending {
		t.Errorf("crossing type = %v, want ascending", crossings[0].Type)
	}
}

func TestDetectZeroCrossingsDescending(t *testing.T) {
	r := newSeriesFromValues([]float64{1, 0.5, -0.5, -1}, 1)
	crossings := DetectZeroCrossings(r, NewDefaultZeroCrossingConfig())
	if len(crossings) != 1 || crossings[0].Type != trackdata.CrossingDescending {
		t.Fatalf("crossings = %+v, want one descending", crossings)
	}
}

func TestDetectZeroCrossingsSuppressesCloseCrossings(t *testing.T) {
	r := newSeriesFromValues([]float64{-1, 1, -1, 1, -1}, 0.1)
	cfg := ZeroCrossingConfig{Threshold: 0.01, MinInterval: 1.0}
	crossings := DetectZeroCrossings(r, cfg)
	if len(crossings) != 1 {
		t.Errorf("got %d crossings, want 1 (rest suppressed by MinInterval): %+v", len(crossings), crossings)
	}
}

func TestDetectZeroCrossingsNoneInFlatSeries(t *testing.T) {
	r := newSeriesFromValues([]float64{1, 1, 1, 1}, 1)
	crossings := DetectZeroCrossings(r, NewDefaultZeroCrossingConfig())
	if len(crossings) != 0 {
		t.Errorf("got %d crossings in flat series, want 0", len(crossings))
	}
}

func TestDetectZeroCrossingsInterpolatedDistance(t *testing.T) {
	r := newSeriesFromValues([]float64{-1, 1}, 1)
	crossings := DetectZeroCrossings(r, NewDefaultZeroCrossingConfig())
	if len(crossings) != 1 {
		t.Fatalf("got %d crossings, want 1", len(crossings))
	}
	if math.Abs(crossings[0].Distance-0.5) > 1e-9 {
		t.Errorf("crossing distance = %v, want 0.5", crossings[0].Distance)
	}
}
