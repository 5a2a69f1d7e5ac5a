package geometry

import (
	"math"
	"testing"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

func newPlanLineFromValues(values []float64, tau float64) trackdata.PlanLine {
	samples := make([]trackdata.Sample, len(values))
	for i, v := range values {
		samples[i] = trackdata.Sample{Distance: float64(i) * tau, Value: v}
	}
	return trackdata.PlanLine{Series: trackdata.NewSeries(samples), Tau: tau}
}

func TestClampOutliersClampsFarPoint(t *testing.T) {
	p := newPlanLineFromValues([]float64{0, 0, 0, 100, 0, 0, 0}, 1)
	out := ClampOutliers(p, 2.0)
	if out.Samples[3].Value == 100 {
		t.Errorf("outlier not clamped: %v", out.Samples[3].Value)
	}
}

func TestClampOutliersLeavesUniformSeriesUnchanged(t *testing.T) {
	p := newPlanLineFromValues([]float64{1, 1, 1, 1}, 1)
	out := ClampOutliers(p, 2.0)
	for i, sm := range out.Samples {
		if sm.Value != 1 {
			t.Errorf("value[%d] = %v, want 1", i, sm.Value)
		}
	}
}

func TestIterativeSmoothConvergesOnConstant(t *testing.T) {
	p := newPlanLineFromValues([]float64{2, 2, 2, 2, 2}, 1)
	out := IterativeSmooth(p, 0.5, 1e-6, 20)
	for i, sm := range out.Samples {
		if math.Abs(sm.Value-2) > 1e-9 {
			t.Errorf("IterativeSmooth(constant)[%d] = %v, want 2", i, sm.Value)
		}
	}
}

func TestIterativeSmoothReducesSpike(t *testing.T) {
	p := newPlanLineFromValues([]float64{0, 0, 10, 0, 0}, 1)
	out := IterativeSmooth(p, 0.5, 1e-6, 10)
	if out.Samples[2].Value >= 10 {
		t.Errorf("spike not reduced: %v", out.Samples[2].Value)
	}
}

func TestLocalWindowSmoothOnlyTouchesWindow(t *testing.T) {
	p := newPlanLineFromValues([]float64{5, 5, 5, 5, 5, 5, 5}, 1)
	out := LocalWindowSmooth(p, 2, 4, 3)
	if out.Samples[0].Value != 5 || out.Samples[6].Value != 5 {
		t.Errorf("LocalWindowSmooth touched samples outside [2,4]")
	}
}
