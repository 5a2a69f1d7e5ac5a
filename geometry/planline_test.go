package geometry

import (
	"math"
	"testing"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

func TestGeneratePlanLineZeroPointIsZero(t *testing.T) {
	r := newFlatSeriesConst(20, 0.25, 5)
	cfg := PlanLineConfig{Mode: trackdata.PlanZeroPoint}
	plan, err := GeneratePlanLine(r, cfg)
	if err != nil {
		t.Fatalf("GeneratePlanLine() error = %v", err)
	}
	for i, sm := range plan.Samples {
		if sm.Value != 0 {
			t.Errorf("zero-point plan[%d] = %v, want 0", i, sm.Value)
		}
	}
}

func TestGeneratePlanLineConvexUpwardNeverExceedsRestored(t *testing.T) {
	const tau = 0.25
	n := 200
	samples := make([]trackdata.Sample, n)
	for i := 0; i < n; i++ {
		d := float64(i) * tau
		samples[i] = trackdata.Sample{Distance: d, Value: math.Sin(2 * math.Pi * d / 20)}
	}
	r := trackdata.ResampledSeries{Series: trackdata.NewSeries(samples), Tau: tau}

	cfg := NewDefaultPlanLineConfig()
	plan, err := GeneratePlanLine(r, cfg)
	if err != nil {
		t.Fatalf("GeneratePlanLine() error = %v", err)
	}
	for i, sm := range plan.Samples {
		if sm.Value > samples[i].Value+1e-9 {
			t.Errorf("plan[%d] = %v exceeds restored %v", i, sm.Value, samples[i].Value)
		}
	}
}

func TestGeneratePlanLineUnknownModeErrors(t *testing.T) {
	r := newFlatSeriesConst(10, 0.25, 0)
	_, err := GeneratePlanLine(r, PlanLineConfig{Mode: trackdata.PlanMode(99)})
	if err == nil {
		t.Errorf("expected error for unknown plan mode")
	}
}

func TestClampGradientLimitsStepSize(t *testing.T) {
	plan := []float64{0, 100, 0, -100}
	clampGradient(plan, 1.0, 5.0) // max 5mm per meter at tau=1m
	for i := 1; i < len(plan); i++ {
		step := math.Abs(plan[i] - plan[i-1])
		if step > 5.0+1e-9 {
			t.Errorf("gradient step[%d] = %v, want <= 5.0", i, step)
		}
	}
}
