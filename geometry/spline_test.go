package geometry

import (
	"math"
	"testing"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

func TestCubicSplineFitTooFewPoints(t *testing.T) {
	r := newFlatSeriesConst(10, 0.25, 0)
	_, err := CubicSplineFit(r, []ControlPoint{{Distance: 0, Value: 0}})
	if err == nil {
		t.Errorf("expected error for a single control point")
	}
}

func TestCubicSplineFitInterpolatesControlPoints(t *testing.T) {
	points := []ControlPoint{
		{Distance: 0, Value: 0},
		{Distance: 10, Value: 5},
		{Distance: 20, Value: 0},
	}
	samples := make([]trackdata.Sample, 0, 81)
	for i := 0; i <= 80; i++ {
		samples = append(samples, trackdata.Sample{Distance: float64(i) * 0.25})
	}
	r := trackdata.ResampledSeries{Series: trackdata.NewSeries(samples), Tau: 0.25}

	plan, err := CubicSplineFit(r, points)
	if err != nil {
		t.Fatalf("CubicSplineFit() error = %v", err)
	}
	for _, cp := range points {
		idx := int(math.Round(cp.Distance / r.Tau))
		got := plan.Samples[idx].Value
		if math.Abs(got-cp.Value) > 1e-6 {
			t.Errorf("spline at control point d=%v = %v, want %v", cp.Distance, got, cp.Value)
		}
	}
}

func TestCubicSplineFitLinearThroughCollinearPoints(t *testing.T) {
	points := []ControlPoint{
		{Distance: 0, Value: 0},
		{Distance: 10, Value: 10},
		{Distance: 20, Value: 20},
	}
	samples := []trackdata.Sample{{Distance: 5}, {Distance: 15}}
	r := trackdata.ResampledSeries{Series: trackdata.NewSeries(samples), Tau: 5}

	plan, err := CubicSplineFit(r, points)
	if err != nil {
		t.Fatalf("CubicSplineFit() error = %v", err)
	}
	if math.Abs(plan.Samples[0].Value-5) > 1e-6 {
		t.Errorf("spline(5) = %v, want 5", plan.Samples[0].Value)
	}
	if math.Abs(plan.Samples[1].Value-15) > 1e-6 {
		t.Errorf("spline(15) = %v, want 15", plan.Samples[1].Value)
	}
}
