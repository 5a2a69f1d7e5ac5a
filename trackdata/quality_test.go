package trackdata

import "testing"

func TestGradeFor(t *testing.T) {
	tests := []struct {
		pct  float64
		want Grade
	}{
		{55, GradeA},
		{50, GradeA},
		{45, GradeB},
		{40, GradeB},
		{35, GradeC},
		{30, GradeC},
		{25, GradeD},
		{20, GradeD},
		{10, GradeE},
		{0, GradeE},
		{-5, GradeE},
	}
	for _, tt := range tests {
		if got := GradeFor(tt.pct); got != tt.want {
			t.Errorf("GradeFor(%v) = %v, want %v", tt.pct, got, tt.want)
		}
	}
}
