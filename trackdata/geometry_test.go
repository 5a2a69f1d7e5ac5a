package trackdata

import "testing"

func TestWorkSectionValidate(t *testing.T) {
	if !(WorkSection{StartPos: 0, EndPos: 10}).Validate() {
		t.Errorf("Validate() = false, want true for StartPos < EndPos")
	}
	if (WorkSection{StartPos: 10, EndPos: 10}).Validate() {
		t.Errorf("Validate() = true, want false for StartPos == EndPos")
	}
	if (WorkSection{StartPos: 10, EndPos: 0}).Validate() {
		t.Errorf("Validate() = true, want false for StartPos > EndPos")
	}
}

func TestWorkSectionCheckBuffersWarnsOnShortBuffers(t *testing.T) {
	w := WorkSection{StartPos: 0, EndPos: 1000, BufferBefore: 100, BufferAfter: 1000}
	diags := w.CheckBuffers()
	if len(diags) != 1 {
		t.Fatalf("len(diags) = %d, want 1", len(diags))
	}
	if diags[0].Code != WBufferShort {
		t.Errorf("diags[0].Code = %v, want %v", diags[0].Code, WBufferShort)
	}
}

func TestWorkSectionCheckBuffersSilentWhenBothSufficient(t *testing.T) {
	w := WorkSection{StartPos: 0, EndPos: 1000, BufferBefore: 500, BufferAfter: 500}
	if diags := w.CheckBuffers(); len(diags) != 0 {
		t.Errorf("CheckBuffers() = %+v, want none", diags)
	}
}

func TestWorkSectionCheckBuffersWarnsOnBothShort(t *testing.T) {
	w := WorkSection{StartPos: 0, EndPos: 1000, BufferBefore: 100, BufferAfter: 200}
	if diags := w.CheckBuffers(); len(diags) != 2 {
		t.Errorf("len(diags) = %d, want 2", len(diags))
	}
}

func TestValidateCurveSpecsAcceptsMonotoneNonOverlapping(t *testing.T) {
	segments := []CurveSpec{
		{StartKP: 0, EndKP: 100, Kind: CurveStraight},
		{StartKP: 100, EndKP: 250, Kind: CurveTransition},
		{StartKP: 250, EndKP: 500, Kind: CurveCircular, Radius: 500},
	}
	if !ValidateCurveSpecs(segments) {
		t.Errorf("ValidateCurveSpecs() = false, want true")
	}
}

func TestValidateCurveSpecsRejectsOverlap(t *testing.T) {
	segments := []CurveSpec{
		{StartKP: 0, EndKP: 100, Kind: CurveStraight},
		{StartKP: 50, EndKP: 200, Kind: CurveTransition},
	}
	if ValidateCurveSpecs(segments) {
		t.Errorf("ValidateCurveSpecs() = true, want false for overlapping segments")
	}
}

func TestValidateCurveSpecsRejectsInvertedSegment(t *testing.T) {
	segments := []CurveSpec{{StartKP: 100, EndKP: 50, Kind: CurveStraight}}
	if ValidateCurveSpecs(segments) {
		t.Errorf("ValidateCurveSpecs() = true, want false for StartKP > EndKP")
	}
}

func TestValidateCurveSpecsAcceptsEmpty(t *testing.T) {
	if !ValidateCurveSpecs(nil) {
		t.Errorf("ValidateCurveSpecs(nil) = false, want true")
	}
}
