package trackdata

// CrossingType classifies a detected zero crossing.
type CrossingType int

const (
	CrossingNeutral CrossingType = iota
	CrossingAscending
	CrossingDescending
)

func (t CrossingType) String() string {
	switch t {
	case CrossingAscending:
		return "ascending"
	case CrossingDescending:
		return "descending"
	default:
		return "neutral"
	}
}

// ZeroCrossing is a detected sign change in a resampled series.
type ZeroCrossing struct {
	Distance    float64
	IndexBefore int
	Type        CrossingType
}

// PlanMode selects a plan-line generation strategy (§4.4).
type PlanMode int

const (
	PlanZeroPoint PlanMode = iota
	PlanRestoredBased
	PlanConvexUpward
)

// PlanLine is a Series aligned pointwise with a ResampledSeries: same
// distances, target-geometry values.
type PlanLine struct {
	Series
	Tau float64
	D0  float64
}

// CurveDirection is the lateral direction of a curve.
type CurveDirection int

const (
	DirectionLeft CurveDirection = iota
	DirectionRight
)

// CurveKind classifies a track-plan segment.
type CurveKind int

const (
	CurveStraight CurveKind = iota
	CurveTransition
	CurveCircular
)

// CurveSpec describes one segment of the horizontal alignment.
type CurveSpec struct {
	StartKP   float64
	EndKP     float64
	Kind      CurveKind
	Radius    float64 // meters, circular only
	Cant      float64 // millimeters
	Direction CurveDirection
	Label     string
}

// ValidateCurveSpecs reports whether segments, taken in the order given,
// cover a monotone, non-overlapping KP range (§3): each segment's KP span
// must be well formed, and each segment must start at or after the end of
// the previous one.
func ValidateCurveSpecs(segments []CurveSpec) bool {
	for i, s := range segments {
		if s.EndKP <= s.StartKP {
			return false
		}
		if i > 0 && s.StartKP < segments[i-1].EndKP {
			return false
		}
	}
	return true
}

// WorkDirection is the direction a tamper travels while working a section.
type WorkDirection int

const (
	WorkForward WorkDirection = iota
	WorkBackward
)

// LineSide distinguishes up/down/single-track lines.
type LineSide int

const (
	LineUp LineSide = iota
	LineDown
	LineSingle
)

// WorkSection describes the extent of a maintenance run.
type WorkSection struct {
	Line          string
	Direction     LineSide
	WorkDirection WorkDirection
	StartPos      float64
	EndPos        float64
	BufferBefore  float64
	BufferAfter   float64
}

// Validate reports whether the section's positions are well formed.
// It does not check buffer length; that only produces a warning, from
// CheckBuffers, not an error.
func (w WorkSection) Validate() bool {
	return w.StartPos < w.EndPos
}

// MinRecommendedBuffer is the buffer length below which CheckBuffers
// raises a WBufferShort diagnostic rather than an error (§3: "warnings
// (not errors) when buffers < 500 m").
const MinRecommendedBuffer = 500.0

// CheckBuffers reports a WBufferShort diagnostic for each of
// BufferBefore/BufferAfter shorter than MinRecommendedBuffer. A short
// buffer is advisory only; it never fails Validate.
func (w WorkSection) CheckBuffers() []Diagnostic {
	var diags []Diagnostic
	if w.BufferBefore < MinRecommendedBuffer {
		diags = append(diags, Diagnostic{
			Code:    WBufferShort,
			Message: "buffer before work section is shorter than the recommended 500 m",
		})
	}
	if w.BufferAfter < MinRecommendedBuffer {
		diags = append(diags, Diagnostic{
			Code:    WBufferShort,
			Message: "buffer after work section is shorter than the recommended 500 m",
		})
	}
	return diags
}

// SectionCaps is a per-section override of movement limits.
type SectionCaps struct {
	Start, End                       float64
	MaxUp, MaxDown, MaxLeft, MaxRight float64
	Priority                          int
}

// MovementLimits bounds how far the correction may move the track.
type MovementLimits struct {
	MaxUp, MaxDown, MaxLeft, MaxRight float64
	EnableGradient                    bool
	GradientMMPerM                    float64
	Sections                          []SectionCaps
}

// MTTConfig names a tamper's chord geometry.
type MTTConfig struct {
	MachineType string
	LevelingBC  float64
	LevelingCD  float64
	LiningBC    float64
	LiningCD    float64
}

// MeasurementCharacteristic is the sinusoidal transfer function of a chord
// pair (p,q) at a given wavelength (§4.4).
type MeasurementCharacteristic struct {
	P, Q       float64
	Wavelength float64
	A, B       float64
	Amplitude  float64
	Phase      float64
}
