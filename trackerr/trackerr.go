// Package trackerr defines the error taxonomy shared by every component of
// the track-geometry engine.
package trackerr

import "errors"

// Kind classifies a sentinel error into one of the families from the
// engine's error taxonomy.
type Kind int

const (
	KindUnknown Kind = iota
	KindInputValidation
	KindNumerics
	KindConstraints
	KindControl
)

func (k Kind) String() string {
	switch k {
	case KindInputValidation:
		return "input_validation"
	case KindNumerics:
		return "numerics"
	case KindConstraints:
		return "constraints"
	case KindControl:
		return "control"
	default:
		return "unknown"
	}
}

// Sentinel errors. Components return these directly; callers match with
// errors.Is, which also sees through any wrapping a caller adds.
var (
	ErrEmptyInput              = errors.New("empty input")
	ErrInsufficientData        = errors.New("insufficient data: fewer than two samples")
	ErrNonFinite               = errors.New("non-finite value in series")
	ErrNonMonotonic            = errors.New("distances are not strictly increasing")
	ErrUnsupportedChord        = errors.New("unsupported chord length")
	ErrInvalidChord            = errors.New("invalid chord: p and q must be > 0")
	ErrInvalidWavelength       = errors.New("invalid wavelength bounds")
	ErrSingularCharacteristic  = errors.New("singular measurement characteristic")
	ErrOverflow                = errors.New("numeric overflow")
	ErrIncompatibleConstraints = errors.New("incompatible constraints")
	ErrInfeasibleConstraints   = errors.New("infeasible constraints")
	ErrOutOfRange              = errors.New("distance out of range")
	ErrInvalidParams           = errors.New("invalid edit parameters")
	ErrCancelled               = errors.New("operation cancelled")
)

// KindOf reports the taxonomy Kind for one of the sentinel errors above,
// looking through wrapping via errors.Is.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return KindUnknown
	case errors.Is(err, ErrEmptyInput), errors.Is(err, ErrInsufficientData),
		errors.Is(err, ErrNonFinite), errors.Is(err, ErrNonMonotonic),
		errors.Is(err, ErrUnsupportedChord), errors.Is(err, ErrInvalidChord),
		errors.Is(err, ErrInvalidWavelength):
		return KindInputValidation
	case errors.Is(err, ErrSingularCharacteristic), errors.Is(err, ErrOverflow):
		return KindNumerics
	case errors.Is(err, ErrIncompatibleConstraints), errors.Is(err, ErrInfeasibleConstraints),
		errors.Is(err, ErrOutOfRange), errors.Is(err, ErrInvalidParams):
		return KindConstraints
	case errors.Is(err, ErrCancelled):
		return KindControl
	default:
		return KindUnknown
	}
}

// ExitCode maps an error to the CLI exit-code convention (§6), for
// collaborators that expose a CLI over this engine.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case KindInputValidation, KindNumerics:
		return 10
	case KindConstraints:
		return 20
	case KindControl:
		return 30
	default:
		return 40
	}
}
