package signal

import "math"

// WindowKind selects a tapering window applied before spectral analysis.
type WindowKind int

const (
	WindowNone WindowKind = iota
	WindowHann
	WindowHamming
	WindowTukey
)

// ApplyWindow multiplies values in place by the chosen window function.
// WindowNone leaves values unchanged. Tukey uses alpha=0.1 as the taper
// fraction.
func ApplyWindow(values []float64, kind WindowKind) {
	n := len(values)
	if n < 2 || kind == WindowNone {
		return
	}
	for i := range values {
		values[i] *= windowGain(kind, i, n)
	}
}

func windowGain(kind WindowKind, i, n int) float64 {
	x := float64(i) / float64(n-1)
	switch kind {
	case WindowHann:
		return 0.5 - 0.5*math.Cos(2*math.Pi*x)
	case WindowHamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case WindowTukey:
		const alpha = 0.1
		switch {
		case x < alpha/2:
			return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-1)))
		case x > 1-alpha/2:
			return 0.5 * (1 + math.Cos(math.Pi*(2*x/alpha-2/alpha+1)))
		default:
			return 1
		}
	default:
		return 1
	}
}
