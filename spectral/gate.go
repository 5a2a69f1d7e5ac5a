package spectral

import "github.com/itsuki-jitera/rail-track-app-sub005/trackdata"

// frequency returns the cycles-per-meter frequency of bin i of the
// real-FFT spectrum of a length-M, step-tau signal (§4.2).
func frequency(i, m int, tau float64) float64 {
	return float64(i) / (float64(m) * tau)
}

// passes reports whether bin i should survive the given filter spec.
// Both the passband/cutoff wavelengths and the bin frequency are compared
// in cycles-per-meter terms throughout.
func passes(spec trackdata.FilterSpec, f float64) bool {
	switch spec.Kind {
	case trackdata.FilterLowpass:
		fCut := 1 / spec.WavelengthCutoff
		return f <= fCut
	case trackdata.FilterHighpass:
		fCut := 1 / spec.WavelengthCutoff
		return f >= fCut
	case trackdata.FilterBandstop:
		fLo := 1 / spec.WavelengthMax
		fHi := 1 / spec.WavelengthMin
		return f < fLo || f > fHi
	default: // FilterBandpass
		fLo := 1 / spec.WavelengthMax
		fHi := 1 / spec.WavelengthMin
		return f >= fLo && f <= fHi
	}
}

// Gate zeroes out bins of buf outside the pass region described by spec,
// mutating buf.Data in place. buf.Data holds only the non-redundant
// M/2+1 bins of a real-FFT spectrum, so clearing bin i alone keeps the
// result the spectrum of a real signal (§4.2) — there is no separate
// mirror bin to clear.
func Gate(buf trackdata.SpectralBuffer, spec trackdata.FilterSpec) {
	m := buf.M
	for i, bin := range buf.Data {
		if bin == 0 {
			continue
		}
		f := frequency(i, m, buf.Tau)
		if !passes(spec, f) {
			buf.Data[i] = 0
		}
	}
}
