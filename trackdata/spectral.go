package trackdata

// SpectralBuffer holds the real-FFT spectrum of a zero-padded
// ResampledSeries: M is the next power of two at or above the source
// length N (indices [N, M) of the padded real signal are zero), and Data
// holds the M/2+1 non-redundant complex bins of that real transform.
type SpectralBuffer struct {
	Data []complex128
	Tau  float64
	N    int // source (unpadded) length
	M    int // padded (real-domain) length
}

// FilterKind selects the gate predicate applied to a SpectralBuffer.
type FilterKind int

const (
	FilterBandpass FilterKind = iota
	FilterLowpass
	FilterHighpass
	FilterBandstop
)

// FilterSpec describes a passband/cutoff in wavelength terms, converted to
// frequency bounds (cycles per meter) internally.
type FilterSpec struct {
	Kind FilterKind

	// Bandpass/bandstop.
	WavelengthMin float64 // meters
	WavelengthMax float64 // meters

	// Lowpass/highpass single cutoff.
	WavelengthCutoff float64 // meters
}

// Bandpass builds a bandpass FilterSpec for [wavelengthMin, wavelengthMax].
func Bandpass(wavelengthMin, wavelengthMax float64) FilterSpec {
	return FilterSpec{Kind: FilterBandpass, WavelengthMin: wavelengthMin, WavelengthMax: wavelengthMax}
}

// Bandstop builds a bandstop FilterSpec for [wavelengthMin, wavelengthMax].
func Bandstop(wavelengthMin, wavelengthMax float64) FilterSpec {
	return FilterSpec{Kind: FilterBandstop, WavelengthMin: wavelengthMin, WavelengthMax: wavelengthMax}
}

// Lowpass builds a lowpass FilterSpec with the given cutoff wavelength.
func Lowpass(wavelengthCutoff float64) FilterSpec {
	return FilterSpec{Kind: FilterLowpass, WavelengthCutoff: wavelengthCutoff}
}

// Highpass builds a highpass FilterSpec with the given cutoff wavelength.
func Highpass(wavelengthCutoff float64) FilterSpec {
	return FilterSpec{Kind: FilterHighpass, WavelengthCutoff: wavelengthCutoff}
}
