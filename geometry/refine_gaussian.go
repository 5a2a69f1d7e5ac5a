package geometry

import (
	"math"

	dspconv "github.com/cwbudde/algo-dsp/dsp/conv"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

// gaussianKernel builds a normalized Gaussian kernel truncated to +-3 sigma
// (in samples), renormalized so its coefficients sum to 1 (§4.4).
func gaussianKernel(sigmaSamples float64) []float64 {
	if sigmaSamples <= 0 {
		return []float64{1}
	}
	radius := int(math.Ceil(3 * sigmaSamples))
	if radius < 1 {
		radius = 1
	}
	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for i := -radius; i <= radius; i++ {
		g := math.Exp(-float64(i*i) / (2 * sigmaSamples * sigmaSamples))
		kernel[i+radius] = g
		sum += g
	}
	for i := range kernel {
		kernel[i] /= sum
	}
	return kernel
}

// GaussianSmooth convolves values with a Gaussian kernel of the given
// sigma (meters). Both ends are padded by repeating the edge sample over
// the kernel radius, so edge samples are not attenuated relative to
// interior ones; the truncated kernel is not renormalized near the
// boundaries. The convolution itself runs through algo-dsp's partitioned
// overlap-add engine.
func GaussianSmooth(r trackdata.ResampledSeries, sigmaMeters float64) (trackdata.Series, error) {
	sigmaSamples := sigmaMeters / r.Tau
	kernel := gaussianKernel(sigmaSamples)
	radius := len(kernel) / 2

	values := r.Values()
	n := len(values)

	ola, err := dspconv.NewOverlapAdd(kernel, 256)
	if err != nil {
		return trackdata.Series{}, err
	}
	padded := make([]float64, n+2*radius)
	for i := range padded {
		padded[i] = values[clampIndex(i-radius, n)]
	}
	full, err := ola.Process(padded)
	if err != nil {
		return trackdata.Series{}, err
	}

	out := make([]trackdata.Sample, n)
	for i, d := range r.Distances() {
		out[i] = trackdata.Sample{Distance: d, Value: full[i+radius]}
	}
	return trackdata.NewSeries(out), nil
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}
