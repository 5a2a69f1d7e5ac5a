// Package spectral implements the FFT-based bandpass/lowpass/highpass/
// bandstop engine of component B (spec §4.2), built on
// github.com/cwbudde/algo-fft's real-FFT plans, cached by transform
// length the way a plan cache keyed by transform size typically is.
package spectral

import (
	"errors"
	"sync"

	algofft "github.com/cwbudde/algo-fft"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

var planCache sync.Map // map[int]*realFFTPlan

// realFFTPlan wraps a fast plan when algo-fft has one for the given
// transform length, falling back to the always-available safe plan
// otherwise.
type realFFTPlan struct {
	mu   sync.Mutex
	fast *algofft.FastPlanReal64
	safe *algofft.PlanRealT[float64, complex128]
}

func planFor(m int) (*realFFTPlan, error) {
	if v, ok := planCache.Load(m); ok {
		return v.(*realFFTPlan), nil
	}

	p := &realFFTPlan{}

	fast, err := algofft.NewFastPlanReal64(m)
	if err == nil {
		p.fast = fast
	} else if !errors.Is(err, algofft.ErrNotImplemented) {
		// Ignore fast-plan setup errors and rely on the safe plan.
	}

	safe, err := algofft.NewPlanReal64(m)
	if err != nil {
		if p.fast == nil {
			return nil, err
		}
	} else {
		p.safe = safe
	}

	actual, _ := planCache.LoadOrStore(m, p)
	return actual.(*realFFTPlan), nil
}

func (p *realFFTPlan) forward(dst []complex128, src []float64) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fast != nil {
		p.fast.Forward(dst, src)
		return nil
	}
	return p.safe.Forward(dst, src)
}

func (p *realFFTPlan) inverse(dst []float64, src []complex128) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.fast != nil {
		p.fast.Inverse(dst, src)
		return nil
	}
	return p.safe.Inverse(dst, src)
}

// NextPow2 returns the smallest power of two >= n.
func NextPow2(n int) int {
	m := 1
	for m < n {
		m <<= 1
	}
	return m
}

// Pack builds a zero-padded SpectralBuffer from a resampled series'
// values: real length M = NextPow2(N), indices [N,M) are zero, and the
// forward real FFT of that padded signal is computed via the cached plan
// for length M.
func Pack(r trackdata.ResampledSeries) trackdata.SpectralBuffer {
	n := r.N()
	m := NextPow2(n)
	padded := make([]float64, m)
	for i := 0; i < n; i++ {
		padded[i] = r.ValueAt(i)
	}

	plan, err := planFor(m)
	data := make([]complex128, m/2+1)
	if err == nil {
		_ = plan.forward(data, padded)
	}

	return trackdata.SpectralBuffer{Data: data, Tau: r.Tau, N: n, M: m}
}

// Inverse runs the cached inverse real-FFT plan for buf.M over a copy of
// buf.Data and returns the first buf.N real samples of the reconstructed
// signal, as required by §4.2. The source buffer's Data is left
// untouched so a single packed buffer can be gated and inverse-
// transformed repeatedly.
func Inverse(buf trackdata.SpectralBuffer) []float64 {
	work := make([]complex128, len(buf.Data))
	copy(work, buf.Data)

	out := make([]float64, buf.M)
	plan, err := planFor(buf.M)
	if err == nil {
		_ = plan.inverse(out, work)
	}

	if buf.N >= len(out) {
		return out
	}
	return out[:buf.N]
}
