package correction

import (
	"github.com/itsuki-jitera/rail-track-app-sub005/signal"
	"github.com/itsuki-jitera/rail-track-app-sub005/spectral"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

// wavebandBreakdown bandpass-filters the restored signal through each
// configured waveband and reports the sigma of each component. The
// forward FFT is computed once and reused for every band (gate-and-IFFT
// per band) rather than recomputed, per §9 "FFT ownership".
func wavebandBreakdown(restored trackdata.ResampledSeries, bands []WavebandSpec) []trackdata.WavebandQuality {
	if len(bands) == 0 {
		return nil
	}
	base := spectral.Pack(restored)

	out := make([]trackdata.WavebandQuality, len(bands))
	for i, band := range bands {
		buf := trackdata.SpectralBuffer{
			Data: append([]complex128(nil), base.Data...),
			Tau:  base.Tau, N: base.N, M: base.M,
		}
		spectral.Gate(buf, trackdata.Bandpass(band.WavelengthMin, band.WavelengthMax))
		values := spectral.Inverse(buf)
		out[i] = trackdata.WavebandQuality{
			Name:          band.Name,
			WavelengthMin: band.WavelengthMin,
			WavelengthMax: band.WavelengthMax,
			Sigma:         signal.ComputeStatistics(values).StdDev,
		}
	}
	return out
}
