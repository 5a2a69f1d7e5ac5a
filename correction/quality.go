package correction

import (
	"math"

	"github.com/itsuki-jitera/rail-track-app-sub005/signal"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
)

// QualityConfig controls the quality report (§4.5).
type QualityConfig struct {
	SectionLength float64 // meters, default 200
	Wavebands     []WavebandSpec
}

// WavebandSpec names one waveband breakdown entry.
type WavebandSpec struct {
	Name          trackdata.WavebandName
	WavelengthMin float64
	WavelengthMax float64
}

// DefaultWavebands are the three bands named in spec §4.5/§9.
var DefaultWavebands = []WavebandSpec{
	{Name: trackdata.WavebandShort, WavelengthMin: 3, WavelengthMax: 10},
	{Name: trackdata.WavebandMid, WavelengthMin: 10, WavelengthMax: 30},
	{Name: trackdata.WavebandLong, WavelengthMin: 30, WavelengthMax: 70},
}

// NewDefaultQualityConfig returns the default report shape: 200 m
// subsections and the three standard wavebands.
func NewDefaultQualityConfig() QualityConfig {
	return QualityConfig{SectionLength: 200, Wavebands: DefaultWavebands}
}

// Quality computes sigma_before (restored), sigma_after (restored -
// movement), the improvement rate and letter grade, plus per-section and
// per-waveband breakdowns (§4.5).
func Quality(restored trackdata.ResampledSeries, movement []float64, cfg QualityConfig) trackdata.QualityReport {
	restoredValues := restored.Values()
	after := make([]float64, len(restoredValues))
	n := len(restoredValues)
	if len(movement) < n {
		n = len(movement)
	}
	copy(after, restoredValues)
	for i := 0; i < n; i++ {
		after[i] = restoredValues[i] - movement[i]
	}

	sigmaBefore := signal.ComputeStatistics(restoredValues).StdDev
	sigmaAfter := signal.ComputeStatistics(after).StdDev
	improvement := ImprovementRate(sigmaBefore, sigmaAfter)

	return trackdata.QualityReport{
		SigmaBefore:    sigmaBefore,
		SigmaAfter:     sigmaAfter,
		ImprovementPct: improvement,
		Grade:          trackdata.GradeFor(improvement),
		BySection:      sectionBreakdown(restored, after, cfg.SectionLength),
		ByWaveband:     wavebandBreakdown(restored, cfg.Wavebands),
	}
}

// ImprovementRate computes (before-after)/before*100, rounded to one
// decimal; 0 when sigmaBefore is 0 (§4.5).
func ImprovementRate(sigmaBefore, sigmaAfter float64) float64 {
	if sigmaBefore == 0 {
		return 0
	}
	rate := (sigmaBefore - sigmaAfter) / sigmaBefore * 100
	return math.Round(rate*10) / 10
}

func sectionBreakdown(restored trackdata.ResampledSeries, after []float64, sectionLength float64) []trackdata.SectionQuality {
	if sectionLength <= 0 {
		sectionLength = 200
	}
	distances := restored.Distances()
	restoredValues := restored.Values()
	n := len(distances)
	if n == 0 {
		return nil
	}

	var out []trackdata.SectionQuality
	start := distances[0]
	for start < distances[n-1] {
		end := start + sectionLength
		var before, post []float64
		for i, d := range distances {
			if d >= start && d < end {
				before = append(before, restoredValues[i])
				if i < len(after) {
					post = append(post, after[i])
				}
			}
		}
		if len(before) == 0 {
			out = append(out, trackdata.SectionQuality{StartDistance: start, EndDistance: end, Empty: true})
			start = end
			continue
		}
		sb := signal.ComputeStatistics(before).StdDev
		sa := signal.ComputeStatistics(post).StdDev
		rate := ImprovementRate(sb, sa)
		out = append(out, trackdata.SectionQuality{
			StartDistance:  start,
			EndDistance:    end,
			SigmaBefore:    sb,
			SigmaAfter:     sa,
			ImprovementPct: rate,
			Grade:          trackdata.GradeFor(rate),
		})
		start = end
	}
	return out
}
