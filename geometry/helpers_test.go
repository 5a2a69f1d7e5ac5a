package geometry

import "github.com/itsuki-jitera/rail-track-app-sub005/trackdata"

func newFlatSeriesConst(n int, tau, value float64) trackdata.ResampledSeries {
	samples := make([]trackdata.Sample, n)
	for i := range samples {
		samples[i] = trackdata.Sample{Distance: float64(i) * tau, Value: value}
	}
	return trackdata.ResampledSeries{Series: trackdata.NewSeries(samples), Tau: tau}
}
