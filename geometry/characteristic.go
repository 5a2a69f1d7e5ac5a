package geometry

import (
	"math"

	"github.com/itsuki-jitera/rail-track-app-sub005/trackdata"
	"github.com/itsuki-jitera/rail-track-app-sub005/trackerr"
)

// singularEpsilon is the threshold below which A^2+B^2 is treated as
// singular (§4.4).
const singularEpsilon = 1e-9

// Characteristic computes the sinusoidal transfer function (A,B) of an
// eccentric chord (p,q) at wavelength lambda (§4.4):
//
//	A = 1 - (p*cos(w*q) + q*cos(w*p)) / (p+q)
//	B = (-p*sin(w*q) + q*sin(w*p)) / (p+q)
//
// with w = 2*pi/lambda. When p == q this reduces to the symmetric versine
// transfer.
func Characteristic(p, q, lambda float64) trackdata.MeasurementCharacteristic {
	w := 2 * math.Pi / lambda
	a := 1 - (p*math.Cos(w*q)+q*math.Cos(w*p))/(p+q)
	b := (-p*math.Sin(w*q) + q*math.Sin(w*p)) / (p + q)
	return trackdata.MeasurementCharacteristic{
		P: p, Q: q, Wavelength: lambda,
		A: a, B: b,
		Amplitude: math.Hypot(a, b),
		Phase:     math.Atan2(b, a),
	}
}

// Characteristics evaluates Characteristic at every wavelength in lambdas.
func Characteristics(p, q float64, lambdas []float64) []trackdata.MeasurementCharacteristic {
	out := make([]trackdata.MeasurementCharacteristic, len(lambdas))
	for i, lambda := range lambdas {
		out[i] = Characteristic(p, q, lambda)
	}
	return out
}

// ConversionCoefficients computes (alpha, beta) converting a measurement
// taken with characteristic (p1,q1) to the characteristic of (p2,q2) at
// wavelength lambda (§4.4):
//
//	alpha = (A1*A2 + B1*B2) / (A1^2 + B1^2)
//	beta  = (A1*B2 - A2*B1) / (A1^2 + B1^2)
//
// Returns trackerr.ErrSingularCharacteristic when A1^2+B1^2 < epsilon.
func ConversionCoefficients(p1, q1, p2, q2, lambda float64) (alpha, beta float64, err error) {
	c1 := Characteristic(p1, q1, lambda)
	c2 := Characteristic(p2, q2, lambda)
	denom := c1.A*c1.A + c1.B*c1.B
	if denom < singularEpsilon {
		return 0, 0, trackerr.ErrSingularCharacteristic
	}
	alpha = (c1.A*c2.A + c1.B*c2.B) / denom
	beta = (c1.A*c2.B - c2.A*c1.B) / denom
	return alpha, beta, nil
}

// ConvertVersine converts a series measured with characteristic (p1,q1)
// into the equivalent series for characteristic (p2,q2) at wavelength
// lambda (§4.4): y2[i] = alpha*y1[i] + beta*y1'[i], where y1' is the
// quadrature (90°-shifted, amplitude-matched) component of y1 at the
// characteristic wavelength, not a physical slope — alpha+i*beta only
// realizes the complex ratio C2/C1 if y1' has the same amplitude as y1.
// A centered sample pair spanning one quarter-wavelength is exactly 90°
// out of phase; dividing by 2*sin(w*h*tau) instead of 2*h*tau corrects
// the amplitude for h being rounded to the nearest sample.
func ConvertVersine(r trackdata.ResampledSeries, p1, q1, p2, q2, lambda float64) (trackdata.Series, error) {
	alpha, beta, err := ConversionCoefficients(p1, q1, p2, q2, lambda)
	if err != nil {
		return trackdata.Series{}, err
	}

	values := r.Values()
	n := len(values)
	w := 2 * math.Pi / lambda
	h := round((lambda / 4) / r.Tau)
	if h < 1 {
		h = 1
	}
	quadScale := 2 * math.Sin(w*float64(h)*r.Tau)
	out := make([]trackdata.Sample, n)
	for i, d := range r.Distances() {
		deriv := 0.0
		if i-h >= 0 && i+h < n && math.Abs(quadScale) > singularEpsilon {
			deriv = (values[i+h] - values[i-h]) / quadScale
		}
		out[i] = trackdata.Sample{Distance: d, Value: alpha*values[i] + beta*deriv}
	}
	return trackdata.NewSeries(out), nil
}
