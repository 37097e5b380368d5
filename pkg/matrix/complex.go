package matrix

import (
	"math"
	"math/cmplx"

	"github.com/edp1096sim/gospice/internal/consts"
)

// Polar builds a complex128 from a magnitude and a phase in degrees, per
// spec §4.1: (|z|*cos(phi), |z|*sin(phi)) with phi in radians.
func Polar(magnitude, phaseDeg float64) complex128 {
	phaseRad := phaseDeg * math.Pi / 180.0
	return complex(magnitude*math.Cos(phaseRad), magnitude*math.Sin(phaseRad))
}

// Magnitude returns |z|, using hypot internally (via cmplx.Abs) to stay
// accurate at extreme scales.
func Magnitude(z complex128) float64 {
	return cmplx.Abs(z)
}

// PhaseDeg returns the phase of z in degrees.
func PhaseDeg(z complex128) float64 {
	return cmplx.Phase(z) * 180.0 / math.Pi
}

// Div computes a/b, failing with ErrArithmeticDegenerate when |b|^2 is
// below consts.Epsilon — division by the builtin operator alone would
// silently return {Inf,NaN} instead of a typed failure.
func Div(a, b complex128) (complex128, error) {
	denom := real(b)*real(b) + imag(b)*imag(b)
	if denom < consts.Epsilon {
		return 0, ErrArithmeticDegenerate
	}
	return a / b, nil
}

// Recip computes 1/z with the same degenerate-divisor guard as Div.
func Recip(z complex128) (complex128, error) {
	return Div(1, z)
}
