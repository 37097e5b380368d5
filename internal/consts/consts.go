// Package consts holds physical and numerical constants shared across the
// simulation core.
package consts

const (
	// ThermalVoltage300K is kT/q at ~300K, the Vth used in the diode
	// Shockley equation (Vt = N * ThermalVoltage300K).
	ThermalVoltage300K = 0.02585

	// Epsilon is the numerical tolerance used throughout the core: pivot
	// magnitude floor for Gaussian elimination, divisor floor for complex
	// division/waveform interpolation, admittance floor for near-zero
	// inductor impedance.
	Epsilon = 1e-15

	// SwitchTolerance is the hysteresis slack applied when comparing a
	// switch's control voltage against its Von/Voff thresholds.
	SwitchTolerance = 1e-6

	// NewtonTolerance is the max abs change between Newton iterates that
	// counts as convergence.
	NewtonTolerance = 1e-6

	// NewtonMaxIter bounds the Newton-Raphson loop per transient step.
	NewtonMaxIter = 20

	// MinConductance floors the diode's small-signal conductance so the
	// MNA matrix never carries a literal zero on its diagonal contribution.
	// (The switch floors its resistance at Epsilon instead.)
	MinConductance = 1e-12
)
