// Package device implements the circuit element kinds from spec §3:
// resistor, capacitor, inductor, independent voltage source,
// voltage-controlled switch, and Shockley diode, plus their MNA stamping
// (spec §4.5) and companion-model/linearization behavior (spec §4.7).
package device

import "github.com/edp1096sim/gospice/pkg/matrix"

// Mode records which analysis is currently assembling the matrix. The
// analysis is selected by which Stamp* method is called (StampTRAN or
// StampAC); no device reads Mode.
type Mode int

const (
	ModeTRAN Mode = iota
	ModeAC
)

// Status carries the per-assembly context every device needs to stamp
// itself: which analysis is running, the current time/step (TRAN) or
// frequency (AC).
type Status struct {
	Mode      Mode
	Time      float64
	TimeStep  float64
	Frequency float64
}

// Device is the minimal capability every circuit element has. Concrete
// elements additionally implement TRANStamper and/or ACStamper (spec's
// AC engine only stamps R/C/L/V; switches and diodes are TRAN-only) and,
// where applicable, Seeder/Toggler/StateUpdater for the Newton loop.
type Device interface {
	Name() string
}

// TRANStamper devices contribute to the real MNA system assembled at
// each transient step/Newton iteration.
type TRANStamper interface {
	Device
	StampTRAN(m matrix.DeviceMatrix, st *Status) error
}

// ACStamper devices contribute to the complex MNA system assembled at
// each AC sweep frequency.
type ACStamper interface {
	Device
	StampAC(m matrix.DeviceMatrix, st *Status) error
}

// Seeder devices need their linearization point set explicitly before
// each Newton iteration's Stamp call: SeedInitial at iteration 0 (from
// the previous time step's converged state), SeedFromSolution on every
// later iteration (from the last Newton iterate).
type Seeder interface {
	Device
	SeedInitial()
	SeedFromSolution(x []float64)
}

// Toggler devices carry a persistent discrete state that may flip during
// a Newton iteration (the voltage-controlled switch). Toggle reports
// whether the state changed, which drives the TRAN engine's
// reassemble-and-retry loop.
type Toggler interface {
	Device
	Toggle(x []float64) bool
}

// StateUpdater devices carry history state (capacitor/inductor terminal
// voltage and current, diode voltage) that must be advanced once a time
// step has converged.
type StateUpdater interface {
	Device
	UpdateState(x []float64, dt float64)
}

// voltageAt reads the solution value at a matrix index, returning 0 for
// ground (index < 0).
func voltageAt(x []float64, idx int) float64 {
	if idx < 0 {
		return 0
	}
	return x[idx]
}
