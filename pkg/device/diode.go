package device

import (
	"math"

	"github.com/edp1096sim/gospice/internal/consts"
	"github.com/edp1096sim/gospice/pkg/matrix"
)

// DiodeModel holds the Shockley {Is, N} parameters a .model D line
// resolves to (spec §6).
type DiodeModel struct {
	Name string
	Is   float64
	N    float64
}

// Diode is the Shockley-model diode {name, nPlus, nMinus, model, vdPrev}
// from spec §3. vd is the present linearization point seeded each
// Newton iteration by Seeder; vdPrev is the converged voltage from the
// previous time step.
type Diode struct {
	InstanceName  string
	NPlus, NMinus int
	Model         *DiodeModel

	vd     float64
	vdPrev float64
}

var _ TRANStamper = (*Diode)(nil)
var _ Seeder = (*Diode)(nil)
var _ StateUpdater = (*Diode)(nil)

func (d *Diode) Name() string { return d.InstanceName }

func (d *Diode) thermalVoltage() float64 {
	return d.Model.N * consts.ThermalVoltage300K
}

// SeedInitial seeds vd from the previous step's converged voltage, used
// on Newton iteration 0 of a new time step (spec §4.7).
func (d *Diode) SeedInitial() { d.vd = d.vdPrev }

// SeedFromSolution seeds vd from the latest Newton iterate, used on
// every iteration after the first within a step (spec §4.7).
func (d *Diode) SeedFromSolution(x []float64) {
	d.vd = voltageAt(x, d.NPlus) - voltageAt(x, d.NMinus)
}

// StampTRAN linearizes the diode around the current seed vd: soft-clamps
// vd to [-1.0, 0.8] before exponentiating (spec §4.7), stamps
// conductance gd and injects the companion current source
// ieq = id - gd*vd from n+ to n-, with id, gd and vd all taken at the
// clamped voltage.
func (d *Diode) StampTRAN(m matrix.DeviceMatrix, st *Status) error {
	vt := d.thermalVoltage()
	vdClamped := d.vd
	if vdClamped < -1.0 {
		vdClamped = -1.0
	}
	if vdClamped > 0.8 {
		vdClamped = 0.8
	}

	expv := math.Exp(vdClamped / vt)
	gd := d.Model.Is / vt * expv
	if gd < consts.MinConductance {
		gd = consts.MinConductance
	}
	id := d.Model.Is * (expv - 1)
	ieq := id - gd*vdClamped

	matrix.StampAdmittance(m, d.NPlus, d.NMinus, gd)
	matrix.StampCurrent(m, d.NPlus, d.NMinus, ieq)
	return nil
}

// Current returns the diode's (unclamped) post-iteration output current
// Is*(exp(vd/Vt)-1) for recording (spec §4.7 per-step recording).
func (d *Diode) Current(x []float64) float64 {
	vd := voltageAt(x, d.NPlus) - voltageAt(x, d.NMinus)
	return d.Model.Is * (math.Exp(vd/d.thermalVoltage()) - 1)
}

// UpdateState sets vdPrev to the post-step (unclamped) diode voltage
// (spec §3 invariant 5).
func (d *Diode) UpdateState(x []float64, dt float64) {
	d.vdPrev = voltageAt(x, d.NPlus) - voltageAt(x, d.NMinus)
}
