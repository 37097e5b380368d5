package device

import (
	"fmt"

	"github.com/edp1096sim/gospice/pkg/matrix"
)

// Resistor is the linear {name, n1, n2, R>0} element from spec §3.
// Node fields hold matrix indices (ground = -1), resolved once at
// circuit finalization.
type Resistor struct {
	InstanceName string
	N1, N2       int
	R            float64
}

func (r *Resistor) Name() string { return r.InstanceName }

func (r *Resistor) StampTRAN(m matrix.DeviceMatrix, st *Status) error {
	g, err := r.conductance()
	if err != nil {
		return fmt.Errorf("resistor %s: %w", r.InstanceName, err)
	}
	matrix.StampAdmittance(m, r.N1, r.N2, g)
	return nil
}

func (r *Resistor) StampAC(m matrix.DeviceMatrix, st *Status) error {
	g, err := r.conductance()
	if err != nil {
		return fmt.Errorf("resistor %s: %w", r.InstanceName, err)
	}
	matrix.StampComplexAdmittance(m, r.N1, r.N2, complex(g, 0))
	return nil
}

func (r *Resistor) conductance() (float64, error) {
	if r.R <= 0 {
		return 0, ErrBadValue
	}
	return 1.0 / r.R, nil
}

// Current returns (v1-v2)/R for output recording (spec §4.7 per-step
// recording).
func (r *Resistor) Current(x []float64) float64 {
	vd := voltageAt(x, r.N1) - voltageAt(x, r.N2)
	return vd / r.R
}
