package device

import (
	"math"

	"github.com/edp1096sim/gospice/pkg/matrix"
)

// Capacitor is {name, n1, n2, C, vPrev, iPrev} from spec §3. vPrev is
// the previous-step terminal voltage the backward-Euler companion model
// stamps against; iPrev is recorded for output only (the companion model
// itself only needs vPrev).
type Capacitor struct {
	InstanceName string
	N1, N2       int
	C            float64

	vPrev float64
	iPrev float64
}

var _ TRANStamper = (*Capacitor)(nil)
var _ ACStamper = (*Capacitor)(nil)
var _ StateUpdater = (*Capacitor)(nil)

func (c *Capacitor) Name() string { return c.InstanceName }

// StampTRAN stamps the backward-Euler companion model: equivalent
// conductance Gc=C/dt plus a current source -Gc*vPrev from n1 to n2.
func (c *Capacitor) StampTRAN(m matrix.DeviceMatrix, st *Status) error {
	dt := st.TimeStep
	gc := c.C / dt
	matrix.StampAdmittance(m, c.N1, c.N2, gc)
	matrix.StampCurrent(m, c.N1, c.N2, -gc*c.vPrev)
	return nil
}

// StampAC stamps admittance jωC.
func (c *Capacitor) StampAC(m matrix.DeviceMatrix, st *Status) error {
	omega := 2 * math.Pi * st.Frequency
	matrix.StampComplexAdmittance(m, c.N1, c.N2, complex(0, omega*c.C))
	return nil
}

// Current returns the backward-Euler branch current C*((v1-v2)-vPrev)/dt
// for output recording (spec §4.7 per-step recording).
func (c *Capacitor) Current(x []float64, dt float64) float64 {
	vd := voltageAt(x, c.N1) - voltageAt(x, c.N2)
	return c.C * (vd - c.vPrev) / dt
}

// UpdateState sets vPrev to the post-step terminal voltage and iPrev to
// the matching branch current (spec §3 invariant 5, §4.7 state update).
func (c *Capacitor) UpdateState(x []float64, dt float64) {
	vd := voltageAt(x, c.N1) - voltageAt(x, c.N2)
	c.iPrev = c.Current(x, dt)
	c.vPrev = vd
}
