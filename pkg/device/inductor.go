package device

import (
	"math"
	"math/cmplx"

	"github.com/edp1096sim/gospice/internal/consts"
	"github.com/edp1096sim/gospice/pkg/matrix"
)

// Inductor is {name, n1, n2, L, vPrev, iPrev} from spec §3. Unlike the
// voltage source, the inductor's backward-Euler Norton companion model
// needs no auxiliary branch-current unknown — it is a pure admittance
// plus current source between its own terminals (spec §4.7), which is
// why spec invariant 3 defines Nvar without counting inductors.
type Inductor struct {
	InstanceName string
	N1, N2       int
	L            float64

	vPrev float64
	iPrev float64
}

var _ TRANStamper = (*Inductor)(nil)
var _ ACStamper = (*Inductor)(nil)
var _ StateUpdater = (*Inductor)(nil)

func (l *Inductor) Name() string { return l.InstanceName }

// StampTRAN stamps the backward-Euler Norton equivalent: conductance
// Gl=dt/L plus a current source of magnitude iPrev from n1 to n2.
func (l *Inductor) StampTRAN(m matrix.DeviceMatrix, st *Status) error {
	gl := l.conductance(st.TimeStep)
	matrix.StampAdmittance(m, l.N1, l.N2, gl)
	matrix.StampCurrent(m, l.N1, l.N2, l.iPrev)
	return nil
}

// StampAC stamps admittance 1/(jωL), or zero when |jωL| is below ε.
func (l *Inductor) StampAC(m matrix.DeviceMatrix, st *Status) error {
	omega := 2 * math.Pi * st.Frequency
	z := complex(0, omega*l.L)
	var y complex128
	if cmplx.Abs(z) >= consts.Epsilon {
		y = 1 / z
	}
	matrix.StampComplexAdmittance(m, l.N1, l.N2, y)
	return nil
}

func (l *Inductor) conductance(dt float64) float64 {
	return dt / l.L
}

// Current returns Gl*(v1-v2)+iPrev for output recording (spec §4.7).
func (l *Inductor) Current(x []float64, dt float64) float64 {
	vd := voltageAt(x, l.N1) - voltageAt(x, l.N2)
	return l.conductance(dt)*vd + l.iPrev
}

// UpdateState accumulates iPrev per spec §4.7's recurrence
// l.iPrev <- Gl*(v1-v2) + l.iPrev, and records the terminal voltage.
func (l *Inductor) UpdateState(x []float64, dt float64) {
	vd := voltageAt(x, l.N1) - voltageAt(x, l.N2)
	l.iPrev = l.conductance(dt)*vd + l.iPrev
	l.vPrev = vd
}
