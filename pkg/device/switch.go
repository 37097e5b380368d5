package device

import (
	"math"

	"github.com/edp1096sim/gospice/internal/consts"
	"github.com/edp1096sim/gospice/pkg/matrix"
)

// SwitchModel holds the {Ron, Roff, Von, Voff} parameters a .model
// SW|VSWITCH line resolves to (spec §6). When a model is specified via
// Vt/Vh instead, the parser computes Von=Vt+Vh/2, Voff=Vt-Vh/2 so
// Von>Voff always holds (spec §4.7 hysteresis guarantee).
type SwitchModel struct {
	Name      string
	Ron, Roff float64
	Von, Voff float64
}

// Switch is the voltage-controlled switch {name, n1, n2, ncPos, ncNeg,
// model, isOn} from spec §3. IsOn persists across Newton iterations and
// time steps; its initial state is OFF per the §4.7 state machine.
type Switch struct {
	InstanceName string
	N1, N2       int // output terminals (the switched admittance)
	NCPos, NCNeg int // control terminals
	Model        *SwitchModel
	IsOn         bool
}

var _ TRANStamper = (*Switch)(nil)
var _ Toggler = (*Switch)(nil)

func (s *Switch) Name() string { return s.InstanceName }

func (s *Switch) resistance() float64 {
	r := s.Model.Roff
	if s.IsOn {
		r = s.Model.Ron
	}
	r = math.Abs(r)
	if r < consts.Epsilon {
		r = consts.Epsilon
	}
	return r
}

// StampTRAN stamps the switch's present-state admittance 1/R between its
// output terminals (spec §4.7 switch linearization).
func (s *Switch) StampTRAN(m matrix.DeviceMatrix, st *Status) error {
	matrix.StampAdmittance(m, s.N1, s.N2, 1.0/s.resistance())
	return nil
}

// Toggle reads the control voltage from the latest Newton iterate and
// applies the hysteresis state machine from spec §4.7/§9: ON -> OFF when
// vc <= Voff+tol, OFF -> ON when vc >= Von-tol. Returns whether the state
// changed, so the Newton loop knows to reassemble with the new topology.
func (s *Switch) Toggle(x []float64) bool {
	vc := voltageAt(x, s.NCPos) - voltageAt(x, s.NCNeg)

	switch {
	case s.IsOn && vc <= s.Model.Voff+consts.SwitchTolerance:
		s.IsOn = false
		return true
	case !s.IsOn && vc >= s.Model.Von-consts.SwitchTolerance:
		s.IsOn = true
		return true
	}
	return false
}

// Current returns the switch's output-terminal current for recording,
// (v1-v2)/max(|Reff|,ε) with Reff chosen by the current state (spec
// §4.7 per-step recording).
func (s *Switch) Current(x []float64) float64 {
	vd := voltageAt(x, s.N1) - voltageAt(x, s.N2)
	return vd / s.resistance()
}
