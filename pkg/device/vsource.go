package device

import (
	"github.com/edp1096sim/gospice/pkg/matrix"
	"github.com/edp1096sim/gospice/pkg/waveform"
)

// VoltageSource is {name, n1, n2, dc, acMag, acPhaseDeg, waveform?, index}
// from spec §3. Index is the auxiliary branch-current matrix index
// assigned once at finalization (spec invariant 2). Waveform is a
// zero-value (DC 0) when the source carries no time-domain attachment.
type VoltageSource struct {
	InstanceName string
	N1, N2       int
	DC           float64
	ACMag        float64
	ACPhaseDeg   float64
	Waveform     waveform.Waveform
	HasWaveform  bool
	Index        int // matrix index of the branch-current unknown
}

var _ TRANStamper = (*VoltageSource)(nil)
var _ ACStamper = (*VoltageSource)(nil)

func (v *VoltageSource) Name() string { return v.InstanceName }

// Value returns the source's time-domain value at t: the waveform if
// attached, else the DC value.
func (v *VoltageSource) Value(t float64) float64 {
	if v.HasWaveform {
		return v.Waveform.Eval(t)
	}
	return v.DC
}

func (v *VoltageSource) StampTRAN(m matrix.DeviceMatrix, st *Status) error {
	matrix.StampVoltageSource(m, v.N1, v.N2, v.Index, v.Value(st.Time))
	return nil
}

// StampAC stamps the source's AC phasor acMag∠acPhaseDeg; a source with
// no AC spec (acMag=0) correctly small-signal-shorts per spec §4.6.
func (v *VoltageSource) StampAC(m matrix.DeviceMatrix, st *Status) error {
	phasor := matrix.Polar(v.ACMag, v.ACPhaseDeg)
	matrix.StampComplexVoltageSource(m, v.N1, v.N2, v.Index, phasor)
	return nil
}
