package analysis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096sim/gospice/pkg/analysis"
	"github.com/edp1096sim/gospice/pkg/circuit"
	"github.com/edp1096sim/gospice/pkg/device"
	"github.com/edp1096sim/gospice/pkg/waveform"
)

// buildResistiveDivider implements testable property 1: V1 1 0 DC 10;
// R1 1 2 1k; R2 2 0 1k.
func buildResistiveDivider(t *testing.T) *circuit.Circuit {
	t.Helper()
	b := circuit.NewBuilder()
	n1 := b.Nodes().GetOrCreate("1")
	n2 := b.Nodes().GetOrCreate("2")

	b.AddDevice(&device.VoltageSource{InstanceName: "V1", N1: n1, N2: 0, DC: 10})
	b.AddDevice(&device.Resistor{InstanceName: "R1", N1: n1, N2: n2, R: 1000})
	b.AddDevice(&device.Resistor{InstanceName: "R2", N1: n2, N2: 0, R: 1000})

	c, err := b.Finalize()
	require.NoError(t, err)
	return c
}

func TestResistiveDividerReachesHalfSupply(t *testing.T) {
	c := buildResistiveDivider(t)

	result, err := analysis.RunTRAN(c, circuit.TRANParams{Dt: 1e-6, Tstop: 1e-6}, nil)
	require.NoError(t, err)

	v2 := result.NodeVoltages["2"]
	require.NotEmpty(t, v2)
	assert.InDelta(t, 5.0, v2[len(v2)-1], 1e-9)
}

func TestDoublingResistanceHalvesBranchCurrent(t *testing.T) {
	currentFor := func(scale float64) float64 {
		b := circuit.NewBuilder()
		n1 := b.Nodes().GetOrCreate("1")
		n2 := b.Nodes().GetOrCreate("2")
		b.AddDevice(&device.VoltageSource{InstanceName: "V1", N1: n1, N2: 0, DC: 10})
		b.AddDevice(&device.Resistor{InstanceName: "R1", N1: n1, N2: n2, R: 1000 * scale})
		b.AddDevice(&device.Resistor{InstanceName: "R2", N1: n2, N2: 0, R: 1000 * scale})
		c, err := b.Finalize()
		require.NoError(t, err)

		result, err := analysis.RunTRAN(c, circuit.TRANParams{Dt: 1e-6, Tstop: 1e-6}, nil)
		require.NoError(t, err)
		cur := result.ElementCurrents["V1"]
		return cur[len(cur)-1]
	}

	i1 := currentFor(1)
	i2 := currentFor(2)
	assert.InDelta(t, i1/2, i2, 1e-12)
}

// buildRCLowPass implements testable property 2.
func buildRCLowPass(t *testing.T) *circuit.Circuit {
	t.Helper()
	b := circuit.NewBuilder()
	n1 := b.Nodes().GetOrCreate("1")
	n2 := b.Nodes().GetOrCreate("2")

	wf := waveform.NewPulse(0, 5, 0, 1e-9, 1e-9, 5e-6, 10e-6, 0)
	b.AddDevice(&device.VoltageSource{InstanceName: "V1", N1: n1, N2: 0, Waveform: wf, HasWaveform: true})
	b.AddDevice(&device.Resistor{InstanceName: "R1", N1: n1, N2: n2, R: 1000})
	b.AddDevice(&device.Capacitor{InstanceName: "C1", N1: n2, N2: 0, C: 1e-6})

	c, err := b.Finalize()
	require.NoError(t, err)
	return c
}

func TestRCLowPassStepResponseTracksExponential(t *testing.T) {
	c := buildRCLowPass(t)
	dt := 0.1e-6
	tstop := 3e-6 // within the step's high phase, first 3us

	result, err := analysis.RunTRAN(c, circuit.TRANParams{Dt: dt, Tstop: tstop}, nil)
	require.NoError(t, err)

	rc := 1000.0 * 1e-6
	v2 := result.NodeVoltages["2"]
	require.Len(t, v2, len(result.Times))

	for i, tt := range result.Times {
		expected := 5.0 * (1 - math.Exp(-tt/rc))
		assert.InDelta(t, expected, v2[i], 0.05, "t=%g", tt)
	}

	for i := 1; i < len(v2); i++ {
		assert.GreaterOrEqual(t, v2[i], v2[i-1]-1e-9)
	}
}

// buildHalfWaveRectifier implements testable property 5.
func buildHalfWaveRectifier(dc float64) *circuit.Circuit {
	b := circuit.NewBuilder()
	n1 := b.Nodes().GetOrCreate("1")
	n2 := b.Nodes().GetOrCreate("2")

	b.AddDevice(&device.VoltageSource{InstanceName: "V1", N1: n1, N2: 0, DC: dc})
	model := &device.DiodeModel{Name: "D", Is: 1e-14, N: 1}
	b.AddDevice(&device.Diode{InstanceName: "D1", NPlus: n1, NMinus: n2, Model: model})
	b.AddDevice(&device.Resistor{InstanceName: "R1", N1: n2, N2: 0, R: 1000})

	c, err := b.Finalize()
	if err != nil {
		panic(err)
	}
	return c
}

func TestDiodeClampForwardBias(t *testing.T) {
	c := buildHalfWaveRectifier(1.0)
	result, err := analysis.RunTRAN(c, circuit.TRANParams{Dt: 1e-6, Tstop: 1e-6}, nil)
	require.NoError(t, err)

	v2 := result.NodeVoltages["2"]
	assert.InDelta(t, 0.6, v2[len(v2)-1], 0.1)
}

func TestDiodeClampReverseBias(t *testing.T) {
	c := buildHalfWaveRectifier(-1.0)
	result, err := analysis.RunTRAN(c, circuit.TRANParams{Dt: 1e-6, Tstop: 1e-6}, nil)
	require.NoError(t, err)

	v2 := result.NodeVoltages["2"]
	assert.InDelta(t, 0.0, v2[len(v2)-1], 1e-4)
}

func TestSwitchHysteresisTracksControlWaveform(t *testing.T) {
	b := circuit.NewBuilder()
	nCtrl := b.Nodes().GetOrCreate("ctrl")
	nOut := b.Nodes().GetOrCreate("out")
	nVdd := b.Nodes().GetOrCreate("vdd")

	ctrlWf := waveform.NewPWL(
		[]float64{0, 1e-3, 3e-3, 7e-3, 9e-3},
		[]float64{0, 5, 0, 5, 0},
	)
	b.AddDevice(&device.VoltageSource{InstanceName: "VC", N1: nCtrl, N2: 0, Waveform: ctrlWf, HasWaveform: true})
	b.AddDevice(&device.VoltageSource{InstanceName: "VDD", N1: nVdd, N2: 0, DC: 5})

	// RC load charged from VDD; the switch shorts the output to ground.
	model := &device.SwitchModel{Name: "SW", Ron: 1, Roff: 1e9, Von: 2, Voff: 1}
	b.AddDevice(&device.Switch{InstanceName: "S1", N1: nOut, N2: 0, NCPos: nCtrl, NCNeg: 0, Model: model})
	b.AddDevice(&device.Resistor{InstanceName: "R1", N1: nVdd, N2: nOut, R: 1000})
	b.AddDevice(&device.Capacitor{InstanceName: "C1", N1: nOut, N2: 0, C: 1e-6})

	c, err := b.Finalize()
	require.NoError(t, err)

	result, err := analysis.RunTRAN(c, circuit.TRANParams{Dt: 1e-5, Tstop: 9e-3}, nil)
	require.NoError(t, err)

	vOut := result.NodeVoltages["out"]
	require.NotEmpty(t, vOut)

	closestIdx := func(target float64) int {
		best, bestDiff := 0, math.MaxFloat64
		for i, tt := range result.Times {
			if d := math.Abs(tt - target); d < bestDiff {
				best, bestDiff = i, d
			}
		}
		return best
	}

	assert.InDelta(t, 0.0, vOut[closestIdx(0.5e-3)], 0.2)
}

func TestTranResultLengthsConsistent(t *testing.T) {
	c := buildResistiveDivider(t)
	result, err := analysis.RunTRAN(c, circuit.TRANParams{Dt: 1e-7, Tstop: 1e-6}, nil)
	require.NoError(t, err)

	for name, cur := range result.ElementCurrents {
		assert.Len(t, cur, len(result.Times), "element %s", name)
	}
	for name, v := range result.NodeVoltages {
		assert.Len(t, v, len(result.Times), "node %s", name)
	}
}

func TestTranProbeFiltersNodeVoltages(t *testing.T) {
	c := buildResistiveDivider(t)
	probes := circuit.NewProbes("2")
	result, err := analysis.RunTRAN(c, circuit.TRANParams{Dt: 1e-6, Tstop: 1e-6}, probes)
	require.NoError(t, err)

	_, hasNode1 := result.NodeVoltages["1"]
	assert.False(t, hasNode1)
	assert.Contains(t, result.NodeVoltages, "2")
}

func TestTranRejectsNonPositiveTstop(t *testing.T) {
	c := buildResistiveDivider(t)
	_, err := analysis.RunTRAN(c, circuit.TRANParams{Dt: 1e-6, Tstop: 0}, nil)
	assert.ErrorIs(t, err, analysis.ErrBadInput)
}
