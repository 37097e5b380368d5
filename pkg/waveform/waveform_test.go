package waveform_test

import (
	"testing"

	"github.com/edp1096sim/gospice/pkg/waveform"
	"github.com/stretchr/testify/assert"
)

func TestDC(t *testing.T) {
	w := waveform.NewDC(3.3)
	assert.Equal(t, 3.3, w.Eval(0))
	assert.Equal(t, 3.3, w.Eval(100))
}

func TestPulseShape(t *testing.T) {
	// V1=0 V2=5, delay=0, rise=fall=1n, on=5u, period=10u
	w := waveform.NewPulse(0, 5, 0, 1e-9, 1e-9, 5e-6, 10e-6, 0)

	assert.InDelta(t, 0.0, w.Eval(0), 1e-9)
	assert.InDelta(t, 5.0, w.Eval(2e-6), 1e-9)  // within the on-plateau
	assert.InDelta(t, 0.0, w.Eval(7e-6), 1e-9)  // within the off-plateau
	assert.InDelta(t, 5.0, w.Eval(10.5e-6), 1e-9) // second period, back on the on-plateau
}

func TestPulseBeforeDelay(t *testing.T) {
	w := waveform.NewPulse(1, 2, 5e-6, 1e-9, 1e-9, 1e-6, 2e-6, 0)
	assert.Equal(t, 1.0, w.Eval(1e-6))
}

func TestPulseNcyclesStopsAtV1(t *testing.T) {
	w := waveform.NewPulse(0, 5, 0, 1e-9, 1e-9, 1e-6, 2e-6, 2) // 2 cycles only
	// After 2 full periods it should stay at V1 forever.
	assert.InDelta(t, 0.0, w.Eval(10e-6), 1e-9)
}

func TestPWLClampsOutsideRange(t *testing.T) {
	w := waveform.NewPWL([]float64{0, 1, 2}, []float64{0, 5, 0})
	assert.Equal(t, 0.0, w.Eval(-1))
	assert.Equal(t, 0.0, w.Eval(10))
}

func TestPWLInterpolates(t *testing.T) {
	w := waveform.NewPWL([]float64{0, 2}, []float64{0, 10})
	assert.InDelta(t, 5.0, w.Eval(1), 1e-9)
}
