// Package waveform evaluates time-domain source waveforms as pure
// functions of time. Per spec §9 Design Notes, waveforms are represented
// as a tagged variant rather than a captured closure, so a circuit's
// waveform attachments are trivially serializable and carry no ownership
// across the state mutation TRAN performs on the circuit they drive.
package waveform

import (
	"math"

	"github.com/edp1096sim/gospice/internal/consts"
)

// Kind tags which waveform shape a Waveform value holds.
type Kind int

const (
	DC Kind = iota
	Pulse
	PWL
)

// Waveform is a tagged union of the source shapes spec §4.4 defines.
// Zero value is DC{0}.
type Waveform struct {
	Kind Kind

	// DC
	DCValue float64

	// Pulse params (spec §4.4 PULSE)
	V1, V2     float64
	Delay      float64
	RiseTime   float64
	FallTime   float64
	OnTime     float64
	Period     float64
	Ncycles    float64 // 0 means unbounded (infinite cycles)
	hasNcycles bool

	// PWL points (spec §4.4 PWL)
	PWLTimes  []float64
	PWLValues []float64
}

// NewDC builds a constant-value waveform.
func NewDC(v float64) Waveform {
	return Waveform{Kind: DC, DCValue: v}
}

// NewPulse builds a PULSE waveform. ncycles <= 0 means unbounded.
func NewPulse(v1, v2, delay, rise, fall, onTime, period, ncycles float64) Waveform {
	w := Waveform{
		Kind: Pulse, V1: v1, V2: v2, Delay: delay,
		RiseTime: rise, FallTime: fall, OnTime: onTime, Period: period,
	}
	if ncycles > 0 {
		w.Ncycles = ncycles
		w.hasNcycles = true
	}
	return w
}

// NewPWL builds a piecewise-linear waveform from (t, v) pairs, which must
// already be sorted by time.
func NewPWL(times, values []float64) Waveform {
	return Waveform{Kind: PWL, PWLTimes: times, PWLValues: values}
}

// Eval returns the waveform's value at time t, per spec §4.4.
func (w Waveform) Eval(t float64) float64 {
	switch w.Kind {
	case Pulse:
		return w.evalPulse(t)
	case PWL:
		return w.evalPWL(t)
	default:
		return w.DCValue
	}
}

func (w Waveform) evalPulse(t float64) float64 {
	if t < w.Delay {
		return w.V1
	}

	tt := t - w.Delay
	period := w.Period
	if period <= 0 {
		period = consts.Epsilon
	}
	k := math.Floor(tt / period)

	if w.hasNcycles && k >= w.Ncycles {
		return w.V1
	}

	tc := tt - k*period

	tr := w.RiseTime
	if tr < consts.Epsilon {
		tr = consts.Epsilon
	}
	tf := w.FallTime
	if tf < consts.Epsilon {
		tf = consts.Epsilon
	}
	onEnd := tr + w.OnTime
	fallEnd := onEnd + tf

	switch {
	case tc < tr:
		return w.V1 + (w.V2-w.V1)*(tc/tr)
	case tc < onEnd:
		return w.V2
	case tc < fallEnd:
		return w.V2 + (w.V1-w.V2)*((tc-onEnd)/tf)
	default:
		return w.V1
	}
}

func (w Waveform) evalPWL(t float64) float64 {
	n := len(w.PWLTimes)
	if n == 0 {
		return 0
	}
	if t <= w.PWLTimes[0] {
		return w.PWLValues[0]
	}
	if t >= w.PWLTimes[n-1] {
		return w.PWLValues[n-1]
	}
	for i := 0; i < n-1; i++ {
		t0, t1 := w.PWLTimes[i], w.PWLTimes[i+1]
		if t >= t0 && t <= t1 {
			denom := t1 - t0
			if denom < consts.Epsilon {
				denom = consts.Epsilon
			}
			frac := (t - t0) / denom
			return w.PWLValues[i] + frac*(w.PWLValues[i+1]-w.PWLValues[i])
		}
	}
	return w.PWLValues[n-1]
}
