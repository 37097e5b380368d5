package analysis

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/edp1096sim/gospice/internal/consts"
	"github.com/edp1096sim/gospice/pkg/circuit"
	"github.com/edp1096sim/gospice/pkg/device"
	"github.com/edp1096sim/gospice/pkg/matrix"
)

// RunAC performs the small-signal AC sweep described by p over ckt
// (spec §4.6). AC analysis never mutates element state.
func RunAC(ckt *circuit.Circuit, p circuit.ACParams) (*AcResult, error) {
	if p.F1 <= 0 || p.F2 <= 0 {
		return nil, fmt.Errorf("ac: f1=%g f2=%g: %w", p.F1, p.F2, ErrBadInput)
	}

	freqs := frequencyPoints(p)

	result := &AcResult{
		Freqs:           freqs,
		NodeVoltages:    make(map[string][]complex128),
		ElementCurrents: make(map[string][]complex128),
	}

	for _, f := range freqs {
		st := &device.Status{Mode: device.ModeAC, Frequency: f}

		sys := matrix.NewComplexSystem(ckt.Nvar)
		for _, d := range ckt.Devices {
			stamper, ok := d.(device.ACStamper)
			if !ok {
				continue
			}
			if err := stamper.StampAC(sys, st); err != nil {
				return nil, fmt.Errorf("ac: stamping %s at f=%g: %w: %w", d.Name(), f, err, ErrBadInput)
			}
		}

		x, err := sys.Solve()
		if err != nil {
			return nil, fmt.Errorf("ac: solve at f=%g: %w", f, err)
		}

		for id := 1; id < ckt.Nodes.Count(); id++ {
			name := ckt.Nodes.DisplayName(id)
			result.NodeVoltages[name] = append(result.NodeVoltages[name], x[circuit.MatrixIndexOf(id)])
		}

		for _, d := range ckt.Devices {
			if _, ok := d.(device.ACStamper); !ok {
				continue
			}
			result.ElementCurrents[d.Name()] = append(result.ElementCurrents[d.Name()], acDeviceCurrent(d, x, f))
		}
	}

	return result, nil
}

// acDeviceCurrent extracts an element's phasor current from the solved
// AC system: I = Y*(v1-v2) for R/C/L, the branch-current unknown for
// voltage sources (spec §4.6 step 3).
func acDeviceCurrent(d device.Device, x []complex128, f float64) complex128 {
	omega := 2 * math.Pi * f
	switch e := d.(type) {
	case *device.Resistor:
		return complex(1.0/e.R, 0) * (nodeVoltage(x, e.N1) - nodeVoltage(x, e.N2))
	case *device.Capacitor:
		return complex(0, omega*e.C) * (nodeVoltage(x, e.N1) - nodeVoltage(x, e.N2))
	case *device.Inductor:
		z := complex(0, omega*e.L)
		var y complex128
		if cmplx.Abs(z) >= consts.Epsilon {
			y = 1 / z
		}
		return y * (nodeVoltage(x, e.N1) - nodeVoltage(x, e.N2))
	case *device.VoltageSource:
		return complexAt(x, e.Index)
	default:
		return 0
	}
}

func nodeVoltage(x []complex128, idx int) complex128 {
	if idx < 0 {
		return 0
	}
	return x[idx]
}

func complexAt(x []complex128, idx int) complex128 {
	if idx < 0 || idx >= len(x) {
		return 0
	}
	return x[idx]
}

// frequencyPoints generates the swept frequency list per spec §4.6
// step 1.
func frequencyPoints(p circuit.ACParams) []float64 {
	if p.Mode == circuit.FreqLin {
		n := p.N
		if n < 2 {
			n = 2
		}
		freqs := make([]float64, n)
		step := (p.F2 - p.F1) / float64(n-1)
		for i := 0; i < n; i++ {
			freqs[i] = p.F1 + float64(i)*step
		}
		return freqs
	}

	d := math.Log10(p.F2 / p.F1)
	n := int(math.Ceil(d * float64(p.N)))
	if n < 1 {
		n = 1
	}
	freqs := make([]float64, 0, n+1)
	for i := 0; i <= n; i++ {
		freqs = append(freqs, p.F1*math.Pow(10, float64(i)/float64(p.N)))
	}
	if freqs[len(freqs)-1] < p.F2*(1-1e-15) {
		freqs = append(freqs, p.F2)
	}
	return freqs
}
