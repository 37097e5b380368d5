package analysis

import (
	"fmt"
	"math"

	"github.com/edp1096sim/gospice/internal/consts"
	"github.com/edp1096sim/gospice/pkg/circuit"
	"github.com/edp1096sim/gospice/pkg/device"
	"github.com/edp1096sim/gospice/pkg/matrix"
)

// RunTRAN performs the time-stepped transient simulation described by p
// over ckt (spec §4.7), mutating every capacitor/inductor/diode's state
// fields as it steps. probes, if non-empty, restricts the returned node
// voltages but never the element currents.
func RunTRAN(ckt *circuit.Circuit, p circuit.TRANParams, probes *circuit.Probes) (*TranResult, error) {
	if p.Tstop <= 0 {
		return nil, fmt.Errorf("tran: tstop=%g: %w", p.Tstop, ErrBadInput)
	}

	dt, steps := timeGrid(p)

	result := &TranResult{
		NodeVoltages:    make(map[string][]float64),
		ElementCurrents: make(map[string][]float64),
	}

	x := make([]float64, ckt.Nvar)
	t := 0.0

	for step := 0; step < steps; step++ {
		t += dt
		xNext, err := newtonStep(ckt, t, dt, x)
		if err != nil {
			return nil, fmt.Errorf("tran: step at t=%g: %w", t, err)
		}
		x = xNext

		result.Times = append(result.Times, t)
		recordNodeVoltages(ckt, x, probes, result)
		recordElementCurrents(ckt, x, dt, result)
		updateState(ckt, x, dt)
	}

	return result, nil
}

// timeGrid picks the effective step and step count so the grid ends
// exactly at tstop (spec §4.7 "Time grid").
func timeGrid(p circuit.TRANParams) (dt float64, steps int) {
	dtEff := p.Dt
	if dtEff <= consts.Epsilon {
		dtEff = p.Tstop / 1000
	}
	if dtEff < consts.Epsilon {
		dtEff = consts.Epsilon
	}
	steps = int(math.Ceil(p.Tstop / dtEff))
	if steps < 1 {
		steps = 1
	}
	dt = p.Tstop / float64(steps)
	return dt, steps
}

// newtonStep runs the per-step Newton loop (spec §4.7 "Newton loop").
// xPrev is the previous step's converged (or zero-initialized) solution;
// iteration 0's result is compared against it for convergence. Nonlinear
// devices seed iteration 0 from their own previous-step state
// (SeedInitial) and later iterations from the latest iterate.
func newtonStep(ckt *circuit.Circuit, t, dt float64, xPrev []float64) ([]float64, error) {
	for _, d := range ckt.Devices {
		if s, ok := d.(device.Seeder); ok {
			s.SeedInitial()
		}
	}

	st := &device.Status{Mode: device.ModeTRAN, Time: t, TimeStep: dt}
	x := xPrev

	for iter := 0; iter < consts.NewtonMaxIter; iter++ {
		if iter > 0 {
			for _, d := range ckt.Devices {
				if s, ok := d.(device.Seeder); ok {
					s.SeedFromSolution(x)
				}
			}
		}

		sys := matrix.NewSystem(ckt.Nvar)
		for _, d := range ckt.Devices {
			stamper, ok := d.(device.TRANStamper)
			if !ok {
				continue
			}
			if err := stamper.StampTRAN(sys, st); err != nil {
				return nil, fmt.Errorf("stamping %s: %w", d.Name(), err)
			}
		}

		xNext, err := sys.Solve()
		if err != nil {
			return nil, err
		}

		toggled := false
		for _, d := range ckt.Devices {
			if tg, ok := d.(device.Toggler); ok {
				if tg.Toggle(xNext) {
					toggled = true
				}
			}
		}

		converged := !toggled && maxAbsDelta(x, xNext) < consts.NewtonTolerance
		x = xNext
		if converged {
			return x, nil
		}
	}

	return nil, fmt.Errorf("t=%g: %w", t, ErrNewtonNonConvergence)
}

func maxAbsDelta(a, b []float64) float64 {
	max := 0.0
	for i := range a {
		if d := math.Abs(b[i] - a[i]); d > max {
			max = d
		}
	}
	return max
}

func recordNodeVoltages(ckt *circuit.Circuit, x []float64, probes *circuit.Probes, result *TranResult) {
	for id := 1; id < ckt.Nodes.Count(); id++ {
		name := ckt.Nodes.DisplayName(id)
		if !probes.Includes(name) {
			continue
		}
		result.NodeVoltages[name] = append(result.NodeVoltages[name], x[circuit.MatrixIndexOf(id)])
	}
}

func recordElementCurrents(ckt *circuit.Circuit, x []float64, dt float64, result *TranResult) {
	for _, d := range ckt.Devices {
		var i float64
		switch e := d.(type) {
		case *device.Resistor:
			i = e.Current(x)
		case *device.Capacitor:
			i = e.Current(x, dt)
		case *device.Inductor:
			i = e.Current(x, dt)
		case *device.VoltageSource:
			i = x[e.Index]
		case *device.Switch:
			i = e.Current(x)
		case *device.Diode:
			i = e.Current(x)
		default:
			continue
		}
		result.ElementCurrents[d.Name()] = append(result.ElementCurrents[d.Name()], i)
	}
}

func updateState(ckt *circuit.Circuit, x []float64, dt float64) {
	for _, d := range ckt.Devices {
		if u, ok := d.(device.StateUpdater); ok {
			u.UpdateState(x, dt)
		}
	}
}
