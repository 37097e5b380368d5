// Package gospice exposes the simulator's three entry points from spec
// §6: runAC, runTRAN, and a convenience simulate() composing parsing
// with both analyses.
package gospice

import (
	"github.com/edp1096sim/gospice/pkg/analysis"
	"github.com/edp1096sim/gospice/pkg/circuit"
	"github.com/edp1096sim/gospice/pkg/netlist"
)

// RunAC runs AC analysis over a parsed circuit, or returns (nil, nil)
// if the circuit carries no AC specification.
func RunAC(ckt *circuit.Circuit, p *circuit.ACParams) (*analysis.AcResult, error) {
	if p == nil {
		return nil, nil
	}
	return analysis.RunAC(ckt, *p)
}

// RunTRAN runs transient analysis over a parsed circuit, or returns
// (nil, nil) if the circuit carries no TRAN specification.
func RunTRAN(ckt *circuit.Circuit, p *circuit.TRANParams, probes *circuit.Probes) (*analysis.TranResult, error) {
	if p == nil {
		return nil, nil
	}
	return analysis.RunTRAN(ckt, *p, probes)
}

// Simulate parses netlist text and runs whichever of AC/TRAN it
// requests, in one call (spec §6's "simulate(text)" convenience entry
// point).
func Simulate(text string) (*analysis.AcResult, *analysis.TranResult, error) {
	parsed, err := netlist.Parse(text)
	if err != nil {
		return nil, nil, err
	}

	acResult, err := RunAC(parsed.Circuit, parsed.AC)
	if err != nil {
		return nil, nil, err
	}

	tranResult, err := RunTRAN(parsed.Circuit, parsed.TRAN, parsed.Probes)
	if err != nil {
		return nil, nil, err
	}

	return acResult, tranResult, nil
}
