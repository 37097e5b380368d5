// Package result renders AC/TRAN analysis output (spec §6 formatting
// collaborators): CSV tables for either result kind, and a JSON
// transient-graph export for TRAN results.
package result

import (
	"encoding/csv"
	"fmt"
	"io"
	"math/cmplx"
	"sort"

	"github.com/edp1096sim/gospice/pkg/analysis"
)

// WriteTranCSV writes a TranResult as a CSV table: one "time" column
// followed by one column per recorded node voltage and element current,
// in sorted-name order so output is deterministic.
func WriteTranCSV(w io.Writer, r *analysis.TranResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	nodeNames := sortedKeys(r.NodeVoltages)
	currentNames := sortedKeys(r.ElementCurrents)

	header := []string{"time"}
	for _, n := range nodeNames {
		header = append(header, fmt.Sprintf("V(%s)", n))
	}
	for _, n := range currentNames {
		header = append(header, fmt.Sprintf("I(%s)", n))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, t := range r.Times {
		row := []string{fmt.Sprintf("%.9e", t)}
		for _, n := range nodeNames {
			row = append(row, fmt.Sprintf("%.9e", r.NodeVoltages[n][i]))
		}
		for _, n := range currentNames {
			row = append(row, fmt.Sprintf("%.9e", r.ElementCurrents[n][i]))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

// WriteAcCSV writes an AcResult as a CSV table of frequency, magnitude,
// and phase columns per node/element.
func WriteAcCSV(w io.Writer, r *analysis.AcResult) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	nodeNames := sortedKeys(r.NodeVoltages)
	currentNames := sortedKeys(r.ElementCurrents)

	header := []string{"freq"}
	for _, n := range nodeNames {
		header = append(header, fmt.Sprintf("|V(%s)|", n), fmt.Sprintf("phase(V(%s))", n))
	}
	for _, n := range currentNames {
		header = append(header, fmt.Sprintf("|I(%s)|", n), fmt.Sprintf("phase(I(%s))", n))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, f := range r.Freqs {
		row := []string{fmt.Sprintf("%.9e", f)}
		for _, n := range nodeNames {
			z := r.NodeVoltages[n][i]
			row = append(row, fmt.Sprintf("%.9e", cmplx.Abs(z)), fmt.Sprintf("%.6f", phaseDeg(z)))
		}
		for _, n := range currentNames {
			z := r.ElementCurrents[n][i]
			row = append(row, fmt.Sprintf("%.9e", cmplx.Abs(z)), fmt.Sprintf("%.6f", phaseDeg(z)))
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}

func phaseDeg(z complex128) float64 {
	return cmplx.Phase(z) * 180 / 3.141592653589793
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
