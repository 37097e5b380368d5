package result

import (
	"encoding/json"
	"io"

	"github.com/edp1096sim/gospice/pkg/analysis"
)

// TranGraph is the JSON-serializable shape a transient-graph viewer
// consumes: one time axis plus named traces for node voltages and
// element currents.
type TranGraph struct {
	Times           []float64            `json:"times"`
	NodeVoltages    map[string][]float64 `json:"nodeVoltages"`
	ElementCurrents map[string][]float64 `json:"elementCurrents"`
}

// WriteTranJSON encodes a TranResult as a TranGraph document.
func WriteTranJSON(w io.Writer, r *analysis.TranResult) error {
	graph := TranGraph{
		Times:           r.Times,
		NodeVoltages:    r.NodeVoltages,
		ElementCurrents: r.ElementCurrents,
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(graph)
}
