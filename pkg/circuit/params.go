package circuit

import "strings"

// FreqMode selects logarithmic or linear frequency spacing for an AC
// sweep (spec §4.6 step 1).
type FreqMode int

const (
	FreqDec FreqMode = iota
	FreqLin
)

// ACParams is the AC analysis request {mode, N, f1, f2} from spec §3.
type ACParams struct {
	Mode FreqMode
	N    int
	F1   float64
	F2   float64
}

// TRANParams is the transient analysis request {dt, tstop} from spec §3.
// Dt of 0 requests the default step of tstop/1000 (spec §4.7).
type TRANParams struct {
	Dt    float64
	Tstop float64
}

// Probes is an optional, case-insensitive set of node names restricting
// which node voltages a TRAN result reports (spec §3). A nil/empty
// Probes means "report every node."
type Probes struct {
	names map[string]bool
}

// NewProbes builds a Probes set from a list of node names.
func NewProbes(names ...string) *Probes {
	if len(names) == 0 {
		return nil
	}
	p := &Probes{names: make(map[string]bool, len(names))}
	for _, n := range names {
		p.names[strings.ToUpper(n)] = true
	}
	return p
}

// Empty reports whether no probes were specified, meaning "report
// every node."
func (p *Probes) Empty() bool { return p == nil || len(p.names) == 0 }

// Includes reports whether node name matches a probe, case-insensitively.
func (p *Probes) Includes(name string) bool {
	if p.Empty() {
		return true
	}
	return p.names[strings.ToUpper(name)]
}
