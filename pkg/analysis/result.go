package analysis

// AcResult is the AC analysis output from spec §4.6: phasor node
// voltages and element currents over the swept frequencies.
type AcResult struct {
	Freqs           []float64
	NodeVoltages    map[string][]complex128
	ElementCurrents map[string][]complex128
}

// TranResult is the TRAN analysis output from spec §4.7: real node
// voltages and element currents over the simulated times. NodeVoltages
// has already had probe filtering applied; ElementCurrents never is.
type TranResult struct {
	Times           []float64
	NodeVoltages    map[string][]float64
	ElementCurrents map[string][]float64
}
