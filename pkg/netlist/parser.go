// Package netlist parses the textual netlist format spec §6 describes
// into a *circuit.Circuit plus AC/TRAN analysis requests and an
// optional probe list, ready for pkg/analysis to run.
package netlist

import (
	"bufio"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/edp1096sim/gospice/pkg/analysis"
	"github.com/edp1096sim/gospice/pkg/circuit"
	"github.com/edp1096sim/gospice/pkg/device"
	"github.com/edp1096sim/gospice/pkg/waveform"
)

// ParseResult bundles everything a parsed netlist contributes: the
// finalized circuit plus whichever analyses and probes were requested.
type ParseResult struct {
	Circuit *circuit.Circuit
	AC      *circuit.ACParams
	TRAN    *circuit.TRANParams
	Probes  *circuit.Probes
}

var unitMap = map[string]float64{
	"t":   1e12,
	"g":   1e9,
	"meg": 1e6,
	"k":   1e3,
	"m":   1e-3,
	"u":   1e-6,
	"n":   1e-9,
	"p":   1e-12,
	"f":   1e-15,
}

var valueRe = regexp.MustCompile(`(?i)^([-+]?\d*\.?\d+(?:[eE][-+]?\d+)?)(meg|[tgkmunpf])?[a-z]*$`)

// ParseValue parses a SPICE-style number with an optional case-
// insensitive SI suffix (spec §6), e.g. "1k" -> 1000, "100u" -> 1e-4.
func ParseValue(s string) (float64, error) {
	s = strings.TrimSpace(s)
	m := valueRe.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("netlist: invalid value %q", s)
	}
	n, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, fmt.Errorf("netlist: invalid value %q: %w", s, err)
	}
	if m[2] != "" {
		n *= unitMap[strings.ToLower(m[2])]
	}
	return n, nil
}

// Parse builds a ParseResult from netlist source text.
func Parse(input string) (*ParseResult, error) {
	b := circuit.NewBuilder()
	switchModels := make(map[string]*device.SwitchModel)
	diodeModels := make(map[string]*device.DiodeModel)

	var elementLines []string
	var probeNames []string
	result := &ParseResult{}

	scanner := bufio.NewScanner(strings.NewReader(input))
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if first {
			first = false
			if strings.HasPrefix(line, "*") {
				continue
			}
		}
		if line == "" || strings.HasPrefix(line, "*") {
			continue
		}

		switch {
		case strings.HasPrefix(strings.ToLower(line), ".model"):
			if err := parseModel(line, switchModels, diodeModels); err != nil {
				return nil, err
			}
		case strings.HasPrefix(strings.ToLower(line), ".ac"):
			ac, err := parseAC(line)
			if err != nil {
				return nil, err
			}
			result.AC = ac
		case strings.HasPrefix(strings.ToLower(line), ".tran"):
			tran, err := parseTRAN(line)
			if err != nil {
				return nil, err
			}
			result.TRAN = tran
		case strings.HasPrefix(strings.ToLower(line), ".print"):
			probeNames = append(probeNames, parsePrintProbes(line)...)
		case strings.HasPrefix(line, "."):
			continue // unrecognized directive, ignored
		default:
			elementLines = append(elementLines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("netlist: %w", err)
	}

	for _, line := range elementLines {
		if err := parseElementLine(line, b, switchModels, diodeModels); err != nil {
			return nil, err
		}
	}

	ckt, err := b.Finalize()
	if err != nil {
		return nil, err
	}
	result.Circuit = ckt
	result.Probes = circuit.NewProbes(probeNames...)

	return result, nil
}

func parsePrintProbes(line string) []string {
	re := regexp.MustCompile(`(?i)V\(([^)]+)\)`)
	matches := re.FindAllStringSubmatch(line, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

func parseAC(line string) (*circuit.ACParams, error) {
	fields := strings.Fields(line)
	if len(fields) < 5 {
		return nil, fmt.Errorf("netlist: .ac requires mode, N, f1, f2: %w", errBadDirective)
	}
	var mode circuit.FreqMode
	switch strings.ToUpper(fields[1]) {
	case "DEC":
		mode = circuit.FreqDec
	case "LIN":
		mode = circuit.FreqLin
	default:
		return nil, fmt.Errorf("netlist: unsupported .ac mode %q: %w", fields[1], errBadDirective)
	}
	n, err := strconv.Atoi(fields[2])
	if err != nil {
		return nil, fmt.Errorf("netlist: invalid .ac N: %w", err)
	}
	f1, err := ParseValue(fields[3])
	if err != nil {
		return nil, err
	}
	f2, err := ParseValue(fields[4])
	if err != nil {
		return nil, err
	}
	return &circuit.ACParams{Mode: mode, N: n, F1: f1, F2: f2}, nil
}

func parseTRAN(line string) (*circuit.TRANParams, error) {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return nil, fmt.Errorf("netlist: .tran requires dt and tstop: %w", errBadDirective)
	}
	dt, err := ParseValue(fields[1])
	if err != nil {
		return nil, err
	}
	tstop, err := ParseValue(fields[2])
	if err != nil {
		return nil, err
	}
	return &circuit.TRANParams{Dt: dt, Tstop: tstop}, nil
}

// parseModel handles ".model <name> SW|VSWITCH(...)" and
// ".model <name> D(...)" lines (spec §6).
func parseModel(line string, switches map[string]*device.SwitchModel, diodes map[string]*device.DiodeModel) error {
	normalized := strings.ReplaceAll(line, "(", " ( ")
	normalized = strings.ReplaceAll(normalized, ")", " ) ")
	normalized = strings.ReplaceAll(normalized, "=", " = ")
	fields := strings.Fields(normalized)
	if len(fields) < 3 {
		return fmt.Errorf("netlist: malformed .model line: %q", line)
	}

	name := fields[1]
	kind := strings.ToUpper(fields[2])
	params := parseKeyValueParams(fields[3:])

	switch kind {
	case "SW", "VSWITCH":
		m := &device.SwitchModel{Name: strings.ToLower(name), Ron: 1, Roff: 1e9, Von: 1, Voff: 0}
		if v, ok := params["ron"]; ok {
			m.Ron = v
		}
		if v, ok := params["roff"]; ok {
			m.Roff = v
		}
		if vt, okVt := params["vt"]; okVt {
			vh := params["vh"]
			m.Von = vt + vh/2
			m.Voff = vt - vh/2
		}
		if v, ok := params["von"]; ok {
			m.Von = v
		}
		if v, ok := params["voff"]; ok {
			m.Voff = v
		}
		switches[strings.ToLower(name)] = m
	case "D":
		m := &device.DiodeModel{Name: strings.ToLower(name), Is: 1e-14, N: 1}
		if v, ok := params["is"]; ok {
			m.Is = v
		}
		if v, ok := params["n"]; ok {
			m.N = v
		}
		diodes[strings.ToLower(name)] = m
	default:
		return fmt.Errorf("netlist: unsupported .model kind %q: %w", kind, errBadDirective)
	}
	return nil
}

func parseKeyValueParams(fields []string) map[string]float64 {
	out := make(map[string]float64)
	for i := 0; i < len(fields); i++ {
		if fields[i] == "=" || fields[i] == "(" || fields[i] == ")" {
			continue
		}
		if i+2 < len(fields) && fields[i+1] == "=" {
			if v, err := ParseValue(fields[i+2]); err == nil {
				out[strings.ToLower(fields[i])] = v
			}
			i += 2
		}
	}
	return out
}

func parseElementLine(line string, b *circuit.Builder, switches map[string]*device.SwitchModel, diodes map[string]*device.DiodeModel) error {
	fields := strings.Fields(line)
	if len(fields) < 3 {
		return fmt.Errorf("netlist: invalid element line %q", line)
	}
	name := fields[0]
	kind := strings.ToUpper(string(name[0]))
	nodes := b.Nodes()

	switch kind {
	case "R":
		v, err := ParseValue(fields[len(fields)-1])
		if err != nil {
			return err
		}
		n1, n2 := nodes.GetOrCreate(fields[1]), nodes.GetOrCreate(fields[2])
		b.AddDevice(&device.Resistor{InstanceName: name, N1: n1, N2: n2, R: v})

	case "C":
		v, err := ParseValue(fields[len(fields)-1])
		if err != nil {
			return err
		}
		n1, n2 := nodes.GetOrCreate(fields[1]), nodes.GetOrCreate(fields[2])
		b.AddDevice(&device.Capacitor{InstanceName: name, N1: n1, N2: n2, C: v})

	case "L":
		v, err := ParseValue(fields[len(fields)-1])
		if err != nil {
			return err
		}
		n1, n2 := nodes.GetOrCreate(fields[1]), nodes.GetOrCreate(fields[2])
		b.AddDevice(&device.Inductor{InstanceName: name, N1: n1, N2: n2, L: v})

	case "V":
		return parseVoltageSource(name, fields, b)

	case "S":
		if len(fields) < 6 {
			return fmt.Errorf("netlist: switch %s requires n1 n2 ncPos ncNeg model", name)
		}
		modelName := strings.ToLower(fields[5])
		model, ok := switches[modelName]
		if !ok {
			return fmt.Errorf("netlist: switch %s: %w: %w", name, device.ErrUnresolvedModel, analysis.ErrBadInput)
		}
		n1, n2 := nodes.GetOrCreate(fields[1]), nodes.GetOrCreate(fields[2])
		ncp, ncn := nodes.GetOrCreate(fields[3]), nodes.GetOrCreate(fields[4])
		b.AddDevice(&device.Switch{InstanceName: name, N1: n1, N2: n2, NCPos: ncp, NCNeg: ncn, Model: model})

	case "D":
		if len(fields) < 4 {
			return fmt.Errorf("netlist: diode %s requires n+ n- model", name)
		}
		modelName := strings.ToLower(fields[3])
		model, ok := diodes[modelName]
		if !ok {
			return fmt.Errorf("netlist: diode %s: %w: %w", name, device.ErrUnresolvedModel, analysis.ErrBadInput)
		}
		np, nm := nodes.GetOrCreate(fields[1]), nodes.GetOrCreate(fields[2])
		b.AddDevice(&device.Diode{InstanceName: name, NPlus: np, NMinus: nm, Model: model})

	default:
		return fmt.Errorf("netlist: unsupported element kind %q in %q", kind, line)
	}

	return nil
}

// parseVoltageSource handles V lines carrying any combination of a DC
// value, an AC spec, and a PULSE/PWL waveform attachment (spec §6).
func parseVoltageSource(name string, fields []string, b *circuit.Builder) error {
	if len(fields) < 3 {
		return fmt.Errorf("netlist: voltage source %s requires n1 n2", name)
	}
	n1 := b.Nodes().GetOrCreate(fields[1])
	n2 := b.Nodes().GetOrCreate(fields[2])
	v := &device.VoltageSource{InstanceName: name, N1: n1, N2: n2}

	rest := strings.Join(fields[3:], " ")
	rest = strings.ReplaceAll(rest, "(", " ( ")
	rest = strings.ReplaceAll(rest, ")", " ) ")
	tokens := strings.Fields(rest)

	for i := 0; i < len(tokens); {
		switch strings.ToUpper(tokens[i]) {
		case "DC":
			if i+1 >= len(tokens) {
				return fmt.Errorf("netlist: %s: missing DC value", name)
			}
			val, err := ParseValue(tokens[i+1])
			if err != nil {
				return err
			}
			v.DC = val
			i += 2

		case "AC":
			if i+1 >= len(tokens) {
				return fmt.Errorf("netlist: %s: missing AC magnitude", name)
			}
			mag, err := ParseValue(tokens[i+1])
			if err != nil {
				return err
			}
			v.ACMag = mag
			i += 2
			if i < len(tokens) {
				if phase, err := ParseValue(tokens[i]); err == nil {
					v.ACPhaseDeg = phase
					i++
				}
			}

		case "PULSE":
			args, next, err := collectParenArgs(tokens, i+1)
			if err != nil {
				return fmt.Errorf("netlist: %s: %w", name, err)
			}
			wf, err := buildPulse(args)
			if err != nil {
				return fmt.Errorf("netlist: %s: %w", name, err)
			}
			v.Waveform = wf
			v.HasWaveform = true
			i = next

		case "PWL":
			args, next, err := collectParenArgs(tokens, i+1)
			if err != nil {
				return fmt.Errorf("netlist: %s: %w", name, err)
			}
			wf, err := buildPWL(args)
			if err != nil {
				return fmt.Errorf("netlist: %s: %w", name, err)
			}
			v.Waveform = wf
			v.HasWaveform = true
			i = next

		default:
			// Bare DC value with no leading "DC" keyword.
			if val, err := ParseValue(tokens[i]); err == nil {
				v.DC = val
				i++
				continue
			}
			return fmt.Errorf("netlist: %s: unrecognized token %q", name, tokens[i])
		}
	}

	b.AddDevice(v)
	return nil
}

// collectParenArgs reads tokens from a "( a b c )" group starting at
// start (which must be "(") and returns its contents plus the index
// immediately following the closing ")".
func collectParenArgs(tokens []string, start int) ([]string, int, error) {
	if start >= len(tokens) || tokens[start] != "(" {
		return nil, 0, fmt.Errorf("expected '(' after waveform keyword")
	}
	i := start + 1
	var args []string
	for i < len(tokens) && tokens[i] != ")" {
		args = append(args, tokens[i])
		i++
	}
	if i >= len(tokens) {
		return nil, 0, fmt.Errorf("unterminated waveform parameter list")
	}
	return args, i + 1, nil
}

func buildPulse(args []string) (waveform.Waveform, error) {
	if len(args) < 7 {
		return waveform.Waveform{}, fmt.Errorf("PULSE requires 7 parameters, got %d", len(args))
	}
	vals := make([]float64, 8)
	for i := 0; i < 7; i++ {
		v, err := ParseValue(args[i])
		if err != nil {
			return waveform.Waveform{}, err
		}
		vals[i] = v
	}
	if len(args) > 7 {
		if v, err := ParseValue(args[7]); err == nil {
			vals[7] = v
		}
	}
	return waveform.NewPulse(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5], vals[6], vals[7]), nil
}

func buildPWL(args []string) (waveform.Waveform, error) {
	if len(args) < 4 || len(args)%2 != 0 {
		return waveform.Waveform{}, fmt.Errorf("PWL requires pairs of time/value")
	}
	n := len(args) / 2
	times := make([]float64, n)
	values := make([]float64, n)
	for i := 0; i < n; i++ {
		t, err := ParseValue(args[2*i])
		if err != nil {
			return waveform.Waveform{}, err
		}
		val, err := ParseValue(args[2*i+1])
		if err != nil {
			return waveform.Waveform{}, err
		}
		times[i] = t
		values[i] = val
	}
	return waveform.NewPWL(times, values), nil
}
