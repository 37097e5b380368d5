package result_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096sim/gospice/pkg/analysis"
	"github.com/edp1096sim/gospice/pkg/result"
)

func TestWriteTranCSVHeaderAndRows(t *testing.T) {
	r := &analysis.TranResult{
		Times:           []float64{0, 1e-6},
		NodeVoltages:    map[string][]float64{"2": {0, 5}},
		ElementCurrents: map[string][]float64{"V1": {0, -0.005}},
	}
	var buf bytes.Buffer
	require.NoError(t, result.WriteTranCSV(&buf, r))

	out := buf.String()
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 3)
	assert.Contains(t, lines[0], "V(2)")
	assert.Contains(t, lines[0], "I(V1)")
}

func TestWriteAcCSVHeaderAndRows(t *testing.T) {
	r := &analysis.AcResult{
		Freqs:           []float64{1, 10},
		NodeVoltages:    map[string][]complex128{"2": {complex(1, 0), complex(0.7, -0.7)}},
		ElementCurrents: map[string][]complex128{},
	}
	var buf bytes.Buffer
	require.NoError(t, result.WriteAcCSV(&buf, r))

	out := buf.String()
	assert.Contains(t, out, "|V(2)|")
}

func TestWriteTranJSON(t *testing.T) {
	r := &analysis.TranResult{
		Times:           []float64{0, 1e-6},
		NodeVoltages:    map[string][]float64{"2": {0, 5}},
		ElementCurrents: map[string][]float64{},
	}
	var buf bytes.Buffer
	require.NoError(t, result.WriteTranJSON(&buf, r))
	assert.Contains(t, buf.String(), `"times"`)
	assert.Contains(t, buf.String(), `"nodeVoltages"`)
}
