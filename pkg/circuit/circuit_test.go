package circuit_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edp1096sim/gospice/pkg/circuit"
	"github.com/edp1096sim/gospice/pkg/device"
)

func TestNodeIndexCaseInsensitiveFirstSeenCasing(t *testing.T) {
	ni := circuit.NewNodeIndex()

	id1 := ni.GetOrCreate("node1")
	id2 := ni.GetOrCreate("NODE1")
	id3 := ni.GetOrCreate("nOdE1")

	assert.Equal(t, id1, id2)
	assert.Equal(t, id1, id3)
	assert.Equal(t, "node1", ni.DisplayName(id1))
}

func TestNodeIndexGroundIsZero(t *testing.T) {
	ni := circuit.NewNodeIndex()
	assert.Equal(t, 0, ni.GetOrCreate("0"))
	assert.Equal(t, 0, ni.GetOrCreate("GND"))
	assert.Equal(t, -1, circuit.MatrixIndexOf(0))
}

func TestMatrixIndexOfNonGround(t *testing.T) {
	assert.Equal(t, 0, circuit.MatrixIndexOf(1))
	assert.Equal(t, 4, circuit.MatrixIndexOf(5))
}

func TestFinalizeAssignsVoltageSourceIndicesInDeclarationOrder(t *testing.T) {
	b := circuit.NewBuilder()
	n1 := b.Nodes().GetOrCreate("1")
	n2 := b.Nodes().GetOrCreate("2")
	n3 := b.Nodes().GetOrCreate("3")

	v1 := &device.VoltageSource{InstanceName: "V1", N1: n1, N2: 0, DC: 10}
	v2 := &device.VoltageSource{InstanceName: "V2", N1: n3, N2: 0, DC: 5}
	r1 := &device.Resistor{InstanceName: "R1", N1: n1, N2: n2, R: 100}

	b.AddDevice(v1)
	b.AddDevice(r1)
	b.AddDevice(v2)

	c, err := b.Finalize()
	require.NoError(t, err)

	nodeCount := 4 // ground + 1,2,3
	assert.Equal(t, nodeCount-1, v1.Index)
	assert.Equal(t, nodeCount, v2.Index)
	assert.Equal(t, (nodeCount-1)+2, c.Nvar)
}

func TestFinalizeRejectsEmptyCircuit(t *testing.T) {
	b := circuit.NewBuilder()
	_, err := b.Finalize()
	assert.ErrorIs(t, err, circuit.ErrEmptyCircuit)
}

func TestProbesCaseInsensitive(t *testing.T) {
	p := circuit.NewProbes("Node1")
	assert.True(t, p.Includes("NODE1"))
	assert.True(t, p.Includes("node1"))
	assert.False(t, p.Includes("node2"))
}

func TestProbesEmptyIncludesEverything(t *testing.T) {
	var p *circuit.Probes
	assert.True(t, p.Includes("anything"))
}
