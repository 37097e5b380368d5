package circuit

import (
	"fmt"

	"github.com/edp1096sim/gospice/pkg/device"
)

// Circuit is the finalized description of a netlist: its node index, its
// devices in declaration order, and the derived MNA sizing (spec §4.3).
// It is built via Builder and is immutable once Finalize succeeds.
type Circuit struct {
	Nodes   *NodeIndex
	Devices []device.Device

	// Nvar is the total MNA unknown count: (nodeCount-1) voltages plus
	// one auxiliary branch-current unknown per voltage source (spec
	// invariant 3). Inductors do not contribute an unknown.
	Nvar int
}

// Builder accumulates devices and node references while a netlist is
// parsed, then produces a finalized Circuit.
type Builder struct {
	nodes   *NodeIndex
	devices []device.Device
}

// NewBuilder returns an empty Builder with ground pre-registered.
func NewBuilder() *Builder {
	return &Builder{nodes: NewNodeIndex()}
}

// Nodes exposes the builder's node index so a parser can resolve node
// names to ids while constructing device instances.
func (b *Builder) Nodes() *NodeIndex { return b.nodes }

// AddDevice appends a device in declaration order. Voltage-source branch
// indices are assigned later, in Finalize, once every node has been
// seen — assigning eagerly here would be wrong if a node referenced only
// by a later line grows the node count after this call.
func (b *Builder) AddDevice(d device.Device) {
	b.devices = append(b.devices, d)
}

// Finalize validates the accumulated devices and returns the immutable
// Circuit. It rewrites every device's node fields from node ids to MNA
// matrix indices (ground becomes -1) and assigns each voltage source's
// auxiliary branch index in declaration order starting at matrix index
// (nodeCount-1) (spec invariants 2 and 3).
func (b *Builder) Finalize() (*Circuit, error) {
	if len(b.devices) == 0 {
		return nil, fmt.Errorf("circuit: no devices declared: %w", ErrEmptyCircuit)
	}

	base := b.nodes.Count() - 1
	idx := 0
	for _, d := range b.devices {
		switch e := d.(type) {
		case *device.Resistor:
			e.N1, e.N2 = MatrixIndexOf(e.N1), MatrixIndexOf(e.N2)
		case *device.Capacitor:
			e.N1, e.N2 = MatrixIndexOf(e.N1), MatrixIndexOf(e.N2)
		case *device.Inductor:
			e.N1, e.N2 = MatrixIndexOf(e.N1), MatrixIndexOf(e.N2)
		case *device.Switch:
			e.N1, e.N2, e.NCPos, e.NCNeg = MatrixIndexOf(e.N1), MatrixIndexOf(e.N2), MatrixIndexOf(e.NCPos), MatrixIndexOf(e.NCNeg)
		case *device.Diode:
			e.NPlus, e.NMinus = MatrixIndexOf(e.NPlus), MatrixIndexOf(e.NMinus)
		case *device.VoltageSource:
			e.N1, e.N2, e.Index = MatrixIndexOf(e.N1), MatrixIndexOf(e.N2), base+idx
			idx++
		}
	}

	return &Circuit{
		Nodes:   b.nodes,
		Devices: b.devices,
		Nvar:    base + idx,
	}, nil
}
