package circuit

import "strings"

// NodeIndex is a case-insensitive mapping from node name to a dense
// integer id (spec §4.3). Ground is always id 0, display name "0".
// Lookup keys are uppercased; the first-observed casing of a node name
// is retained as its display name (spec §9 Design Notes: the teacher's
// two implementations disagree on this, this module standardizes on
// case-insensitive keys with first-seen display casing).
type NodeIndex struct {
	display []string // id -> display name
	byKey   map[string]int
}

// NewNodeIndex returns an index with only ground (id 0) registered.
func NewNodeIndex() *NodeIndex {
	return &NodeIndex{
		display: []string{"0"},
		byKey:   map[string]int{"0": 0, "GND": 0},
	}
}

func isGround(name string) bool {
	u := strings.ToUpper(name)
	return u == "0" || u == "GND"
}

// GetOrCreate returns name's id, assigning a new one on first sight.
// Idempotent: repeated calls with names differing only in case return
// the same id (spec §4.3).
func (ni *NodeIndex) GetOrCreate(name string) int {
	if isGround(name) {
		return 0
	}
	key := strings.ToUpper(name)
	if id, ok := ni.byKey[key]; ok {
		return id
	}
	id := len(ni.display)
	ni.display = append(ni.display, name)
	ni.byKey[key] = id
	return id
}

// Lookup returns name's id without creating it.
func (ni *NodeIndex) Lookup(name string) (int, bool) {
	if isGround(name) {
		return 0, true
	}
	id, ok := ni.byKey[strings.ToUpper(name)]
	return id, ok
}

// DisplayName returns the first-observed casing for a node id.
func (ni *NodeIndex) DisplayName(id int) string {
	if id < 0 || id >= len(ni.display) {
		return ""
	}
	return ni.display[id]
}

// Count returns the total number of distinct nodes, ground included.
func (ni *NodeIndex) Count() int { return len(ni.display) }

// MatrixIndexOf returns a node id's MNA matrix row/column index: -1 for
// ground, id-1 otherwise (spec §4.3).
func MatrixIndexOf(id int) int {
	if id == 0 {
		return -1
	}
	return id - 1
}
