package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// System is the real-valued MNA matrix/RHS pair assembled fresh for every
// transient step (or Newton iteration within a step). Storage is a dense
// gonum matrix; Solve runs the spec's hand-written partial-pivoting
// Gaussian elimination rather than gonum's own solver, so the ε-gated
// singular/skip-small-multiplier semantics in spec §4.2 are exact.
type System struct {
	size int
	a    *mat.Dense
	b    []float64
}

// NewSystem allocates a zeroed size x size real system.
func NewSystem(size int) *System {
	return &System{
		size: size,
		a:    mat.NewDense(size, size, nil),
		b:    make([]float64, size),
	}
}

func (s *System) Size() int { return s.size }

// AddElement additively writes into A[i][j]; out-of-range indices are
// dropped (ground is filtered upstream by the stamping primitives, never
// reaching here with i or j negative).
func (s *System) AddElement(i, j int, value float64) {
	if i < 0 || j < 0 || i >= s.size || j >= s.size {
		return
	}
	s.a.Set(i, j, s.a.At(i, j)+value)
}

func (s *System) AddRHS(i int, value float64) {
	if i < 0 || i >= s.size {
		return
	}
	s.b[i] += value
}

// AddComplexElement/AddComplexRHS exist to satisfy DeviceMatrix; a real
// System is never stamped by a device in ACAnalysis mode, so these are
// no-ops rather than a second code path to keep consistent.
func (s *System) AddComplexElement(i, j int, real, imag float64) {}
func (s *System) AddComplexRHS(i int, real, imag float64)        {}

// Clear re-zeroes the system for the next assembly: A is replaced by a
// freshly allocated zero matrix, b is zeroed in place.
func (s *System) Clear() {
	s.a = mat.NewDense(s.size, s.size, nil)
	for i := range s.b {
		s.b[i] = 0
	}
}

// Solve runs Gaussian elimination with partial pivoting and returns the
// solution vector x such that A*x = b.
func (s *System) Solve() ([]float64, error) {
	return SolveReal(s.a, s.b)
}

func (s *System) RHS() []float64 { return s.b }

func (s *System) At(i, j int) float64 {
	if i < 0 || j < 0 || i >= s.size || j >= s.size {
		return 0
	}
	return s.a.At(i, j)
}

func (s *System) String() string {
	return fmt.Sprintf("matrix.System(size=%d)", s.size)
}
