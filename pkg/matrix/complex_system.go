package matrix

import "gonum.org/v1/gonum/mat"

// ComplexSystem is the complex-valued MNA matrix/RHS pair assembled fresh
// for every frequency point of an AC sweep.
type ComplexSystem struct {
	size int
	a    *mat.CDense
	b    []complex128
}

// NewComplexSystem allocates a zeroed size x size complex system.
func NewComplexSystem(size int) *ComplexSystem {
	return &ComplexSystem{
		size: size,
		a:    mat.NewCDense(size, size, nil),
		b:    make([]complex128, size),
	}
}

func (s *ComplexSystem) Size() int { return s.size }

// AddElement/AddRHS exist to satisfy DeviceMatrix; a complex system is
// never stamped by a device outside ACAnalysis mode.
func (s *ComplexSystem) AddElement(i, j int, value float64) {}
func (s *ComplexSystem) AddRHS(i int, value float64)        {}

func (s *ComplexSystem) AddComplexElement(i, j int, re, im float64) {
	if i < 0 || j < 0 || i >= s.size || j >= s.size {
		return
	}
	s.a.Set(i, j, s.a.At(i, j)+complex(re, im))
}

func (s *ComplexSystem) AddComplexRHS(i int, re, im float64) {
	if i < 0 || i >= s.size {
		return
	}
	s.b[i] += complex(re, im)
}

// Clear re-zeroes the system: A is replaced by a freshly allocated zero
// matrix, b is zeroed in place.
func (s *ComplexSystem) Clear() {
	s.a = mat.NewCDense(s.size, s.size, nil)
	for i := range s.b {
		s.b[i] = 0
	}
}

// Solve runs complex Gaussian elimination with partial pivoting and
// returns x such that A*x = b.
func (s *ComplexSystem) Solve() ([]complex128, error) {
	return SolveComplex(s.a, s.b)
}

func (s *ComplexSystem) RHS() []complex128 { return s.b }
