package matrix_test

import (
	"errors"
	"testing"

	"github.com/edp1096sim/gospice/pkg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestSolveRealIdentitySystem(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 0, 0, 3})
	x, err := matrix.SolveReal(a, []float64{4, 9})
	require.NoError(t, err)
	assert.InDelta(t, 2.0, x[0], 1e-9)
	assert.InDelta(t, 3.0, x[1], 1e-9)
}

func TestSolveRealRequiresPivotSwap(t *testing.T) {
	// Top-left entry is zero: elimination must pivot on row 2.
	a := mat.NewDense(2, 2, []float64{0, 1, 1, 1})
	x, err := matrix.SolveReal(a, []float64{2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 1.0, x[0], 1e-9)
	assert.InDelta(t, 2.0, x[1], 1e-9)
}

func TestSolveRealSingularFails(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{1, 2, 2, 4})
	_, err := matrix.SolveReal(a, []float64{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrSingularMatrix))
}

func TestSolveRealDoesNotMutateCaller(t *testing.T) {
	a := mat.NewDense(2, 2, []float64{2, 1, 1, 3})
	before := mat.DenseCopyOf(a)
	_, err := matrix.SolveReal(a, []float64{3, 5})
	require.NoError(t, err)
	assert.True(t, mat.Equal(before, a))
}

func TestSolveComplexBasic(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{
		complex(1, 0), complex(0, 1),
		complex(0, -1), complex(2, 0),
	})
	x, err := matrix.SolveComplex(a, []complex128{complex(1, 0), complex(0, 0)})
	require.NoError(t, err)
	// Sanity: plugging x back into row 0 reproduces b[0].
	got := a.At(0, 0)*x[0] + a.At(0, 1)*x[1]
	assert.InDelta(t, 1.0, real(got), 1e-9)
	assert.InDelta(t, 0.0, imag(got), 1e-9)
}

func TestSolveComplexSingularFails(t *testing.T) {
	a := mat.NewCDense(2, 2, []complex128{1, 2, 2, 4})
	_, err := matrix.SolveComplex(a, []complex128{1, 2})
	require.Error(t, err)
	assert.True(t, errors.Is(err, matrix.ErrSingularMatrix))
}

func TestSystemDoublingResistanceHalvesBranchCurrent(t *testing.T) {
	// V source (10V) into a single resistor to ground; doubling R must
	// exactly halve the source's branch current (spec §8 universal
	// property: linear network, all else held).
	branchCurrent := func(r float64) float64 {
		s := matrix.NewSystem(2) // 0: node voltage, 1: source branch current
		matrix.StampVoltageSource(s, 0, -1, 1, 10.0)
		matrix.StampAdmittance(s, 0, -1, 1.0/r)
		x, err := s.Solve()
		require.NoError(t, err)
		return x[1]
	}
	i1 := branchCurrent(100)
	i2 := branchCurrent(200)
	assert.InDelta(t, i1/2, i2, 1e-9)
}
