package matrix

import (
	"fmt"
	"math"

	"github.com/edp1096sim/gospice/internal/consts"
	"gonum.org/v1/gonum/mat"
)

// SolveReal solves A*x = b by Gaussian elimination with partial pivoting
// by column absolute value (spec §4.2). A is augmented with b in a local
// copy; the caller's matrix is never mutated.
func SolveReal(a *mat.Dense, b []float64) ([]float64, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, fmt.Errorf("matrix: A must be square, got %dx%d", rows, cols)
	}
	n := rows
	if len(b) != n {
		return nil, fmt.Errorf("matrix: rhs length %d does not match system size %d", len(b), n)
	}

	aug := make([][]float64, n)
	for i := 0; i < n; i++ {
		row := make([]float64, n+1)
		for j := 0; j < n; j++ {
			row[j] = a.At(i, j)
		}
		row[n] = b[i]
		aug[i] = row
	}

	for k := 0; k < n; k++ {
		pivotRow := k
		pivotMag := math.Abs(aug[k][k])
		for i := k + 1; i < n; i++ {
			if m := math.Abs(aug[i][k]); m > pivotMag {
				pivotMag = m
				pivotRow = i
			}
		}
		if pivotMag < consts.Epsilon {
			return nil, ErrSingularMatrix
		}
		if pivotRow != k {
			aug[k], aug[pivotRow] = aug[pivotRow], aug[k]
		}

		for i := k + 1; i < n; i++ {
			f := aug[i][k] / aug[k][k]
			if math.Abs(f) < consts.Epsilon {
				continue // skip-small-multiplier: equivalent to eliminating a ~0 entry
			}
			for j := k; j <= n; j++ {
				aug[i][j] -= f * aug[k][j]
			}
		}
	}

	x := make([]float64, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}
	return x, nil
}
