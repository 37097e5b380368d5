package matrix

import (
	"fmt"
	"math/cmplx"

	"github.com/edp1096sim/gospice/internal/consts"
	"gonum.org/v1/gonum/mat"
)

// SolveComplex is the complex counterpart of SolveReal: Gaussian
// elimination with partial pivoting by column magnitude over complex128
// entries (spec §4.2).
func SolveComplex(a *mat.CDense, b []complex128) ([]complex128, error) {
	rows, cols := a.Dims()
	if rows != cols {
		return nil, fmt.Errorf("matrix: A must be square, got %dx%d", rows, cols)
	}
	n := rows
	if len(b) != n {
		return nil, fmt.Errorf("matrix: rhs length %d does not match system size %d", len(b), n)
	}

	aug := make([][]complex128, n)
	for i := 0; i < n; i++ {
		row := make([]complex128, n+1)
		for j := 0; j < n; j++ {
			row[j] = a.At(i, j)
		}
		row[n] = b[i]
		aug[i] = row
	}

	for k := 0; k < n; k++ {
		pivotRow := k
		pivotMag := cmplx.Abs(aug[k][k])
		for i := k + 1; i < n; i++ {
			if m := cmplx.Abs(aug[i][k]); m > pivotMag {
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
			if cmplx.Abs(f) < consts.Epsilon {
				continue
			}
			for j := k; j <= n; j++ {
				aug[i][j] -= f * aug[k][j]
			}
		}
	}

	x := make([]complex128, n)
	for i := n - 1; i >= 0; i-- {
		sum := aug[i][n]
		for j := i + 1; j < n; j++ {
			sum -= aug[i][j] * x[j]
		}
		x[i] = sum / aug[i][i]
	}
	return x, nil
}
