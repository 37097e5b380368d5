// Package analysis implements the AC and TRAN simulation engines (spec
// §4.6, §4.7): per-frequency/per-step MNA assembly via the device
// package's stampers, the dense solvers in pkg/matrix, and the Newton
// loop that resolves switches and diodes.
package analysis

import (
	"errors"

	"github.com/edp1096sim/gospice/pkg/matrix"
)

// ErrBadInput flags a structurally invalid analysis request: .ac
// requires f1,f2 > 0; .tran requires tstop > 0 (spec §7).
var ErrBadInput = errors.New("analysis: bad input")

// ErrNewtonNonConvergence flags a TRAN step whose Newton loop exceeded
// its iteration budget (spec §7).
var ErrNewtonNonConvergence = errors.New("analysis: newton iteration did not converge")

// ErrSingularMatrix and ErrArithmeticDegenerate are re-exported so
// analysis callers can match solver failures with errors.Is without
// importing pkg/matrix directly.
var (
	ErrSingularMatrix       = matrix.ErrSingularMatrix
	ErrArithmeticDegenerate = matrix.ErrArithmeticDegenerate
)
