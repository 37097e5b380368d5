package matrix

import "errors"

// ErrSingularMatrix is returned by Solve when Gaussian elimination cannot
// find a pivot above Epsilon magnitude in some column.
var ErrSingularMatrix = errors.New("matrix: singular to working precision")

// ErrArithmeticDegenerate is returned by complex division/reciprocation
// when the divisor's squared magnitude falls below Epsilon.
var ErrArithmeticDegenerate = errors.New("matrix: arithmetic degenerate (divide by ~0)")
