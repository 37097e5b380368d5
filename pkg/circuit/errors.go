package circuit

import "errors"

// ErrEmptyCircuit is returned by Builder.Finalize when no devices were
// ever added.
var ErrEmptyCircuit = errors.New("circuit: empty circuit")
