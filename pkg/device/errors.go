package device

import "errors"

// ErrBadValue flags a structurally invalid element value (e.g. a
// resistor with R <= 0) encountered during stamping. Wrapped with
// element-specific context at the call site; analysis callers match it
// with errors.Is to surface spec §7's BadInput error kind.
var ErrBadValue = errors.New("device: invalid element value")

// ErrUnresolvedModel flags a switch/diode whose .model reference could
// not be found by lowercase name lookup (spec §3 invariant 4).
var ErrUnresolvedModel = errors.New("device: unresolved model reference")
