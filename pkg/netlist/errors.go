package netlist

import "errors"

// errBadDirective flags a malformed .ac/.tran/.model directive.
var errBadDirective = errors.New("netlist: bad directive")
