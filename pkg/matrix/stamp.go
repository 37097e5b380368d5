package matrix

// Stamping primitives write a device's linear contribution into a
// DeviceMatrix. They are additive, safe to call repeatedly for the same
// terminal pair, and never allocate (spec §4.5). Matrix indices follow
// the spec convention: ground is -1, a non-ground node's index is
// nodeID-1; any index < 0 is silently skipped here.

// StampAdmittance stamps a real admittance Y between nodes i and j.
func StampAdmittance(m DeviceMatrix, i, j int, y float64) {
	if i >= 0 {
		m.AddElement(i, i, y)
	}
	if j >= 0 {
		m.AddElement(j, j, y)
	}
	if i >= 0 && j >= 0 {
		m.AddElement(i, j, -y)
		m.AddElement(j, i, -y)
	}
}

// StampComplexAdmittance is the complex counterpart of StampAdmittance.
func StampComplexAdmittance(m DeviceMatrix, i, j int, y complex128) {
	re, im := real(y), imag(y)
	if i >= 0 {
		m.AddComplexElement(i, i, re, im)
	}
	if j >= 0 {
		m.AddComplexElement(j, j, re, im)
	}
	if i >= 0 && j >= 0 {
		m.AddComplexElement(i, j, -re, -im)
		m.AddComplexElement(j, i, -re, -im)
	}
}

// StampCurrent injects current iVal from node iPlus to node iMinus.
func StampCurrent(m DeviceMatrix, iPlus, iMinus int, iVal float64) {
	if iPlus >= 0 {
		m.AddRHS(iPlus, -iVal)
	}
	if iMinus >= 0 {
		m.AddRHS(iMinus, iVal)
	}
}

// StampComplexCurrent is the complex counterpart of StampCurrent.
func StampComplexCurrent(m DeviceMatrix, iPlus, iMinus int, iVal complex128) {
	re, im := real(iVal), imag(iVal)
	if iPlus >= 0 {
		m.AddComplexRHS(iPlus, -re, -im)
	}
	if iMinus >= 0 {
		m.AddComplexRHS(iMinus, re, im)
	}
}

// StampVoltageSource stamps a voltage source between nodes i (+) and j (-)
// with branch-current unknown at matrix index k and source value v.
func StampVoltageSource(m DeviceMatrix, i, j, k int, v float64) {
	if i >= 0 {
		m.AddElement(i, k, 1)
		m.AddElement(k, i, 1)
	}
	if j >= 0 {
		m.AddElement(j, k, -1)
		m.AddElement(k, j, -1)
	}
	m.AddRHS(k, v)
}

// StampComplexVoltageSource is the complex counterpart of
// StampVoltageSource.
func StampComplexVoltageSource(m DeviceMatrix, i, j, k int, v complex128) {
	if i >= 0 {
		m.AddComplexElement(i, k, 1, 0)
		m.AddComplexElement(k, i, 1, 0)
	}
	if j >= 0 {
		m.AddComplexElement(j, k, -1, 0)
		m.AddComplexElement(k, j, -1, 0)
	}
	m.AddComplexRHS(k, real(v), imag(v))
}
