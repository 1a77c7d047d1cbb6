package secpmath

// ModInvP returns a⁻¹ mod p as a^(p-2) mod p, one ModExp call.
func (e *Engine) ModInvP(a FieldElement) (FieldElement, error) {
	if a.IsZero() {
		return FieldElement{}, makeError(ErrZeroInverse,
			"zero has no inverse modulo the field prime")
	}
	v, err := e.modExp(a.Bytes(), pMinus2, P)
	if err != nil {
		return FieldElement{}, err
	}
	return fieldFromArray(v), nil
}

// ModInvN returns a⁻¹ mod n as a^(n-2) mod n, one ModExp call.
func (e *Engine) ModInvN(a Scalar) (Scalar, error) {
	if a.IsZero() {
		return Scalar{}, makeError(ErrZeroInverse,
			"zero has no inverse modulo the curve order")
	}
	v, err := e.modExp(a.Bytes(), nMinus2, N)
	if err != nil {
		return Scalar{}, err
	}
	return scalarFromArray(v), nil
}

// SqrtP returns a square root of a mod p as a^((p+1)/4), one ModExp call.
// The candidate is squared back and ErrNotOnCurve is returned when a is not
// a quadratic residue.
func (e *Engine) SqrtP(a FieldElement) (FieldElement, error) {
	v, err := e.modExp(a.Bytes(), sqrtExponent, P)
	if err != nil {
		return FieldElement{}, err
	}
	y := fieldFromArray(v)
	if y.Square() != a {
		return FieldElement{}, makeError(ErrNotOnCurve,
			"value is not a quadratic residue modulo the field prime")
	}
	return y, nil
}
