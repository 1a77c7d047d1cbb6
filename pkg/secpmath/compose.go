package secpmath

// PublicKey returns priv·G.  A zero private key is rejected.
func (e *Engine) PublicKey(priv Scalar) (Point, error) {
	if priv.IsZero() {
		return Point{}, makeError(ErrInvalidScalar, "private key is zero")
	}
	return e.MulG(priv)
}

// SharedSecret returns the x-coordinate of priv·pub (ECDH, RFC 5903
// section 9).  Hash the result before using it as key material.
func (e *Engine) SharedSecret(priv Scalar, pub Point) ([32]byte, error) {
	if priv.IsZero() {
		return [32]byte{}, makeError(ErrInvalidScalar, "private key is zero")
	}
	p, err := e.ECMul(priv, pub)
	if err != nil {
		return [32]byte{}, err
	}
	return p.X.Bytes(), nil
}

// Commit returns the Pedersen commitment value·G + blinding·H using an ECMul
// followed by a Tweak, two recovery calls in total.  h must be a generator
// whose discrete log relative to G is unknown.
func (e *Engine) Commit(value, blinding Scalar, h Point) (Point, error) {
	if blinding.IsZero() {
		if err := requirePoint(h, "commit"); err != nil {
			return Point{}, err
		}
		return e.MulG(value)
	}
	bh, err := e.ECMul(blinding, h)
	if err != nil {
		return Point{}, err
	}
	return e.Tweak(bh, value)
}
