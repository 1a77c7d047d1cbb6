package secpmath

import "bytes"

// Recovery id bits understood by the recovery primitive.
const (
	recoveryIDOdd      byte = 1
	recoveryIDOverflow byte = 2
)

// RecoveryTuple is the synthetic input of the recovery primitive.  It carries
// no signing semantics; the fields are chosen so that
// Q = R⁻¹·(S·R − Z·G) equals the result of some other operation.
type RecoveryTuple struct {
	Z Scalar
	R Scalar
	S Scalar
	V byte
}

// Signature returns the 64-byte r || s layout expected by the primitive.
func (t RecoveryTuple) Signature() [64]byte {
	var sig [64]byte
	r, s := t.R.Bytes(), t.S.Bytes()
	copy(sig[:32], r[:])
	copy(sig[32:], s[:])
	return sig
}

// nonceFromX maps the x-coordinate of the point that should play R to the r
// scalar and recovery id.  An x at or above n is encoded as x - n with the
// overflow bit set.
func nonceFromX(x FieldElement, odd bool) (Scalar, byte, error) {
	var v byte
	if odd {
		v |= recoveryIDOdd
	}
	xb := x.Bytes()
	if bytes.Compare(xb[:], N[:]) >= 0 {
		v |= recoveryIDOverflow
	}
	// x < p < 2n, so reducing mod n subtracts n at most once.
	r := scalarFromArray(xb)
	if r.IsZero() {
		return Scalar{}, 0, makeError(ErrRecoveryFailure,
			"x-coordinate reduces to a zero nonce")
	}
	return r, v, nil
}

// mulTuple builds (z = 0, r = P.x, s = k·r) so that Q = k·P.
func mulTuple(k Scalar, p Point) (RecoveryTuple, error) {
	r, v, err := nonceFromX(p.X, p.IsOdd())
	if err != nil {
		return RecoveryTuple{}, err
	}
	return RecoveryTuple{R: r, S: k.Mul(r), V: v}, nil
}

// tweakTuple builds (z = -t·r, r = s = P.x) so that Q = P + t·G.
func tweakTuple(p Point, t Scalar) (RecoveryTuple, error) {
	r, v, err := nonceFromX(p.X, p.IsOdd())
	if err != nil {
		return RecoveryTuple{}, err
	}
	return RecoveryTuple{Z: t.Mul(r).Negate(), R: r, S: r, V: v}, nil
}

// liftTuple builds (z = 0, r = s = x) so that Q = R, the point with the given
// x-coordinate and parity.
func liftTuple(x FieldElement, odd bool) (RecoveryTuple, error) {
	r, v, err := nonceFromX(x, odd)
	if err != nil {
		return RecoveryTuple{}, err
	}
	return RecoveryTuple{R: r, S: r, V: v}, nil
}
