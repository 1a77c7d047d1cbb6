package secpmath

import (
	"bytes"
	"fmt"
)

// Host exposes the two primitives every operation in this package is built
// from.  On-chain these are runtime syscalls; pkg/host provides a software
// implementation.
//
// Implementations must be safe for concurrent use if the Engine is shared
// between goroutines.
type Host interface {
	// ModExp returns base^exponent mod modulus.  All values are big-endian
	// and the result is left-padded to len(modulus).
	ModExp(base, exponent, modulus []byte) ([]byte, error)

	// Recover returns the point Q = r⁻¹·(s·R − z·G) where hash is z,
	// signature is r || s, and recoveryID selects R: bit 0 is the parity of
	// R.y and bit 1 means R.x = r + n.  The result is X || Y.
	Recover(hash [32]byte, recoveryID byte, signature [64]byte) ([64]byte, error)
}

// Engine evaluates secp256k1 operations as identities over the Host
// primitives.  Each operation calls the host a small constant number of times
// and never loops over scalar bits.  An Engine holds no mutable state.
type Engine struct {
	host Host
}

// NewEngine creates an engine backed by host.
func NewEngine(host Host) *Engine {
	return &Engine{host: host}
}

// Host returns the primitive backend of the engine.
func (e *Engine) Host() Host {
	return e.host
}

// modExp calls the host ModExp primitive with 32-byte operands and checks
// that the result is reduced modulo modulus.
func (e *Engine) modExp(base, exponent, modulus [32]byte) ([32]byte, error) {
	out, err := e.host.ModExp(base[:], exponent[:], modulus[:])
	if err != nil {
		log.Debugf("ModExp primitive failed: %v", err)
		return [32]byte{}, hostError{
			kind: ErrModExpFailure,
			desc: "modexp primitive failed",
			err:  err,
		}
	}
	if len(out) > 32 {
		trimmed := bytes.TrimLeft(out, "\x00")
		if len(trimmed) > 32 {
			return [32]byte{}, makeError(ErrModExpFailure, fmt.Sprintf(
				"modexp primitive returned %d bytes", len(out)))
		}
		out = trimmed
	}
	var v [32]byte
	copy(v[32-len(out):], out)
	if bytes.Compare(v[:], modulus[:]) >= 0 {
		return [32]byte{}, makeError(ErrModExpFailure, fmt.Sprintf(
			"modexp primitive returned a non-reduced value %x", out))
	}
	return v, nil
}

// recover hands a synthetic tuple to the recovery primitive and validates the
// resulting point.
func (e *Engine) recover(t RecoveryTuple) (Point, error) {
	log.Tracef("Recover z=%s r=%s s=%s v=%d", t.Z, t.R, t.S, t.V)
	out, err := e.host.Recover(t.Z.Bytes(), t.V, t.Signature())
	if err != nil {
		log.Debugf("Recover primitive rejected tuple (r=%s, v=%d): %v", t.R, t.V, err)
		return Point{}, hostError{
			kind: ErrRecoveryFailure,
			desc: "recovery primitive rejected the synthetic tuple",
			err:  err,
		}
	}
	p, err := PointFromUncompressed(out[:])
	if err != nil {
		return Point{}, makeError(ErrRecoveryFailure,
			"recovery primitive returned a point that is not on the curve")
	}
	return p, nil
}

// requirePoint rejects the identity and off-curve pairs.
func requirePoint(p Point, op string) error {
	if p.IsIdentity() {
		return makeError(ErrInvalidPoint, op+": identity point is not allowed")
	}
	if !p.IsOnCurve() {
		return makeError(ErrInvalidPoint, op+": point is not on the curve")
	}
	return nil
}

// MulG computes k·G with one recovery call.  k = 0 yields the identity
// without touching the host.
func (e *Engine) MulG(k Scalar) (Point, error) {
	if k.IsZero() {
		return Identity(), nil
	}
	t, err := mulTuple(k, G)
	if err != nil {
		return Point{}, err
	}
	return e.recover(t)
}

// ECMul computes k·P with one recovery call.
//
// The tuple (z = 0, r = P.x, s = k·r) collapses the recovery identity to
// r⁻¹·(k·r)·P = k·P.  k = 0 yields the identity since s = 0 is outside the
// domain of the primitive.
func (e *Engine) ECMul(k Scalar, p Point) (Point, error) {
	if err := requirePoint(p, "ecmul"); err != nil {
		return Point{}, err
	}
	if k.IsZero() {
		return Identity(), nil
	}
	t, err := mulTuple(k, p)
	if err != nil {
		return Point{}, err
	}
	return e.recover(t)
}

// Tweak computes P + t·G with one recovery call instead of a MulG followed by
// an ECAdd.
//
// With r = s = P.x and z = -t·r the identity becomes
// r⁻¹·(r·P + t·r·G) = P + t·G.
//
// When P = -t·G the sum is the point at infinity, which the primitive cannot
// return, so Tweak fails with ErrRecoveryFailure.  ECAdd(P, MulG(t)) returns
// the identity for the same inputs; callers that may hit this case and need
// the identity should check P against -t·G first or use ECAdd.
func (e *Engine) Tweak(p Point, t Scalar) (Point, error) {
	if err := requirePoint(p, "tweak"); err != nil {
		return Point{}, err
	}
	if t.IsZero() {
		return p, nil
	}
	tuple, err := tweakTuple(p, t)
	if err != nil {
		return Point{}, err
	}
	return e.recover(tuple)
}

// ECAdd computes P1 + P2 using the affine chord formula and one ModInvP.
// The identity acts as the neutral element.  Equal operands are rejected with
// ErrUnsupportedDoubling; use Double.  Opposite operands sum to the identity.
func (e *Engine) ECAdd(p1, p2 Point) (Point, error) {
	if p1.IsIdentity() {
		if p2.IsIdentity() {
			return Identity(), nil
		}
		if err := requirePoint(p2, "ecadd"); err != nil {
			return Point{}, err
		}
		return p2, nil
	}
	if p2.IsIdentity() {
		if err := requirePoint(p1, "ecadd"); err != nil {
			return Point{}, err
		}
		return p1, nil
	}
	if err := requirePoint(p1, "ecadd"); err != nil {
		return Point{}, err
	}
	if err := requirePoint(p2, "ecadd"); err != nil {
		return Point{}, err
	}
	if p1 == p2 {
		return Point{}, makeError(ErrUnsupportedDoubling,
			"ecadd: operands are equal, use Double")
	}
	if p1.X == p2.X {
		// Same x with different y means p2 = -p1.
		return Identity(), nil
	}

	inv, err := e.ModInvP(p2.X.Sub(p1.X))
	if err != nil {
		return Point{}, err
	}
	m := p2.Y.Sub(p1.Y).Mul(inv)
	x3 := m.Square().Sub(p1.X).Sub(p2.X)
	y3 := m.Mul(p1.X.Sub(x3)).Sub(p1.Y)
	return Point{X: x3, Y: y3}, nil
}

// Double computes 2·P using the tangent formula and one ModInvP.
func (e *Engine) Double(p Point) (Point, error) {
	if err := requirePoint(p, "double"); err != nil {
		return Point{}, err
	}
	if p.Y.IsZero() {
		return Identity(), nil
	}

	inv, err := e.ModInvP(p.Y.Add(p.Y))
	if err != nil {
		return Point{}, err
	}
	three := FieldElementFromUint64(3)
	m := three.Mul(p.X.Square()).Mul(inv)
	x3 := m.Square().Sub(p.X).Sub(p.X)
	y3 := m.Mul(p.X.Sub(x3)).Sub(p.Y)
	return Point{X: x3, Y: y3}, nil
}
