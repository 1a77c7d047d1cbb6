package secpmath

import (
	"errors"
	"fmt"
)

// Decompress lifts a compressed point back onto the curve with one ModExp
// call: y = (x³+7)^((p+1)/4), negated when its parity does not match the
// prefix.  An x-coordinate whose x³+7 is a non-residue fails with
// ErrNotOnCurve.
func (e *Engine) Decompress(c CompressedPoint) (Point, error) {
	if _, err := ParseCompressedPoint(c[:]); err != nil {
		return Point{}, err
	}
	x := c.X()
	y, err := e.SqrtP(curveRHS(x))
	if err != nil {
		if errors.Is(err, ErrNotOnCurve) {
			return Point{}, makeError(ErrNotOnCurve, fmt.Sprintf(
				"x-coordinate %s is not on the curve", x))
		}
		return Point{}, err
	}
	if y.IsOdd() != c.IsOdd() {
		y = y.Negate()
	}
	return Point{X: x, Y: y}, nil
}

// DecompressViaRecovery lifts a compressed point with one recovery call
// instead of ModExp.  The tuple (z = 0, r = s = x) makes the primitive return
// R itself.  An x that does not lift fails with ErrRecoveryFailure.
func (e *Engine) DecompressViaRecovery(c CompressedPoint) (Point, error) {
	if _, err := ParseCompressedPoint(c[:]); err != nil {
		return Point{}, err
	}
	t, err := liftTuple(c.X(), c.IsOdd())
	if err != nil {
		return Point{}, err
	}
	return e.recover(t)
}

// ParsePoint decodes a 33-byte compressed or 65-byte uncompressed SEC1
// encoding.
func (e *Engine) ParsePoint(b []byte) (Point, error) {
	switch len(b) {
	case CompressedSize:
		c, err := ParseCompressedPoint(b)
		if err != nil {
			return Point{}, err
		}
		return e.Decompress(c)
	case UncompressedSize:
		return PointFromUncompressed(b)
	default:
		return Point{}, makeError(ErrInvalidEncoding, fmt.Sprintf(
			"point must be %d or %d bytes, got %d", CompressedSize,
			UncompressedSize, len(b)))
	}
}
