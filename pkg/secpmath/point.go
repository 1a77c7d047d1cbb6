package secpmath

import (
	"encoding/hex"
	"fmt"
)

// SEC1 encoding prefixes.
const (
	PubKeyFormatCompressedEven byte = 0x02
	PubKeyFormatCompressedOdd  byte = 0x03
	PubKeyFormatUncompressed   byte = 0x04
)

// Encoded point sizes.
const (
	CompressedSize   = 33
	UncompressedSize = 65
)

// Point is an affine secp256k1 point.  The zero value is the identity (point
// at infinity); (0, 0) never satisfies the curve equation so there is no
// ambiguity.  Points are comparable with ==.
type Point struct {
	X FieldElement
	Y FieldElement
}

// Identity returns the point at infinity.
func Identity() Point {
	return Point{}
}

// IsIdentity reports whether p is the point at infinity.
func (p Point) IsIdentity() bool {
	return p == Point{}
}

// IsOnCurve reports whether p is a non-identity point satisfying
// y² = x³ + 7 mod p.
func (p Point) IsOnCurve() bool {
	if p.IsIdentity() {
		return false
	}
	return p.Y.Square() == curveRHS(p.X)
}

// IsOdd reports whether the y-coordinate is odd.
func (p Point) IsOdd() bool {
	return p.Y.IsOdd()
}

// Negate returns (x, p - y).  The identity negates to itself.
func (p Point) Negate() Point {
	if p.IsIdentity() {
		return p
	}
	return Point{X: p.X, Y: p.Y.Negate()}
}

// NegatePoint returns -p.
func NegatePoint(p Point) Point {
	return p.Negate()
}

// SerializeUncompressed returns the 65-byte SEC1 encoding 0x04 || X || Y.
// The identity encodes as all zeros after the prefix; callers that need a
// strict encoding should check IsIdentity first.
func (p Point) SerializeUncompressed() [UncompressedSize]byte {
	var out [UncompressedSize]byte
	out[0] = PubKeyFormatUncompressed
	x, y := p.X.Bytes(), p.Y.Bytes()
	copy(out[1:33], x[:])
	copy(out[33:], y[:])
	return out
}

// String returns the uncompressed encoding as hex, or "identity".
func (p Point) String() string {
	if p.IsIdentity() {
		return "identity"
	}
	b := p.SerializeUncompressed()
	return hex.EncodeToString(b[:])
}

// PointFromUncompressed parses a 65-byte SEC1 uncompressed encoding, or the
// raw 64-byte X || Y form returned by the recovery primitive, and checks the
// curve equation.
func PointFromUncompressed(b []byte) (Point, error) {
	switch len(b) {
	case UncompressedSize:
		if b[0] != PubKeyFormatUncompressed {
			return Point{}, makeError(ErrInvalidEncoding, fmt.Sprintf(
				"invalid uncompressed point prefix 0x%02x", b[0]))
		}
		b = b[1:]
	case 64:
	default:
		return Point{}, makeError(ErrInvalidEncoding, fmt.Sprintf(
			"uncompressed point must be 64 or 65 bytes, got %d", len(b)))
	}
	x, err := ParseFieldElement(b[:32])
	if err != nil {
		return Point{}, err
	}
	y, err := ParseFieldElement(b[32:])
	if err != nil {
		return Point{}, err
	}
	p := Point{X: x, Y: y}
	if !p.IsOnCurve() {
		return Point{}, makeError(ErrInvalidPoint, "point is not on the curve")
	}
	return p, nil
}

// CompressedPoint is the 33-byte SEC1 compressed form: a parity prefix
// followed by the x-coordinate.
type CompressedPoint [CompressedSize]byte

// Compress projects p onto its compressed form.  The identity has no
// compressed encoding.
func Compress(p Point) (CompressedPoint, error) {
	if p.IsIdentity() {
		return CompressedPoint{}, makeError(ErrInvalidPoint,
			"cannot compress the identity point")
	}
	var c CompressedPoint
	c[0] = PubKeyFormatCompressedEven
	if p.IsOdd() {
		c[0] = PubKeyFormatCompressedOdd
	}
	x := p.X.Bytes()
	copy(c[1:], x[:])
	return c, nil
}

// ParseCompressedPoint checks the length, prefix, and x range of a compressed
// encoding.  It does not check that x lifts to the curve; Engine.Decompress
// does.
func ParseCompressedPoint(b []byte) (CompressedPoint, error) {
	if len(b) != CompressedSize {
		return CompressedPoint{}, makeError(ErrInvalidEncoding, fmt.Sprintf(
			"compressed point must be %d bytes, got %d", CompressedSize, len(b)))
	}
	if b[0] != PubKeyFormatCompressedEven && b[0] != PubKeyFormatCompressedOdd {
		return CompressedPoint{}, makeError(ErrInvalidEncoding, fmt.Sprintf(
			"invalid compressed point prefix 0x%02x", b[0]))
	}
	if _, err := ParseFieldElement(b[1:]); err != nil {
		return CompressedPoint{}, err
	}
	var c CompressedPoint
	copy(c[:], b)
	return c, nil
}

// X returns the x-coordinate.
func (c CompressedPoint) X() FieldElement {
	var x [32]byte
	copy(x[:], c[1:])
	return fieldFromArray(x)
}

// IsOdd reports whether the encoded y-coordinate is odd.
func (c CompressedPoint) IsOdd() bool {
	return c[0] == PubKeyFormatCompressedOdd
}

// Negate flips the parity prefix, which is the compressed form of -P.
func (c CompressedPoint) Negate() CompressedPoint {
	if c.IsOdd() {
		c[0] = PubKeyFormatCompressedEven
	} else {
		c[0] = PubKeyFormatCompressedOdd
	}
	return c
}

// String returns the encoding as hex.
func (c CompressedPoint) String() string {
	return hex.EncodeToString(c[:])
}
