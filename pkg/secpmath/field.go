package secpmath

import (
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// FieldElement is an integer modulo the secp256k1 field prime p.  The
// underlying secp256k1.FieldVal is kept normalized, so every value is the
// canonical representative in [0, p) and == compares values.  The zero value
// is zero.
type FieldElement struct {
	v secp256k1.FieldVal
}

// fieldFromArray sets a field element from 32 big-endian bytes, reducing
// values at or above p.
func fieldFromArray(b [32]byte) FieldElement {
	var f FieldElement
	f.v.SetBytes(&b)
	f.v.Normalize()
	return f
}

// NewFieldElement interprets b as a big-endian unsigned integer of any length
// and reduces it modulo p.
func NewFieldElement(b []byte) FieldElement {
	var acc FieldElement
	for len(b) > 0 {
		n := len(b) % 32
		if n == 0 {
			n = 32
		}
		var chunk [32]byte
		copy(chunk[32-n:], b[:n])
		c := fieldFromArray(chunk)
		acc.v.Mul(&fieldWrap.v).Add(&c.v).Normalize()
		b = b[n:]
	}
	return acc
}

// FieldElementFromUint64 returns v as a field element.
func FieldElementFromUint64(v uint64) FieldElement {
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[31-i] = byte(v >> (8 * i))
	}
	return fieldFromArray(b)
}

// ParseFieldElement parses a strict 32-byte big-endian encoding.  Values that
// are not already reduced modulo p are rejected.
func ParseFieldElement(b []byte) (FieldElement, error) {
	if len(b) != 32 {
		return FieldElement{}, makeError(ErrInvalidEncoding,
			"field element must be 32 bytes")
	}
	var f FieldElement
	if overflow := f.v.SetByteSlice(b); overflow {
		return FieldElement{}, makeError(ErrInvalidEncoding,
			"field element is not less than the field prime")
	}
	return f, nil
}

// Bytes returns the 32-byte big-endian encoding.
func (f FieldElement) Bytes() [32]byte {
	return *f.v.Bytes()
}

// String returns the element as lowercase hex.
func (f FieldElement) String() string {
	b := f.Bytes()
	return hex.EncodeToString(b[:])
}

// Add returns f + g mod p.
func (f FieldElement) Add(g FieldElement) FieldElement {
	var r FieldElement
	r.v.Add2(&f.v, &g.v).Normalize()
	return r
}

// Sub returns f - g mod p.
func (f FieldElement) Sub(g FieldElement) FieldElement {
	var r FieldElement
	r.v.NegateVal(&g.v, 1).Add(&f.v).Normalize()
	return r
}

// Mul returns f * g mod p.
func (f FieldElement) Mul(g FieldElement) FieldElement {
	var r FieldElement
	r.v.Mul2(&f.v, &g.v).Normalize()
	return r
}

// Square returns f² mod p.
func (f FieldElement) Square() FieldElement {
	var r FieldElement
	r.v.SquareVal(&f.v).Normalize()
	return r
}

// Negate returns p - f mod p.  Zero negates to zero.
func (f FieldElement) Negate() FieldElement {
	var r FieldElement
	r.v.NegateVal(&f.v, 1).Normalize()
	return r
}

// IsZero reports whether f is zero.
func (f FieldElement) IsZero() bool {
	return f.v.IsZero()
}

// IsOdd reports whether the canonical representative of f is odd.
func (f FieldElement) IsOdd() bool {
	return f.v.IsOdd()
}

// Equal reports whether f and g are the same element.
func (f FieldElement) Equal(g FieldElement) bool {
	return f.v.Equals(&g.v)
}

// curveRHS returns x³ + 7 mod p.
func curveRHS(x FieldElement) FieldElement {
	return x.Square().Mul(x).Add(curveB)
}
