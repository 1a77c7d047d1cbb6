package secpmath

import (
	"crypto/sha256"
	"encoding/hex"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Scalar is an integer modulo the curve order n.  It wraps a
// secp256k1.ModNScalar, which is always fully reduced, so == compares values.
// The zero value is zero.
type Scalar struct {
	v secp256k1.ModNScalar
}

// scalarFromArray sets a scalar from 32 big-endian bytes, reducing values at
// or above n.
func scalarFromArray(b [32]byte) Scalar {
	var k Scalar
	k.v.SetBytes(&b)
	return k
}

// NewScalar interprets b as a big-endian unsigned integer of any length and
// reduces it modulo n.
func NewScalar(b []byte) Scalar {
	var acc Scalar
	for len(b) > 0 {
		n := len(b) % 32
		if n == 0 {
			n = 32
		}
		var chunk [32]byte
		copy(chunk[32-n:], b[:n])
		c := scalarFromArray(chunk)
		acc.v.Mul(&scalarWrap.v).Add(&c.v)
		b = b[n:]
	}
	return acc
}

// ScalarFromUint64 returns v as a scalar.
func ScalarFromUint64(v uint64) Scalar {
	var b [32]byte
	for i := 0; i < 8; i++ {
		b[31-i] = byte(v >> (8 * i))
	}
	return scalarFromArray(b)
}

// ParseScalar parses a strict 32-byte big-endian encoding.  Values that are not
// already reduced modulo n are rejected.
func ParseScalar(b []byte) (Scalar, error) {
	if len(b) != 32 {
		return Scalar{}, makeError(ErrInvalidEncoding, "scalar must be 32 bytes")
	}
	var k Scalar
	if overflow := k.v.SetByteSlice(b); overflow {
		return Scalar{}, makeError(ErrInvalidEncoding,
			"scalar is not less than the curve order")
	}
	return k, nil
}

// HashToScalar hashes a message using SHA-256 and reduces the digest mod n.
func HashToScalar(message []byte) Scalar {
	return scalarFromArray(sha256.Sum256(message))
}

// Bytes returns the 32-byte big-endian encoding.
func (k Scalar) Bytes() [32]byte {
	return k.v.Bytes()
}

// String returns the scalar as lowercase hex.
func (k Scalar) String() string {
	b := k.Bytes()
	return hex.EncodeToString(b[:])
}

// Add returns k + m mod n.
func (k Scalar) Add(m Scalar) Scalar {
	var r Scalar
	r.v.Add2(&k.v, &m.v)
	return r
}

// Sub returns k - m mod n.
func (k Scalar) Sub(m Scalar) Scalar {
	var r Scalar
	r.v.NegateVal(&m.v).Add(&k.v)
	return r
}

// Mul returns k * m mod n.
func (k Scalar) Mul(m Scalar) Scalar {
	var r Scalar
	r.v.Mul2(&k.v, &m.v)
	return r
}

// Negate returns n - k mod n.  Zero negates to zero, never to n.
func (k Scalar) Negate() Scalar {
	var r Scalar
	r.v.NegateVal(&k.v)
	return r
}

// IsZero reports whether k is zero.
func (k Scalar) IsZero() bool {
	return k.v.IsZero()
}

// Equal reports whether k and m are the same scalar.
func (k Scalar) Equal(m Scalar) bool {
	return k.v.Equals(&m.v)
}

// IsOverHalfOrder reports whether k > n/2, the high-S condition of BIP-62.
func (k Scalar) IsOverHalfOrder() bool {
	return k.v.IsOverHalfOrder()
}

// NegateScalar returns -k mod n.
func NegateScalar(k Scalar) Scalar {
	return k.Negate()
}
