package secpmath

import "encoding/hex"

// hexToArray decodes a 64-character hex constant.  It panics on malformed
// input and is only used for the hard-coded values below.
func hexToArray(s string) [32]byte {
	var out [32]byte
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != len(out) {
		panic("invalid hex constant: " + s)
	}
	copy(out[:], b)
	return out
}

var (
	// P is the secp256k1 field prime, big-endian.
	P = hexToArray("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")

	// N is the order of the group generated by G, big-endian.
	N = hexToArray("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")

	// pMinus2 and nMinus2 are the Fermat inversion exponents.
	pMinus2 = hexToArray("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2d")
	nMinus2 = hexToArray("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd036413f")

	// sqrtExponent is (p+1)/4.  p ≡ 3 mod 4, so a^((p+1)/4) is a square root
	// of a whenever one exists.
	sqrtExponent = hexToArray("3fffffffffffffffffffffffffffffffffffffffffffffffffffffffbfffff0c")

	// G is the standard generator point.
	G = Point{
		X: fieldFromArray(hexToArray("79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")),
		Y: fieldFromArray(hexToArray("483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")),
	}

	// curveB is the constant of y² = x³ + 7.
	curveB = FieldElementFromUint64(7)
)

// 2^256 reduced modulo p and n, used to fold inputs wider than 32 bytes.
var (
	fieldWrap  = fieldFromArray(hexToArray("00000000000000000000000000000000000000000000000000000001000003d1"))
	scalarWrap = scalarFromArray(hexToArray("000000000000000000000000000000014551231950b75fc4402da1732fc9bebf"))
)
