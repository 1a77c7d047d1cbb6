package secpmath

import (
	"encoding/hex"
	"math/big"
	"testing"

	"github.com/mahdiidarabi/secp256k1-ecrecover/pkg/host"
)

// newTestEngine returns an engine over the software primitives along with the
// meter wrapping them.
func newTestEngine() (*Engine, *host.Metered) {
	m := host.NewMetered(host.NewReference())
	return NewEngine(m), m
}

// hexToBytes converts the passed hex string into bytes and will panic if there
// is an error.  This is only provided for the hard-coded constants so errors in
// the source code can be detected.  It will only (and must only) be called with
// hard-coded values.
func hexToBytes(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic("invalid hex in source file: " + s)
	}
	return b
}

func hexToField(s string) FieldElement {
	return NewFieldElement(hexToBytes(s))
}

func hexToScalar(s string) Scalar {
	return NewScalar(hexToBytes(s))
}

// fieldToBig and scalarToBig convert to big.Int for the oracle comparisons.
func fieldToBig(f FieldElement) *big.Int {
	b := f.Bytes()
	return new(big.Int).SetBytes(b[:])
}

func scalarToBig(k Scalar) *big.Int {
	b := k.Bytes()
	return new(big.Int).SetBytes(b[:])
}

// fieldFromBig reduces a non-negative big.Int modulo p.
func fieldFromBig(v *big.Int) FieldElement {
	return NewFieldElement(v.Bytes())
}

func hexToPoint(x, y string) Point {
	return Point{X: hexToField(x), Y: hexToField(y)}
}

// Known multiples of G and other fixtures.
var (
	twoG = hexToPoint(
		"c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
		"1ae168fea63dc339a3c58419466ceaeef7f632653266d0e1236431a950cfe52a")
	threeG = hexToPoint(
		"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9",
		"388f7b0f632de8140fe337e62a37f3566500a99934c2231b6cb9fd7584b8e672")
	sevenG = hexToPoint(
		"5cbdf0646e5db4eaa398f365f2ea7a0e3d419b7e0330e39ce92bddedcac4f9bc",
		"6aebca40ba255960a3178d6d861a54dba813d0b813fde7b5a5082628087264da")

	// overflowPoint has x = n + 2, so its recovery id carries the overflow
	// bit.
	overflowPoint = hexToPoint(
		"fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364143",
		"c94e559d14883e68cfda34341568bf1127153254788dd974c6af9bb9cd962a5c")
)

func assertKind(t *testing.T, err error, kind ErrorKind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %v, got nil", kind)
	}
	if !isKind(err, kind) {
		t.Fatalf("expected %v, got %v", kind, err)
	}
}
