// Package secpmath implements secp256k1 point and scalar arithmetic as
// algebraic identities over two cheap host primitives: modular exponentiation
// and ECDSA public key recovery.
//
// Runtimes that meter computation usually price a native scalar
// multiplication loop far above a single ecrecover or big_mod_exp call.  This
// package chooses synthetic recovery tuples (z, r, s, v) so that the
// recovery equation
//
//	Q = r⁻¹·(s·R − z·G)
//
// collapses to the operation that is actually wanted:
//
//	MulG(k)      z = 0,      r = G.x, s = k·r     →  k·G
//	ECMul(k, P)  z = 0,      r = P.x, s = k·r     →  k·P
//	Tweak(P, t)  z = −t·r,   r = P.x, s = r       →  P + t·G
//	DecompressViaRecovery
//	             z = 0,      r = x,   s = r       →  R
//
// Inverses use Fermat's little theorem (a^(m−2) mod m) and square roots use
// a^((p+1)/4) mod p, each a single ModExp call.
//
// # Quick Start
//
//	import (
//	    "github.com/mahdiidarabi/secp256k1-ecrecover/pkg/host"
//	    "github.com/mahdiidarabi/secp256k1-ecrecover/pkg/secpmath"
//	)
//
//	engine := secpmath.NewEngine(host.NewReference())
//
//	pub, err := engine.MulG(secpmath.HashToScalar([]byte("seed")))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	compressed, _ := secpmath.Compress(pub)
//	fmt.Println(compressed)
//
// # Custom Hosts
//
// Implement the Host interface to route the primitives to a runtime:
//
//	type runtimeHost struct{}
//
//	func (runtimeHost) ModExp(base, exponent, modulus []byte) ([]byte, error) {
//	    // call the runtime's big_mod_exp
//	}
//
//	func (runtimeHost) Recover(hash [32]byte, id byte, sig [64]byte) ([64]byte, error) {
//	    // call the runtime's secp256k1_recover
//	}
//
// # Doubling
//
// The recovery identity has no second independent point to express P + P, so
// ECAdd rejects equal operands with ErrUnsupportedDoubling.  Double computes
// the tangent formula natively with one ModInvP.
package secpmath
