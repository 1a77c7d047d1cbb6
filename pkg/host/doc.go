// Package host provides software implementations of the two primitives the
// secpmath engine is built on: modular exponentiation and ECDSA public key
// recovery.
//
// Reference computes both primitives in pure Go.  Recovery is delegated to
// the compact signature recovery of github.com/decred/dcrd/dcrec/secp256k1/v4,
// which follows the same (r, s, recovery id) conventions as the libsecp256k1
// recovery exposed by blockchain runtimes.
//
// Metered wraps any implementation and counts invocations and compute units,
// optionally enforcing a budget:
//
//	h := host.NewMetered(host.NewReference()).WithBudget(100_000)
//	engine := secpmath.NewEngine(h)
//	p, err := engine.MulG(k)
//	fmt.Println(h.Usage())
package host
