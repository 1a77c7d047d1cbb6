package host

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"
)

// MaxModExpLen is the largest operand, in bytes, accepted by ModExp.
const MaxModExpLen = 512

// compactSigMagicOffset is the value added to the recovery id in the first
// byte of a compact signature.
const compactSigMagicOffset = 27

var (
	// ErrMalformedInput is returned when ModExp operands are empty, too
	// long, or the modulus is zero.
	ErrMalformedInput = errors.New("malformed primitive input")

	// ErrInvalidRecoveryID is returned when the recovery id is not in [0, 3].
	ErrInvalidRecoveryID = errors.New("invalid recovery id")

	// ErrRecoveryFailed is returned when no public key can be recovered from
	// the given hash and signature.
	ErrRecoveryFailed = errors.New("public key recovery failed")
)

// Reference is a stateless software implementation of the host primitives.
// It is safe for concurrent use.
type Reference struct{}

// NewReference returns a software primitive backend.
func NewReference() *Reference {
	return &Reference{}
}

// ModExp returns base^exponent mod modulus, left-padded to len(modulus).
func (r *Reference) ModExp(base, exponent, modulus []byte) ([]byte, error) {
	if len(modulus) == 0 || len(modulus) > MaxModExpLen ||
		len(base) > MaxModExpLen || len(exponent) > MaxModExpLen {
		return nil, fmt.Errorf("%w: operand lengths base=%d exponent=%d modulus=%d",
			ErrMalformedInput, len(base), len(exponent), len(modulus))
	}
	m := new(big.Int).SetBytes(modulus)
	if m.Sign() == 0 {
		return nil, fmt.Errorf("%w: zero modulus", ErrMalformedInput)
	}
	b := new(big.Int).SetBytes(base)
	e := new(big.Int).SetBytes(exponent)
	v := new(big.Int).Exp(b, e, m)

	out := make([]byte, len(modulus))
	v.FillBytes(out)
	return out, nil
}

// Recover returns the uncompressed X || Y of the public key recovered from
// hash and the r || s signature.  Bit 0 of recoveryID is the parity of R.y and
// bit 1 marks an r that overflowed the group order.
func (r *Reference) Recover(hash [32]byte, recoveryID byte, signature [64]byte) ([64]byte, error) {
	if recoveryID > 3 {
		return [64]byte{}, fmt.Errorf("%w: %d", ErrInvalidRecoveryID, recoveryID)
	}

	var compact [65]byte
	compact[0] = compactSigMagicOffset + recoveryID
	copy(compact[1:], signature[:])

	pubKey, _, err := ecdsa.RecoverCompact(compact[:], hash[:])
	if err != nil {
		return [64]byte{}, fmt.Errorf("%w: %w", ErrRecoveryFailed, err)
	}

	var out [64]byte
	copy(out[:], pubKey.SerializeUncompressed()[1:])
	return out, nil
}
