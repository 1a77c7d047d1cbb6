package secpmath

// ErrorKind identifies a kind of error.  It has full support for errors.Is and
// errors.As, so the caller can directly check against an error kind when
// determining the reason for an error.
type ErrorKind string

// These constants are used to identify a specific Error.
const (
	// ErrInvalidPoint is returned when an operation requires a non-identity
	// point on the curve and receives the identity or an off-curve pair.
	ErrInvalidPoint = ErrorKind("ErrInvalidPoint")

	// ErrNotOnCurve is returned when an x-coordinate has no matching
	// y-coordinate, that is when x³+7 is not a quadratic residue mod p.
	ErrNotOnCurve = ErrorKind("ErrNotOnCurve")

	// ErrZeroInverse is returned when attempting to invert zero.
	ErrZeroInverse = ErrorKind("ErrZeroInverse")

	// ErrUnsupportedDoubling is returned when ECAdd is called with equal
	// operands.  Use Engine.Double instead.
	ErrUnsupportedDoubling = ErrorKind("ErrUnsupportedDoubling")

	// ErrRecoveryFailure is returned when the recovery primitive rejects the
	// synthetic tuple or yields a point that is not on the curve.
	ErrRecoveryFailure = ErrorKind("ErrRecoveryFailure")

	// ErrModExpFailure is returned when the modular exponentiation primitive
	// fails or returns a value that is not reduced modulo the modulus.
	ErrModExpFailure = ErrorKind("ErrModExpFailure")

	// ErrInvalidEncoding is returned when a serialized scalar, field element
	// or point has the wrong length, prefix, or is not canonical.
	ErrInvalidEncoding = ErrorKind("ErrInvalidEncoding")

	// ErrInvalidScalar is returned when a scalar is zero where a non-zero
	// scalar is required, such as a private key.
	ErrInvalidScalar = ErrorKind("ErrInvalidScalar")
)

// Error satisfies the error interface and prints human-readable errors.
func (e ErrorKind) Error() string {
	return string(e)
}

// Error identifies an error related to secp256k1 arithmetic.  It has full
// support for errors.Is and errors.As, so the caller can ascertain the
// specific reason for the error by checking the underlying error.
type Error struct {
	Err         error
	Description string
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// Unwrap returns the underlying wrapped error.
func (e Error) Unwrap() error {
	return e.Err
}

// makeError creates an Error given a set of arguments.
func makeError(kind ErrorKind, desc string) Error {
	return Error{Err: kind, Description: desc}
}

// hostError wraps a failure reported by the host primitive so both the kind
// and the host's own error remain reachable through errors.Is.
type hostError struct {
	kind ErrorKind
	desc string
	err  error
}

func (e hostError) Error() string {
	return e.desc + ": " + e.err.Error()
}

func (e hostError) Unwrap() []error {
	return []error{e.kind, e.err}
}
