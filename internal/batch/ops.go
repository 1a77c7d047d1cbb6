package batch

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/mahdiidarabi/secp256k1-ecrecover/pkg/secpmath"
)

// Output is the result of a single operation: either a point or a raw
// big-endian value.
type Output struct {
	Point   secpmath.Point
	IsPoint bool
	Value   []byte
}

// identityEncoding is the SEC1 encoding of the point at infinity.
var identityEncoding = []byte{0x00}

// Encode returns the output bytes.  Points are compressed unless uncompressed
// is set; the identity encodes as a single zero byte.
func (o Output) Encode(uncompressed bool) []byte {
	if !o.IsPoint {
		return o.Value
	}
	if o.Point.IsIdentity() {
		return identityEncoding
	}
	if uncompressed {
		b := o.Point.SerializeUncompressed()
		return b[:]
	}
	c, _ := secpmath.Compress(o.Point)
	return c[:]
}

// Matches reports whether expect equals the output.  Points compare against
// the encoding whose length matches expect; values compare numerically so
// decimal expectations without leading zeros still match.
func (o Output) Matches(expect []byte) bool {
	if o.IsPoint {
		return bytes.Equal(o.Encode(len(expect) == secpmath.UncompressedSize), expect)
	}
	return bytes.Equal(bytes.TrimLeft(o.Value, "\x00"), bytes.TrimLeft(expect, "\x00"))
}

// opFunc evaluates an operation against already parsed argument bytes.
type opFunc func(e *secpmath.Engine, args [][]byte) (Output, error)

type opDef struct {
	arity int
	usage string
	fn    opFunc
}

var ops = map[string]opDef{
	"mulg": {1, "mulg <k>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		k, err := scalarArg(a[0])
		if err != nil {
			return Output{}, err
		}
		return pointOutput(e.MulG(k))
	}},
	"pubkey": {1, "pubkey <priv>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		k, err := scalarArg(a[0])
		if err != nil {
			return Output{}, err
		}
		return pointOutput(e.PublicKey(k))
	}},
	"ecmul": {2, "ecmul <k> <point>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		k, err := scalarArg(a[0])
		if err != nil {
			return Output{}, err
		}
		p, err := pointArg(e, a[1])
		if err != nil {
			return Output{}, err
		}
		return pointOutput(e.ECMul(k, p))
	}},
	"tweak": {2, "tweak <point> <t>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		p, err := pointArg(e, a[0])
		if err != nil {
			return Output{}, err
		}
		t, err := scalarArg(a[1])
		if err != nil {
			return Output{}, err
		}
		return pointOutput(e.Tweak(p, t))
	}},
	"add": {2, "add <point> <point>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		p1, err := pointArg(e, a[0])
		if err != nil {
			return Output{}, err
		}
		p2, err := pointArg(e, a[1])
		if err != nil {
			return Output{}, err
		}
		return pointOutput(e.ECAdd(p1, p2))
	}},
	"double": {1, "double <point>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		p, err := pointArg(e, a[0])
		if err != nil {
			return Output{}, err
		}
		return pointOutput(e.Double(p))
	}},
	"compress": {1, "compress <point>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		p, err := pointArg(e, a[0])
		if err != nil {
			return Output{}, err
		}
		c, err := secpmath.Compress(p)
		if err != nil {
			return Output{}, err
		}
		return Output{Value: c[:]}, nil
	}},
	"decompress": {1, "decompress <compressed>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		c, err := secpmath.ParseCompressedPoint(a[0])
		if err != nil {
			return Output{}, err
		}
		return pointOutput(e.Decompress(c))
	}},
	"lift": {1, "lift <compressed>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		c, err := secpmath.ParseCompressedPoint(a[0])
		if err != nil {
			return Output{}, err
		}
		return pointOutput(e.DecompressViaRecovery(c))
	}},
	"negscalar": {1, "negscalar <k>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		k, err := scalarArg(a[0])
		if err != nil {
			return Output{}, err
		}
		return scalarOutput(secpmath.NegateScalar(k), nil)
	}},
	"negpoint": {1, "negpoint <point>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		p, err := pointArg(e, a[0])
		if err != nil {
			return Output{}, err
		}
		return Output{Point: secpmath.NegatePoint(p), IsPoint: true}, nil
	}},
	"invp": {1, "invp <a>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		f, err := fieldArg(a[0])
		if err != nil {
			return Output{}, err
		}
		return fieldOutput(e.ModInvP(f))
	}},
	"invn": {1, "invn <a>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		k, err := scalarArg(a[0])
		if err != nil {
			return Output{}, err
		}
		return scalarOutput(e.ModInvN(k))
	}},
	"sqrtp": {1, "sqrtp <a>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		f, err := fieldArg(a[0])
		if err != nil {
			return Output{}, err
		}
		return fieldOutput(e.SqrtP(f))
	}},
	"ecdh": {2, "ecdh <priv> <point>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		k, err := scalarArg(a[0])
		if err != nil {
			return Output{}, err
		}
		p, err := pointArg(e, a[1])
		if err != nil {
			return Output{}, err
		}
		x, err := e.SharedSecret(k, p)
		if err != nil {
			return Output{}, err
		}
		return Output{Value: x[:]}, nil
	}},
	"commit": {3, "commit <value> <blinding> <h>", func(e *secpmath.Engine, a [][]byte) (Output, error) {
		v, err := scalarArg(a[0])
		if err != nil {
			return Output{}, err
		}
		r, err := scalarArg(a[1])
		if err != nil {
			return Output{}, err
		}
		h, err := pointArg(e, a[2])
		if err != nil {
			return Output{}, err
		}
		return pointOutput(e.Commit(v, r, h))
	}},
}

// Ops returns the usage line of every supported operation, sorted by name.
func Ops() []string {
	names := make([]string, 0, len(ops))
	for name := range ops {
		names = append(names, name)
	}
	sort.Strings(names)

	usage := make([]string, len(names))
	for i, name := range names {
		usage[i] = ops[name].usage
	}
	return usage
}

// Evaluate runs a single named operation against the engine.
func Evaluate(e *secpmath.Engine, op string, args [][]byte) (Output, error) {
	def, ok := ops[op]
	if !ok {
		return Output{}, fmt.Errorf("unknown operation %q", op)
	}
	if len(args) != def.arity {
		return Output{}, fmt.Errorf("%s: expected %d argument(s), got %d (usage: %s)",
			op, def.arity, len(args), def.usage)
	}
	return def.fn(e, args)
}

func scalarArg(b []byte) (secpmath.Scalar, error) {
	if len(b) > 32 {
		return secpmath.Scalar{}, fmt.Errorf("scalar wider than 32 bytes: %d", len(b))
	}
	return secpmath.NewScalar(b), nil
}

func fieldArg(b []byte) (secpmath.FieldElement, error) {
	if len(b) > 32 {
		return secpmath.FieldElement{}, fmt.Errorf("field element wider than 32 bytes: %d", len(b))
	}
	return secpmath.NewFieldElement(b), nil
}

// pointArg decodes a SEC1 point; a single zero byte is the identity.
func pointArg(e *secpmath.Engine, b []byte) (secpmath.Point, error) {
	if bytes.Equal(b, identityEncoding) {
		return secpmath.Identity(), nil
	}
	return e.ParsePoint(b)
}

func pointOutput(p secpmath.Point, err error) (Output, error) {
	if err != nil {
		return Output{}, err
	}
	return Output{Point: p, IsPoint: true}, nil
}

func scalarOutput(k secpmath.Scalar, err error) (Output, error) {
	if err != nil {
		return Output{}, err
	}
	b := k.Bytes()
	return Output{Value: b[:]}, nil
}

func fieldOutput(f secpmath.FieldElement, err error) (Output, error) {
	if err != nil {
		return Output{}, err
	}
	b := f.Bytes()
	return Output{Value: b[:]}, nil
}
