package secpmath

import "testing"

func TestNonceFromX(t *testing.T) {
	tests := []struct {
		name  string
		x     FieldElement
		odd   bool
		wantR Scalar
		wantV byte
	}{
		{"below order even", threeG.X, false, hexToScalar(
			"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"), 0},
		{"below order odd", threeG.X, true, hexToScalar(
			"f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"), 1},
		{"overflow even", overflowPoint.X, false, ScalarFromUint64(2), 2},
		{"overflow odd", overflowPoint.X, true, ScalarFromUint64(2), 3},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			r, v, err := nonceFromX(test.x, test.odd)
			if err != nil {
				t.Fatalf("nonceFromX failed: %v", err)
			}
			if r != test.wantR || v != test.wantV {
				t.Errorf("nonceFromX = (%s, %d), want (%s, %d)", r, v,
					test.wantR, test.wantV)
			}
		})
	}

	// x = n would need r = 0, which the primitive rejects.
	_, _, err := nonceFromX(NewFieldElement(N[:]), false)
	assertKind(t, err, ErrRecoveryFailure)
}

func TestMulTuple(t *testing.T) {
	tuple, err := mulTuple(ScalarFromUint64(5), threeG)
	if err != nil {
		t.Fatalf("mulTuple failed: %v", err)
	}
	want := RecoveryTuple{
		R: hexToScalar("f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9"),
		S: hexToScalar("ddf2b207dbbbcf516e058d9ddb129ad59f3d75c0d40b7f839ec03b2f6f880dd9"),
		V: 0,
	}
	if tuple != want {
		t.Errorf("mulTuple = %+v, want %+v", tuple, want)
	}

	tuple, err = mulTuple(ScalarFromUint64(5), overflowPoint)
	if err != nil {
		t.Fatalf("mulTuple failed: %v", err)
	}
	want = RecoveryTuple{R: ScalarFromUint64(2), S: ScalarFromUint64(10), V: 2}
	if tuple != want {
		t.Errorf("overflow mulTuple = %+v, want %+v", tuple, want)
	}
}

func TestTweakTuple(t *testing.T) {
	tuple, err := tweakTuple(threeG, ScalarFromUint64(0x1234567890abcdef))
	if err != nil {
		t.Fatalf("tweakTuple failed: %v", err)
	}
	r := hexToScalar("f9308a019258c31049344f85f89d5229b531c845836f99b08601f113bce036f9")
	want := RecoveryTuple{
		Z: hexToScalar("3c35c2e25ff1ae7331126bb3efcd68eabbd5313e9f3b301b297d1248000b3270"),
		R: r,
		S: r,
		V: 0,
	}
	if tuple != want {
		t.Errorf("tweakTuple = %+v, want %+v", tuple, want)
	}

	// z·G must contribute -t·r·G, so z + t·r ≡ 0.
	if sum := tuple.Z.Add(ScalarFromUint64(0x1234567890abcdef).Mul(r)); !sum.IsZero() {
		t.Errorf("z + t·r = %s, want 0", sum)
	}
}

func TestLiftTuple(t *testing.T) {
	tuple, err := liftTuple(twoG.X, twoG.IsOdd())
	if err != nil {
		t.Fatalf("liftTuple failed: %v", err)
	}
	x := twoG.X.Bytes()
	r := NewScalar(x[:])
	want := RecoveryTuple{R: r, S: r}
	if tuple != want {
		t.Errorf("liftTuple = %+v, want %+v", tuple, want)
	}
}

func TestRecoveryTupleSignature(t *testing.T) {
	tuple := RecoveryTuple{R: ScalarFromUint64(1), S: ScalarFromUint64(2)}
	sig := tuple.Signature()
	if sig[31] != 1 || sig[63] != 2 {
		t.Errorf("unexpected signature layout %x", sig)
	}
}
