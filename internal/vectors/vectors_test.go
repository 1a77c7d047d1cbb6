package vectors

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mahdiidarabi/secp256k1-ecrecover/pkg/secpmath"
)

func TestParseValue(t *testing.T) {
	tests := []struct {
		name string
		in   interface{}
		want string // hex
	}{
		{"decimal", "255", "ff"},
		{"hex prefix", "0x0102", "0102"},
		{"hex prefix odd", "0xabc", "0abc"},
		{"hex letters", "deadbeef", "deadbeef"},
		{"hex keeps leading zeros", "0x0000ff", "0000ff"},
		{"json number", json.Number("65536"), "010000"},
		{"float", float64(7), "07"},
		{"int", 258, "0102"},
		{"zero", "0", ""},
		{"long unprefixed is hex",
			"02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5",
			"02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseValue(tt.in)
			if err != nil {
				t.Fatalf("ParseValue(%v) failed: %v", tt.in, err)
			}
			if hex.EncodeToString(got) != tt.want {
				t.Errorf("ParseValue(%v) = %x, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseValueErrors(t *testing.T) {
	for _, in := range []interface{}{"-5", "0xzz", "12x", float64(-1), true} {
		if _, err := ParseValue(in); err == nil {
			t.Errorf("ParseValue(%v) expected error", in)
		}
	}
}

func TestParseJSON(t *testing.T) {
	input := `[
		{"op": "mulg", "args": ["0x02"], "expect": "02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5"},
		{"op": "MULG", "message": "hello"},
		{"op": "add", "args": ["0x00", 3], "error": "ErrInvalidPoint"}
	]`

	vecs, err := ParseJSON(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseJSON failed: %v", err)
	}
	if len(vecs) != 3 {
		t.Fatalf("expected 3 vectors, got %d", len(vecs))
	}

	if vecs[0].Op != "mulg" || len(vecs[0].Args) != 1 || !bytes.Equal(vecs[0].Args[0], []byte{2}) {
		t.Errorf("vector 1 parsed incorrectly: %+v", vecs[0])
	}
	if len(vecs[0].Expect) != 33 {
		t.Errorf("vector 1 expect has %d bytes, want 33", len(vecs[0].Expect))
	}

	k := secpmath.HashToScalar([]byte("hello")).Bytes()
	if vecs[1].Op != "mulg" || len(vecs[1].Args) != 1 || !bytes.Equal(vecs[1].Args[0], k[:]) {
		t.Errorf("message was not hashed into the first argument: %+v", vecs[1])
	}

	if vecs[2].ExpectError != "ErrInvalidPoint" || len(vecs[2].Args) != 2 {
		t.Errorf("vector 3 parsed incorrectly: %+v", vecs[2])
	}
	if vecs[2].Source != 3 {
		t.Errorf("vector 3 source = %d", vecs[2].Source)
	}
}

func TestParseJSONErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", `{`},
		{"missing op", `[{"args": ["1"]}]`},
		{"args not array", `[{"op": "mulg", "args": "1"}]`},
		{"bad arg", `[{"op": "mulg", "args": ["0xq1"]}]`},
		{"bad message", `[{"op": "mulg", "message": 5}]`},
		{"bad error", `[{"op": "mulg", "error": 5}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseJSON(strings.NewReader(tt.input)); err == nil {
				t.Errorf("expected error for %s", tt.input)
			}
		})
	}
}

func TestParseCSV(t *testing.T) {
	input := "op,a,b,expect,error\n" +
		"mulg,2,,0x02c6047f9441ed7d6d3045406e95c07cd85c778e4b8cef3ca7abac09b95c709ee5,\n" +
		"invp,0,,,ErrZeroInverse\n" +
		"tweak,0x00,5,,\n"

	vecs, err := ParseCSV(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ParseCSV failed: %v", err)
	}
	if len(vecs) != 3 {
		t.Fatalf("expected 3 vectors, got %d", len(vecs))
	}
	if len(vecs[0].Args) != 1 || len(vecs[0].Expect) != 33 {
		t.Errorf("record 1 parsed incorrectly: %+v", vecs[0])
	}
	if vecs[1].ExpectError != "ErrZeroInverse" || len(vecs[1].Args) != 1 {
		t.Errorf("record 2 parsed incorrectly: %+v", vecs[1])
	}
	if len(vecs[2].Args) != 2 || !bytes.Equal(vecs[2].Args[0], []byte{0}) {
		t.Errorf("record 3 parsed incorrectly: %+v", vecs[2])
	}
}

func TestParseCSVErrors(t *testing.T) {
	if _, err := ParseCSV(strings.NewReader("a,b\n1,2\n")); err == nil {
		t.Error("expected error for missing op column")
	}
	if _, err := ParseCSV(strings.NewReader("op,a\n,1\n")); err == nil {
		t.Error("expected error for empty op")
	}
	if _, err := ParseCSV(strings.NewReader("op,a\nmulg,0xzz\n")); err == nil {
		t.Error("expected error for bad argument")
	}
}

func TestFileParsers(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "vectors.json")
	if err := os.WriteFile(jsonPath, []byte(`[{"op":"negscalar","args":["1"]}]`), 0o600); err != nil {
		t.Fatal(err)
	}
	csvPath := filepath.Join(dir, "vectors.csv")
	if err := os.WriteFile(csvPath, []byte("op,a\nnegscalar,1\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	for _, tc := range []struct {
		parser Parser
		path   string
	}{
		{&JSONParser{}, jsonPath},
		{&CSVParser{}, csvPath},
	} {
		vecs, err := tc.parser.ParseVectors(tc.path)
		if err != nil {
			t.Fatalf("%T: %v", tc.parser, err)
		}
		if len(vecs) != 1 || vecs[0].Op != "negscalar" {
			t.Errorf("%T: unexpected vectors %+v", tc.parser, vecs)
		}
	}

	if _, err := (&JSONParser{}).ParseVectors(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
