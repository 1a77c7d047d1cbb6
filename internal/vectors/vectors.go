// Package vectors parses operation test vectors for the secpmath engine from
// JSON and CSV files.
package vectors

import (
	"encoding/csv"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"math/big"
	"os"
	"strings"

	"github.com/mahdiidarabi/secp256k1-ecrecover/pkg/secpmath"
)

// Vector is a single operation with its arguments and optional expectation.
type Vector struct {
	Op          string   // Operation name, e.g. "mulg" or "tweak"
	Args        [][]byte // Raw argument bytes (scalars, field elements, or SEC1 points)
	Expect      []byte   // Expected encoded result (empty = no check)
	ExpectError string   // Expected error kind name, e.g. "ErrNotOnCurve"
	Source      int      // 1-based record number in the source file
}

// Parser parses vectors from a source.
type Parser interface {
	// ParseVectors parses vectors from a source and returns them.
	ParseVectors(source string) ([]*Vector, error)
}

// JSONParser parses vectors from JSON files.
//
// Expected format:
//
//	[
//	  {"op": "mulg", "args": ["0x02"], "expect": "02c604..."},
//	  {"op": "mulg", "message": "hello", "expect": "03..."},
//	  {"op": "decompress", "args": ["020000..."], "error": "ErrNotOnCurve"}
//	]
//
// A "message" is hashed with secpmath.HashToScalar and used as the first
// argument.
type JSONParser struct{}

// ParseVectors parses vectors from a JSON file.
func (p *JSONParser) ParseVectors(jsonFile string) ([]*Vector, error) {
	file, err := os.Open(jsonFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	defer file.Close()

	return ParseJSON(file)
}

// ParseJSON parses vectors from a JSON stream.
func ParseJSON(r io.Reader) ([]*Vector, error) {
	decoder := json.NewDecoder(r)
	decoder.UseNumber() // Preserve large numbers as json.Number instead of float64

	var items []map[string]interface{}
	if err := decoder.Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to parse JSON: %w", err)
	}

	vecs := make([]*Vector, 0, len(items))
	for i, item := range items {
		v := &Vector{Source: i + 1}

		op, ok := item["op"].(string)
		if !ok || op == "" {
			return nil, fmt.Errorf("vector %d: missing op field", v.Source)
		}
		v.Op = strings.ToLower(op)

		if msgVal, ok := item["message"]; ok {
			msg, ok := msgVal.(string)
			if !ok {
				return nil, fmt.Errorf("vector %d: message field must be a string", v.Source)
			}
			k := secpmath.HashToScalar([]byte(msg)).Bytes()
			v.Args = append(v.Args, k[:])
		}

		if argsVal, ok := item["args"]; ok {
			args, ok := argsVal.([]interface{})
			if !ok {
				return nil, fmt.Errorf("vector %d: args field must be an array", v.Source)
			}
			for j, a := range args {
				b, err := ParseValue(a)
				if err != nil {
					return nil, fmt.Errorf("vector %d: failed to parse arg %d: %w", v.Source, j, err)
				}
				v.Args = append(v.Args, b)
			}
		}

		if expVal, ok := item["expect"]; ok {
			b, err := ParseValue(expVal)
			if err != nil {
				return nil, fmt.Errorf("vector %d: failed to parse expect: %w", v.Source, err)
			}
			v.Expect = b
		}

		if errVal, ok := item["error"]; ok {
			s, ok := errVal.(string)
			if !ok {
				return nil, fmt.Errorf("vector %d: error field must be a string", v.Source)
			}
			v.ExpectError = s
		}

		vecs = append(vecs, v)
	}

	return vecs, nil
}

// CSVParser parses vectors from CSV files with a header row.  The op column is
// required; a, b, c hold arguments in order and expect/error the expectation.
type CSVParser struct{}

// ParseVectors parses vectors from a CSV file.
func (p *CSVParser) ParseVectors(csvFile string) ([]*Vector, error) {
	file, err := os.Open(csvFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer file.Close()

	return ParseCSV(file)
}

// ParseCSV parses vectors from a CSV stream.
func ParseCSV(r io.Reader) ([]*Vector, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	opIdx, expectIdx, errorIdx := -1, -1, -1
	var argIdx []int
	for i, col := range header {
		switch strings.ToLower(strings.TrimSpace(col)) {
		case "op":
			opIdx = i
		case "a", "b", "c":
			argIdx = append(argIdx, i)
		case "expect":
			expectIdx = i
		case "error":
			errorIdx = i
		}
	}
	if opIdx == -1 {
		return nil, fmt.Errorf("missing required column: op")
	}

	vecs := make([]*Vector, 0)
	for n := 1; ; n++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		field := func(i int) string {
			if i < 0 || i >= len(record) {
				return ""
			}
			return strings.TrimSpace(record[i])
		}

		v := &Vector{Source: n, Op: strings.ToLower(field(opIdx))}
		if v.Op == "" {
			return nil, fmt.Errorf("record %d: empty op", n)
		}
		for _, i := range argIdx {
			s := field(i)
			if s == "" {
				continue
			}
			b, err := ParseValue(s)
			if err != nil {
				return nil, fmt.Errorf("record %d: failed to parse %s: %w", n, header[i], err)
			}
			v.Args = append(v.Args, b)
		}
		if s := field(expectIdx); s != "" {
			b, err := ParseValue(s)
			if err != nil {
				return nil, fmt.Errorf("record %d: failed to parse expect: %w", n, err)
			}
			v.Expect = b
		}
		v.ExpectError = field(errorIdx)

		vecs = append(vecs, v)
	}

	return vecs, nil
}

// ParseValue parses a value from various formats.  Strings with a 0x prefix
// are hex and keep their exact byte length, so SEC1 points survive intact.
// Unprefixed strings are hex when they contain hex letters or are longer
// than 20 characters, otherwise decimal.
func ParseValue(val interface{}) ([]byte, error) {
	switch v := val.(type) {
	case string:
		s := strings.TrimSpace(v)
		if strings.HasPrefix(s, "0x") || strings.HasPrefix(s, "0X") {
			return decodeHex(s[2:])
		}

		if strings.ContainsAny(s, "abcdefABCDEF") || len(s) > 20 {
			return decodeHex(s)
		}

		z := new(big.Int)
		if _, ok := z.SetString(s, 10); !ok || z.Sign() < 0 {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z.Bytes(), nil

	case json.Number:
		z := new(big.Int)
		if _, ok := z.SetString(string(v), 10); !ok || z.Sign() < 0 {
			return nil, fmt.Errorf("invalid number format: %s", v)
		}
		return z.Bytes(), nil

	case float64:
		if v < 0 {
			return nil, fmt.Errorf("invalid number format: %v", v)
		}
		z, _ := big.NewFloat(v).Int(nil)
		return z.Bytes(), nil

	case int:
		if v < 0 {
			return nil, fmt.Errorf("invalid number format: %d", v)
		}
		return big.NewInt(int64(v)).Bytes(), nil

	default:
		return nil, fmt.Errorf("unsupported type: %T", val)
	}
}

// decodeHex decodes a hex string, padding odd lengths with a leading zero.
func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return b, nil
}
