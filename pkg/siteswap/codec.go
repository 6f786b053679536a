package siteswap

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"
)

// Alphabet maps throw values to symbols. A value is its symbol's index.
const Alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

// MaxThrow is the largest throw value the alphabet can express.
const MaxThrow = len(Alphabet) - 1

// symbolValues maps a byte to its throw value, or -1 for bytes outside the
// alphabet. Upper-case letters map like their lower-case forms.
var symbolValues = func() [256]int8 {
	var table [256]int8
	for i := range table {
		table[i] = -1
	}

	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		table[c] = int8(i)

		if c >= 'a' && c <= 'z' {
			table[c-'a'+'A'] = int8(i)
		}
	}

	return table
}()

// Decode parses text into a Pattern, one symbol per throw.
//
// Decoding is case-insensitive. Characters outside the alphabet (spaces,
// punctuation, non-ASCII runes) are skipped, so Decode never fails: the
// worst case is an empty Pattern.
func Decode(s string) Pattern {
	throws := make([]int, 0, len(s))

	for i := 0; i < len(s); i++ {
		// Multi-byte runes never match: their bytes are all >= 0x80.
		if v := symbolValues[s[i]]; v >= 0 {
			throws = append(throws, int(v))
		}
	}

	return newPattern(throws)
}

// FromValues builds a Pattern from loosely typed values, as produced by
// decoding a JSON array into []any.
//
// Non-negative integers of any Go integer kind are kept, as are float and
// [json.Number] values holding a whole number. Everything else (strings,
// nil, fractions, negatives, NaN) is dropped, and so is any value above
// math.MaxInt32 regardless of its type.
func FromValues(vals []any) Pattern {
	throws := make([]int, 0, len(vals))

	for _, v := range vals {
		if n, ok := toThrow(v); ok {
			throws = append(throws, n)
		}
	}

	return newPattern(throws)
}

// maxLooseValue caps the values FromValues keeps, whatever their Go type.
// It fits int on every platform and keeps pattern sums far from overflow.
const maxLooseValue = math.MaxInt32

func toThrow(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return signedThrow(int64(n))
	case int8:
		return signedThrow(int64(n))
	case int16:
		return signedThrow(int64(n))
	case int32:
		return signedThrow(int64(n))
	case int64:
		return signedThrow(n)
	case uint:
		return unsignedThrow(uint64(n))
	case uint8:
		return unsignedThrow(uint64(n))
	case uint16:
		return unsignedThrow(uint64(n))
	case uint32:
		return unsignedThrow(uint64(n))
	case uint64:
		return unsignedThrow(n)
	case float32:
		return floatThrow(float64(n))
	case float64:
		return floatThrow(n)
	case json.Number:
		if i, err := n.Int64(); err == nil {
			return signedThrow(i)
		}

		// "4.0" and "1e3" are whole numbers too.
		f, err := n.Float64()
		if err != nil {
			return 0, false
		}

		return floatThrow(f)
	default:
		return 0, false
	}
}

func signedThrow(n int64) (int, bool) {
	if n < 0 || n > maxLooseValue {
		return 0, false
	}

	return int(n), true
}

func unsignedThrow(n uint64) (int, bool) {
	if n > maxLooseValue {
		return 0, false
	}

	return int(n), true
}

func floatThrow(f float64) (int, bool) {
	if math.IsNaN(f) || f < 0 || f > maxLooseValue || f != math.Trunc(f) {
		return 0, false
	}

	return int(f), true
}

// EncodeThrows maps each throw value to its alphabet symbol.
//
// Returns an error wrapping [ErrOutOfAlphabet] if any value is above
// [MaxThrow] or negative.
func EncodeThrows(throws []int) (string, error) {
	var b strings.Builder
	b.Grow(len(throws))

	for i, v := range throws {
		if v < 0 || v > MaxThrow {
			return "", fmt.Errorf("%w: throw %d is %d", ErrOutOfAlphabet, i, v)
		}

		b.WriteByte(Alphabet[v])
	}

	return b.String(), nil
}
