package siteswap

import (
	"fmt"
	"slices"
)

// Pattern is an immutable sequence of throw heights.
//
// The zero value is the empty pattern. Use [Decode], [New] or [FromValues]
// to construct one.
type Pattern struct {
	throws []int
	sum    int
}

// New builds a Pattern from throw values, dropping negatives.
// The input slice is not retained.
func New(throws []int) Pattern {
	kept := make([]int, 0, len(throws))

	for _, v := range throws {
		if v >= 0 {
			kept = append(kept, v)
		}
	}

	return newPattern(kept)
}

// newPattern takes ownership of throws, which must be non-negative.
func newPattern(throws []int) Pattern {
	sum := 0
	for _, v := range throws {
		sum += v
	}

	return Pattern{throws: throws, sum: sum}
}

// Len returns the number of throws.
func (p Pattern) Len() int { return len(p.throws) }

// Sum returns the sum of all throw values.
func (p Pattern) Sum() int { return p.sum }

// IsEmpty reports whether the pattern has no throws.
func (p Pattern) IsEmpty() bool { return len(p.throws) == 0 }

// Throw returns the i-th throw value. It panics if i is out of range.
func (p Pattern) Throw(i int) int { return p.throws[i] }

// Throws returns a copy of the throw values.
func (p Pattern) Throws() []int { return slices.Clone(p.throws) }

// ObjectCount returns the number of objects juggled, which is only defined
// when the pattern is non-empty and its sum divides evenly by its length.
func (p Pattern) ObjectCount() (int, bool) {
	if len(p.throws) == 0 || p.sum%len(p.throws) != 0 {
		return 0, false
	}

	return p.sum / len(p.throws), true
}

// Average returns the mean throw height. For a siteswap this equals the
// object count; for partial input it can be fractional. Returns false for
// the empty pattern.
func (p Pattern) Average() (float64, bool) {
	if len(p.throws) == 0 {
		return 0, false
	}

	return float64(p.sum) / float64(len(p.throws)), true
}

// Append returns a new Pattern with extra throws added at the end.
// Negative values in extra are dropped.
func (p Pattern) Append(extra ...int) Pattern {
	throws := make([]int, 0, len(p.throws)+len(extra))
	throws = append(throws, p.throws...)

	for _, v := range extra {
		if v >= 0 {
			throws = append(throws, v)
		}
	}

	return newPattern(throws)
}

// Equal reports whether both patterns hold the same throws in the same order.
func (p Pattern) Equal(q Pattern) bool {
	return slices.Equal(p.throws, q.throws)
}

// Encode returns the alphabet form of the pattern.
// See [EncodeThrows] for the error contract.
func (p Pattern) Encode() (string, error) {
	return EncodeThrows(p.throws)
}

// String returns the alphabet form, or a bracketed decimal list such as
// "[3 40 1]" when a throw cannot be encoded.
func (p Pattern) String() string {
	s, err := p.Encode()
	if err != nil {
		return fmt.Sprint(p.throws)
	}

	return s
}
