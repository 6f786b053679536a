package siteswap

// IsSiteswap reports whether the pattern is a valid periodic siteswap.
//
// The throw at beat i lands at beat (i+v) mod n. The pattern is valid when
// that mapping is a permutation of the beats, so every beat catches exactly
// one object. The empty pattern is not a siteswap.
//
// A sum not divisible by the length is rejected up front. A permutation
// always has such a sum, so this only shortcuts the landing check.
func (p Pattern) IsSiteswap() bool {
	n := len(p.throws)
	if n == 0 || p.sum%n != 0 {
		return false
	}

	return p.landingsArePermutation()
}

// landingsArePermutation is the landing-slot check without the divisibility
// precondition.
func (p Pattern) landingsArePermutation() bool {
	n := len(p.throws)
	claimed := make([]bool, n)

	for i, v := range p.throws {
		landing := (i + v) % n
		if claimed[landing] {
			return false
		}

		claimed[landing] = true
	}

	return true
}

// IsJugglable reports whether the throws are locally consistent, without
// treating the pattern as periodic. It is meant for partially typed input.
//
// For every non-zero throw at beat i with height v, the landing beat i+v must
// not hold a 0 (nothing there would re-throw the object) and must not be
// claimed by another throw. A landing past the end is assumed to be caught by
// a throw not typed yet, so only the collision rule applies to it. The empty
// pattern is jugglable.
func (p Pattern) IsJugglable() bool {
	n := len(p.throws)
	claimed := make(map[int]struct{}, n)

	for i, v := range p.throws {
		if v == 0 {
			continue
		}

		landing := i + v
		if landing < n && p.throws[landing] == 0 {
			return false
		}

		if _, ok := claimed[landing]; ok {
			return false
		}

		claimed[landing] = struct{}{}
	}

	return true
}
