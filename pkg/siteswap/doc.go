// Package siteswap analyzes and completes siteswap juggling patterns.
//
// A siteswap is a finite sequence of throw heights. Each height is the number
// of beats an object stays in the air before it is caught and thrown again.
// Patterns are written with the 36-symbol alphabet "0-9a-z", one symbol per
// throw, so "441" is [4 4 1] and "b" is [11].
//
// # Basic Usage
//
//	p := siteswap.Decode("441")
//	p.IsSiteswap()  // true
//	p.IsJugglable() // true
//	n, _ := p.ObjectCount() // 3
//
//	s, err := p.Encode() // "441"
//
// # Validity
//
// Two independent checks are provided:
//   - [Pattern.IsSiteswap] is the full periodic check: every beat receives
//     exactly one object when the pattern repeats.
//   - [Pattern.IsJugglable] is a local check for partially typed input. It
//     never requires a full period, so "52" is jugglable while it is still
//     being typed even though it is not yet a siteswap.
//
// # Completion
//
// [Search] appends throws to a base pattern and returns every completion
// that is a siteswap with the requested object count:
//
//	got, err := siteswap.Search(ctx, siteswap.Decode("5"), siteswap.SearchParams{
//	    ObjectCount:    3,
//	    MaxHeight:      5,
//	    MaxExtraLength: 2,
//	    MaxResults:     10,
//	    Order:          siteswap.DepthFirst,
//	})
//
// The search space grows as (MaxHeight+1)^MaxExtraLength. Parameters are
// validated against hard limits and every search runs under a step budget
// (see [SearchParams.MaxSteps]), so a single call cannot run unbounded.
//
// # Concurrency
//
// All functions are pure. [Pattern] values are immutable and safe to share
// between goroutines; each [Search] call owns its enumeration state.
package siteswap
