package siteswap

import "errors"

// Sentinel errors returned by siteswap operations.
//
// Callers should use [errors.Is] to check error types:
//
//	if errors.Is(err, siteswap.ErrStepBudget) {
//	    // results are partial
//	}
var (
	// ErrOutOfAlphabet indicates a throw value has no symbol in the alphabet.
	//
	// Only values 0-35 can be encoded.
	ErrOutOfAlphabet = errors.New("siteswap: value out of alphabet range")

	// ErrInvalidParams indicates [SearchParams] outside the hard limits.
	//
	// This is a programming error.
	ErrInvalidParams = errors.New("siteswap: invalid search params")

	// ErrStepBudget indicates a search visited [SearchParams.MaxSteps]
	// candidates without finishing. Results found so far are returned
	// alongside the error.
	ErrStepBudget = errors.New("siteswap: step budget exceeded")

	// ErrNotSiteswap indicates a pattern failed [Pattern.IsSiteswap] where a
	// valid siteswap is required.
	ErrNotSiteswap = errors.New("siteswap: not a valid siteswap")

	// ErrUnknownOrder indicates an unrecognized traversal order name.
	ErrUnknownOrder = errors.New("siteswap: unknown order")
)
