package siteswap

import (
	"context"
	"fmt"
)

// Status classifies input as it is being typed.
type Status int

const (
	// StatusEmpty means no throws were entered yet. It is not an error.
	StatusEmpty Status = iota

	// StatusInvalid means the throws collide or land on empty beats
	// ([Pattern.IsJugglable] is false).
	StatusInvalid

	// StatusPartial means the input is jugglable so far but not a siteswap.
	StatusPartial

	// StatusValid means the input is a siteswap.
	StatusValid
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusEmpty:
		return "empty"
	case StatusInvalid:
		return "invalid"
	case StatusPartial:
		return "partial"
	case StatusValid:
		return "valid"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Analysis is everything a front end displays for one input.
type Analysis struct {
	Pattern    Pattern
	Status     Status
	Length     int
	Average    float64 // mean throw height; 0 when HasAverage is false
	HasAverage bool
	Siteswap   bool
	Jugglable  bool
}

// Analyze runs both validity checks and classifies the pattern.
func Analyze(p Pattern) Analysis {
	a := Analysis{
		Pattern:   p,
		Length:    p.Len(),
		Siteswap:  p.IsSiteswap(),
		Jugglable: p.IsJugglable(),
	}
	a.Average, a.HasAverage = p.Average()

	switch {
	case p.IsEmpty():
		a.Status = StatusEmpty
	case !a.Jugglable:
		a.Status = StatusInvalid
	case a.Siteswap:
		a.Status = StatusValid
	default:
		a.Status = StatusPartial
	}

	return a
}

// Suggest returns completions for live input. Input that is not jugglable
// gets no suggestions, since nothing appended can undo a collision already
// typed. Otherwise it behaves like [Search].
func Suggest(ctx context.Context, p Pattern, params SearchParams) ([]string, error) {
	if !p.IsJugglable() {
		return nil, nil
	}

	return Search(ctx, p, params)
}

// Juggler is implemented by simulators that animate a pattern. It only
// accepts strings that passed [Playable].
type Juggler interface {
	StartJuggling(pattern string) error
	StopJuggling()
}

// Playable decodes s and returns its canonical encoding if it is a valid
// siteswap. Otherwise it returns an error wrapping [ErrNotSiteswap].
func Playable(s string) (string, error) {
	return PlayablePattern(Decode(s))
}

// PlayablePattern returns the encoding of p if it is a valid siteswap that
// the alphabet can express. The error wraps [ErrNotSiteswap] or
// [ErrOutOfAlphabet].
func PlayablePattern(p Pattern) (string, error) {
	if !p.IsSiteswap() {
		return "", fmt.Errorf("%w: %s", ErrNotSiteswap, p)
	}

	return p.Encode()
}
