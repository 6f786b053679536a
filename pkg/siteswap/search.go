package siteswap

import (
	"context"
	"errors"
	"fmt"
)

// Order selects the traversal order of [Search]. Both orders visit the same
// candidates; the order only matters when MaxResults cuts the search short.
type Order int

const (
	// DepthFirst probes the all-zero extension at every length before
	// changing any digit, then counts like an odometer at the longest length.
	// It tends to surface short completions first.
	DepthFirst Order = iota

	// BreadthFirst tries every digit combination of one length before moving
	// to the next length.
	BreadthFirst
)

// String returns "depth" or "breadth".
func (o Order) String() string {
	switch o {
	case DepthFirst:
		return "depth"
	case BreadthFirst:
		return "breadth"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder parses an order name as written in configuration.
func ParseOrder(s string) (Order, error) {
	switch s {
	case "depth", "depth-first", "dfs":
		return DepthFirst, nil
	case "breadth", "breadth-first", "bfs":
		return BreadthFirst, nil
	default:
		return 0, fmt.Errorf("%w: %q (want depth or breadth)", ErrUnknownOrder, s)
	}
}

// Hard limits for [SearchParams].
const (
	// MaxExtraLengthLimit caps SearchParams.MaxExtraLength.
	MaxExtraLengthLimit = 8

	// DefaultMaxSteps is the step budget used when SearchParams.MaxSteps is 0.
	DefaultMaxSteps = 5_000_000
)

// ctxCheckInterval is how many candidates are visited between context checks.
const ctxCheckInterval = 4096

// SearchParams bounds a [Search].
type SearchParams struct {
	// ObjectCount is the object count every completion must have (0-35).
	ObjectCount int

	// MaxHeight is the largest throw that may be appended (0-35).
	MaxHeight int

	// MaxExtraLength is the most throws that may be appended
	// (1-[MaxExtraLengthLimit]).
	MaxExtraLength int

	// MaxResults stops the search once this many completions are found.
	// 0 means no cap; the step budget still applies.
	MaxResults int

	// Order is the traversal order.
	Order Order

	// MaxSteps is the most candidates visited before giving up with
	// [ErrStepBudget]. 0 means [DefaultMaxSteps].
	MaxSteps int
}

// Validate checks the params against the hard limits.
// Returns an error wrapping [ErrInvalidParams].
func (sp SearchParams) Validate() error {
	var errs []error

	if sp.ObjectCount < 0 || sp.ObjectCount > MaxThrow {
		errs = append(errs, fmt.Errorf("object count %d not in 0-%d", sp.ObjectCount, MaxThrow))
	}

	if sp.MaxHeight < 0 || sp.MaxHeight > MaxThrow {
		errs = append(errs, fmt.Errorf("max height %d not in 0-%d", sp.MaxHeight, MaxThrow))
	}

	if sp.MaxExtraLength < 1 || sp.MaxExtraLength > MaxExtraLengthLimit {
		errs = append(errs, fmt.Errorf("max extra length %d not in 1-%d", sp.MaxExtraLength, MaxExtraLengthLimit))
	}

	if sp.MaxResults < 0 {
		errs = append(errs, fmt.Errorf("max results %d is negative", sp.MaxResults))
	}

	if sp.MaxSteps < 0 {
		errs = append(errs, fmt.Errorf("max steps %d is negative", sp.MaxSteps))
	}

	if sp.Order != DepthFirst && sp.Order != BreadthFirst {
		errs = append(errs, fmt.Errorf("%w: %v", ErrUnknownOrder, sp.Order))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidParams, errors.Join(errs...))
	}

	return nil
}

// Search appends up to MaxExtraLength throws, each 0..MaxHeight, to base and
// returns the encoded completions that are siteswaps with ObjectCount
// objects, in discovery order.
//
// A completion of length d is accepted when base.Sum() plus the appended
// throws equals (base.Len()+d)*ObjectCount and the result passes
// [Pattern.IsSiteswap].
//
// Returns nil, nil when no completion can reach the target sum or when the
// space holds no match. If the step budget runs out or ctx is done, the
// completions found so far are returned together with the error.
func Search(ctx context.Context, base Pattern, params SearchParams) ([]string, error) {
	err := params.Validate()
	if err != nil {
		return nil, err
	}

	// Completions carry the base throws, so the base must be encodable.
	_, err = base.Encode()
	if err != nil {
		return nil, err
	}

	if !feasible(base, params) {
		return nil, nil
	}

	budget := params.MaxSteps
	if budget == 0 {
		budget = DefaultMaxSteps
	}

	n := base.Len()
	buf := make([]int, n, n+params.MaxExtraLength)
	copy(buf, base.throws)

	od := newOdometer(params.MaxExtraLength, params.MaxHeight)

	var results []string

	for visited := 0; !od.done(); visited++ {
		if params.MaxResults > 0 && len(results) >= params.MaxResults {
			break
		}

		if visited >= budget {
			return results, fmt.Errorf("%w: visited %d candidates", ErrStepBudget, visited)
		}

		if visited%ctxCheckInterval == 0 {
			ctxErr := ctx.Err()
			if ctxErr != nil {
				return results, fmt.Errorf("siteswap: search interrupted: %w", ctxErr)
			}
		}

		digits := od.digits()

		// The sum test is cheap; only candidates that pass it are checked
		// for validity.
		if base.sum+od.sum() == (n+len(digits))*params.ObjectCount {
			next := newPattern(append(buf[:n], digits...))
			if next.IsSiteswap() {
				results = append(results, next.String())
			}
		}

		od.advance(params.Order)
	}

	return results, nil
}

// feasible is a conservative pre-check: it rejects bases whose sum is out of
// reach for the longest completion. It may let through bases that no
// shorter completion can fix; the per-candidate sum test catches those.
func feasible(base Pattern, params SearchParams) bool {
	upper := (base.Len() + params.MaxExtraLength) * params.ObjectCount
	lower := upper - params.MaxExtraLength*params.MaxHeight

	return base.sum >= lower && base.sum <= upper
}

// odometer is the mixed-radix counter behind [Search]. indexes holds one
// digit per appendable position, each in 0..height; depth is how many
// leading digits form the current candidate. depth > len(indexes) means the
// space is exhausted.
type odometer struct {
	indexes []int
	depth   int
	height  int
}

func newOdometer(maxDepth, height int) odometer {
	return odometer{
		indexes: make([]int, maxDepth),
		depth:   1,
		height:  height,
	}
}

func (o *odometer) done() bool {
	return o.depth > len(o.indexes)
}

func (o *odometer) digits() []int {
	return o.indexes[:o.depth]
}

func (o *odometer) sum() int {
	total := 0
	for _, d := range o.digits() {
		total += d
	}

	return total
}

func (o *odometer) advance(order Order) {
	if order == BreadthFirst {
		o.nextBreadth()
		return
	}

	o.nextDepth()
}

// nextDepth extends the candidate by a zero digit while below the maximum
// depth. At the maximum depth it increments, and the depth drops back to the
// position the carry stopped at.
func (o *odometer) nextDepth() {
	if o.depth < len(o.indexes) {
		o.depth++
		return
	}

	pos, ok := o.increment(o.depth - 1)
	if !ok {
		o.depth = len(o.indexes) + 1
		return
	}

	o.depth = pos + 1
}

// nextBreadth increments at the current depth and grows the depth by one
// only when every combination of the current depth has been seen.
func (o *odometer) nextBreadth() {
	if _, ok := o.increment(o.depth - 1); !ok {
		o.depth++
	}
}

// increment adds one at position pos with carry to the left. It returns the
// leftmost position that changed, or false when the carry ran past position
// 0, leaving every digit up to pos at zero.
func (o *odometer) increment(pos int) (int, bool) {
	o.indexes[pos]++

	for o.indexes[pos] > o.height {
		o.indexes[pos] = 0

		pos--
		if pos < 0 {
			return 0, false
		}

		o.indexes[pos]++
	}

	return pos, true
}
