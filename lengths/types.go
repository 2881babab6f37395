package lengths

import (
	"errors"
	"fmt"
)

var (
	// ErrNilAcceptor is returned when a nil *automaton.Acceptor is passed
	// to Analyze.
	ErrNilAcceptor = errors.New("lengths: acceptor is nil")

	// ErrInvertedRange indicates a Range construction where min is negative
	// or max is below min.
	ErrInvertedRange = errors.New("lengths: min must be non-negative and not exceed max")
)

// Range is an inclusive interval of string lengths. The zero value is the
// single point [0,0]. Invariant: Min ≤ Max (NewRange enforces it; Extend
// preserves it).
type Range struct {
	Min int
	Max int
}

// NewRange constructs a Range, rejecting negative or inverted bounds with
// ErrInvertedRange.
func NewRange(min, max int) (Range, error) {
	if min < 0 || max < min {
		return Range{}, fmt.Errorf("%w: got [%d,%d]", ErrInvertedRange, min, max)
	}

	return Range{Min: min, Max: max}, nil
}

// Extend widens the interval to cover newMin and newMax and reports whether
// anything changed. It never narrows: a candidate inside the current
// interval is a no-op.
func (r *Range) Extend(newMin, newMax int) bool {
	changed := false
	if newMin < r.Min {
		r.Min = newMin
		changed = true
	}
	if newMax > r.Max {
		r.Max = newMax
		changed = true
	}

	return changed
}

// Contains reports whether n lies inside the interval.
func (r Range) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// String renders the interval as "[min,max]".
func (r Range) String() string {
	return fmt.Sprintf("[%d,%d]", r.Min, r.Max)
}
