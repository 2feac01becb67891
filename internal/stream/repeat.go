// This file implements the Repeat primitive: the infinite constant stream.
package stream

import (
	"fmt"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// Repeat is the infinite stream that yields the same value on every pull.
// It supports indexed access at any signed index, pythonic slicing, and
// reversal (an infinite constant stream reversed is itself).
type Repeat struct {
	v value.Value
}

// NewRepeat constructs the infinite constant stream over v.
func NewRepeat(v value.Value) *Repeat {
	return &Repeat{v: v}
}

// Next yields the repeated value.
func (s *Repeat) Next() (value.Value, bool, error) {
	return s.v.Clone(), true, nil
}

// Clone returns an independent copy. Repeat carries no cursor state.
func (s *Repeat) Clone() value.Stream {
	return &Repeat{v: s.v}
}

// LengthHint reports unknown: the stream is infinite.
func (s *Repeat) LengthHint() (int, bool) { return 0, false }

// Force faults: an infinite stream cannot be materialized.
func (s *Repeat) Force() ([]value.Value, error) {
	return nil, fault.NewValueError("cannot force %s because it is infinite", s)
}

// Index returns the repeated value for any signed index.
func (s *Repeat) Index(i int) (value.Value, error) {
	return s.v.Clone(), nil
}

// Slice slices the infinite constant stream. Bounds are normalized to the
// stream's one-past-end convention: a negative bound b becomes b-1, an absent
// lower bound becomes 0 and an absent upper bound becomes -1, meaning "open".
// When both normalized bounds fall on the same side of zero the result is a
// finite list of max(0, hi-lo) repetitions; a negative lower bound with a
// non-negative upper bound is empty; a non-negative lower bound with a
// negative upper bound stays an infinite repeat.
func (s *Repeat) Slice(lo, hi *int) (value.Sequence, error) {
	l := 0
	if lo != nil {
		l = *lo
		if l < 0 {
			l--
		}
	}
	h := -1
	if hi != nil {
		h = *hi
		if h < 0 {
			h--
		}
	}
	switch {
	case (l < 0) == (h < 0):
		n := h - l
		if n < 0 {
			n = 0
		}
		elems := make([]value.Value, n)
		for i := range elems {
			elems[i] = s.v.Clone()
		}
		return value.ListSeq(value.NewList(elems)), nil
	case l < 0:
		return value.ListSeq(value.NewList(nil)), nil
	default:
		return value.StreamSeq(s.Clone()), nil
	}
}

// Reversed returns the stream itself: reversing an infinite constant stream
// changes nothing.
func (s *Repeat) Reversed() (value.Sequence, error) {
	return value.StreamSeq(s.Clone()), nil
}

// String renders the stream as "repeat(v)".
func (s *Repeat) String() string {
	return fmt.Sprintf("repeat(%s)", s.v)
}
