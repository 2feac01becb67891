// This file implements the Mapped combinator: element-wise application of a
// user callable over an inner boxed stream.
package stream

import (
	"fmt"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// Mapped yields f(x) for each x produced by the inner stream. A fault from
// the inner stream or from the callable poisons the combinator, which then
// replays the stored fault on every subsequent pull. Inner exhaustion (or the
// callable signalling graceful termination) switches to a permanent quiet
// end instead.
type Mapped struct {
	inner value.Stream // nil once poisoned or stopped
	fn    value.Callable
	err   error
}

// NewMapped constructs the element-wise application of fn over inner.
func NewMapped(inner value.Stream, fn value.Callable) *Mapped {
	return &Mapped{inner: inner, fn: fn}
}

// Next pulls one element from the inner stream and applies the callable.
func (s *Mapped) Next() (value.Value, bool, error) {
	if s.err != nil {
		if fault.IsStop(s.err) {
			return value.Value{}, false, nil
		}
		return value.Value{}, false, s.err
	}
	v, ok, err := s.inner.Next()
	if err != nil {
		s.poison(err)
		return value.Value{}, false, err
	}
	if !ok {
		s.poison(fault.ErrStopIteration)
		return value.Value{}, false, nil
	}
	out, err := s.fn.Call([]value.Value{v})
	if err != nil {
		s.poison(err)
		if fault.IsStop(err) {
			return value.Value{}, false, nil
		}
		return value.Value{}, false, err
	}
	return out, true, nil
}

// poison transitions to the absorbing faulted/stopped state, releasing the
// inner stream.
func (s *Mapped) poison(err error) {
	s.err = err
	s.inner = nil
}

// Clone returns an independently advanceable copy; the inner stream is
// cloned, the poison state is shared.
func (s *Mapped) Clone() value.Stream {
	c := &Mapped{fn: s.fn, err: s.err}
	if s.inner != nil {
		c.inner = s.inner.Clone()
	}
	return c
}

// LengthHint reports unknown: the callable may terminate iteration early.
func (s *Mapped) LengthHint() (int, bool) { return 0, false }

// String renders the combinator around its inner stream, "(stopped)" after
// termination, or the stored fault.
func (s *Mapped) String() string {
	switch {
	case s.err == nil:
		return fmt.Sprintf("map(%s, <fn %s>)", s.inner, s.fn.Name())
	case fault.IsStop(s.err):
		return "map(stopped)"
	default:
		return fmt.Sprintf("map(error: %s)", s.err)
	}
}
