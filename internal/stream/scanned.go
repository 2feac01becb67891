// This file implements the Scanned combinator: a running fold over an inner
// boxed stream.
package stream

import (
	"fmt"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// Scanned is a running fold. The first pull yields the initial accumulator
// unmodified; each subsequent pull combines the previous accumulator with the
// next inner element through the callable, stores the result as the new
// accumulator and yields it. Faults from the callable or the inner stream
// poison the combinator; inner exhaustion ends it quietly.
type Scanned struct {
	inner value.Stream // nil once poisoned or stopped
	init  value.Value
	fn    value.Callable
	acc   *value.Value // nil until the first pull has yielded init
	err   error
}

// NewScanned constructs the running fold of fn over inner starting from init.
func NewScanned(inner value.Stream, init value.Value, fn value.Callable) *Scanned {
	return &Scanned{inner: inner, init: init, fn: fn}
}

// Next yields the initial accumulator on the first pull, then one folded
// value per inner element.
func (s *Scanned) Next() (value.Value, bool, error) {
	if s.err != nil {
		if fault.IsStop(s.err) {
			return value.Value{}, false, nil
		}
		return value.Value{}, false, s.err
	}
	if s.acc == nil {
		acc := s.init.Clone()
		s.acc = &acc
		return s.init.Clone(), true, nil
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
	out, err := s.fn.Call([]value.Value{*s.acc, v})
	if err != nil {
		s.poison(err)
		if fault.IsStop(err) {
			return value.Value{}, false, nil
		}
		return value.Value{}, false, err
	}
	*s.acc = out
	return out.Clone(), true, nil
}

// poison transitions to the absorbing faulted/stopped state, releasing the
// inner stream.
func (s *Scanned) poison(err error) {
	s.err = err
	s.inner = nil
}

// Clone returns an independently advanceable copy with its own accumulator;
// the inner stream is cloned, the poison state is shared.
func (s *Scanned) Clone() value.Stream {
	c := &Scanned{init: s.init, fn: s.fn, err: s.err}
	if s.inner != nil {
		c.inner = s.inner.Clone()
	}
	if s.acc != nil {
		acc := *s.acc
		c.acc = &acc
	}
	return c
}

// LengthHint reports unknown.
func (s *Scanned) LengthHint() (int, bool) { return 0, false }

// String renders the combinator around its inner stream, "(stopped)" after
// termination, or the stored fault.
func (s *Scanned) String() string {
	switch {
	case s.err == nil:
		return fmt.Sprintf("scan(%s, %s, <fn %s>)", s.inner, s.init, s.fn.Name())
	case fault.IsStop(s.err):
		return "scan(stopped)"
	default:
		return fmt.Sprintf("scan(error: %s)", s.err)
	}
}
