// This file implements the Iterate combinator: the orbit of a value under a
// user callable.
package stream

import (
	"fmt"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// Iterate yields the orbit seed, f(seed), f(f(seed)), ... of a user callable.
// Each pull returns the current value before advancing, then invokes the
// callable with it to compute the next. A fault from the callable poisons the
// stream: the pull that held the current value still yields it, and every
// subsequent pull replays the stored fault. The graceful-termination sentinel
// instead ends iteration quietly. Infinite unless the callable signals
// termination.
type Iterate struct {
	cur value.Value
	fn  value.Callable
	err error // non-nil once poisoned or stopped
}

// NewIterate constructs the orbit of seed under fn.
func NewIterate(seed value.Value, fn value.Callable) *Iterate {
	return &Iterate{cur: seed, fn: fn}
}

// Next yields the current value and advances by invoking the callable.
func (s *Iterate) Next() (value.Value, bool, error) {
	if s.err != nil {
		if fault.IsStop(s.err) {
			return value.Value{}, false, nil
		}
		return value.Value{}, false, s.err
	}
	ret := s.cur.Clone()
	next, err := s.fn.Call([]value.Value{s.cur})
	if err != nil {
		s.err = err
	} else {
		s.cur = next
	}
	return ret, true, nil
}

// Clone returns an independently advanceable copy, including the poison
// state.
func (s *Iterate) Clone() value.Stream {
	return &Iterate{cur: s.cur, fn: s.fn, err: s.err}
}

// LengthHint reports unknown: the orbit's extent depends on the callable.
func (s *Iterate) LengthHint() (int, bool) { return 0, false }

// String renders the combinator with its current value, "(stopped)" after
// graceful termination, or the stored fault.
func (s *Iterate) String() string {
	switch {
	case s.err == nil:
		return fmt.Sprintf("iterate(%s, <fn %s>)", s.cur, s.fn.Name())
	case fault.IsStop(s.err):
		return "iterate(stopped)"
	default:
		return fmt.Sprintf("iterate(error: %s)", s.err)
	}
}
