// This file implements the Strided combinator: keeping every stride-th
// element of an inner boxed stream.
package stream

import (
	"fmt"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// Strided yields every element of the inner stream whose ordinal position is
// a multiple of the stride. The position counter starts at 0 and increments
// on every inner pull, kept or skipped alike; skipped elements are consumed
// internally until a keep-position is found or the inner stream exhausts.
type Strided struct {
	inner  value.Stream // nil once poisoned or stopped
	stride int
	pos    int
	err    error
}

// NewStrided constructs the stride filter over inner. The stride must be
// positive.
func NewStrided(inner value.Stream, stride int) (*Strided, error) {
	if stride <= 0 {
		return nil, fault.NewValueError("stride must be positive, got %d", stride)
	}
	return &Strided{inner: inner, stride: stride}, nil
}

// Next pulls inner elements until one falls on a keep-position.
func (s *Strided) Next() (value.Value, bool, error) {
	if s.err != nil {
		if fault.IsStop(s.err) {
			return value.Value{}, false, nil
		}
		return value.Value{}, false, s.err
	}
	for {
		v, ok, err := s.inner.Next()
		if err != nil {
			s.err = err
			s.inner = nil
			return value.Value{}, false, err
		}
		if !ok {
			s.err = fault.ErrStopIteration
			s.inner = nil
			return value.Value{}, false, nil
		}
		keep := s.pos%s.stride == 0
		s.pos++
		if keep {
			return v, true, nil
		}
	}
}

// Clone returns an independently advanceable copy; the inner stream is
// cloned, the poison state is shared.
func (s *Strided) Clone() value.Stream {
	c := &Strided{stride: s.stride, pos: s.pos, err: s.err}
	if s.inner != nil {
		c.inner = s.inner.Clone()
	}
	return c
}

// LengthHint reports unknown.
func (s *Strided) LengthHint() (int, bool) { return 0, false }

// String renders the combinator around its inner stream, "(stopped)" after
// termination, or the stored fault.
func (s *Strided) String() string {
	switch {
	case s.err == nil:
		return fmt.Sprintf("stride(%s, %d @ %d)", s.inner, s.stride, s.pos)
	case fault.IsStop(s.err):
		return "stride(stopped)"
	default:
		return fmt.Sprintf("stride(error: %s)", s.err)
	}
}
