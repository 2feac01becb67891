// This file implements the Cycle primitive: infinite repetition of a shared
// non-empty buffer.
package stream

import (
	"fmt"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// Cycle is the infinite stream that repeats a fixed non-empty buffer forever.
// The cursor always stays in [0, len) for the lifetime of the stream.
type Cycle struct {
	buf *value.List
	cur int
}

// NewCycle constructs a cycle over buf starting at the first element.
// The buffer must be non-empty.
func NewCycle(buf *value.List) (*Cycle, error) {
	return NewCycleAt(buf, 0)
}

// NewCycleAt constructs a cycle over buf with the cursor at position cur.
func NewCycleAt(buf *value.List, cur int) (*Cycle, error) {
	if buf.Len() == 0 {
		return nil, fault.NewValueError("cannot cycle an empty list")
	}
	if cur < 0 || cur >= buf.Len() {
		return nil, fault.NewValueError("cycle cursor %d out of range [0, %d)", cur, buf.Len())
	}
	return &Cycle{buf: buf, cur: cur}, nil
}

// Next yields the element under the cursor and advances it modulo the buffer
// length.
func (s *Cycle) Next() (value.Value, bool, error) {
	ret := s.buf.Elems[s.cur].Clone()
	s.cur = (s.cur + 1) % s.buf.Len()
	return ret, true, nil
}

// Clone returns an independently advanceable copy sharing the buffer.
func (s *Cycle) Clone() value.Stream {
	return &Cycle{buf: s.buf, cur: s.cur}
}

// LengthHint reports unknown: the stream is infinite.
func (s *Cycle) LengthHint() (int, bool) { return 0, false }

// Force faults: an infinite stream cannot be materialized.
func (s *Cycle) Force() ([]value.Value, error) {
	return nil, fault.NewValueError("cannot force %s because it is infinite", s)
}

// Index resolves a signed offset relative to the cursor using floored
// (Euclidean) modulo, so negative offsets walk backwards through the cycle.
func (s *Cycle) Index(i int) (value.Value, error) {
	n := s.buf.Len()
	j := (s.cur + i) % n
	if j < 0 {
		j += n
	}
	return s.buf.Elems[j].Clone(), nil
}

// Reversed returns a new cycle over the reversed buffer with the cursor
// remapped to (len - cur) mod len, so that iteration order is the exact
// mirror of the original remaining sequence.
func (s *Cycle) Reversed() (value.Sequence, error) {
	n := s.buf.Len()
	elems := make([]value.Value, n)
	for i, v := range s.buf.Elems {
		elems[n-1-i] = v
	}
	rev := &Cycle{buf: value.NewList(elems), cur: (n - s.cur) % n}
	return value.StreamSeq(rev), nil
}

// String renders the stream as "cycle(a, b, c)".
func (s *Cycle) String() string {
	return fmt.Sprintf("cycle(%s)", value.CommaSeparated(s.buf.Elems))
}
