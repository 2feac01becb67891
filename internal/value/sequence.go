// This file defines the Sequence boundary type (materialized list or boxed
// dynamic stream), the Stream capability contract every lazy generator
// implements, and the generic sequence operations the surrounding interpreter
// consumes. The generic operations dispatch identically whether the
// underlying sequence is a materialized list or any stream kind.
package value

import (
	"fmt"

	"github.com/agbru/lazyseq/internal/fault"
)

// ─────────────────────────────────────────────────────────────────────────────
// List
// ─────────────────────────────────────────────────────────────────────────────

// List is a shared immutable ordered collection of values. Lists are shared
// by reference; cloning a Sequence never deep-copies the backing elements.
// Callers must not mutate Elems after construction.
type List struct {
	Elems []Value
}

// NewList constructs a list owning the given slice.
func NewList(elems []Value) *List {
	return &List{Elems: elems}
}

// Len returns the number of elements in the list.
func (l *List) Len() int { return len(l.Elems) }

// String renders the list in bracketed notation.
func (l *List) String() string {
	return "[" + CommaSeparated(l.Elems) + "]"
}

// ─────────────────────────────────────────────────────────────────────────────
// Stream capability contract
// ─────────────────────────────────────────────────────────────────────────────

// Stream is the uniform contract every lazy generator implements. A stream
// produces a lazy, restartable-only-via-clone sequence of values, finite or
// infinite. Consumers interact only through this contract, never through
// concrete types, so combinators can wrap any boxed stream regardless of kind.
//
// The optional capabilities (random access, slicing, reversal, guarded
// forcing) are modeled as upgrade interfaces (Indexer, Slicer, Reverser,
// Forcer) discovered by type assertion, the same way io.ReaderAt upgrades an
// io.Reader.
type Stream interface {
	// Next produces the next element. ok reports whether an element was
	// produced; ok=false with a nil err means the stream is exhausted. A
	// non-nil err reports a fault discovered by this pull.
	Next() (v Value, ok bool, err error)

	// Clone returns an independently advanceable copy. Pulling from the copy
	// never affects the state or subsequent output of the original.
	Clone() Stream

	// LengthHint returns the exact number of remaining elements when that is
	// cheaply known without consuming the stream. ok is false for infinite
	// streams and for streams whose remaining count is impractical to compute.
	LengthHint() (n int, ok bool)

	// String renders the stream for debugging and printing, in a fixed
	// informal per-kind notation.
	String() string
}

// Indexer is implemented by streams supporting signed pythonic random access.
// Negative indexes count from the logical end when the stream is finite, or
// are otherwise only defined for streams with periodic or affine structure.
type Indexer interface {
	Index(i int) (Value, error)
}

// Slicer is implemented by streams supporting pythonic slicing. A nil bound
// means the bound is absent.
type Slicer interface {
	Slice(lo, hi *int) (Sequence, error)
}

// Reverser is implemented by streams that can produce a reversed sequence
// without forcing themselves.
type Reverser interface {
	Reversed() (Sequence, error)
}

// Forcer is implemented by streams that guard or specialize materialization.
// Infinite generators implement it to fault instead of consuming forever.
type Forcer interface {
	Force() ([]Value, error)
}

// ─────────────────────────────────────────────────────────────────────────────
// Sequence
// ─────────────────────────────────────────────────────────────────────────────

// Sequence is the boundary representation the rest of the system sees: either
// a materialized shared list or a boxed dynamic stream. Exactly one of the
// two cases is active.
type Sequence struct {
	list   *List
	stream Stream
}

// ListSeq constructs a Sequence backed by a materialized list.
func ListSeq(l *List) Sequence { return Sequence{list: l} }

// StreamSeq constructs a Sequence backed by a boxed stream.
func StreamSeq(s Stream) Sequence { return Sequence{stream: s} }

// IsStream reports whether the sequence is backed by a stream.
func (s Sequence) IsStream() bool { return s.stream != nil }

// AsList returns the backing list, or false for stream-backed sequences.
func (s Sequence) AsList() (*List, bool) { return s.list, s.list != nil }

// AsStream returns the backing stream, or false for list-backed sequences.
func (s Sequence) AsStream() (Stream, bool) { return s.stream, s.stream != nil }

// Clone returns a copy of the sequence. Lists are shared; streams are cloned
// into independently advanceable copies.
func (s Sequence) Clone() Sequence {
	if s.stream != nil {
		return StreamSeq(s.stream.Clone())
	}
	return s
}

// String renders the sequence: bracketed notation for lists, the stream's own
// per-kind notation otherwise.
func (s Sequence) String() string {
	if s.stream != nil {
		return s.stream.String()
	}
	return s.list.String()
}

// Iter returns a pull iterator over the sequence. For lists this is a fresh
// cursor over the shared elements; for streams it is the boxed stream itself,
// whose state is shared with the sequence.
func (s Sequence) Iter() Stream {
	if s.stream != nil {
		return s.stream
	}
	return &listStream{list: s.list}
}

// ─────────────────────────────────────────────────────────────────────────────
// Generic sequence operations
// ─────────────────────────────────────────────────────────────────────────────

// LengthHint returns the exact number of remaining elements when known.
func (s Sequence) LengthHint() (int, bool) {
	if s.stream != nil {
		return s.stream.LengthHint()
	}
	return s.list.Len(), true
}

// Force materializes the sequence into a concrete list. List-backed sequences
// return the shared list unchanged. Stream-backed sequences are cloned and
// drained; streams implementing Forcer (infinite generators) decide for
// themselves, faulting with a descriptive message rather than consuming
// forever.
func (s Sequence) Force() (*List, error) {
	if s.stream == nil {
		return s.list, nil
	}
	elems, err := ForceStream(s.stream)
	if err != nil {
		return nil, err
	}
	return NewList(elems), nil
}

// ForceStream drains a clone of st into a slice. Streams implementing Forcer
// override the default draining behavior.
func ForceStream(st Stream) ([]Value, error) {
	if f, ok := st.(Forcer); ok {
		return f.Force()
	}
	it := st.Clone()
	var out []Value
	for {
		v, ok, err := it.Next()
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, v)
	}
}

// Index returns the element at signed pythonic index i. For lists a negative
// index counts from the end; out-of-range access is a value fault. For
// streams the operation requires the Indexer capability.
func (s Sequence) Index(i int) (Value, error) {
	if s.stream != nil {
		if ix, ok := s.stream.(Indexer); ok {
			return ix.Index(i)
		}
		return Value{}, fault.NewTypeError("%s does not support indexing", s.stream)
	}
	n := s.list.Len()
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return Value{}, fault.NewValueError("index %d out of range for list of length %d", i, n)
	}
	return s.list.Elems[j].Clone(), nil
}

// Slice returns the pythonic slice [lo, hi) of the sequence. A nil bound is
// absent. For lists the bounds are normalized and clamped; the result shares
// the backing elements. For streams the operation requires the Slicer
// capability.
func (s Sequence) Slice(lo, hi *int) (Sequence, error) {
	if s.stream != nil {
		if sl, ok := s.stream.(Slicer); ok {
			return sl.Slice(lo, hi)
		}
		return Sequence{}, fault.NewTypeError("%s does not support slicing", s.stream)
	}
	n := s.list.Len()
	start := clampBound(lo, 0, n)
	end := clampBound(hi, n, n)
	if start > end {
		start = end
	}
	return ListSeq(NewList(s.list.Elems[start:end])), nil
}

// clampBound resolves an optional signed pythonic bound against length n,
// substituting def when absent.
func clampBound(b *int, def, n int) int {
	if b == nil {
		return def
	}
	v := *b
	if v < 0 {
		v += n
	}
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}

// Reversed returns the reversed sequence. Lists produce a fresh reversed
// list; streams require the Reverser capability.
func (s Sequence) Reversed() (Sequence, error) {
	if s.stream != nil {
		if r, ok := s.stream.(Reverser); ok {
			return r.Reversed()
		}
		return Sequence{}, fault.NewTypeError("%s does not support reversal", s.stream)
	}
	n := s.list.Len()
	elems := make([]Value, n)
	for i, v := range s.list.Elems {
		elems[n-1-i] = v
	}
	return ListSeq(NewList(elems)), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// List iterator
// ─────────────────────────────────────────────────────────────────────────────

// listStream adapts a shared list to the Stream contract. It is the pull
// cursor handed out by Sequence.Iter for materialized sequences.
type listStream struct {
	list *List
	pos  int
}

func (s *listStream) Next() (Value, bool, error) {
	if s.pos >= s.list.Len() {
		return Value{}, false, nil
	}
	v := s.list.Elems[s.pos].Clone()
	s.pos++
	return v, true, nil
}

func (s *listStream) Clone() Stream {
	return &listStream{list: s.list, pos: s.pos}
}

func (s *listStream) LengthHint() (int, bool) {
	return s.list.Len() - s.pos, true
}

func (s *listStream) String() string {
	return fmt.Sprintf("list-iterator(%s @ %d)", CommaSeparated(s.list.Elems), s.pos)
}
