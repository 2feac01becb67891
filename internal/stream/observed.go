// This file implements the Observed decorator wiring pull observers into any
// stream, and bounded draining helpers.
package stream

import (
	"github.com/agbru/lazyseq/internal/value"
)

// Observed decorates a stream so that every produced item notifies a set of
// pull observers. It re-exposes the Stream contract transparently and renders
// as the inner stream.
type Observed struct {
	inner     value.Stream
	kind      string
	produced  uint64
	observers []PullObserver
}

// NewObserved wraps inner with the given observers. The kind label identifies
// the stream in updates, logs and metrics.
func NewObserved(inner value.Stream, kind string, observers ...PullObserver) *Observed {
	return &Observed{inner: inner, kind: kind, observers: observers}
}

// Next pulls from the inner stream and notifies observers on success.
func (s *Observed) Next() (value.Value, bool, error) {
	v, ok, err := s.inner.Next()
	if ok {
		s.produced++
		update := PullUpdate{Kind: s.kind, Produced: s.produced}
		for _, o := range s.observers {
			o.Update(update)
		}
	}
	return v, ok, err
}

// Clone returns a copy wrapping a clone of the inner stream. The observer set
// is shared; the production count is forked.
func (s *Observed) Clone() value.Stream {
	return &Observed{
		inner:     s.inner.Clone(),
		kind:      s.kind,
		produced:  s.produced,
		observers: s.observers,
	}
}

// LengthHint delegates to the inner stream.
func (s *Observed) LengthHint() (int, bool) { return s.inner.LengthHint() }

// String renders as the inner stream.
func (s *Observed) String() string { return s.inner.String() }

// Take pulls up to n items from st, stopping early on exhaustion. A fault
// from the stream is returned along with the items pulled before it.
func Take(st value.Stream, n int) ([]value.Value, error) {
	out := make([]value.Value, 0, n)
	for len(out) < n {
		v, ok, err := st.Next()
		if err != nil {
			return out, err
		}
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out, nil
}
