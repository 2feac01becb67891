// This file implements the Subsequences enumerator: all subsequences of a
// shared buffer in big-endian binary order.
package stream

import (
	"fmt"
	"math/big"

	"github.com/agbru/lazyseq/internal/value"
)

// Subsequences enumerates every subsequence of a fixed buffer in big-endian
// binary order: the all-false mask (empty subsequence) first, the all-true
// mask (whole buffer) last. The mutable state is a boolean mask over the
// buffer; a nil state is the absorbing terminal state.
type Subsequences struct {
	buf   *value.List
	state *cowState[bool] // nil once exhausted
}

// NewSubsequences constructs the enumerator starting at the empty
// subsequence.
func NewSubsequences(buf *value.List) *Subsequences {
	return &Subsequences{buf: buf, state: newState(make([]bool, buf.Len()))}
}

// Next materializes the current subsequence (the buffer elements whose mask
// bit is set, in original order), advances the mask to its successor
// (clearing the state when none exists) and returns the pre-advance
// materialization.
func (s *Subsequences) Next() (value.Value, bool, error) {
	if s.state == nil {
		return value.Value{}, false, nil
	}
	mask := s.state.view()
	var elems []value.Value
	for i, keep := range mask {
		if keep {
			elems = append(elems, s.buf.Elems[i].Clone())
		}
	}
	ret := value.ListValue(elems...)

	// Binary increment: set the rightmost clear bit, zero everything after it.
	mask = s.state.mutable()
	advanced := false
	for i := len(mask) - 1; i >= 0; i-- {
		if !mask[i] {
			mask[i] = true
			for j := i + 1; j < len(mask); j++ {
				mask[j] = false
			}
			advanced = true
			break
		}
	}
	if !advanced {
		s.state = nil
	}
	return ret, true, nil
}

// Clone returns an independent fork sharing the buffer; the mask state is
// copy-on-write.
func (s *Subsequences) Clone() value.Stream {
	c := &Subsequences{buf: s.buf}
	if s.state != nil {
		c.state = s.state.clone()
	}
	return c
}

// LengthHint returns the exact number of remaining subsequences in O(n) by
// treating the mask as a binary number: each clear bit, taken with the suffix
// zeroed, accounts for one power-of-two block of subsequences still to come,
// plus one for the current element.
func (s *Subsequences) LengthHint() (int, bool) {
	if s.state == nil {
		return 0, true
	}
	mask := s.state.view()
	total := big.NewInt(1)
	pow := big.NewInt(1)
	for i := len(mask) - 1; i >= 0; i-- {
		if !mask[i] {
			total.Add(total, pow)
		}
		pow.Lsh(pow, 1)
	}
	return bigToLen(total)
}

// String renders the enumerator with its pending mask, or "(done)" once
// terminal.
func (s *Subsequences) String() string {
	if s.state == nil {
		return "subsequences(done)"
	}
	return fmt.Sprintf("subsequences(%s @ %s)",
		value.CommaSeparated(s.buf.Elems),
		indexNotation(s.state.view(), func(b bool) string {
			if b {
				return "1"
			}
			return "0"
		}))
}
