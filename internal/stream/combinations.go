// This file implements the Combinations enumerator: all k-element
// combinations of a shared buffer in lexicographic index order.
package stream

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/agbru/lazyseq/internal/value"
)

// Combinations enumerates the k-element combinations of a fixed buffer in
// lexicographic index order. The mutable state is a strictly increasing index
// vector of fixed size k; a nil state is the absorbing terminal state.
// Requesting more elements than the buffer holds is immediately terminal.
type Combinations struct {
	buf   *value.List
	k     int
	state *cowState[int] // nil once exhausted
}

// NewCombinations constructs the enumerator starting at the first combination
// 0, 1, ..., k-1.
func NewCombinations(buf *value.List, k int) *Combinations {
	c := &Combinations{buf: buf, k: k}
	if k < 0 || k > buf.Len() {
		return c
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	c.state = newState(idx)
	return c
}

// Next materializes the current combination, then advances the state to its
// lexicographic successor (clearing it when none exists) and returns the
// pre-advance materialization.
func (s *Combinations) Next() (value.Value, bool, error) {
	if s.state == nil {
		return value.Value{}, false, nil
	}
	ret := materialize(s.buf, s.state.view())
	if !s.nextCombination(s.state.mutable()) {
		s.state = nil
	}
	return ret, true, nil
}

// nextCombination advances idx to its lexicographic successor in place,
// reporting false when idx is already the last combination. Scanning right to
// left, the rightmost index that can still be incremented without colliding
// with the bound imposed by the remaining slots is incremented; all following
// indices are reset to consecutive successors.
func (s *Combinations) nextCombination(idx []int) bool {
	last := s.buf.Len()
	for i := len(idx) - 1; i >= 0; i-- {
		if idx[i]+1 < last {
			idx[i]++
			for j := i + 1; j < len(idx); j++ {
				idx[j] = idx[j-1] + 1
			}
			return true
		}
		last--
	}
	return false
}

// Clone returns an independent fork sharing the buffer; the index state is
// copy-on-write.
func (s *Combinations) Clone() value.Stream {
	c := &Combinations{buf: s.buf, k: s.k}
	if s.state != nil {
		c.state = s.state.clone()
	}
	return c
}

// LengthHint returns the exact number of remaining combinations via
// combinatorial ranking: the rank of the current index vector among all
// C(n, k) combinations is the count of combinations that pass through a
// strictly smaller index at some position, and the remainder is C(n, k)
// minus that rank. Counts that do not fit in an int report unknown.
func (s *Combinations) LengthHint() (int, bool) {
	if s.state == nil {
		return 0, true
	}
	idx := s.state.view()
	n := s.buf.Len()
	k := len(idx)
	remaining := new(big.Int).Binomial(int64(n), int64(k))
	term := new(big.Int)
	prev := -1
	for i, v := range idx {
		for j := prev + 1; j < v; j++ {
			term.Binomial(int64(n-1-j), int64(k-1-i))
			remaining.Sub(remaining, term)
		}
		prev = v
	}
	return bigToLen(remaining)
}

// String renders the enumerator with its pending state, or "(done)" once
// terminal.
func (s *Combinations) String() string {
	if s.state == nil {
		return "combinations(done)"
	}
	return fmt.Sprintf("combinations(%s @ %s)",
		value.CommaSeparated(s.buf.Elems),
		indexNotation(s.state.view(), strconv.Itoa))
}
