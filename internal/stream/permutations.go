// This file implements the Permutations enumerator: all permutations of a
// shared buffer in lexicographic index order.
package stream

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/agbru/lazyseq/internal/value"
)

// Permutations enumerates the permutations of a fixed buffer in lexicographic
// index order. The mutable state is a permutation of the indices 0..n; a nil
// state is the absorbing terminal state.
type Permutations struct {
	buf   *value.List
	state *cowState[int] // nil once exhausted
}

// NewPermutations constructs the enumerator starting at the identity
// permutation.
func NewPermutations(buf *value.List) *Permutations {
	idx := make([]int, buf.Len())
	for i := range idx {
		idx[i] = i
	}
	return &Permutations{buf: buf, state: newState(idx)}
}

// Next materializes the current permutation, then advances the state to its
// lexicographic successor (clearing it when none exists) and returns the
// pre-advance materialization.
func (s *Permutations) Next() (value.Value, bool, error) {
	if s.state == nil {
		return value.Value{}, false, nil
	}
	ret := materialize(s.buf, s.state.view())
	if !nextPermutation(s.state.mutable()) {
		s.state = nil
	}
	return ret, true, nil
}

// nextPermutation advances idx to its lexicographic successor in place,
// reporting false when idx is already the last permutation. A single forward
// pass tracks the rightmost ascent and the rightmost position after it whose
// value still exceeds the ascent point; the suffix after the swapped ascent
// is then reversed.
func nextPermutation(idx []int) bool {
	inc, linc := -1, -1
	for i := 0; i+1 < len(idx); i++ {
		if idx[i] < idx[i+1] {
			inc, linc = i, i+1
		} else if inc >= 0 && idx[i+1] > idx[inc] {
			linc = i + 1
		}
	}
	if inc < 0 {
		return false
	}
	idx[inc], idx[linc] = idx[linc], idx[inc]
	for l, r := inc+1, len(idx)-1; l < r; l, r = l+1, r-1 {
		idx[l], idx[r] = idx[r], idx[l]
	}
	return true
}

// Clone returns an independent fork sharing the buffer; the index state is
// copy-on-write, so the fork is O(1) until either side mutates.
func (s *Permutations) Clone() value.Stream {
	c := &Permutations{buf: s.buf}
	if s.state != nil {
		c.state = s.state.clone()
	}
	return c
}

// LengthHint returns the exact number of remaining permutations, computed
// from the current index vector in O(n²): each way of replacing idx[n-1-i]
// with a later, larger index accounts for i! full suffixes, plus one for the
// current element.
func (s *Permutations) LengthHint() (int, bool) {
	if s.state == nil {
		return 0, true
	}
	idx := s.state.view()
	n := len(idx)
	total := big.NewInt(1)
	fact := big.NewInt(1)
	term := new(big.Int)
	for i := 1; i < n; i++ {
		fact.Mul(fact, big.NewInt(int64(i)))
		larger := 0
		for j := n - i; j < n; j++ {
			if idx[j] > idx[n-1-i] {
				larger++
			}
		}
		term.Mul(fact, big.NewInt(int64(larger)))
		total.Add(total, term)
	}
	return bigToLen(total)
}

// String renders the enumerator with its pending state, or "(done)" once
// terminal.
func (s *Permutations) String() string {
	if s.state == nil {
		return "permutations(done)"
	}
	return fmt.Sprintf("permutations(%s @ %s)",
		value.CommaSeparated(s.buf.Elems),
		indexNotation(s.state.view(), strconv.Itoa))
}
