// This file implements the CartesianPower enumerator: all length-n tuples
// over a shared buffer in odometer order.
package stream

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/agbru/lazyseq/internal/value"
)

// CartesianPower enumerates every length-n tuple over a fixed buffer of m
// elements in odometer order: base-m counting with carry, the last digit
// fastest. The mutable state is a vector of n digit indices each in [0, m);
// a nil state is the absorbing terminal state.
type CartesianPower struct {
	buf   *value.List
	state *cowState[int] // nil once exhausted
}

// NewCartesianPower constructs the enumerator over length-n tuples, starting
// at the all-zeros digit vector. A positive tuple length over an empty buffer
// has nothing to enumerate and is immediately terminal.
func NewCartesianPower(buf *value.List, n int) *CartesianPower {
	c := &CartesianPower{buf: buf}
	if n < 0 || (buf.Len() == 0 && n > 0) {
		return c
	}
	c.state = newState(make([]int, n))
	return c
}

// Next materializes the current tuple, increments the digit vector with carry
// (clearing the state on full carry-out) and returns the pre-advance
// materialization.
func (s *CartesianPower) Next() (value.Value, bool, error) {
	if s.state == nil {
		return value.Value{}, false, nil
	}
	ret := materialize(s.buf, s.state.view())
	digits := s.state.mutable()
	m := s.buf.Len()
	advanced := false
	for i := len(digits) - 1; i >= 0; i-- {
		digits[i]++
		if digits[i] == m {
			digits[i] = 0
		} else {
			advanced = true
			break
		}
	}
	if !advanced {
		s.state = nil
	}
	return ret, true, nil
}

// Clone returns an independent fork sharing the buffer; the digit state is
// copy-on-write.
func (s *CartesianPower) Clone() value.Stream {
	c := &CartesianPower{buf: s.buf}
	if s.state != nil {
		c.state = s.state.clone()
	}
	return c
}

// LengthHint returns the exact number of remaining tuples in O(n): the digit
// vector read as a base-m number measures how far the odometer has come, so
// each digit contributes (m-1-digit) times the weight of its position, plus
// one for the current element.
func (s *CartesianPower) LengthHint() (int, bool) {
	if s.state == nil {
		return 0, true
	}
	digits := s.state.view()
	m := int64(s.buf.Len())
	total := big.NewInt(1)
	pow := big.NewInt(1)
	term := new(big.Int)
	for i := len(digits) - 1; i >= 0; i-- {
		term.Mul(pow, big.NewInt(m-1-int64(digits[i])))
		total.Add(total, term)
		pow.Mul(pow, big.NewInt(m))
	}
	return bigToLen(total)
}

// String renders the enumerator with its pending digits, or "(done)" once
// terminal.
func (s *CartesianPower) String() string {
	if s.state == nil {
		return "cartesian(done)"
	}
	return fmt.Sprintf("cartesian(%s @ %s)",
		value.CommaSeparated(s.buf.Elems),
		indexNotation(s.state.view(), strconv.Itoa))
}
