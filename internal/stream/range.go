// This file implements the Range primitive: an arithmetic progression over
// arbitrary-precision integers, optionally open-ended.
package stream

import (
	"fmt"
	"math"
	"math/big"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// Range is the arithmetic progression start, start+step, start+2*step, ...
// over arbitrary-precision integers. The end bound is optional; an absent end
// makes the progression infinite. Direction is determined by the sign of the
// step: a zero or positive step terminates once cur >= end, a negative step
// once cur <= end. A zero step with a present end therefore behaves like a
// non-negative step for emptiness, and never terminates when start < end.
type Range struct {
	cur  *big.Int
	end  *big.Int // nil when open-ended
	step *big.Int
}

// NewRange constructs a range from start (inclusive) towards end (exclusive,
// nil for open-ended) advancing by step. The bounds are copied; callers may
// reuse their arguments.
func NewRange(start, end, step *big.Int) *Range {
	r := &Range{
		cur:  new(big.Int).Set(start),
		step: new(big.Int).Set(step),
	}
	if end != nil {
		r.end = new(big.Int).Set(end)
	}
	return r
}

// empty reports whether the progression has terminated.
func (s *Range) empty() bool {
	if s.end == nil {
		return false
	}
	if s.step.Sign() < 0 {
		return s.cur.Cmp(s.end) <= 0
	}
	return s.cur.Cmp(s.end) >= 0
}

// Next yields the current bound and advances it by the step.
func (s *Range) Next() (value.Value, bool, error) {
	if s.empty() {
		return value.Value{}, false, nil
	}
	ret := value.BigInt(new(big.Int).Set(s.cur))
	s.cur.Add(s.cur, s.step)
	return ret, true, nil
}

// Clone returns an independently advanceable copy.
func (s *Range) Clone() value.Stream {
	return NewRange(s.cur, s.end, s.step)
}

// LengthHint returns the exact number of remaining elements via integer
// ceiling division on arbitrary-precision integers, saturating at zero. It
// reports unknown for open-ended ranges, for counts that do not fit in an
// int, and for the degenerate non-terminating zero-step case.
func (s *Range) LengthHint() (int, bool) {
	if s.end == nil {
		return 0, false
	}
	num := new(big.Int)
	den := new(big.Int)
	switch s.step.Sign() {
	case 0:
		// Degenerate: a zero step with start < end never terminates.
		if s.cur.Cmp(s.end) >= 0 {
			return 0, true
		}
		return 0, false
	case -1:
		// ceil((cur - end) / -step), via (cur - end - step - 1) / -step
		num.Sub(s.cur, s.end)
		num.Sub(num, s.step)
		num.Sub(num, bigOne)
		den.Neg(s.step)
	default:
		// ceil((end - cur + step - 1) / step)
		num.Sub(s.end, s.cur)
		num.Add(num, s.step)
		num.Sub(num, bigOne)
		den.Set(s.step)
	}
	if num.Sign() < 0 {
		return 0, true
	}
	num.Quo(num, den)
	return bigToLen(num)
}

var bigOne = big.NewInt(1)

// bigToLen converts a non-negative big count to an int length hint, reporting
// unknown when the count does not fit.
func bigToLen(n *big.Int) (int, bool) {
	if !n.IsInt64() || n.Int64() > math.MaxInt {
		return 0, false
	}
	return int(n.Int64()), true
}

// Force materializes the range. Open-ended ranges fault instead of consuming
// forever; bounded ranges drain a clone.
func (s *Range) Force() ([]value.Value, error) {
	if s.end == nil {
		return nil, fault.NewValueError("cannot force %s because it is infinite", s)
	}
	it := s.Clone()
	var out []value.Value
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

// String renders the range as "start til end by step", with "..." standing in
// for an absent end.
func (s *Range) String() string {
	if s.end == nil {
		return fmt.Sprintf("%s til ... by %s", s.cur, s.step)
	}
	return fmt.Sprintf("%s til %s by %s", s.cur, s.end, s.step)
}
