// This file implements the best-first frontier: a priority-queue-driven lazy
// expansion loop over a user callable.
package stream

import (
	"container/heap"
	"fmt"
	"slices"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// Heap explores a state space lazily in best-first order. Construction seeds
// a max-priority queue with one initial value. Each pull pops the
// highest-priority element, invokes the callable with it as the sole
// argument, pushes every element of the returned list back onto the queue,
// and yields the popped (pre-expansion) value. Pulling from an empty queue
// ends iteration without a fault.
//
// The queue needs a total order but only a partial order is available on
// values, so incomparable pairs compare as equal. Pop order among
// incomparable values is therefore implementation-defined; it is stable only
// among comparable values.
//
// A callable fault or a non-list return poisons the frontier: the fault is
// surfaced at the discovering pull and replayed on every subsequent one,
// consistent with the other combinators.
type Heap struct {
	frontier valueQueue
	fn       value.Callable
	err      error
}

// NewHeap constructs the frontier seeded with a single value.
func NewHeap(seed value.Value, fn value.Callable) *Heap {
	h := &Heap{frontier: valueQueue{seed}, fn: fn}
	heap.Init(&h.frontier)
	return h
}

// Next pops the best element, expands it through the callable and yields it.
func (s *Heap) Next() (value.Value, bool, error) {
	if s.err != nil {
		if fault.IsStop(s.err) {
			return value.Value{}, false, nil
		}
		return value.Value{}, false, s.err
	}
	if s.frontier.Len() == 0 {
		return value.Value{}, false, nil
	}
	top := heap.Pop(&s.frontier).(value.Value)
	res, err := s.fn.Call([]value.Value{top.Clone()})
	if err != nil {
		s.err = err
		if fault.IsStop(err) {
			return value.Value{}, false, nil
		}
		return value.Value{}, false, err
	}
	successors, ok := res.AsList()
	if !ok {
		s.err = fault.NewTypeError("heap callable must return a list, got %s", res)
		return value.Value{}, false, s.err
	}
	for _, v := range successors.Elems {
		heap.Push(&s.frontier, v.Clone())
	}
	return top, true, nil
}

// Clone returns an independently advanceable copy with its own frontier.
func (s *Heap) Clone() value.Stream {
	return &Heap{frontier: slices.Clone(s.frontier), fn: s.fn, err: s.err}
}

// LengthHint reports unknown: the frontier's extent depends on the callable.
func (s *Heap) LengthHint() (int, bool) { return 0, false }

// String renders the frontier with its pending size, or the stored fault.
func (s *Heap) String() string {
	switch {
	case s.err == nil:
		return fmt.Sprintf("heap(<fn %s> @ %d pending)", s.fn.Name(), s.frontier.Len())
	case fault.IsStop(s.err):
		return "heap(stopped)"
	default:
		return fmt.Sprintf("heap(error: %s)", s.err)
	}
}

// valueQueue is a max-heap of values under the derived total order
// (incomparable pairs fall back to equal).
type valueQueue []value.Value

func (q valueQueue) Len() int { return len(q) }

func (q valueQueue) Less(i, j int) bool {
	c, ok := value.Compare(q[i], q[j])
	if !ok {
		return false
	}
	return c > 0
}

func (q valueQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *valueQueue) Push(x any) { *q = append(*q, x.(value.Value)) }

func (q *valueQueue) Pop() any {
	old := *q
	n := len(old)
	v := old[n-1]
	*q = old[:n-1]
	return v
}
