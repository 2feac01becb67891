// This file implements the shared copy-on-write index state used by the
// combinatorial enumerators, plus the helpers they have in common.
package stream

import (
	"slices"
	"strings"

	"github.com/agbru/lazyseq/internal/value"
)

// cowState is a copy-on-write index vector. Cloning an enumerator shares the
// underlying slice between both forks in O(1); the first fork to mutate its
// state copies it first. Evaluation is single-threaded, so the owned flag
// needs no synchronization.
type cowState[T comparable] struct {
	elems []T
	owned bool
}

// newState constructs an owned state over elems.
func newState[T comparable](elems []T) *cowState[T] {
	return &cowState[T]{elems: elems, owned: true}
}

// view returns the state for read-only access.
func (c *cowState[T]) view() []T { return c.elems }

// mutable returns the state for in-place mutation, copying it first if it is
// still shared with a fork.
func (c *cowState[T]) mutable() []T {
	if !c.owned {
		c.elems = slices.Clone(c.elems)
		c.owned = true
	}
	return c.elems
}

// clone shares the state with a new fork. Both sides lose ownership and will
// copy on their next mutation.
func (c *cowState[T]) clone() *cowState[T] {
	c.owned = false
	return &cowState[T]{elems: c.elems, owned: false}
}

// materialize builds the output list for the current index vector by indexing
// the shared buffer.
func materialize(buf *value.List, idx []int) value.Value {
	elems := make([]value.Value, len(idx))
	for i, j := range idx {
		elems[i] = buf.Elems[j].Clone()
	}
	return value.ListValue(elems...)
}

// indexNotation renders an index vector for state displays such as
// "permutations(a, b, c @ 0, 2, 1)".
func indexNotation[T any](idx []T, render func(T) string) string {
	parts := make([]string, len(idx))
	for i, v := range idx {
		parts[i] = render(v)
	}
	return strings.Join(parts, ", ")
}
