// This file implements the partial order over dynamic values. Comparison is
// undefined between incompatible variants; callers that need a total order
// (the best-first frontier) treat incomparable pairs as equal.
package value

import "math/big"

// Compare compares two values under the partial order.
//
// The result follows the usual convention: negative when a < b, zero when
// a == b, positive when a > b. ok is false when the pair is incomparable
// (mismatched tags, or lists whose elements are incomparable).
func Compare(a, b Value) (int, bool) {
	if a.Tag != b.Tag {
		return 0, false
	}
	switch a.Tag {
	case TagNull:
		return 0, true
	case TagBool:
		av, bv := a.Data.(bool), b.Data.(bool)
		switch {
		case av == bv:
			return 0, true
		case av:
			return 1, true
		default:
			return -1, true
		}
	case TagInt:
		return a.Data.(*big.Int).Cmp(b.Data.(*big.Int)), true
	case TagStr:
		as, bs := a.Data.(string), b.Data.(string)
		switch {
		case as == bs:
			return 0, true
		case as < bs:
			return -1, true
		default:
			return 1, true
		}
	case TagSeq:
		al, aok := a.AsList()
		bl, bok := b.AsList()
		if !aok || !bok {
			// Streams have no defined order without forcing them.
			return 0, false
		}
		return compareLists(al, bl)
	default:
		return 0, false
	}
}

// compareLists compares two materialized lists lexicographically, element by
// element. The pair is incomparable as soon as a pair of elements is.
func compareLists(a, b *List) (int, bool) {
	n := min(a.Len(), b.Len())
	for i := 0; i < n; i++ {
		c, ok := Compare(a.Elems[i], b.Elems[i])
		if !ok {
			return 0, false
		}
		if c != 0 {
			return c, true
		}
	}
	switch {
	case a.Len() == b.Len():
		return 0, true
	case a.Len() < b.Len():
		return -1, true
	default:
		return 1, true
	}
}

// Equal reports whether a and b compare equal under the partial order.
// Incomparable pairs are not equal.
func Equal(a, b Value) bool {
	c, ok := Compare(a, b)
	return ok && c == 0
}
