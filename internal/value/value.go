// Package value provides the dynamic value substrate consumed by the lazy
// evaluation core: a tagged dynamic Value, shared immutable lists, the
// Sequence boundary type, and the Stream capability contract.
package value

import (
	"fmt"
	"math/big"
	"strings"
)

// Tag enumerates the runtime kinds a Value may hold.
// The tag determines which Go type Value.Data carries (see Value docs).
type Tag int

const (
	TagNull Tag = iota // null (no payload)
	TagBool            // bool
	TagInt             // *big.Int (arbitrary precision)
	TagStr             // string
	TagSeq             // Sequence (materialized list or boxed stream)
	TagFunc            // Callable
)

// Value is the universal runtime carrier used by the evaluation core.
//
// Fields:
//   - Tag  — discriminant indicating which case is active.
//   - Data — Go value appropriate for Tag (e.g., *big.Int for TagInt).
//
// Invariants:
//   - When Tag==TagNull, Data is nil.
//   - A *big.Int payload is never mutated after being wrapped; producers that
//     advance an internal big.Int counter must wrap a fresh copy. This makes
//     Clone a cheap shallow copy.
//   - List payloads are shared immutable collections (see List).
type Value struct {
	Tag  Tag
	Data any
}

// Null is the singleton null Value (no payload).
var Null = Value{Tag: TagNull}

// Bool constructs a boolean Value.
func Bool(b bool) Value { return Value{Tag: TagBool, Data: b} }

// Int constructs an arbitrary-precision integer Value from an int64.
func Int(n int64) Value { return Value{Tag: TagInt, Data: big.NewInt(n)} }

// BigInt constructs an integer Value wrapping z. The caller must not mutate z
// afterwards (see Value invariants).
func BigInt(z *big.Int) Value { return Value{Tag: TagInt, Data: z} }

// Str constructs a string Value.
func Str(s string) Value { return Value{Tag: TagStr, Data: s} }

// Seq constructs a Value wrapping a Sequence.
func Seq(s Sequence) Value { return Value{Tag: TagSeq, Data: s} }

// ListValue constructs a Value holding a materialized list of the given
// elements. The slice is owned by the new list afterwards.
func ListValue(elems ...Value) Value {
	return Seq(ListSeq(NewList(elems)))
}

// Func constructs a Value holding a callable.
func Func(f Callable) Value { return Value{Tag: TagFunc, Data: f} }

// Clone returns an independently usable copy of v. Payloads are immutable by
// convention, so the copy is shallow and O(1).
func (v Value) Clone() Value { return v }

// AsInt returns the integer payload of v, or false if v is not an integer.
func (v Value) AsInt() (*big.Int, bool) {
	if v.Tag != TagInt {
		return nil, false
	}
	return v.Data.(*big.Int), true
}

// AsSeq returns the sequence payload of v, or false if v is not a sequence.
func (v Value) AsSeq() (Sequence, bool) {
	if v.Tag != TagSeq {
		return Sequence{}, false
	}
	return v.Data.(Sequence), true
}

// AsList returns the materialized list payload of v, or false if v is not a
// sequence backed by a list.
func (v Value) AsList() (*List, bool) {
	s, ok := v.AsSeq()
	if !ok || s.list == nil {
		return nil, false
	}
	return s.list, true
}

// AsCallable returns the callable payload of v, or false if v is not a
// function value.
func (v Value) AsCallable() (Callable, bool) {
	if v.Tag != TagFunc {
		return nil, false
	}
	return v.Data.(Callable), true
}

// String renders a human-friendly representation of v in the informal
// notation used by stream displays.
func (v Value) String() string {
	switch v.Tag {
	case TagNull:
		return "null"
	case TagBool:
		if v.Data.(bool) {
			return "true"
		}
		return "false"
	case TagInt:
		return v.Data.(*big.Int).String()
	case TagStr:
		return v.Data.(string)
	case TagSeq:
		return v.Data.(Sequence).String()
	case TagFunc:
		return fmt.Sprintf("<fn %s>", v.Data.(Callable).Name())
	default:
		return "<unknown>"
	}
}

// CommaSeparated renders a slice of values joined by ", ", matching the
// notation used inside stream displays such as "cycle(1, 2, 3)".
func CommaSeparated(vs []Value) string {
	parts := make([]string, len(vs))
	for i, v := range vs {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}
