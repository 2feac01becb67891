package stream

import (
	"math/big"
	"testing"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// intList builds a shared list of integer values.
func intList(ns ...int64) *value.List {
	elems := make([]value.Value, len(ns))
	for i, n := range ns {
		elems[i] = value.Int(n)
	}
	return value.NewList(elems)
}

// strList builds a shared list of string values.
func strList(ss ...string) *value.List {
	elems := make([]value.Value, len(ss))
	for i, s := range ss {
		elems[i] = value.Str(s)
	}
	return value.NewList(elems)
}

// drain pulls st to exhaustion, failing the test on any fault.
func drain(t *testing.T, st value.Stream) []value.Value {
	t.Helper()
	var out []value.Value
	for {
		v, ok, err := st.Next()
		if err != nil {
			t.Fatalf("unexpected fault while draining %s: %v", st, err)
		}
		if !ok {
			return out
		}
		out = append(out, v)
		if len(out) > 1<<20 {
			t.Fatalf("stream %s did not terminate", st)
		}
	}
}

// ints converts values to int64, failing on non-integers.
func ints(t *testing.T, vs []value.Value) []int64 {
	t.Helper()
	out := make([]int64, len(vs))
	for i, v := range vs {
		z, ok := v.AsInt()
		if !ok {
			t.Fatalf("element %d is not an int: %s", i, v)
		}
		out[i] = z.Int64()
	}
	return out
}

// listOfInts unpacks a list value produced by an enumerator into int64s.
func listOfInts(t *testing.T, v value.Value) []int64 {
	t.Helper()
	lst, ok := v.AsList()
	if !ok {
		t.Fatalf("value is not a list: %s", v)
	}
	return ints(t, lst.Elems)
}

// listOfStrs unpacks a list value produced by an enumerator into strings.
func listOfStrs(t *testing.T, v value.Value) []string {
	t.Helper()
	lst, ok := v.AsList()
	if !ok {
		t.Fatalf("value is not a list: %s", v)
	}
	out := make([]string, lst.Len())
	for i, e := range lst.Elems {
		out[i] = e.String()
	}
	return out
}

// succFn is the integer successor callable x -> x+1.
var succFn = value.GoFunc{
	FuncName: "succ",
	Fn: func(args []value.Value) (value.Value, error) {
		z, ok := args[0].AsInt()
		if !ok {
			return value.Value{}, fault.NewTypeError("succ expects an int, got %s", args[0])
		}
		return value.BigInt(new(big.Int).Add(z, big.NewInt(1))), nil
	},
}

// intsUpTo builds the shared list [0, 1, ..., n-1].
func intsUpTo(n int) *value.List {
	ns := make([]int64, n)
	for i := range ns {
		ns[i] = int64(i)
	}
	return intList(ns...)
}

// mustLen asserts an exact length hint.
func mustLen(t *testing.T, st value.Stream, want int) {
	t.Helper()
	n, ok := st.LengthHint()
	if !ok || n != want {
		t.Fatalf("%s LengthHint() = %d, %v, want %d, true", st, n, ok, want)
	}
}

// mustUnknownLen asserts the length hint is unknown.
func mustUnknownLen(t *testing.T, st value.Stream) {
	t.Helper()
	if n, ok := st.LengthHint(); ok {
		t.Fatalf("%s LengthHint() = %d, true, want unknown", st, n)
	}
}
