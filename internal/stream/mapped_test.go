package stream

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// squareFn is the callable x -> x*x.
var squareFn = value.GoFunc{
	FuncName: "square",
	Fn: func(args []value.Value) (value.Value, error) {
		z, ok := args[0].AsInt()
		if !ok {
			return value.Value{}, fault.NewTypeError("square expects an int, got %s", args[0])
		}
		return value.BigInt(new(big.Int).Mul(z, z)), nil
	},
}

func TestMappedOverRange(t *testing.T) {
	t.Parallel()
	inner := NewRange(big.NewInt(0), big.NewInt(3), big.NewInt(1))
	s := NewMapped(inner, squareFn)

	got := drain(t, s)
	if diff := cmp.Diff([]int64{0, 1, 4}, ints(t, got)); diff != "" {
		t.Errorf("mapped values mismatch (-want +got):\n%s", diff)
	}

	// Exhaustion is sticky.
	if _, ok, err := s.Next(); ok || err != nil {
		t.Errorf("Next() after exhaustion = _, %v, %v, want false, nil", ok, err)
	}
	if s.String() != "map(stopped)" {
		t.Errorf("String() = %q", s.String())
	}
}

func TestMappedCallableFaultPoisons(t *testing.T) {
	t.Parallel()
	cyc, err := NewCycle(strList("oops"))
	if err != nil {
		t.Fatal(err)
	}
	s := NewMapped(cyc, squareFn)

	if _, ok, err := s.Next(); ok || err == nil {
		t.Fatalf("Next() = _, %v, %v, want false, fault", ok, err)
	}
	for range 3 {
		if _, ok, err := s.Next(); ok || err == nil {
			t.Fatalf("poisoned Next() = _, %v, %v, want false, fault", ok, err)
		}
	}
	if _, ok, err := s.Clone().Next(); ok || err == nil {
		t.Errorf("cloned poisoned Next() = _, %v, %v, want false, fault", ok, err)
	}
}

func TestMappedCallableStopEndsQuietly(t *testing.T) {
	t.Parallel()
	stopAtTwo := value.GoFunc{
		FuncName: "stopAtTwo",
		Fn: func(args []value.Value) (value.Value, error) {
			z, _ := args[0].AsInt()
			if z.Int64() >= 2 {
				return value.Value{}, fault.ErrStopIteration
			}
			return args[0], nil
		},
	}

	inner := NewRange(big.NewInt(0), nil, big.NewInt(1))
	s := NewMapped(inner, stopAtTwo)

	got := drain(t, s)
	if diff := cmp.Diff([]int64{0, 1}, ints(t, got)); diff != "" {
		t.Errorf("values before stop mismatch (-want +got):\n%s", diff)
	}
	if _, ok, err := s.Next(); ok || err != nil {
		t.Errorf("Next() after stop = _, %v, %v, want false, nil", ok, err)
	}
}

func TestMappedCloneIndependence(t *testing.T) {
	t.Parallel()
	inner := NewRange(big.NewInt(0), big.NewInt(6), big.NewInt(1))
	s := NewMapped(inner, squareFn)
	s.Next()

	fork := s.Clone()
	drain(t, fork)

	got := drain(t, s)
	if diff := cmp.Diff([]int64{1, 4, 9, 16, 25}, ints(t, got)); diff != "" {
		t.Errorf("original after fork drained (-want +got):\n%s", diff)
	}
}
