package stream

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCombinationsEnumeration(t *testing.T) {
	t.Parallel()
	s := NewCombinations(strList("a", "b", "c", "d"), 2)
	mustLen(t, s, 6)

	want := [][]string{
		{"a", "b"}, {"a", "c"}, {"a", "d"},
		{"b", "c"}, {"b", "d"},
		{"c", "d"},
	}
	got := drain(t, s)
	if len(got) != len(want) {
		t.Fatalf("produced %d combinations, want %d", len(got), len(want))
	}
	for i, v := range got {
		if diff := cmp.Diff(want[i], listOfStrs(t, v)); diff != "" {
			t.Errorf("combination %d mismatch (-want +got):\n%s", i, diff)
		}
	}
	mustLen(t, s, 0)
}

func TestCombinationsEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("k greater than n is immediately terminal", func(t *testing.T) {
		t.Parallel()
		s := NewCombinations(intList(1, 2), 3)
		if _, ok, _ := s.Next(); ok {
			t.Error("k > n must produce nothing")
		}
		mustLen(t, s, 0)
		if s.String() != "combinations(done)" {
			t.Errorf("String() = %q", s.String())
		}
	})

	t.Run("k zero yields one empty combination", func(t *testing.T) {
		t.Parallel()
		s := NewCombinations(intList(1, 2, 3), 0)
		mustLen(t, s, 1)
		got := drain(t, s)
		if len(got) != 1 {
			t.Fatalf("produced %d items, want 1", len(got))
		}
		if vs := listOfInts(t, got[0]); len(vs) != 0 {
			t.Errorf("combination of size 0 = %v", vs)
		}
	})

	t.Run("k equals n yields the whole buffer once", func(t *testing.T) {
		t.Parallel()
		s := NewCombinations(intList(1, 2, 3), 3)
		got := drain(t, s)
		if len(got) != 1 {
			t.Fatalf("produced %d items, want 1", len(got))
		}
		if diff := cmp.Diff([]int64{1, 2, 3}, listOfInts(t, got[0])); diff != "" {
			t.Errorf("mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("negative k is terminal", func(t *testing.T) {
		t.Parallel()
		s := NewCombinations(intList(1), -1)
		if _, ok, _ := s.Next(); ok {
			t.Error("negative k must produce nothing")
		}
	})
}

func TestCombinationsLengthTracksRemaining(t *testing.T) {
	t.Parallel()
	// C(5, 2) = 10
	s := NewCombinations(intList(0, 1, 2, 3, 4), 2)
	for i := 10; i > 0; i-- {
		mustLen(t, s, i)
		if _, ok, err := s.Next(); !ok || err != nil {
			t.Fatalf("pull at remaining=%d: ok=%v err=%v", i, ok, err)
		}
	}
	mustLen(t, s, 0)
}

func TestCombinationsCloneSharesBufferNotState(t *testing.T) {
	t.Parallel()
	s := NewCombinations(intList(0, 1, 2), 2)
	fork := s.Clone()

	drain(t, fork)

	// The original still enumerates from the start.
	got := drain(t, s)
	if len(got) != 3 {
		t.Fatalf("original produced %d items after fork drained, want 3", len(got))
	}
}
