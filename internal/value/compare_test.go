package value

import "testing"

func TestComparePartialOrder(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		a, b Value
		want int
		ok   bool
	}{
		{"null equal", Null, Null, 0, true},
		{"ints less", Int(1), Int(2), -1, true},
		{"ints greater", Int(3), Int(2), 1, true},
		{"ints equal", Int(5), Int(5), 0, true},
		{"strings", Str("apple"), Str("banana"), -1, true},
		{"bools", Bool(false), Bool(true), -1, true},
		{"bool equal", Bool(true), Bool(true), 0, true},
		{"mismatched tags", Int(1), Str("1"), 0, false},
		{"null vs int", Null, Int(0), 0, false},
		{"lists lexicographic", ListValue(Int(1), Int(2)), ListValue(Int(1), Int(3)), -1, true},
		{"list prefix shorter", ListValue(Int(1)), ListValue(Int(1), Int(0)), -1, true},
		{"lists equal", ListValue(Str("a")), ListValue(Str("a")), 0, true},
		{"lists incomparable elements", ListValue(Int(1), Str("x")), ListValue(Int(1), Int(2)), 0, false},
		{"incomparable tail ignored after decision", ListValue(Int(1), Str("x")), ListValue(Int(2), Int(9)), -1, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Compare(tc.a, tc.b)
			if ok != tc.ok {
				t.Fatalf("Compare(%s, %s) ok = %v, want %v", tc.a, tc.b, ok, tc.ok)
			}
			if ok && sign(got) != tc.want {
				t.Errorf("Compare(%s, %s) = %d, want sign %d", tc.a, tc.b, got, tc.want)
			}
		})
	}
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	default:
		return 0
	}
}

func TestEqual(t *testing.T) {
	t.Parallel()
	if !Equal(Int(3), Int(3)) {
		t.Error("equal ints must be Equal")
	}
	if Equal(Int(3), Str("3")) {
		t.Error("incomparable values must not be Equal")
	}
}
