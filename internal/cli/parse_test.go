package cli

import (
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// evalItems drains an expression and returns the display form of each item.
func evalItems(t *testing.T, expr string, take int) []string {
	t.Helper()
	res, err := Evaluate(context.Background(), expr, take)
	if err != nil {
		t.Fatalf("Evaluate(%q) error: %v", expr, err)
	}
	if res.Err != nil {
		t.Fatalf("Evaluate(%q) faulted after %d item(s): %v", expr, len(res.Items), res.Err)
	}
	out := make([]string, len(res.Items))
	for i, v := range res.Items {
		out[i] = v.String()
	}
	return out
}

func TestParseExpressionKinds(t *testing.T) {
	t.Parallel()
	cases := []struct {
		expr string
		kind string
	}{
		{expr: "repeat x", kind: "repeat"},
		{expr: "cycle 1 2 3", kind: "cycle"},
		{expr: "range 0 10", kind: "range"},
		{expr: "perms a b", kind: "permutations"},
		{expr: "combos 2 a b c", kind: "combinations"},
		{expr: "subs a b", kind: "subsequences"},
		{expr: "power 2 0 1", kind: "cartesian"},
		{expr: "iterate succ 0", kind: "iterate"},
		{expr: "map square range 0 5", kind: "map"},
		{expr: "stride 2 range 0 10", kind: "stride"},
		{expr: "scan add 0 range 1 5", kind: "scan"},
		{expr: "heap countdown 3", kind: "heap"},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			p, err := ParseExpression(tc.expr)
			if err != nil {
				t.Fatalf("ParseExpression(%q) error: %v", tc.expr, err)
			}
			if p.Kind != tc.kind {
				t.Errorf("kind = %q, want %q", p.Kind, tc.kind)
			}
		})
	}
}

func TestParseExpressionErrors(t *testing.T) {
	t.Parallel()
	cases := []string{
		"",
		"frobnicate 1 2",
		"repeat",
		"repeat a b",
		"cycle",
		"range",
		"range x",
		"range 0 10 2 9",
		"iterate nosuchfn 0",
		"map nosuchfn range 0 3",
		"stride 0 range 0 3",
		"combos x a b",
		"range 0 10 extra-tokens-after kind",
	}
	for _, expr := range cases {
		if _, err := ParseExpression(expr); err == nil {
			t.Errorf("ParseExpression(%q) accepted, want error", expr)
		}
	}
}

func TestEvaluatePipelines(t *testing.T) {
	t.Parallel()
	cases := []struct {
		expr string
		take int
		want []string
	}{
		{expr: "range 1 6", take: 10, want: []string{"1", "2", "3", "4", "5"}},
		{expr: "range 5 0 -2", take: 10, want: []string{"5", "3", "1"}},
		{expr: "repeat x", take: 3, want: []string{"x", "x", "x"}},
		{expr: "cycle a b", take: 5, want: []string{"a", "b", "a", "b", "a"}},
		{expr: "map square range 0 4", take: 10, want: []string{"0", "1", "4", "9"}},
		{expr: "stride 2 range 0 7", take: 10, want: []string{"0", "2", "4", "6"}},
		{expr: "scan add 0 range 1 5", take: 10, want: []string{"0", "1", "3", "6", "10"}},
		{expr: "iterate double 1", take: 5, want: []string{"1", "2", "4", "8", "16"}},
		{expr: "heap countdown 3", take: 10, want: []string{"3", "2", "1", "0"}},
		{expr: "power 2 0 1", take: 10, want: []string{"[0, 0]", "[0, 1]", "[1, 0]", "[1, 1]"}},
		{expr: "map negate iterate succ 0", take: 4, want: []string{"0", "-1", "-2", "-3"}},
	}
	for _, tc := range cases {
		t.Run(tc.expr, func(t *testing.T) {
			t.Parallel()
			got := evalItems(t, tc.expr, tc.take)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("items mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEvaluateReportsLengthAndTruncation(t *testing.T) {
	t.Parallel()

	t.Run("finite enumeration reports length and no truncation", func(t *testing.T) {
		t.Parallel()
		res, err := Evaluate(context.Background(), "perms 1 2 3", 10)
		if err != nil {
			t.Fatal(err)
		}
		if res.Length == nil || *res.Length != 6 {
			t.Errorf("Length = %v, want 6", res.Length)
		}
		if res.Truncated {
			t.Error("fully drained enumeration marked truncated")
		}
	})

	t.Run("open-ended stream is truncated at the bound", func(t *testing.T) {
		t.Parallel()
		res, err := Evaluate(context.Background(), "range 0 ..", 5)
		if err != nil {
			t.Fatal(err)
		}
		if res.Length != nil {
			t.Errorf("Length = %v, want unknown", res.Length)
		}
		if len(res.Items) != 5 || !res.Truncated {
			t.Errorf("items=%d truncated=%v, want 5 items truncated", len(res.Items), res.Truncated)
		}
	})

	t.Run("bound equal to remaining count is not truncated", func(t *testing.T) {
		t.Parallel()
		res, err := Evaluate(context.Background(), "range 0 4", 4)
		if err != nil {
			t.Fatal(err)
		}
		if res.Truncated {
			t.Error("exact-bound drain marked truncated")
		}
	})
}

func TestEvaluateSurfacesStreamFault(t *testing.T) {
	t.Parallel()
	// square over strings faults on the first pull.
	res, err := Evaluate(context.Background(), "map square cycle a b", 5)
	if err != nil {
		t.Fatal(err)
	}
	if res.Err == nil {
		t.Fatal("expected an evaluation fault")
	}
	if len(res.Items) != 0 {
		t.Errorf("faulting pipeline produced %d item(s)", len(res.Items))
	}
}

func TestEvaluateHonorsCancellation(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := Evaluate(ctx, "repeat x", 1000)
	if err != nil {
		t.Fatal(err)
	}
	if res.Err == nil {
		t.Error("canceled evaluation did not report an error")
	}
}

func TestLookupFunc(t *testing.T) {
	t.Parallel()
	if _, err := LookupFunc("succ"); err != nil {
		t.Errorf("LookupFunc(succ) error: %v", err)
	}
	if _, err := LookupFunc("nosuch"); err == nil {
		t.Error("LookupFunc(nosuch) accepted")
	}
	names := strings.Split(FuncNames(), ", ")
	for _, want := range []string{"succ", "add", "countdown", "square"} {
		if !slices.Contains(names, want) {
			t.Errorf("FuncNames() = %q, missing %q", names, want)
		}
	}
}
