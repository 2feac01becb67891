// This file defines the built-in callables available to expressions.
package cli

import (
	"math/big"
	"sort"
	"strings"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/value"
)

// builtins maps function names usable in expressions to callables. Unary
// functions serve iterate/map, "add" is the binary fold for scan, and
// "countdown" is a heap expander.
var builtins = map[string]value.Callable{
	"succ":      intUnary("succ", func(z *big.Int) *big.Int { return new(big.Int).Add(z, big.NewInt(1)) }),
	"pred":      intUnary("pred", func(z *big.Int) *big.Int { return new(big.Int).Sub(z, big.NewInt(1)) }),
	"double":    intUnary("double", func(z *big.Int) *big.Int { return new(big.Int).Lsh(z, 1) }),
	"square":    intUnary("square", func(z *big.Int) *big.Int { return new(big.Int).Mul(z, z) }),
	"negate":    intUnary("negate", func(z *big.Int) *big.Int { return new(big.Int).Neg(z) }),
	"add":       addFunc,
	"countdown": countdownFunc,
}

// LookupFunc resolves a function name from the built-in registry.
func LookupFunc(name string) (value.Callable, error) {
	fn, ok := builtins[name]
	if !ok {
		return nil, fault.NewValueError("unknown function %q (available: %s)", name, FuncNames())
	}
	return fn, nil
}

// FuncNames lists the built-in function names, sorted, for help output.
func FuncNames() string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return strings.Join(names, ", ")
}

// intUnary adapts an integer function into a callable that type-checks its
// argument.
func intUnary(name string, fn func(*big.Int) *big.Int) value.Callable {
	return value.GoFunc{
		FuncName: name,
		Fn: func(args []value.Value) (value.Value, error) {
			z, ok := args[0].AsInt()
			if !ok {
				return value.Value{}, fault.NewTypeError("%s expects an int, got %s", name, args[0])
			}
			return value.BigInt(fn(z)), nil
		},
	}
}

// addFunc is the binary fold (acc, x) -> acc + x used by scan.
var addFunc = value.GoFunc{
	FuncName: "add",
	Fn: func(args []value.Value) (value.Value, error) {
		if len(args) != 2 {
			return value.Value{}, fault.NewTypeError("add expects two arguments, got %d", len(args))
		}
		a, ok := args[0].AsInt()
		if !ok {
			return value.Value{}, fault.NewTypeError("add expects ints, got %s", args[0])
		}
		b, ok := args[1].AsInt()
		if !ok {
			return value.Value{}, fault.NewTypeError("add expects ints, got %s", args[1])
		}
		return value.BigInt(new(big.Int).Add(a, b)), nil
	},
}

// countdownFunc expands n into [n-1] until zero, for heap demos: seeded with
// n it yields n, n-1, ..., 0.
var countdownFunc = value.GoFunc{
	FuncName: "countdown",
	Fn: func(args []value.Value) (value.Value, error) {
		z, ok := args[0].AsInt()
		if !ok {
			return value.Value{}, fault.NewTypeError("countdown expects an int, got %s", args[0])
		}
		if z.Sign() <= 0 {
			return value.ListValue(), nil
		}
		return value.ListValue(value.BigInt(new(big.Int).Sub(z, big.NewInt(1)))), nil
	},
}
