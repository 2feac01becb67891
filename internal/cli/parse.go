// The cli package provides the command-line playground around the stream
// core: a small expression parser that constructs stream pipelines, output
// rendering, spinner-backed progress, and an interactive REPL.
package cli

import (
	"math/big"
	"strings"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/stream"
	"github.com/agbru/lazyseq/internal/value"
)

// Parsed is the result of parsing one stream expression.
type Parsed struct {
	// Stream is the constructed pipeline.
	Stream value.Stream
	// Kind is the outermost stream kind, used as the observer label.
	Kind string
}

// ParseExpression parses a whitespace-separated stream expression into a
// pipeline, e.g.:
//
//	perms a b c
//	range 0 100 3
//	map square range 0 10
//	scan add 0 cycle 1 2 3
//	heap countdown 5
//
// Combinator forms (map, stride, scan) consume the remainder of the
// expression as their inner stream, so pipelines nest without parentheses.
func ParseExpression(expr string) (Parsed, error) {
	tokens := strings.Fields(expr)
	if len(tokens) == 0 {
		return Parsed{}, fault.NewValueError("empty expression")
	}
	p, rest, err := parseTokens(tokens)
	if err != nil {
		return Parsed{}, err
	}
	if len(rest) > 0 {
		return Parsed{}, fault.NewValueError("trailing tokens after expression: %s", strings.Join(rest, " "))
	}
	return p, nil
}

// parseTokens consumes one expression from the front of tokens and returns
// the unconsumed remainder. Clause forms take a fixed number of arguments;
// combinator forms recurse into the remainder.
func parseTokens(tokens []string) (Parsed, []string, error) {
	head, rest := tokens[0], tokens[1:]
	switch head {
	case "repeat":
		if len(rest) != 1 {
			return Parsed{}, nil, fault.NewValueError("repeat takes exactly one value")
		}
		return Parsed{Stream: stream.NewRepeat(parseValue(rest[0])), Kind: "repeat"}, nil, nil

	case "cycle":
		st, err := stream.NewCycle(parseValues(rest))
		if err != nil {
			return Parsed{}, nil, err
		}
		return Parsed{Stream: st, Kind: "cycle"}, nil, nil

	case "range":
		st, err := parseRange(rest)
		if err != nil {
			return Parsed{}, nil, err
		}
		return Parsed{Stream: st, Kind: "range"}, nil, nil

	case "perms":
		return Parsed{Stream: stream.NewPermutations(parseValues(rest)), Kind: "permutations"}, nil, nil

	case "combos":
		if len(rest) < 1 {
			return Parsed{}, nil, fault.NewValueError("combos takes a size followed by buffer values")
		}
		k, err := parseSmallInt(rest[0])
		if err != nil {
			return Parsed{}, nil, err
		}
		return Parsed{Stream: stream.NewCombinations(parseValues(rest[1:]), k), Kind: "combinations"}, nil, nil

	case "subs":
		return Parsed{Stream: stream.NewSubsequences(parseValues(rest)), Kind: "subsequences"}, nil, nil

	case "power":
		if len(rest) < 1 {
			return Parsed{}, nil, fault.NewValueError("power takes an exponent followed by buffer values")
		}
		n, err := parseSmallInt(rest[0])
		if err != nil {
			return Parsed{}, nil, err
		}
		return Parsed{Stream: stream.NewCartesianPower(parseValues(rest[1:]), n), Kind: "cartesian"}, nil, nil

	case "iterate":
		if len(rest) != 2 {
			return Parsed{}, nil, fault.NewValueError("iterate takes a function name and a seed")
		}
		fn, err := LookupFunc(rest[0])
		if err != nil {
			return Parsed{}, nil, err
		}
		return Parsed{Stream: stream.NewIterate(parseValue(rest[1]), fn), Kind: "iterate"}, nil, nil

	case "map":
		if len(rest) < 2 {
			return Parsed{}, nil, fault.NewValueError("map takes a function name and an inner expression")
		}
		fn, err := LookupFunc(rest[0])
		if err != nil {
			return Parsed{}, nil, err
		}
		inner, left, err := parseTokens(rest[1:])
		if err != nil {
			return Parsed{}, nil, err
		}
		return Parsed{Stream: stream.NewMapped(inner.Stream, fn), Kind: "map"}, left, nil

	case "stride":
		if len(rest) < 2 {
			return Parsed{}, nil, fault.NewValueError("stride takes a step count and an inner expression")
		}
		n, err := parseSmallInt(rest[0])
		if err != nil {
			return Parsed{}, nil, err
		}
		inner, left, err := parseTokens(rest[1:])
		if err != nil {
			return Parsed{}, nil, err
		}
		st, err := stream.NewStrided(inner.Stream, n)
		if err != nil {
			return Parsed{}, nil, err
		}
		return Parsed{Stream: st, Kind: "stride"}, left, nil

	case "scan":
		if len(rest) < 3 {
			return Parsed{}, nil, fault.NewValueError("scan takes a function name, an initial value and an inner expression")
		}
		fn, err := LookupFunc(rest[0])
		if err != nil {
			return Parsed{}, nil, err
		}
		inner, left, err := parseTokens(rest[2:])
		if err != nil {
			return Parsed{}, nil, err
		}
		return Parsed{Stream: stream.NewScanned(inner.Stream, parseValue(rest[1]), fn), Kind: "scan"}, left, nil

	case "heap":
		if len(rest) != 2 {
			return Parsed{}, nil, fault.NewValueError("heap takes a function name and a seed")
		}
		fn, err := LookupFunc(rest[0])
		if err != nil {
			return Parsed{}, nil, err
		}
		return Parsed{Stream: stream.NewHeap(parseValue(rest[1]), fn), Kind: "heap"}, nil, nil

	default:
		return Parsed{}, nil, fault.NewValueError("unknown stream kind %q (see 'help' for the grammar)", head)
	}
}

// parseRange handles "range <start> [<end>|..] [<step>]". ".." makes the
// range open-ended; the step defaults to 1.
func parseRange(args []string) (value.Stream, error) {
	if len(args) < 1 || len(args) > 3 {
		return nil, fault.NewValueError("range takes a start, an optional end ('..' for open) and an optional step")
	}
	start, ok := new(big.Int).SetString(args[0], 10)
	if !ok {
		return nil, fault.NewValueError("range start must be an integer, got %q", args[0])
	}
	var end *big.Int
	if len(args) >= 2 && args[1] != ".." {
		end, ok = new(big.Int).SetString(args[1], 10)
		if !ok {
			return nil, fault.NewValueError("range end must be an integer or '..', got %q", args[1])
		}
	}
	step := big.NewInt(1)
	if len(args) == 3 {
		step, ok = new(big.Int).SetString(args[2], 10)
		if !ok {
			return nil, fault.NewValueError("range step must be an integer, got %q", args[2])
		}
	}
	return stream.NewRange(start, end, step), nil
}

// parseValue interprets a token as a dynamic value: integers, booleans and
// "null" parse to their typed forms, everything else is a string.
func parseValue(tok string) value.Value {
	switch tok {
	case "null":
		return value.Null
	case "true":
		return value.Bool(true)
	case "false":
		return value.Bool(false)
	}
	if z, ok := new(big.Int).SetString(tok, 10); ok {
		return value.BigInt(z)
	}
	return value.Str(tok)
}

// parseValues interprets tokens as a shared buffer.
func parseValues(tokens []string) *value.List {
	elems := make([]value.Value, len(tokens))
	for i, tok := range tokens {
		elems[i] = parseValue(tok)
	}
	return value.NewList(elems)
}

// parseSmallInt parses a token as a machine int for sizes and strides.
func parseSmallInt(tok string) (int, error) {
	z, ok := new(big.Int).SetString(tok, 10)
	if !ok || !z.IsInt64() || z.Int64() != int64(int(z.Int64())) {
		return 0, fault.NewValueError("expected a machine-sized integer, got %q", tok)
	}
	return int(z.Int64()), nil
}
