// This file drives the evaluation of a parsed expression: bounded draining
// with cancellation, instrumented through pull observers.
package cli

import (
	"context"
	"time"

	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/stream"
	"github.com/agbru/lazyseq/internal/value"
)

// EvalResult captures one bounded drain of an evaluated expression.
type EvalResult struct {
	// Expression is the source expression.
	Expression string
	// Kind is the outermost stream kind.
	Kind string
	// Display is the stream's rendering after the drain.
	Display string
	// Items holds the drained prefix in pull order.
	Items []value.Value
	// Length is the remaining count reported before the drain, when known.
	Length *int
	// Truncated is true when the drain stopped at the item bound rather
	// than at exhaustion.
	Truncated bool
	// Duration is the wall-clock time of the drain.
	Duration time.Duration
	// Err carries the fault that ended the drain, if any. Parse errors are
	// returned by Evaluate instead.
	Err error
}

// Evaluate parses expr, drains up to maxItems from the resulting pipeline and
// reports what was seen. The context bounds the drain: cancellation or
// timeout interrupts an unproductive (or infinite) pipeline between pulls.
// Observers receive one update per produced item.
func Evaluate(ctx context.Context, expr string, maxItems int, observers ...stream.PullObserver) (EvalResult, error) {
	parsed, err := ParseExpression(expr)
	if err != nil {
		return EvalResult{}, err
	}

	st := value.Stream(stream.NewObserved(parsed.Stream, parsed.Kind, observers...))
	res := EvalResult{Expression: expr, Kind: parsed.Kind}
	if n, ok := st.LengthHint(); ok {
		res.Length = &n
	}

	start := time.Now()
	for len(res.Items) < maxItems {
		if err := ctx.Err(); err != nil {
			res.Err = fault.Wrap(err, "evaluation interrupted")
			break
		}
		v, ok, err := st.Next()
		if err != nil {
			res.Err = err
			break
		}
		if !ok {
			break
		}
		res.Items = append(res.Items, v)
	}
	res.Duration = time.Since(start)
	res.Display = st.String()

	// The drain is truncated when the bound was hit with items still
	// pending. Without a known remaining count, hitting the bound is
	// reported as truncation.
	if res.Err == nil && len(res.Items) == maxItems {
		if n, ok := st.LengthHint(); !ok || n > 0 {
			res.Truncated = true
		}
	}
	return res, nil
}
