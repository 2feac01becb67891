// This file implements showcase mode: the built-in demo pipelines, evaluated
// concurrently and rendered in a stable order.
package app

import (
	"context"
	"fmt"
	"io"

	"golang.org/x/sync/errgroup"

	"github.com/agbru/lazyseq/internal/cli"
	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/stream"
	"github.com/agbru/lazyseq/internal/ui"
)

// showcaseExpressions are the demo pipelines, one per stream family.
var showcaseExpressions = []string{
	"range 1 20",
	"range 10 0 -2",
	"cycle a b c",
	"perms 1 2 3",
	"combos 2 w x y z",
	"subs p q r",
	"power 2 0 1",
	"iterate double 1",
	"map square range 0 8",
	"stride 3 range 0 20",
	"scan add 0 range 1 10",
	"heap countdown 5",
}

// runShowcase evaluates every demo pipeline concurrently and prints the
// results in declaration order. Each evaluation shares the lifecycle context,
// so a signal or the timeout interrupts them all.
func (a *Application) runShowcase(ctx context.Context, out io.Writer) int {
	ctx, cancel := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancel.Cleanup()

	if !a.Config.Quiet {
		fmt.Fprintf(out, "%slazyseq showcase%s - %d demo pipelines, up to %d item(s) each\n\n",
			ui.ColorBold(), ui.ColorReset(), len(showcaseExpressions), a.Config.Take)
	}

	observers := []stream.PullObserver{stream.NewMetricsObserver()}
	if a.Config.Verbose {
		observers = append(observers, stream.NewLoggingObserver(a.Logger, a.Config.LogInterval))
	}

	results := make([]cli.EvalResult, len(showcaseExpressions))
	g, ctx := errgroup.WithContext(ctx)
	for i, expr := range showcaseExpressions {
		g.Go(func() error {
			res, err := cli.Evaluate(ctx, expr, a.Config.Take, observers...)
			if err != nil {
				return fault.Wrap(err, "demo %q", expr)
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintf(a.ErrWriter, "Showcase error: %v\n", err)
		return fault.ExitErrorGeneric
	}

	exitCode := fault.ExitSuccess
	for _, res := range results {
		if a.Config.JSONOutput {
			if err := cli.PrintJSON(out, res); err != nil {
				return fault.ExitErrorGeneric
			}
		} else {
			cli.PrintResult(out, res, a.Config.Quiet)
			if !a.Config.Quiet {
				fmt.Fprintln(out)
			}
		}
		if res.Err != nil {
			exitCode = fault.ExitErrorEval
		}
	}
	return exitCode
}
