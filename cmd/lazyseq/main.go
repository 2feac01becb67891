// Command lazyseq is a playground for the lazy-sequence evaluation core: it
// constructs stream pipelines from simple expressions, drains a bounded
// prefix and renders the outcome as text or JSON. It also offers an
// interactive REPL and a concurrent showcase of the built-in demos.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/agbru/lazyseq/internal/app"
	"github.com/agbru/lazyseq/internal/fault"
)

func main() {
	if app.HasVersionFlag(os.Args[1:]) {
		app.PrintVersion(os.Stdout)
		os.Exit(fault.ExitSuccess)
	}

	application, err := app.New(os.Args, os.Stderr)
	if err != nil {
		if app.IsHelpError(err) {
			os.Exit(fault.ExitSuccess)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(fault.ExitErrorConfig)
	}

	os.Exit(application.Run(context.Background(), os.Stdout))
}
