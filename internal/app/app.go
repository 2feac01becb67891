// Package app provides the core application structure for the lazyseq CLI.
// It handles application lifecycle, mode dispatching, and version management.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/agbru/lazyseq/internal/cli"
	"github.com/agbru/lazyseq/internal/config"
	"github.com/agbru/lazyseq/internal/fault"
	"github.com/agbru/lazyseq/internal/stream"
	"github.com/agbru/lazyseq/internal/ui"
)

// Application represents the lazyseq application instance. It encapsulates
// the configuration and provides methods to run the application in its
// various modes (one-shot evaluation, REPL, showcase).
type Application struct {
	// Config holds the parsed application configuration.
	Config config.AppConfig
	// Logger is the structured logger for pull instrumentation.
	Logger zerolog.Logger
	// ErrWriter is the writer for error output (typically os.Stderr).
	ErrWriter io.Writer
}

// New creates a new Application instance by parsing command-line arguments.
// It validates the configuration and returns an error if parsing or
// validation fails.
func New(args []string, errWriter io.Writer) (*Application, error) {
	programName := "lazyseq"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}

	level := zerolog.InfoLevel
	if cfg.Verbose {
		level = zerolog.DebugLevel
	}
	if cfg.Quiet {
		level = zerolog.ErrorLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: errWriter}).
		Level(level).
		With().Timestamp().Logger()

	return &Application{
		Config:    cfg,
		Logger:    logger,
		ErrWriter: errWriter,
	}, nil
}

// Run executes the application based on the configured mode and returns the
// process exit code. With no expression and no explicit mode, the showcase
// runs.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	// Initialize CLI theme (respects --no-color flag and NO_COLOR env var)
	ui.InitTheme(a.Config.NoColor)

	if a.Config.Interactive {
		return a.runREPL(ctx)
	}
	if a.Config.Eval != "" {
		return a.runEval(ctx, out)
	}
	return a.runShowcase(ctx, out)
}

// runREPL starts the interactive REPL mode.
func (a *Application) runREPL(ctx context.Context) int {
	ctx, stopSignals := SetupSignals(ctx)
	defer stopSignals()

	repl := cli.NewREPL(cli.REPLConfig{
		Take:       a.Config.Take,
		JSONOutput: a.Config.JSONOutput,
		Out:        os.Stdout,
	})
	repl.Start(ctx)
	return fault.ExitSuccess
}

// runEval evaluates the configured expression once and renders the result.
func (a *Application) runEval(ctx context.Context, out io.Writer) int {
	ctx, cancel := SetupLifecycle(ctx, a.Config.Timeout)
	defer cancel.Cleanup()

	observers := []stream.PullObserver{stream.NewMetricsObserver()}
	if a.Config.Verbose {
		observers = append(observers, stream.NewLoggingObserver(a.Logger, a.Config.LogInterval))
	}

	// Spinner progress for interactive terminals, fed by a channel
	// observer; quiet and JSON modes stay silent.
	var wg sync.WaitGroup
	var updates chan stream.PullUpdate
	if !a.Config.Quiet && !a.Config.JSONOutput {
		updates = make(chan stream.PullUpdate, cli.ProgressChannelBuffer)
		observers = append(observers, stream.NewChannelObserver(updates))
		wg.Add(1)
		go cli.DisplayProgress(&wg, updates, out)
	}

	res, err := cli.Evaluate(ctx, a.Config.Eval, a.Config.Take, observers...)
	if updates != nil {
		close(updates)
		wg.Wait()
	}
	if err != nil {
		fmt.Fprintf(a.ErrWriter, "Error: %v\n", err)
		return fault.ExitErrorConfig
	}

	return a.renderResult(res, out)
}

// renderResult prints the evaluation result in the configured format and
// maps its outcome to an exit code.
func (a *Application) renderResult(res cli.EvalResult, out io.Writer) int {
	if a.Config.JSONOutput {
		if err := cli.PrintJSON(out, res); err != nil {
			return fault.ExitErrorGeneric
		}
	} else {
		cli.PrintResult(out, res, a.Config.Quiet)
	}

	if err := cli.WriteResultToFile(a.Config.OutputFile, res); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return fault.ExitErrorGeneric
	}
	if a.Config.OutputFile != "" && !a.Config.Quiet && !a.Config.JSONOutput {
		fmt.Fprintf(out, "%s✓ Result saved to: %s%s%s\n",
			ui.ColorGreen(), ui.ColorCyan(), a.Config.OutputFile, ui.ColorReset())
	}

	switch {
	case res.Err == nil:
		return fault.ExitSuccess
	case errors.Is(res.Err, context.Canceled), errors.Is(res.Err, context.DeadlineExceeded):
		return fault.ExitErrorCancel
	default:
		return fault.ExitErrorEval
	}
}

// IsHelpError checks if the error is a help flag error (--help was used), so
// the application can exit with success after displaying help text.
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
