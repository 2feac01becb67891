// Package config provides the configuration management for the lazyseq
// playground. It defines the data structure for the configuration, handles the
// parsing of command-line arguments, and performs validation on the
// configuration values.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/agbru/lazyseq/internal/fault"
)

const (
	// EnvPrefix is the prefix for all environment variables used by lazyseq.
	// Environment variables provide an alternative to CLI flags for
	// configuration, following the 12-Factor App methodology.
	EnvPrefix = "LAZYSEQ_"
)

// Default configuration values.
// These can be overridden via command-line flags or environment variables.
const (
	// DefaultTake is the default number of items drained from a stream.
	DefaultTake = 25
	// DefaultTimeout is the default evaluation timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultLogInterval is the default pull-logging throttle interval.
	DefaultLogInterval uint64 = 1000
)

// AppConfig aggregates the application's configuration parameters, parsed
// from command-line flags. It encapsulates all settings that control the
// execution, from the stream expression to evaluate to output formatting.
type AppConfig struct {
	// Eval is the stream expression to evaluate in one-shot mode,
	// e.g. "perms a b c" or "map square range 0 10".
	Eval string
	// Take bounds the number of items drained from the evaluated stream.
	Take int
	// Timeout sets the maximum duration for the evaluation.
	Timeout time.Duration
	// JSONOutput, if true, outputs the result in JSON format.
	JSONOutput bool
	// Verbose, if true, enables debug logging of stream pulls.
	Verbose bool
	// Quiet mode - minimal output for scripting purposes.
	// Suppresses spinners, banners, and informational messages.
	Quiet bool
	// NoColor, if true, disables all color output in the CLI.
	// Also respects the NO_COLOR environment variable.
	NoColor bool
	// Interactive, if true, starts the application in REPL mode.
	Interactive bool
	// Showcase, if true, runs the built-in demo pipelines concurrently.
	// It is also the default mode when no expression is given.
	Showcase bool
	// OutputFile, if specified, saves the rendered result to this file path.
	OutputFile string
	// LogInterval throttles pull logging to every interval-th item.
	LogInterval uint64
}

// Validate checks the semantic consistency of the configuration parameters.
// It returns a ConfigError if a value is out of range, nil otherwise.
func (c AppConfig) Validate() error {
	if c.Take <= 0 {
		return fault.NewConfigError("take must be strictly positive: %d", c.Take)
	}
	if c.Timeout <= 0 {
		return fault.NewConfigError("timeout value must be strictly positive")
	}
	if c.LogInterval == 0 {
		return fault.NewConfigError("log interval must be strictly positive")
	}
	return nil
}

// ParseConfig parses the command-line arguments and populates an AppConfig
// struct. It defines all the command-line flags, sets their default values,
// and handles the parsing process. After parsing, it applies environment
// variable overrides and validates the resulting configuration.
//
// The function is designed to be testable by allowing the input arguments and
// output writer to be specified.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	config := AppConfig{}
	fs.StringVar(&config.Eval, "eval", "", "Stream expression to evaluate (e.g. 'perms a b c', 'map square range 0 10').")
	fs.StringVar(&config.Eval, "e", "", "Stream expression (shorthand).")
	fs.IntVar(&config.Take, "take", DefaultTake, "Maximum number of items to drain from the stream.")
	fs.IntVar(&config.Take, "t", DefaultTake, "Maximum number of items (shorthand).")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time for the evaluation.")
	fs.BoolVar(&config.JSONOutput, "json", false, "Output results in JSON format.")
	fs.BoolVar(&config.Verbose, "v", false, "Enable debug logging of stream pulls.")
	fs.BoolVar(&config.Quiet, "quiet", false, "Quiet mode - minimal output for scripts.")
	fs.BoolVar(&config.Quiet, "q", false, "Quiet mode (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output (also respects NO_COLOR env var).")
	fs.BoolVar(&config.Interactive, "interactive", false, "Start in interactive REPL mode.")
	fs.BoolVar(&config.Showcase, "showcase", false, "Run the built-in demo pipelines.")
	fs.StringVar(&config.OutputFile, "output", "", "Output file path for the rendered result.")
	fs.StringVar(&config.OutputFile, "o", "", "Output file path (shorthand).")
	fs.Uint64Var(&config.LogInterval, "log-interval", DefaultLogInterval, "Log every interval-th produced item in verbose mode.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}

	// Apply environment variable overrides for flags not explicitly set
	applyEnvOverrides(&config, fs)

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errorWriter, "Configuration error:", err)
		fs.Usage()
		return AppConfig{}, errors.New("invalid configuration")
	}
	return config, nil
}
