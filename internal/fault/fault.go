// Package fault defines the structured fault types raised by the lazy
// evaluation core, allowing for a clear distinction between fault classes
// (value faults, type faults, propagated user faults) and for carrying the
// underlying cause.
//
// Error Wrapping Guidelines:
// This package follows Go's error wrapping conventions using fmt.Errorf with %w.
// Fault types that carry a cause implement the Unwrap() method to support
// errors.Is() and errors.As().
package fault

import (
	"errors"
	"fmt"
)

// Application exit codes define the standard exit statuses for the CLI driver.
// These codes are used to signal the outcome of the program execution to the OS.
const (
	ExitSuccess      = 0   // Indicates successful execution.
	ExitErrorGeneric = 1   // Indicates a generic error.
	ExitErrorEval    = 2   // Indicates an evaluation fault in a stream pipeline.
	ExitErrorConfig  = 4   // Indicates a configuration error.
	ExitErrorCancel  = 130 // Indicates the operation was canceled (e.g., SIGINT).
)

// ErrStopIteration is the distinguished graceful-termination sentinel. It is
// the sole mechanism by which an internally-driven combinator marks "source
// exhausted, switch to permanent empty". It carries no payload and must never
// surface to a stream's consumer as a visible error: the consumer simply
// observes that the lazy sequence produces no further items.
var ErrStopIteration = errors.New("iteration terminated")

// IsStop reports whether err is (or wraps) the graceful-termination sentinel.
func IsStop(err error) bool {
	return errors.Is(err, ErrStopIteration)
}

// ValueError represents a fault caused by an operation that is undefined for
// the value it was applied to, such as forcing an infinite stream into a list.
type ValueError struct {
	// Message explains the specific value fault.
	Message string
}

// Error returns the fault message for a ValueError.
func (e ValueError) Error() string { return e.Message }

// NewValueError creates a new ValueError with a formatted message.
func NewValueError(format string, a ...any) error {
	return ValueError{Message: fmt.Sprintf(format, a...)}
}

// TypeError represents a fault caused by a value of an unexpected kind, such
// as a frontier callable returning something other than a list.
type TypeError struct {
	// Message explains the specific type fault.
	Message string
}

// Error returns the fault message for a TypeError.
func (e TypeError) Error() string { return e.Message }

// NewTypeError creates a new TypeError with a formatted message.
func NewTypeError(format string, a ...any) error {
	return TypeError{Message: fmt.Sprintf(format, a...)}
}

// ConfigError represents a user configuration error, such as invalid flags or
// values. It indicates that the CLI driver cannot proceed due to incorrect
// user input.
type ConfigError struct {
	// Message explains the specific configuration error.
	Message string
}

// Error returns the error message for a ConfigError.
func (e ConfigError) Error() string { return e.Message }

// NewConfigError creates a new ConfigError with a formatted message.
func NewConfigError(format string, a ...any) error {
	return ConfigError{Message: fmt.Sprintf(format, a...)}
}

// EvalError encapsulates a fault propagated out of a user callable while
// preserving the original cause. This allows structured handling of faults
// that cross a lazy pipeline boundary.
type EvalError struct {
	// Cause is the underlying fault raised inside the user callable.
	Cause error
}

// Error returns the fault message from the underlying cause.
func (e EvalError) Error() string { return e.Cause.Error() }

// Unwrap returns the original wrapped fault, allowing for error chain
// inspection (e.g., using errors.Is or errors.As).
func (e EvalError) Unwrap() error { return e.Cause }

// Wrap wraps an error with additional context using fmt.Errorf and %w.
// This allows the wrapped error to be unwrapped with errors.Unwrap() and
// checked with errors.Is() and errors.As(). Returns nil if err is nil.
func Wrap(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	message := fmt.Sprintf(format, args...)
	return fmt.Errorf("%s: %w", message, err)
}
