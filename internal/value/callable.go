// This file defines the callable contract through which the evaluation core
// invokes user code. The callable/closure-environment execution mechanism
// itself is external; the core only needs "call with a fixed argument list,
// get a value or a fault".
package value

// Callable is a function value paired with its captured lexical environment.
// Implementations are provided by the surrounding interpreter; the core never
// inspects the environment.
type Callable interface {
	// Call invokes the function with the given arguments. A returned error is
	// either a propagated user fault or the graceful-termination sentinel
	// (see the fault package).
	Call(args []Value) (Value, error)

	// Name returns a short display name for renderings such as "<fn succ>".
	Name() string
}

// GoFunc adapts a plain Go function to the Callable contract. The closure's
// captured variables play the role of the lexical environment. It is the
// adapter used by the CLI driver and by tests.
type GoFunc struct {
	FuncName string
	Fn       func(args []Value) (Value, error)
}

// Call invokes the adapted function.
func (f GoFunc) Call(args []Value) (Value, error) { return f.Fn(args) }

// Name returns the display name, or "anonymous" when unset.
func (f GoFunc) Name() string {
	if f.FuncName == "" {
		return "anonymous"
	}
	return f.FuncName
}
