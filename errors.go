package asynckit

import (
	"errors"
	"fmt"
)

var (
	// ErrTimeout is returned when AwaitWithTimeout gives up waiting, and is
	// the failure stored by WithTimeout when the deadline fires first.
	ErrTimeout = errors.New("future timed out")

	// ErrCancelled is the error stored by Cancel.
	ErrCancelled = errors.New("future cancelled")

	// ErrNoFutures is returned when RaceAny is called with no futures.
	ErrNoFutures = errors.New("no futures provided")

	// ErrNilFuture is the failure stored when a Chain function returns a nil future.
	ErrNilFuture = errors.New("chain function returned nil future")
)

// PanicError wraps a value recovered from a panicking user function.
// The derived future fails with a *PanicError instead of letting the panic
// unwind the completing goroutine.
type PanicError struct {
	Value any
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("panic: %v", e.Value)
}

// Unwrap exposes the panic value when it is itself an error, so errors.Is
// and errors.As see through the wrapper.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}
