package asynckit

// Result is an immutable snapshot of a settled future: the terminal state
// plus the value or error it carries. OnComplete callbacks receive one, and
// TryGet returns one, so consumers can inspect an outcome without blocking
// and without triggering error propagation.
//
// The zero Result reports StatePending; settled futures never produce one.
type Result[T any] struct {
	state State
	value T
	err   error
}

// State returns the terminal state the result was captured in.
func (r Result[T]) State() State {
	return r.state
}

// Value returns the success value, or the zero value for failed and
// cancelled results.
func (r Result[T]) Value() T {
	return r.value
}

// Err returns the stored error: nil for success, the failure cause for
// failed results, and ErrCancelled for cancelled ones.
func (r Result[T]) Err() error {
	return r.err
}

// Succeeded reports whether the future settled with a value.
func (r Result[T]) Succeeded() bool {
	return r.state == StateSucceeded
}

// Failed reports whether the future settled with an error.
func (r Result[T]) Failed() bool {
	return r.state == StateFailed
}

// Cancelled reports whether the future was cancelled.
func (r Result[T]) Cancelled() bool {
	return r.state == StateCancelled
}
