package asynckit

import (
	"context"
	"sync"
	"time"
)

// Future is a single-assignment container for the eventual result of an
// asynchronous computation. It starts pending and settles exactly once, to
// succeeded, failed, or cancelled, no matter how many goroutines race to
// settle it. All methods are safe for concurrent use.
//
// The zero value is not usable; create futures with New, the package
// constructors, or the combinators.
type Future[T any] struct {
	mu        sync.Mutex
	state     State
	value     T
	err       error
	done      chan struct{}
	callbacks []func(Result[T])
}

// New creates a pending future.
func New[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// settle performs the single pending-to-terminal transition. The state,
// stored outcome, and callback registry change under one lock so a callback
// can be neither missed nor double-fired; the registry is drained exactly
// once and invoked after unlock, in registration order.
func (f *Future[T]) settle(state State, value T, err error) bool {
	f.mu.Lock()
	if f.state != StatePending {
		f.mu.Unlock()
		return false
	}
	f.state = state
	f.value = value
	f.err = err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	if len(callbacks) > 0 {
		res := Result[T]{state: state, value: value, err: err}
		for _, fn := range callbacks {
			fn(res)
		}
	}
	return true
}

// Complete attempts the pending-to-succeeded transition and reports whether
// this call won the settle race. On a win, registered callbacks run in
// registration order on the calling goroutine; on a loss, the value is
// discarded.
func (f *Future[T]) Complete(value T) bool {
	return f.settle(StateSucceeded, value, nil)
}

// Fail attempts the pending-to-failed transition and reports whether this
// call won the settle race. Panics if err is nil: a nil failure would be
// indistinguishable from success for every consumer.
func (f *Future[T]) Fail(err error) bool {
	if err == nil {
		panic("asynckit: Fail called with nil error")
	}
	var zero T
	return f.settle(StateFailed, zero, err)
}

// Cancel attempts the pending-to-cancelled transition and reports whether
// this call won the settle race. The stored error is ErrCancelled.
//
// Cancellation affects observers of this future only: it does not stop the
// computation feeding it, and it does not propagate to source futures.
func (f *Future[T]) Cancel() bool {
	var zero T
	return f.settle(StateCancelled, zero, ErrCancelled)
}

// OnComplete registers fn to run with the terminal result. If the future is
// still pending, fn is appended to the registry and runs, in registration
// order, on the goroutine that settles the future. If the future has already
// settled, fn runs immediately on the calling goroutine. Either way fn runs
// exactly once. Panics if fn is nil.
func (f *Future[T]) OnComplete(fn func(Result[T])) {
	if fn == nil {
		panic("asynckit: OnComplete called with nil callback")
	}
	f.mu.Lock()
	if f.state == StatePending {
		f.callbacks = append(f.callbacks, fn)
		f.mu.Unlock()
		return
	}
	res := Result[T]{state: f.state, value: f.value, err: f.err}
	f.mu.Unlock()
	fn(res)
}

// Await blocks until the future settles and returns its outcome: the value
// for success, the stored error for failure, or ErrCancelled for
// cancellation. This is the only blocking operation besides the other Await
// variants; everything else returns immediately.
func (f *Future[T]) Await() (T, error) {
	<-f.done
	return f.outcome()
}

// AwaitWithTimeout blocks until the future settles or the timeout elapses.
// Returns ErrTimeout if the deadline passes first; the future itself is
// unaffected and keeps running.
func (f *Future[T]) AwaitWithTimeout(timeout time.Duration) (T, error) {
	select {
	case <-f.done:
		return f.outcome()
	case <-time.After(timeout):
		var zero T
		return zero, ErrTimeout
	}
}

// AwaitContext blocks until the future settles or the context ends,
// returning ctx.Err() in the latter case. The future itself is unaffected.
func (f *Future[T]) AwaitContext(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.outcome()
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// TryGet polls the future without blocking. It returns the terminal result
// and true once the future has settled; before that it returns a zero
// Result and false. Errors are surfaced as values, never raised.
func (f *Future[T]) TryGet() (Result[T], bool) {
	select {
	case <-f.done:
		return Result[T]{state: f.state, value: f.value, err: f.err}, true
	default:
		return Result[T]{}, false
	}
}

// Done returns a channel that is closed when the future settles, for use in
// select statements alongside other channels.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// State returns the current state without blocking.
func (f *Future[T]) State() State {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// IsComplete checks if the future has settled without blocking.
func (f *Future[T]) IsComplete() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// outcome reads the stored result. Callers must have observed the done
// channel closed first; the close establishes the happens-before edge that
// makes the unlocked reads safe.
func (f *Future[T]) outcome() (T, error) {
	if f.state == StateSucceeded {
		return f.value, nil
	}
	var zero T
	return zero, f.err
}
