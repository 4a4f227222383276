// Package asynckit provides a single-assignment asynchronous result container
// with composition operators, backed by Go generics.
//
// A Future[T] holds the eventual outcome of an asynchronous computation. It is
// settled exactly once, by whichever goroutine wins the race to complete,
// fail, or cancel it; every later settle attempt reports defeat instead of
// panicking. Continuations registered with OnComplete run in registration
// order once the future settles.
//
// # Features
//
//   - Atomic single-assignment state machine (pending, succeeded, failed, cancelled)
//   - Continuation callbacks with exactly-once, in-order delivery
//   - Blocking consumption with Await, AwaitWithTimeout, and AwaitContext
//   - Non-blocking consumption with TryGet, State, and Done
//   - Combinators: Map, Chain, Combine, JoinAll, RaceAny, Recover, Handle, Tap
//   - Deadline arbitration with WithTimeout, OrElseAfter, and Delay
//   - Pluggable task execution through the Executor interface
//   - Panic capture: a panicking user function fails the derived future
//
// # Basic Usage
//
// Run a computation asynchronously and wait for its result:
//
//	future := asynckit.Async(func() (User, error) {
//		return fetchUser(123)
//	})
//
//	// Do other work...
//
//	user, err := future.Await()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Compose futures without blocking:
//
//	name := asynckit.Map(future, func(u User) (string, error) {
//		return u.Name, nil
//	})
//
// Bound the wait with a deadline:
//
//	user, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, asynckit.ErrTimeout) {
//		log.Println("still running, gave up waiting")
//	}
//
// # Completion Races
//
// Complete, Fail, and Cancel return whether the call won the settle race:
//
//	f := asynckit.New[int]()
//	f.Complete(1) // true
//	f.Complete(2) // false, the future already holds 1
//
// Races between producers, timers, and cancellers are expected and normal;
// the loser's value is discarded, never queued.
//
// # Error Handling
//
// The package defines the following errors:
//   - ErrTimeout: returned when a wait or WithTimeout deadline passes first
//   - ErrCancelled: the stored error of a cancelled future
//   - ErrNoFutures: returned when RaceAny is called with no futures
//   - ErrNilFuture: stored when a Chain function returns a nil future
//
// Errors returned by combinator functions, and panics recovered from them,
// fail the derived future instead of propagating to an unrelated call stack.
// Recovered panic values are wrapped in *PanicError.
//
// # Concurrency Safety
//
// All operations are safe for concurrent use. A single mutex guards each
// future's state and callback registry; callbacks are drained exactly once at
// the moment of transition and invoked outside the lock.
//
// # Cancellation Semantics
//
// Cancellation is a terminal state, not a signal: cancelling a future affects
// its observers only. The computation feeding it keeps running, and
// cancelling a derived future never cancels its source.
package asynckit
