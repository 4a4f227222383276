package asynckit

import "time"

// Deadlines are races, not interruptions: a timer and the source both try
// to settle the derived future through the same atomic transition, exactly
// one wins, and the source computation keeps running either way. Stopping
// the loser's timer is best-effort cleanup, never a correctness concern.

// WithTimeout returns a future that adopts the source outcome if it settles
// within d, and fails with ErrTimeout otherwise.
func (f *Future[T]) WithTimeout(d time.Duration) *Future[T] {
	out := New[T]()
	timer := time.AfterFunc(d, func() {
		out.Fail(ErrTimeout)
	})
	f.OnComplete(func(r Result[T]) {
		timer.Stop()
		forwardTo(out, r)
	})
	return out
}

// OrElseAfter returns a future that adopts the source outcome if it settles
// within d, and completes with fallback otherwise.
func (f *Future[T]) OrElseAfter(d time.Duration, fallback T) *Future[T] {
	out := New[T]()
	timer := time.AfterFunc(d, func() {
		out.Complete(fallback)
	})
	f.OnComplete(func(r Result[T]) {
		timer.Stop()
		forwardTo(out, r)
	})
	return out
}

// Delay returns a future that settles with the source outcome d after the
// source settles.
func (f *Future[T]) Delay(d time.Duration) *Future[T] {
	out := New[T]()
	f.OnComplete(func(r Result[T]) {
		time.AfterFunc(d, func() {
			forwardTo(out, r)
		})
	})
	return out
}
