package asynckit

import (
	"sync"
	"sync/atomic"
)

// Combine returns a future settled with fn applied to both source values
// once both succeed. The first non-success to arrive settles the result
// immediately with the same terminal kind; the other source still runs to
// completion on its own, its outcome ignored. An error or panic from fn
// fails the result. Panics if fn is nil.
func Combine[T, U, V any](a *Future[T], b *Future[U], fn func(T, U) (V, error)) *Future[V] {
	if fn == nil {
		panic("asynckit: Combine called with nil function")
	}
	out := New[V]()

	var (
		mu      sync.Mutex
		av      T
		bv      U
		pending = 2
	)
	compute := func() {
		defer settlePanic(out)
		v, err := fn(av, bv)
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(v)
	}

	a.OnComplete(func(r Result[T]) {
		if !r.Succeeded() {
			propagate(out, r)
			return
		}
		mu.Lock()
		av = r.Value()
		pending--
		last := pending == 0
		mu.Unlock()
		if last {
			compute()
		}
	})
	b.OnComplete(func(r Result[U]) {
		if !r.Succeeded() {
			propagate(out, r)
			return
		}
		mu.Lock()
		bv = r.Value()
		pending--
		last := pending == 0
		mu.Unlock()
		if last {
			compute()
		}
	})
	return out
}

// JoinAll returns a future that settles only once every input is terminal.
// If all inputs succeeded it completes with their values in input order.
// Otherwise it propagates the first non-success by input order, not arrival
// order, so the outcome is deterministic regardless of timing. With no
// inputs it completes immediately with an empty slice.
func JoinAll[T any](futures ...*Future[T]) *Future[[]T] {
	out := New[[]T]()
	if len(futures) == 0 {
		out.Complete([]T{})
		return out
	}

	var remaining atomic.Int64
	remaining.Store(int64(len(futures)))

	for _, f := range futures {
		f.OnComplete(func(Result[T]) {
			if remaining.Add(-1) != 0 {
				return
			}
			// Every input is terminal now; scanning in input order makes
			// the first-failure tie-break independent of arrival order.
			values := make([]T, 0, len(futures))
			for _, src := range futures {
				r, _ := src.TryGet()
				if !r.Succeeded() {
					propagate(out, r)
					return
				}
				values = append(values, r.Value())
			}
			out.Complete(values)
		})
	}
	return out
}

// RaceAny returns a future settled with the outcome of the first input to
// reach any terminal state, success and failure alike. Later arrivals lose
// the settle race and are ignored. With no inputs it fails immediately with
// ErrNoFutures.
func RaceAny[T any](futures ...*Future[T]) *Future[T] {
	out := New[T]()
	if len(futures) == 0 {
		out.Fail(ErrNoFutures)
		return out
	}
	for _, f := range futures {
		f.OnComplete(func(r Result[T]) {
			forwardTo(out, r)
		})
	}
	return out
}
