package asynckit

// Combinators derive new futures from existing ones by registering
// callbacks on their sources. They do no work until the source settles,
// settle their result exactly once, and capture user-function errors and
// panics into the result instead of letting them escape.

// Map returns a future that, on source success, settles with fn applied to
// the value. An error or panic from fn fails the result. Source failure or
// cancellation propagates unchanged without invoking fn. Panics if fn is nil.
func Map[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	if fn == nil {
		panic("asynckit: Map called with nil function")
	}
	out := New[U]()
	f.OnComplete(func(r Result[T]) {
		if !r.Succeeded() {
			propagate(out, r)
			return
		}
		defer settlePanic(out)
		v, err := fn(r.Value())
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(v)
	})
	return out
}

// Chain returns a future that, on source success, adopts the eventual
// outcome of the future produced by fn. This sequences asynchronous steps
// without nesting containers. A nil future from fn fails the result with
// ErrNilFuture; a panic from fn fails it with a *PanicError. Source failure
// or cancellation propagates unchanged without invoking fn. Panics if fn is
// nil.
func Chain[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	if fn == nil {
		panic("asynckit: Chain called with nil function")
	}
	out := New[U]()
	f.OnComplete(func(r Result[T]) {
		if !r.Succeeded() {
			propagate(out, r)
			return
		}
		defer settlePanic(out)
		next := fn(r.Value())
		if next == nil {
			out.Fail(ErrNilFuture)
			return
		}
		next.OnComplete(func(nr Result[U]) {
			forwardTo(out, nr)
		})
	})
	return out
}

// Recover returns a future that, on source failure, settles with fn applied
// to the error, turning the failure into a success. An error or panic from
// fn fails the result instead. Success and cancellation forward unchanged
// without invoking fn. Panics if fn is nil.
func (f *Future[T]) Recover(fn func(error) (T, error)) *Future[T] {
	if fn == nil {
		panic("asynckit: Recover called with nil function")
	}
	out := New[T]()
	f.OnComplete(func(r Result[T]) {
		if !r.Failed() {
			forwardTo(out, r)
			return
		}
		defer settlePanic(out)
		v, err := fn(r.Err())
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(v)
	})
	return out
}

// Handle returns a future settled with fn applied to every terminal
// outcome: fn receives (value, nil) on success, (zero, error) on failure,
// and (zero, ErrCancelled) on cancellation, so it is the one combinator
// that can stop cancellation from propagating. Panics if fn is nil.
func Handle[T, U any](f *Future[T], fn func(T, error) (U, error)) *Future[U] {
	if fn == nil {
		panic("asynckit: Handle called with nil function")
	}
	out := New[U]()
	f.OnComplete(func(r Result[T]) {
		defer settlePanic(out)
		v, err := fn(r.Value(), r.Err())
		if err != nil {
			out.Fail(err)
			return
		}
		out.Complete(v)
	})
	return out
}

// Tap returns a future that forwards the source outcome unchanged after
// running fn with it, for side effects such as logging or metrics. If fn
// panics while observing a success, the result fails with the recovered
// panic; a failed or cancelled source always wins over fn's panic. Panics
// if fn is nil.
func (f *Future[T]) Tap(fn func(Result[T])) *Future[T] {
	if fn == nil {
		panic("asynckit: Tap called with nil function")
	}
	out := New[T]()
	f.OnComplete(func(r Result[T]) {
		func() {
			defer func() {
				if p := recover(); p != nil && r.Succeeded() {
					out.Fail(&PanicError{Value: p})
				}
			}()
			fn(r)
		}()
		// No-op if fn's panic already failed the result.
		forwardTo(out, r)
	})
	return out
}

// forwardTo settles dst with the same terminal outcome r carries.
func forwardTo[T any](dst *Future[T], r Result[T]) {
	switch r.state {
	case StateSucceeded:
		dst.Complete(r.value)
	case StateCancelled:
		dst.Cancel()
	default:
		dst.Fail(r.err)
	}
}

// propagate settles dst with the failure or cancellation r carries.
// Callers handle success themselves before calling.
func propagate[U, T any](dst *Future[U], r Result[T]) {
	if r.state == StateCancelled {
		dst.Cancel()
		return
	}
	dst.Fail(r.err)
}

// settlePanic fails f with the recovered panic value, if any. It must be
// deferred directly so recover observes the panicking frame.
func settlePanic[T any](f *Future[T]) {
	if r := recover(); r != nil {
		f.Fail(&PanicError{Value: r})
	}
}
