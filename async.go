package asynckit

// Executor runs submitted units of work. It is the only external
// collaborator the package consumes: the sole contract is that Execute
// eventually runs fn on some goroutine. Queueing policy, pooling, and
// lifecycle belong to the implementation; core/executor provides ready-made
// ones.
type Executor interface {
	Execute(fn func())
}

// Submit runs fn on the executor and returns a future for its outcome.
// A non-nil error fails the future, otherwise the returned value completes
// it. A panic in fn is recovered and fails the future with a *PanicError.
// Panics if exec or fn is nil.
func Submit[T any](exec Executor, fn func() (T, error)) *Future[T] {
	if exec == nil {
		panic("asynckit: Submit called with nil executor")
	}
	if fn == nil {
		panic("asynckit: Submit called with nil function")
	}
	f := New[T]()
	exec.Execute(func() {
		defer settlePanic(f)
		v, err := fn()
		if err != nil {
			f.Fail(err)
			return
		}
		f.Complete(v)
	})
	return f
}

// Async runs fn on its own goroutine and returns a future for its outcome.
// Shorthand for Submit with a goroutine-per-task executor.
func Async[T any](fn func() (T, error)) *Future[T] {
	return Submit(spawnExecutor{}, fn)
}

// spawnExecutor runs each task on a fresh goroutine.
type spawnExecutor struct{}

func (spawnExecutor) Execute(fn func()) {
	go fn()
}

// Completed returns a future already settled with value.
func Completed[T any](value T) *Future[T] {
	f := New[T]()
	f.Complete(value)
	return f
}

// Failed returns a future already settled with err.
func Failed[T any](err error) *Future[T] {
	f := New[T]()
	f.Fail(err)
	return f
}

// Cancelled returns a future already cancelled.
func Cancelled[T any]() *Future[T] {
	f := New[T]()
	f.Cancel()
	return f
}
