package executor

// Sync runs each task synchronously in the caller's goroutine.
// This is the simplest executor with zero overhead: no goroutines, no
// channels, no lifecycle management. Useful for deterministic execution in
// tests and for callers that want futures' composition without concurrency.
type Sync struct{}

// Execute runs fn immediately in the caller's goroutine; a nil fn is ignored.
func (Sync) Execute(fn func()) {
	if fn == nil {
		return
	}
	fn()
}

// Unbounded runs each task on its own goroutine. There is no queue and no
// concurrency limit, so it suits a small number of long-lived tasks rather
// than high-volume fan-out.
type Unbounded struct{}

// Execute runs fn on a fresh goroutine; a nil fn is ignored.
func (Unbounded) Execute(fn func()) {
	if fn == nil {
		return
	}
	go fn()
}
