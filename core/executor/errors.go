package executor

import "errors"

var (
	// ErrQueueFull is returned when TryExecute finds the task queue saturated.
	ErrQueueFull = errors.New("executor queue is full")

	// ErrPoolClosed is returned when submitting a task to a stopped pool.
	ErrPoolClosed = errors.New("executor pool is closed")

	// ErrPoolOverloaded is reported by Healthcheck when the queue is saturated.
	ErrPoolOverloaded = errors.New("executor pool overloaded")

	// ErrHealthcheckFailed is returned when the pool health check fails.
	ErrHealthcheckFailed = errors.New("healthcheck failed")
)
