package executor

import (
	"log/slog"
	"time"
)

// Option is a functional option for configuring a pool.
type Option func(*poolOptions)

type poolOptions struct {
	workers         int
	queueSize       int
	shutdownTimeout time.Duration
	logger          *slog.Logger
}

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(o *poolOptions) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithQueueSize sets the task queue buffer size.
func WithQueueSize(n int) Option {
	return func(o *poolOptions) {
		if n > 0 {
			o.queueSize = n
		}
	}
}

// WithShutdownTimeout bounds how long Stop waits for workers to drain.
func WithShutdownTimeout(d time.Duration) Option {
	return func(o *poolOptions) {
		if d > 0 {
			o.shutdownTimeout = d
		}
	}
}

// WithLogger sets the structured logger used for pool lifecycle and task events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *poolOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}
