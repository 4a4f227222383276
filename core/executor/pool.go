package executor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Pool runs submitted tasks on a fixed set of worker goroutines fed by a
// buffered queue. Workers start at construction and run until Stop.
type Pool struct {
	id     uuid.UUID
	tasks  chan func()
	quit   chan struct{}
	wg     sync.WaitGroup
	logger *slog.Logger

	workers         int
	shutdownTimeout time.Duration

	stopOnce sync.Once
	stopping atomic.Bool

	// Observability metrics
	tasksExecuted atomic.Int64
	tasksPanicked atomic.Int64
	activeTasks   atomic.Int32
}

// PoolStats provides observability metrics for monitoring and debugging.
type PoolStats struct {
	TasksExecuted int64 // Total number of tasks run to completion
	TasksPanicked int64 // Total number of tasks that panicked and were contained
	ActiveTasks   int32 // Number of tasks currently running
	QueuedTasks   int   // Number of tasks waiting in the queue
	IsRunning     bool  // Whether the pool accepts new tasks
}

// NewPool creates a pool and starts its workers immediately.
// Defaults: 4 workers, queue of 64 tasks, 30s shutdown timeout, no-op logger.
func NewPool(opts ...Option) *Pool {
	options := &poolOptions{
		workers:         4,
		queueSize:       64,
		shutdownTimeout: 30 * time.Second,
		logger:          slog.New(slog.NewTextHandler(io.Discard, nil)), // No-op logger by default
	}

	for _, opt := range opts {
		opt(options)
	}

	p := &Pool{
		id:              uuid.New(),
		tasks:           make(chan func(), options.queueSize),
		quit:            make(chan struct{}),
		logger:          options.logger,
		workers:         options.workers,
		shutdownTimeout: options.shutdownTimeout,
	}

	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	p.logger.Info("executor pool started",
		slog.String("pool_id", p.id.String()),
		slog.Int("workers", p.workers),
		slog.Int("queue_size", cap(p.tasks)))

	return p
}

// Execute enqueues fn for a worker goroutine, blocking while the queue is
// full. It satisfies the asynckit Executor contract for a running pool.
// After Stop the task is dropped with a warning log; a nil fn is ignored.
// Tasks submitted concurrently with Stop may be dropped.
func (p *Pool) Execute(fn func()) {
	if fn == nil {
		return
	}
	if p.stopping.Load() {
		p.drop()
		return
	}

	select {
	case p.tasks <- fn:
	case <-p.quit:
		p.drop()
	}
}

// TryExecute enqueues fn without blocking.
// Returns ErrQueueFull when the queue is saturated and ErrPoolClosed after
// Stop; a nil fn is ignored.
func (p *Pool) TryExecute(fn func()) error {
	if fn == nil {
		return nil
	}
	if p.stopping.Load() {
		return ErrPoolClosed
	}

	select {
	case p.tasks <- fn:
		return nil
	case <-p.quit:
		return ErrPoolClosed
	default:
		return ErrQueueFull
	}
}

// worker runs queued tasks until shutdown, then drains the backlog.
func (p *Pool) worker() {
	defer p.wg.Done()

	for {
		select {
		case fn := <-p.tasks:
			p.run(fn)
		case <-p.quit:
			for {
				select {
				case fn := <-p.tasks:
					p.run(fn)
				default:
					return
				}
			}
		}
	}
}

// run executes a single task with panic containment so one bad task cannot
// take down the pool.
func (p *Pool) run(fn func()) {
	start := time.Now()

	p.activeTasks.Add(1)
	defer p.activeTasks.Add(-1)

	defer func() {
		if r := recover(); r != nil {
			p.tasksPanicked.Add(1)
			p.logger.Error("task panicked",
				slog.String("pool_id", p.id.String()),
				slog.Any("panic", r))
		}
	}()

	fn()
	p.tasksExecuted.Add(1)

	p.logger.Debug("task executed",
		slog.String("pool_id", p.id.String()),
		slog.Duration("duration", time.Since(start)))
}

// Stop gracefully shuts down the pool: workers finish the queued backlog,
// bounded by the shutdown timeout. Safe to call more than once; only the
// first call reports the shutdown outcome.
func (p *Pool) Stop() error {
	var err error
	p.stopOnce.Do(func() {
		p.stopping.Store(true)
		close(p.quit)

		p.logger.Info("executor pool stopping, waiting for workers to drain",
			slog.String("pool_id", p.id.String()),
			slog.Duration("timeout", p.shutdownTimeout))

		done := make(chan struct{})
		go func() {
			p.wg.Wait()
			close(done)
		}()

		select {
		case <-done:
			p.logger.Info("executor pool stopped cleanly",
				slog.String("pool_id", p.id.String()))
		case <-time.After(p.shutdownTimeout):
			p.logger.Warn("executor pool shutdown timeout exceeded - some tasks may be abandoned",
				slog.String("pool_id", p.id.String()),
				slog.Duration("timeout", p.shutdownTimeout))
			err = fmt.Errorf("shutdown timeout exceeded after %s", p.shutdownTimeout)
		}
	})
	return err
}

// drop records a task rejected because the pool is stopped.
func (p *Pool) drop() {
	p.logger.Warn("task dropped, pool is stopped",
		slog.String("pool_id", p.id.String()))
}

// ID returns the unique identifier of this pool instance, as carried in its
// log attributes.
func (p *Pool) ID() uuid.UUID {
	return p.id
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// Stats returns current pool statistics for observability and monitoring.
// This method is thread-safe and can be called at any time.
func (p *Pool) Stats() PoolStats {
	return PoolStats{
		TasksExecuted: p.tasksExecuted.Load(),
		TasksPanicked: p.tasksPanicked.Load(),
		ActiveTasks:   p.activeTasks.Load(),
		QueuedTasks:   len(p.tasks),
		IsRunning:     !p.stopping.Load(),
	}
}

// Healthcheck validates that the pool is operational and not overloaded.
// Returns nil if healthy, or an error describing the health issue.
// The returned error can be checked using errors.Is:
//
//	if errors.Is(err, executor.ErrPoolClosed) { ... }
//	if errors.Is(err, executor.ErrPoolOverloaded) { ... }
func (p *Pool) Healthcheck(ctx context.Context) error {
	stats := p.Stats()

	if !stats.IsRunning {
		return errors.Join(ErrHealthcheckFailed, ErrPoolClosed)
	}

	if stats.QueuedTasks >= cap(p.tasks) {
		return errors.Join(ErrHealthcheckFailed, ErrPoolOverloaded,
			fmt.Errorf("%d/%d queue slots used", stats.QueuedTasks, cap(p.tasks)))
	}

	return nil
}
