// Package executor provides task-execution backends for asynckit futures:
// a bounded worker pool plus trivial synchronous and goroutine-per-task
// executors. All of them satisfy the asynckit.Executor interface, whose only
// contract is that submitted work eventually runs on some goroutine.
//
// # Features
//
//   - Bounded worker pool with a buffered task queue
//   - Workers started at construction, no separate Start call
//   - Blocking Execute and non-blocking TryExecute submission
//   - Panic containment so one bad task cannot take down the pool
//   - Graceful Stop that drains the backlog within a shutdown timeout
//   - Observability through Stats and Healthcheck
//   - Environment-based configuration with functional option overrides
//
// # Basic Usage
//
// Create a pool and run futures on it:
//
//	import (
//		"github.com/dmitrymomot/asynckit"
//		"github.com/dmitrymomot/asynckit/core/executor"
//	)
//
//	pool := executor.NewPool(
//		executor.WithWorkers(8),
//		executor.WithQueueSize(256),
//	)
//	defer pool.Stop()
//
//	future := asynckit.Submit(pool, func() (Report, error) {
//		return buildReport()
//	})
//
//	report, err := future.Await()
//
// Load the pool shape from the environment:
//
//	var cfg executor.Config
//	if err := env.Parse(&cfg); err != nil {
//		log.Fatal(err)
//	}
//	pool := executor.NewPoolFromConfig(cfg)
//
// # Choosing an Executor
//
//   - Pool: production workloads that need bounded concurrency
//   - Sync: deterministic inline execution, useful in tests
//   - Unbounded: one goroutine per task, useful for few, long-lived tasks
//
// # Error Handling
//
// The package defines the following errors:
//   - ErrQueueFull: TryExecute found the task queue saturated
//   - ErrPoolClosed: submission attempted after Stop
//   - ErrPoolOverloaded: Healthcheck found the queue saturated
//   - ErrHealthcheckFailed: joined with the specific cause above
//
// Use errors.Is to check causes:
//
//	if errors.Is(err, executor.ErrPoolOverloaded) { ... }
//
// # Observability
//
// Stats returns atomic counters suitable for metrics export, and Healthcheck
// plugs into health endpoints:
//
//	healthSrv.AddCheck("executor-pool", pool.Healthcheck)
package executor
