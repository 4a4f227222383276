package executor_test

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit"
	"github.com/dmitrymomot/asynckit/core/executor"
)

var (
	_ asynckit.Executor = executor.Sync{}
	_ asynckit.Executor = executor.Unbounded{}
)

func TestSync_Execute(t *testing.T) {
	t.Parallel()

	t.Run("runs inline on the caller goroutine", func(t *testing.T) {
		t.Parallel()

		var ran bool
		executor.Sync{}.Execute(func() {
			ran = true
		})

		// No synchronization needed: Execute returned, so the task ran.
		assert.True(t, ran)
	})

	t.Run("preserves submission order", func(t *testing.T) {
		t.Parallel()

		var order []int
		exec := executor.Sync{}
		for i := 1; i <= 3; i++ {
			exec.Execute(func() {
				order = append(order, i)
			})
		}

		assert.Equal(t, []int{1, 2, 3}, order)
	})

	t.Run("settles futures before Submit returns", func(t *testing.T) {
		t.Parallel()

		future := asynckit.Submit(executor.Sync{}, func() (string, error) {
			return "done", nil
		})

		result, ok := future.TryGet()
		require.True(t, ok)
		assert.Equal(t, "done", result.Value())
	})

	t.Run("ignores nil tasks", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			executor.Sync{}.Execute(nil)
		})
	})
}

func TestUnbounded_Execute(t *testing.T) {
	t.Parallel()

	t.Run("runs tasks off the caller goroutine", func(t *testing.T) {
		t.Parallel()

		release := make(chan struct{})
		var ran atomic.Bool

		// Execute must return even though the task has not run yet.
		executor.Unbounded{}.Execute(func() {
			<-release
			ran.Store(true)
		})
		assert.False(t, ran.Load())

		close(release)
		require.Eventually(t, ran.Load, time.Second, 5*time.Millisecond)
	})

	t.Run("runs tasks concurrently", func(t *testing.T) {
		t.Parallel()

		const tasks = 8
		barrier := make(chan struct{})
		var arrived atomic.Int32

		exec := executor.Unbounded{}
		for range tasks {
			exec.Execute(func() {
				// Every task blocks until all have started, which only
				// resolves if they run concurrently.
				if arrived.Add(1) == tasks {
					close(barrier)
				}
				<-barrier
			})
		}

		require.Eventually(t, func() bool {
			return arrived.Load() == tasks
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("drives asynckit futures", func(t *testing.T) {
		t.Parallel()

		future := asynckit.Submit(executor.Unbounded{}, func() (int, error) {
			return 7, nil
		})

		v, err := future.AwaitWithTimeout(time.Second)
		require.NoError(t, err)
		assert.Equal(t, 7, v)
	})

	t.Run("ignores nil tasks", func(t *testing.T) {
		t.Parallel()

		assert.NotPanics(t, func() {
			executor.Unbounded{}.Execute(nil)
		})
	})
}
