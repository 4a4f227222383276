package asynckit_test

import (
	"errors"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/asynckit"
)

func TestMap(t *testing.T) {
	t.Parallel()

	t.Run("transforms the value", func(t *testing.T) {
		t.Parallel()

		src := asynckit.New[int]()
		dst := asynckit.Map(src, func(v int) (string, error) {
			return strconv.Itoa(v), nil
		})

		require.True(t, src.Complete(42))

		v, err := dst.Await()
		require.NoError(t, err)
		assert.Equal(t, "42", v)
	})

	t.Run("already completed source invokes fn exactly once", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		src := asynckit.Completed(10)
		dst := asynckit.Map(src, func(v int) (int, error) {
			calls.Add(1)
			return v * 2, nil
		})

		v, err := dst.Await()
		require.NoError(t, err)
		assert.Equal(t, 20, v)
		assert.Equal(t, int64(1), calls.Load())
	})

	t.Run("fn error fails the result", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("convert failed")
		dst := asynckit.Map(asynckit.Completed(1), func(int) (int, error) {
			return 0, wantErr
		})

		_, err := dst.Await()
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("fn panic fails the result instead of unwinding", func(t *testing.T) {
		t.Parallel()

		src := asynckit.New[int]()
		dst := asynckit.Map(src, func(int) (int, error) {
			panic("mapper blew up")
		})

		// The panic surfaces as a failed future, not on the completing goroutine.
		assert.NotPanics(t, func() {
			src.Complete(1)
		})

		_, err := dst.Await()
		var panicErr *asynckit.PanicError
		require.ErrorAs(t, err, &panicErr)
		assert.Equal(t, "mapper blew up", panicErr.Value)
	})

	t.Run("source failure propagates without invoking fn", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		wantErr := errors.New("upstream failed")
		dst := asynckit.Map(asynckit.Failed[int](wantErr), func(int) (int, error) {
			calls.Add(1)
			return 0, nil
		})

		_, err := dst.Await()
		assert.ErrorIs(t, err, wantErr)
		assert.Zero(t, calls.Load())
	})

	t.Run("source cancellation propagates without invoking fn", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		dst := asynckit.Map(asynckit.Cancelled[int](), func(int) (int, error) {
			calls.Add(1)
			return 0, nil
		})

		assert.Equal(t, asynckit.StateCancelled, dst.State())
		assert.Zero(t, calls.Load())
	})

	t.Run("nil fn panics", func(t *testing.T) {
		t.Parallel()

		assert.Panics(t, func() {
			asynckit.Map[int, int](asynckit.New[int](), nil)
		})
	})
}

func TestChain(t *testing.T) {
	t.Parallel()

	t.Run("sequences asynchronous steps", func(t *testing.T) {
		t.Parallel()

		src := asynckit.New[int]()
		mid := asynckit.New[string]()

		dst := asynckit.Chain(src, func(v int) *asynckit.Future[string] {
			assert.Equal(t, 5, v)
			return mid
		})

		require.True(t, src.Complete(5))
		assert.Equal(t, asynckit.StatePending, dst.State(), "result must wait for the intermediate future")

		require.True(t, mid.Complete("chained"))

		v, err := dst.Await()
		require.NoError(t, err)
		assert.Equal(t, "chained", v)
	})

	t.Run("intermediate failure propagates", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("second step failed")
		dst := asynckit.Chain(asynckit.Completed(1), func(int) *asynckit.Future[int] {
			return asynckit.Failed[int](wantErr)
		})

		_, err := dst.Await()
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("source failure skips fn", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		wantErr := errors.New("upstream failed")
		dst := asynckit.Chain(asynckit.Failed[int](wantErr), func(int) *asynckit.Future[int] {
			calls.Add(1)
			return asynckit.Completed(0)
		})

		_, err := dst.Await()
		assert.ErrorIs(t, err, wantErr)
		assert.Zero(t, calls.Load())
	})

	t.Run("nil intermediate future fails the result", func(t *testing.T) {
		t.Parallel()

		dst := asynckit.Chain(asynckit.Completed(1), func(int) *asynckit.Future[int] {
			return nil
		})

		_, err := dst.Await()
		assert.ErrorIs(t, err, asynckit.ErrNilFuture)
	})

	t.Run("fn panic fails the result", func(t *testing.T) {
		t.Parallel()

		dst := asynckit.Chain(asynckit.Completed(1), func(int) *asynckit.Future[int] {
			panic("chain blew up")
		})

		_, err := dst.Await()
		var panicErr *asynckit.PanicError
		assert.ErrorAs(t, err, &panicErr)
	})
}

func TestRecover(t *testing.T) {
	t.Parallel()

	t.Run("turns failure into success", func(t *testing.T) {
		t.Parallel()

		src := asynckit.Failed[int](errors.New("original"))
		dst := src.Recover(func(err error) (int, error) {
			assert.EqualError(t, err, "original")
			return -1, nil
		})

		v, err := dst.Await()
		require.NoError(t, err)
		assert.Equal(t, -1, v)
	})

	t.Run("forwards success unchanged", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		dst := asynckit.Completed(3).Recover(func(error) (int, error) {
			calls.Add(1)
			return -1, nil
		})

		v, err := dst.Await()
		require.NoError(t, err)
		assert.Equal(t, 3, v)
		assert.Zero(t, calls.Load())
	})

	t.Run("forwards cancellation unchanged", func(t *testing.T) {
		t.Parallel()

		var calls atomic.Int64
		dst := asynckit.Cancelled[int]().Recover(func(error) (int, error) {
			calls.Add(1)
			return -1, nil
		})

		assert.Equal(t, asynckit.StateCancelled, dst.State())
		assert.Zero(t, calls.Load())
	})

	t.Run("handler error fails the result", func(t *testing.T) {
		t.Parallel()

		handlerErr := errors.New("handler failed too")
		dst := asynckit.Failed[int](errors.New("original")).Recover(func(error) (int, error) {
			return 0, handlerErr
		})

		_, err := dst.Await()
		assert.ErrorIs(t, err, handlerErr)
	})
}

func TestHandle(t *testing.T) {
	t.Parallel()

	t.Run("sees the success value", func(t *testing.T) {
		t.Parallel()

		dst := asynckit.Handle(asynckit.Completed(4), func(v int, err error) (string, error) {
			require.NoError(t, err)
			return strconv.Itoa(v), nil
		})

		v, err := dst.Await()
		require.NoError(t, err)
		assert.Equal(t, "4", v)
	})

	t.Run("sees the failure error", func(t *testing.T) {
		t.Parallel()

		srcErr := errors.New("went wrong")
		dst := asynckit.Handle(asynckit.Failed[int](srcErr), func(v int, err error) (string, error) {
			assert.Zero(t, v)
			assert.ErrorIs(t, err, srcErr)
			return "recovered", nil
		})

		v, err := dst.Await()
		require.NoError(t, err)
		assert.Equal(t, "recovered", v)
	})

	t.Run("stops cancellation propagation", func(t *testing.T) {
		t.Parallel()

		dst := asynckit.Handle(asynckit.Cancelled[int](), func(v int, err error) (string, error) {
			assert.ErrorIs(t, err, asynckit.ErrCancelled)
			return "fallback", nil
		})

		v, err := dst.Await()
		require.NoError(t, err)
		assert.Equal(t, "fallback", v)
	})

	t.Run("fn error fails the result", func(t *testing.T) {
		t.Parallel()

		fnErr := errors.New("handle failed")
		dst := asynckit.Handle(asynckit.Completed(1), func(int, error) (int, error) {
			return 0, fnErr
		})

		_, err := dst.Await()
		assert.ErrorIs(t, err, fnErr)
	})
}

func TestTap(t *testing.T) {
	t.Parallel()

	t.Run("observes the result and forwards it", func(t *testing.T) {
		t.Parallel()

		var seen asynckit.Result[int]
		dst := asynckit.Completed(9).Tap(func(r asynckit.Result[int]) {
			seen = r
		})

		v, err := dst.Await()
		require.NoError(t, err)
		assert.Equal(t, 9, v)
		assert.True(t, seen.Succeeded())
		assert.Equal(t, 9, seen.Value())
	})

	t.Run("observes failures without changing them", func(t *testing.T) {
		t.Parallel()

		srcErr := errors.New("observed failure")
		var seen asynckit.Result[int]
		dst := asynckit.Failed[int](srcErr).Tap(func(r asynckit.Result[int]) {
			seen = r
		})

		_, err := dst.Await()
		assert.ErrorIs(t, err, srcErr)
		assert.True(t, seen.Failed())
	})

	t.Run("panic while observing success fails the result", func(t *testing.T) {
		t.Parallel()

		dst := asynckit.Completed(1).Tap(func(asynckit.Result[int]) {
			panic("observer blew up")
		})

		_, err := dst.Await()
		var panicErr *asynckit.PanicError
		assert.ErrorAs(t, err, &panicErr)
	})

	t.Run("source failure wins over observer panic", func(t *testing.T) {
		t.Parallel()

		srcErr := errors.New("original failure")
		dst := asynckit.Failed[int](srcErr).Tap(func(asynckit.Result[int]) {
			panic("observer blew up")
		})

		_, err := dst.Await()
		assert.ErrorIs(t, err, srcErr)
	})
}
