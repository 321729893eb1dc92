//go:build unit

package shared_test

import (
	"sync"
	"sync/atomic"
	"testing"

	"hoster-calendar/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInflightGuard(t *testing.T) {
	t.Run("second acquire on the same listing is refused until release", func(t *testing.T) {
		guard := shared.NewInflightGuard()

		release, ok := guard.TryAcquire("listing-1")
		require.True(t, ok)
		assert.True(t, guard.InFlight("listing-1"))

		_, ok = guard.TryAcquire("listing-1")
		assert.False(t, ok)

		release()
		assert.False(t, guard.InFlight("listing-1"))

		release2, ok := guard.TryAcquire("listing-1")
		require.True(t, ok)
		release2()
	})

	t.Run("listings are guarded independently", func(t *testing.T) {
		guard := shared.NewInflightGuard()

		r1, ok := guard.TryAcquire("listing-1")
		require.True(t, ok)
		defer r1()

		r2, ok := guard.TryAcquire("listing-2")
		require.True(t, ok)
		r2()
	})

	t.Run("release is idempotent", func(t *testing.T) {
		guard := shared.NewInflightGuard()

		release, ok := guard.TryAcquire("listing-1")
		require.True(t, ok)
		release()
		assert.NotPanics(t, release)
		assert.False(t, guard.InFlight("listing-1"))
	})

	t.Run("exactly one of many concurrent callers wins", func(t *testing.T) {
		guard := shared.NewInflightGuard()
		var wins int32
		var wg sync.WaitGroup
		start := make(chan struct{})

		for range 20 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-start
				if _, ok := guard.TryAcquire("listing-1"); ok {
					atomic.AddInt32(&wins, 1)
				}
			}()
		}
		close(start)
		wg.Wait()

		assert.Equal(t, int32(1), atomic.LoadInt32(&wins))
	})

	t.Run("concurrent InFlight readers never cause a refusal", func(t *testing.T) {
		guard := shared.NewInflightGuard()
		stop := make(chan struct{})
		var wg sync.WaitGroup

		for range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				for {
					select {
					case <-stop:
						return
					default:
						guard.InFlight("listing-1")
					}
				}
			}()
		}

		refused := 0
		for range 10000 {
			release, ok := guard.TryAcquire("listing-1")
			if !ok {
				refused++
				continue
			}
			release()
		}
		close(stop)
		wg.Wait()

		assert.Zero(t, refused)
		assert.False(t, guard.InFlight("listing-1"))
	})

	t.Run("InFlight stays true for the whole hold", func(t *testing.T) {
		guard := shared.NewInflightGuard()

		release, ok := guard.TryAcquire("listing-1")
		require.True(t, ok)
		for range 100 {
			assert.True(t, guard.InFlight("listing-1"))
		}
		assert.False(t, guard.InFlight("listing-2"))

		release()
		assert.False(t, guard.InFlight("listing-1"))
	})
}
