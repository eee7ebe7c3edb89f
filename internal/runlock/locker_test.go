package runlock

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalLocker_ExclusiveByName(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	release, err := l.TryAcquire(ctx, "matching")
	require.NoError(t, err)

	_, err = l.TryAcquire(ctx, "matching")
	assert.ErrorIs(t, err, ErrHeld)

	other, err := l.TryAcquire(ctx, "other")
	require.NoError(t, err)
	other()

	release()
	again, err := l.TryAcquire(ctx, "matching")
	require.NoError(t, err)
	again()
}

func TestLocalLocker_ReleaseIsIdempotent(t *testing.T) {
	l := NewLocalLocker()
	ctx := context.Background()

	release, err := l.TryAcquire(ctx, "matching")
	require.NoError(t, err)
	release()

	second, err := l.TryAcquire(ctx, "matching")
	require.NoError(t, err)

	// a stale release must not free the new holder
	release()
	_, err = l.TryAcquire(ctx, "matching")
	assert.ErrorIs(t, err, ErrHeld)
	second()
}

func TestLocalLocker_OneWinnerUnderContention(t *testing.T) {
	l := NewLocalLocker()
	var winners atomic.Int32
	var wg sync.WaitGroup
	start := make(chan struct{})

	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			if _, err := l.TryAcquire(context.Background(), "matching"); err == nil {
				winners.Add(1)
			}
		}()
	}
	close(start)
	wg.Wait()

	assert.Equal(t, int32(1), winners.Load())
}
