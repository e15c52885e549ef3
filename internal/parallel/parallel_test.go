package parallel

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFor(t *testing.T) {
	var counter int64
	n := 1000

	err := For(context.Background(), n, func(_ context.Context, start, end int) error {
		atomic.AddInt64(&counter, int64(end-start))
		return nil
	}, WithWorkers(4))

	require.NoError(t, err)
	assert.Equal(t, int64(n), counter)
}

func TestFor_CoversEveryIndexOnce(t *testing.T) {
	n := 517
	hits := make([]int32, n)
	err := For(context.Background(), n, func(_ context.Context, start, end int) error {
		for i := start; i < end; i++ {
			atomic.AddInt32(&hits[i], 1)
		}
		return nil
	}, WithWorkers(3))

	require.NoError(t, err)
	for i, h := range hits {
		assert.Equal(t, int32(1), h, "index %d", i)
	}
}

func TestFor_Sequential(t *testing.T) {
	var calls int
	err := For(context.Background(), 100, func(_ context.Context, start, end int) error {
		calls++
		assert.Equal(t, 0, start)
		assert.Equal(t, 100, end)
		return nil
	}, Config{Enabled: false})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestFor_Error(t *testing.T) {
	boom := errors.New("boom")
	err := For(context.Background(), 10000, func(_ context.Context, start, _ int) error {
		if start == 0 {
			return boom
		}
		return nil
	}, WithWorkers(4))

	assert.ErrorIs(t, err, boom)
}

func TestFor_Empty(t *testing.T) {
	err := For(context.Background(), 0, func(context.Context, int, int) error {
		t.Fatal("should not be called")
		return nil
	}, DefaultConfig())
	assert.NoError(t, err)
}
