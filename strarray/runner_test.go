package strarray

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForEachVisitsAll(t *testing.T) {
	r := testRunner()
	for _, n := range []int{0, 1, 2, 7, 100} {
		seen := make([]int32, n)
		err := r.forEach(context.Background(), n, func(i int) error {
			atomic.AddInt32(&seen[i], 1)
			return nil
		})
		require.NoError(t, err)
		for i, c := range seen {
			assert.EqualValues(t, 1, c, "index %d of %d", i, n)
		}
	}
}

func TestForEachError(t *testing.T) {
	errBoom := errors.New("boom")
	err := testRunner().forEach(context.Background(), 50, func(i int) error {
		if i == 13 {
			return errBoom
		}
		return nil
	})
	assert.ErrorIs(t, err, errBoom)
}

func TestForEachCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	var calls atomic.Int32
	err := testRunner().forEach(ctx, 10, func(int) error {
		calls.Add(1)
		return nil
	})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, calls.Load())

	_, err = testRunner().StrLen(ctx, mustArray(t, encodings[0], "a", "b"))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestConfig(t *testing.T) {
	cfg := Config{}.normalized()
	assert.Equal(t, Config{Workers: 1, ChunkSize: 1}, cfg)

	def := DefaultConfig()
	assert.GreaterOrEqual(t, def.Workers, 1)
	assert.Equal(t, 1024, def.ChunkSize)
}
