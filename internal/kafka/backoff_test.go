package kafka

import (
	"context"
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBackoff_GrowsAndCaps(t *testing.T) {
	b := newBackoff(100*time.Millisecond, 300*time.Millisecond, rand.New(rand.NewSource(1)))

	bases := []time.Duration{100, 200, 300, 300}
	for i, base := range bases {
		base *= time.Millisecond
		d := b.next()
		assert.GreaterOrEqual(t, d, base/2, "attempt %d", i)
		assert.LessOrEqual(t, d, base, "attempt %d", i)
	}

	b.reset()
	assert.Equal(t, 100*time.Millisecond, b.current)
}

func TestBackoff_JitterZero(t *testing.T) {
	b := newBackoff(0, 0, rand.New(rand.NewSource(1)))
	assert.Zero(t, b.jitter(0))
	assert.Zero(t, b.jitter(-time.Second))
}

func TestSleepCtx(t *testing.T) {
	assert.True(t, sleepCtx(context.Background(), time.Millisecond))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.False(t, sleepCtx(ctx, time.Hour))
}
