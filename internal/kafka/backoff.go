package kafka

import (
	"context"
	"math/rand"
	"time"
)

// backoff — экспоненциальная пауза между неудачными FetchMessage с equal-jitter.
type backoff struct {
	initial time.Duration
	max     time.Duration
	current time.Duration
	rnd     *rand.Rand
}

func newBackoff(initial, max time.Duration, rnd *rand.Rand) *backoff {
	return &backoff{initial: initial, max: max, current: initial, rnd: rnd}
}

// next возвращает паузу для текущей попытки и удваивает базу до max.
func (b *backoff) next() time.Duration {
	d := b.jitter(b.current)
	b.current *= 2
	if b.current > b.max {
		b.current = b.max
	}
	return d
}

func (b *backoff) reset() { b.current = b.initial }

// jitter — половина задержки фиксирована, вторая половина случайна.
func (b *backoff) jitter(d time.Duration) time.Duration {
	if d <= 0 {
		return 0
	}
	half := d / 2
	return half + time.Duration(b.rnd.Int63n(int64(d-half)+1))
}

// sleepCtx ждёт d или отмену контекста. false — контекст отменён.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}
