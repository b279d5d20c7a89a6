// Пакет retry — ограниченный повтор операций с фиксированной паузой между попытками.
// Без экспоненты и джиттера; любая ошибка считается повторяемой.
package retry

import (
	"context"
	"time"

	goretry "github.com/sethvargo/go-retry"
)

const (
	DefaultMaxAttempts = 3
	DefaultDelay       = time.Second
)

// Policy — параметры повтора: общее число попыток и пауза между ними.
// Нулевые значения заменяются значениями по умолчанию.
type Policy struct {
	MaxAttempts int
	Delay       time.Duration
}

// DefaultPolicy — 3 попытки с паузой 1s.
func DefaultPolicy() Policy {
	return Policy{MaxAttempts: DefaultMaxAttempts, Delay: DefaultDelay}
}

// Do — выполняет op не более MaxAttempts раз, между попытками ждёт Delay.
// После исчерпания попыток возвращает последнюю ошибку; при отмене контекста — ctx.Err().
func (p Policy) Do(ctx context.Context, op func(ctx context.Context) error) error {
	return p.DoNotify(ctx, op, nil)
}

// DoNotify — как Do; notify (если задан) вызывается после каждой неудачной попытки, за которой последует повтор.
func (p Policy) DoNotify(ctx context.Context, op func(ctx context.Context) error, notify func(attempt int, err error)) error {
	p = p.normalized()

	delay := p.Delay
	backoff := goretry.WithMaxRetries(
		uint64(p.MaxAttempts-1),
		goretry.BackoffFunc(func() (time.Duration, bool) { return delay, false }),
	)

	attempt := 0
	return goretry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		err := op(ctx)
		if err == nil {
			return nil
		}
		if notify != nil && attempt < p.MaxAttempts {
			notify(attempt, err)
		}
		return goretry.RetryableError(err)
	})
}

func (p Policy) normalized() Policy {
	if p.MaxAttempts <= 0 {
		p.MaxAttempts = DefaultMaxAttempts
	}
	if p.Delay < 0 {
		p.Delay = 0
	}
	return p
}
