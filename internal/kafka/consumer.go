package kafka

//go:generate mockgen -source=consumer.go -destination=mocks/mock_consumer.go -package=mocks

import (
	"context"
	"errors"
	"math/rand"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/metrics"
	"github.com/Gunvolt24/medcatalog/pkg/validate"
)

var _ ports.MessageConsumer = (*Consumer)(nil)

// reader — то, что Consumer использует от kafka.Reader.
type reader interface {
	FetchMessage(ctx context.Context) (kafka.Message, error)
	CommitMessages(ctx context.Context, msgs ...kafka.Message) error
	Config() kafka.ReaderConfig
	Close() error
}

// messageSaver — импорт одного лекарства из сырого сообщения.
type messageSaver interface {
	ImportFromMessage(ctx context.Context, raw []byte) error
}

// Consumer — читает топик с лекарствами и передаёт сообщения в каталог.
// Оффсет коммитится после успешного импорта и после невалидного сообщения,
// временные ошибки оставляют сообщение непрочитанным (at-least-once).
type Consumer struct {
	reader         reader
	service        messageSaver
	log            ports.Logger
	processTimeout time.Duration
	fetchBackoff   *backoff
	closeOnce      sync.Once
}

// NewConsumer — конструктор поверх kafka.NewReader.
func NewConsumer(cfg *ConsumerConfig, service messageSaver, log ports.Logger) *Consumer {
	c := cfg.withDefaults()
	return newConsumer(kafka.NewReader(c.ReaderConfig()), service, log, c,
		rand.New(rand.NewSource(time.Now().UnixNano())))
}

func newConsumer(r reader, service messageSaver, log ports.Logger, cfg ConsumerConfig, rnd *rand.Rand) *Consumer {
	return &Consumer{
		reader:         r,
		service:        service,
		log:            log,
		processTimeout: cfg.ProcessTimeout,
		fetchBackoff:   newBackoff(cfg.RetryInitial, cfg.RetryMax, rnd),
	}
}

// Run — цикл чтения до отмены контекста.
func (c *Consumer) Run(ctx context.Context) error {
	rc := c.reader.Config()
	c.log.Infof(ctx, "medicine consumer started topic=%s group_id=%s brokers=%v", rc.Topic, rc.GroupID, rc.Brokers)

	for {
		msg, err := c.reader.FetchMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			pause := c.fetchBackoff.next()
			c.log.Warnf(ctx, "fetch failed: %v (retry in %s)", err, pause)
			if !sleepCtx(ctx, pause) {
				return ctx.Err()
			}
			continue
		}
		c.fetchBackoff.reset()
		metrics.KafkaMessagesConsumed.WithLabelValues(rc.Topic).Inc()

		if c.process(ctx, rc.Topic, msg) {
			if err := c.reader.CommitMessages(ctx, msg); err != nil {
				c.log.Warnf(ctx, "commit failed offset=%d: %v", msg.Offset, err)
			}
			continue
		}
		// оффсет не коммитится, но reader группы идёт дальше: следующий коммит
		// покроет и это сообщение, повторно оно придёт только после ребаланса/рестарта.
		// Пауза — чтобы не долбить упавшую зависимость.
		if !sleepCtx(ctx, c.fetchBackoff.jitter(min(c.fetchBackoff.initial, 500*time.Millisecond))) {
			return ctx.Err()
		}
	}
}

// process импортирует сообщение и сообщает, можно ли коммитить оффсет.
func (c *Consumer) process(ctx context.Context, topic string, msg kafka.Message) bool {
	pctx, cancel := context.WithTimeout(ctx, c.processTimeout)
	defer cancel()

	err := c.service.ImportFromMessage(pctx, msg.Value)
	switch {
	case err == nil:
		metrics.KafkaMessagesProcessed.WithLabelValues(topic).Inc()
		return true
	case errors.Is(err, validate.ErrInvalidMedicine):
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "invalid medicine offset=%d: %v (skipped)", msg.Offset, err)
		return true
	default:
		metrics.KafkaMessagesFailed.WithLabelValues(topic).Inc()
		c.log.Warnf(ctx, "import failed offset=%d: %v (left uncommitted)", msg.Offset, err)
		return false
	}
}

// Close закрывает reader один раз.
func (c *Consumer) Close() (err error) {
	c.closeOnce.Do(func() { err = c.reader.Close() })
	return err
}
