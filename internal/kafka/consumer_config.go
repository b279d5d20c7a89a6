package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// Значения по умолчанию для ConsumerConfig.
const (
	DefaultProcessTimeout = 5 * time.Second
	DefaultRetryInitial   = time.Second
	DefaultRetryMax       = 30 * time.Second
)

// ConsumerConfig — параметры консьюмера каталога лекарств.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // "first" | "last"

	ProcessTimeout time.Duration
	RetryInitial   time.Duration
	RetryMax       time.Duration
}

// ReaderConfig собирает kafka.ReaderConfig с ручным коммитом оффсетов.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
		StartOffset:    kafka.LastOffset,
	}
	if strings.EqualFold(strings.TrimSpace(c.StartOffset), "first") {
		rc.StartOffset = kafka.FirstOffset
	}
	return rc
}

func (c *ConsumerConfig) withDefaults() ConsumerConfig {
	out := *c
	if out.ProcessTimeout <= 0 {
		out.ProcessTimeout = DefaultProcessTimeout
	}
	if out.RetryInitial <= 0 {
		out.RetryInitial = DefaultRetryInitial
	}
	if out.RetryMax <= 0 {
		out.RetryMax = DefaultRetryMax
	}
	if out.RetryMax < out.RetryInitial {
		out.RetryMax = out.RetryInitial
	}
	return out
}
