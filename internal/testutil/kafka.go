package testutil

import (
	"context"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// UniqueTopicAndGroup — уникальные topic/group от базового префикса.
// Пример: base="medicines-itest" → "medicines-itest-20250826T010203123456789", "...-group".
func UniqueTopicAndGroup(base string) (topic, group string) {
	s := strings.ReplaceAll(time.Now().UTC().Format("20060102T150405.000000000"), ".", "")
	topic = fmt.Sprintf("%s-%s", base, s)
	return topic, topic + "-group"
}

// EnsureTopic — создаёт топик (если он уже есть — это OK) и ждёт его готовности.
// broker: "host:port", "PLAINTEXT://host:port" или список через запятую (берётся первый).
func EnsureTopic(ctx context.Context, broker, topic string) error {
	addr := firstBootstrap(broker)

	conn, err := kafka.DialContext(ctx, "tcp", addr)
	if err != nil {
		return err
	}
	defer conn.Close()

	// топики создаются через контроллер кластера
	ctrl, err := conn.Controller()
	if err != nil {
		return err
	}
	admin, err := kafka.DialContext(ctx, "tcp", net.JoinHostPort(ctrl.Host, strconv.Itoa(ctrl.Port)))
	if err != nil {
		return err
	}
	defer admin.Close()

	err = admin.CreateTopics(kafka.TopicConfig{Topic: topic, NumPartitions: 1, ReplicationFactor: 1})
	if err != nil && !strings.Contains(strings.ToLower(err.Error()), "already exists") {
		return err
	}
	return waitTopicReady(ctx, addr, topic)
}

// ProduceRaw — пишет сообщения в топик как есть (по одному значению на сообщение).
func ProduceRaw(ctx context.Context, broker, topic string, values ...[]byte) error {
	w := &kafka.Writer{
		Addr:         kafka.TCP(firstBootstrap(broker)),
		Topic:        topic,
		Balancer:     &kafka.LeastBytes{},
		RequiredAcks: kafka.RequireAll,
	}
	defer w.Close()

	msgs := make([]kafka.Message, 0, len(values))
	for _, v := range values {
		msgs = append(msgs, kafka.Message{Value: v})
	}
	return w.WriteMessages(ctx, msgs...)
}

// ---- helpers ----

// firstBootstrap — первый адрес bootstrap-строки без схемы "PLAINTEXT://".
func firstBootstrap(raw string) string {
	first := strings.TrimSpace(strings.Split(raw, ",")[0])
	if strings.Contains(first, "://") {
		if u, err := url.Parse(first); err == nil && u.Host != "" {
			return u.Host
		}
	}
	return first
}

func waitTopicReady(ctx context.Context, broker, topic string) error {
	deadline := time.Now().Add(5 * time.Second)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c, err := kafka.DialContext(ctx, "tcp", broker)
		if err == nil {
			parts, perr := c.ReadPartitions(topic)
			_ = c.Close()
			if perr == nil && len(parts) > 0 {
				return nil
			}
			err = perr
		}

		if time.Now().After(deadline) {
			if err != nil {
				return fmt.Errorf("topic %q not ready: %w", topic, err)
			}
			return fmt.Errorf("topic %q not ready", topic)
		}
		time.Sleep(200 * time.Millisecond)
	}
}
