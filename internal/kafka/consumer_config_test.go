package kafka

import (
	"testing"
	"time"

	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
)

func TestConsumerConfig_ReaderConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		startOffset string
		want        int64
	}{
		{"first", "first", kafkago.FirstOffset},
		{"first upper", "FIRST", kafkago.FirstOffset},
		{"first spaced", " FiRsT \n", kafkago.FirstOffset},
		{"empty", "", kafkago.LastOffset},
		{"last", "last", kafkago.LastOffset},
		{"unknown", "earliest", kafkago.LastOffset},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := ConsumerConfig{
				Brokers:     []string{"k1:9092", "k2:9092"},
				Topic:       "medicines",
				GroupID:     "catalog",
				StartOffset: tt.startOffset,
			}

			rc := cfg.ReaderConfig()
			assert.Equal(t, tt.want, rc.StartOffset)
			assert.Equal(t, cfg.Brokers, rc.Brokers)
			assert.Equal(t, "medicines", rc.Topic)
			assert.Equal(t, "catalog", rc.GroupID)
			assert.Zero(t, rc.CommitInterval)
		})
	}
}

func TestConsumerConfig_WithDefaults(t *testing.T) {
	t.Parallel()

	got := (&ConsumerConfig{}).withDefaults()
	assert.Equal(t, DefaultProcessTimeout, got.ProcessTimeout)
	assert.Equal(t, DefaultRetryInitial, got.RetryInitial)
	assert.Equal(t, DefaultRetryMax, got.RetryMax)

	got = (&ConsumerConfig{RetryInitial: 2 * time.Second, RetryMax: time.Second}).withDefaults()
	assert.Equal(t, 2*time.Second, got.RetryMax, "max не меньше initial")
}
