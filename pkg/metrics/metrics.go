package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Catalog snapshot operations",
		},
		[]string{"slot", "op"}, // slot: medicines|symptoms; op: hit|miss|store
	)
	CacheSize = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "catalog_cache_size",
			Help: "Number of records currently held in a snapshot slot",
		},
		[]string{"slot"},
	)
)

var (
	APIClientRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "apiclient_requests_total",
			Help: "Requests issued to the catalog API",
		},
		[]string{"method", "status"}, // status: HTTP code | network | unavailable
	)
	APIClientDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "apiclient_request_duration_seconds",
			Help:    "Catalog API request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)
	FetchRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_fetch_retries_total",
			Help: "Failed populate attempts that were retried",
		},
		[]string{"slot"},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует метрики в глобальном реестре; повторные вызовы безопасны.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
			CacheOps, CacheSize,
			APIClientRequests, APIClientDuration, FetchRetries,
		)
	})
}
