package ports

import "context"

// MessageConsumer — фоновый источник записей каталога (Kafka-импорт лекарств).
// Run блокируется до отмены ctx; Close безопасно вызывать повторно.
type MessageConsumer interface {
	Run(ctx context.Context) error
	Close() error
}
