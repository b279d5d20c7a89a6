package ports

import "context"

// Logger — контракт логгера для всех слоёв. ctx нужен, чтобы в запись попадали
// request_id и trace_id текущего запроса.
type Logger interface {
	Infof(ctx context.Context, format string, args ...any)
	Warnf(ctx context.Context, format string, args ...any)
	Errorf(ctx context.Context, format string, args ...any)
}
