// Пакет ctxmeta — нейтральный слой для метаданных запроса,
// которые прокидываются через context.Context (request_id, bearer-токен, trace_id).
// HTTP-слой, логгер и клиент API зависят от него, но не друг от друга.
package ctxmeta

import "context"

type ctxKey string

const (
	// Ключи контекста (неэкспортируемый тип — чтобы избежать коллизий).
	KeyRequestID   ctxKey = "request_id"
	KeyBearerToken ctxKey = "bearer_token"
	KeyCallerOnly  ctxKey = "caller_only"
)

// WithRequestID кладёт request_id в контекст (если пусто — ничего не делает).
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return withString(ctx, KeyRequestID, requestID)
}

// RequestIDFromContext достаёт request_id из контекста.
func RequestIDFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyRequestID)
}

// WithBearerToken кладёт токен вызывающего (без префикса "Bearer ") в контекст.
func WithBearerToken(ctx context.Context, token string) context.Context {
	return withString(ctx, KeyBearerToken, token)
}

// BearerTokenFromContext достаёт токен вызывающего из контекста.
func BearerTokenFromContext(ctx context.Context) (string, bool) {
	return stringFrom(ctx, KeyBearerToken)
}

// WithCallerOnly помечает контекст: исходящие вызовы идут только с токеном
// вызывающего, сервисный токен не подставляется.
func WithCallerOnly(ctx context.Context) context.Context {
	if ctx == nil {
		return ctx
	}
	return context.WithValue(ctx, KeyCallerOnly, true)
}

// CallerOnly — выставлен ли флаг WithCallerOnly.
func CallerOnly(ctx context.Context) bool {
	if ctx == nil {
		return false
	}
	v, _ := ctx.Value(KeyCallerOnly).(bool)
	return v
}

func withString(ctx context.Context, key ctxKey, v string) context.Context {
	if ctx == nil || v == "" {
		return ctx
	}
	return context.WithValue(ctx, key, v)
}

func stringFrom(ctx context.Context, key ctxKey) (string, bool) {
	if ctx == nil {
		return "", false
	}
	if v, ok := ctx.Value(key).(string); ok && v != "" {
		return v, true
	}
	return "", false
}
