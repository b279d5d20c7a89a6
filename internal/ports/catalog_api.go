package ports

import (
	"context"
	"encoding/json"
)

// CatalogAPI — транспорт до удалённого API каталога.
// Ошибки: *apiclient.TransportError (не-2xx), *apiclient.NetworkError (нет ответа),
// apiclient.ErrServerUnavailable (не прошла проверка /health).
type CatalogAPI interface {
	Request(ctx context.Context, method, path string, body any) (json.RawMessage, error)
}

// CredentialSource — источник токена для заголовка Authorization.
// Отсутствие токена — не ошибка: запрос уходит без авторизации.
type CredentialSource interface {
	Token(ctx context.Context) (string, bool)
}
