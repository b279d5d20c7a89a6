package apiclient

import (
	"errors"
	"fmt"
)

// ErrServerUnavailable — не прошла проверка живости (/health); основной запрос не отправлялся.
var ErrServerUnavailable = errors.New("catalog api is unavailable")

// TransportError — сервер ответил не-2xx.
type TransportError struct {
	Status  int
	Message string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("catalog api: status %d: %s", e.Status, e.Message)
}

// NetworkError — ответ не получен (dial, reset, таймаут, отмена контекста).
type NetworkError struct {
	Cause error
}

func (e *NetworkError) Error() string { return "catalog api: network: " + e.Cause.Error() }

func (e *NetworkError) Unwrap() error { return e.Cause }

// IsNotFound — ответ 404.
func IsNotFound(err error) bool {
	var te *TransportError
	return errors.As(err, &te) && te.Status == 404
}
