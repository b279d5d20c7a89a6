package usecase

import "fmt"

// ValidationError — ответ API неожиданной формы (например, не массив там, где нужен список).
type ValidationError struct {
	Path   string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("unexpected response for %s: %s", e.Path, e.Reason)
}
