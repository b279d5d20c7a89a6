package validate

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/medcatalog/internal/ports"
)

// maxLineSize — предел длины одной JSONL-строки.
const maxLineSize = 10 * 1024 * 1024

// LineError — причина отказа для конкретной строки (нумерация с 1).
type LineError struct {
	Line int
	Err  error
}

func (e LineError) Error() string { return fmt.Sprintf("line %d: %v", e.Line, e.Err) }

func (e LineError) Unwrap() error { return e.Err }

// JSONLResult — статистика валидации потока JSONL.
type JSONLResult struct {
	Valid   int
	Invalid int
	Errors  []LineError
}

// Summary — строка вида "N valid / M invalid".
func (r JSONLResult) Summary() string {
	return fmt.Sprintf("%d valid / %d invalid", r.Valid, r.Invalid)
}

// ValidateJSONLStream — читает JSONL, валидирует каждую строку, валидные пишет в ow
// каноническим JSON по одной записи на строку. Пустые строки пропускаются.
func ValidateJSONLStream(ctx context.Context, validator ports.MedicineValidator, ir io.Reader, ow io.Writer) (JSONLResult, error) {
	var res JSONLResult

	scanner := bufio.NewScanner(ir)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if err := ctx.Err(); err != nil {
			return res, err
		}
		raw := bytes.TrimSpace(scanner.Bytes())
		if len(raw) == 0 {
			continue
		}

		medicine, err := ValidateMedicineFromJSON(ctx, validator, raw)
		if err != nil {
			res.Invalid++
			res.Errors = append(res.Errors, LineError{Line: line, Err: err})
			continue
		}

		if err := writeCanonical(ow, medicine); err != nil {
			return res, err
		}
		res.Valid++
	}
	if err := scanner.Err(); err != nil {
		return res, fmt.Errorf("scan: %w", err)
	}
	return res, nil
}

// writeCanonical — компактный JSON и перевод строки.
func writeCanonical(ow io.Writer, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}
	b = append(b, '\n')
	if _, err := ow.Write(b); err != nil {
		return fmt.Errorf("write: %w", err)
	}
	return nil
}
