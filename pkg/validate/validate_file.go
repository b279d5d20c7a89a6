package validate

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/Gunvolt24/medcatalog/internal/ports"
)

// InputFormat — формат входного файла.
type InputFormat string

const (
	FormatAuto  InputFormat = "auto"
	FormatJSON  InputFormat = "json"
	FormatJSONL InputFormat = "jsonl"
)

// StdinPath — имя входа, означающее стандартный ввод.
const StdinPath = "-"

// ParseFormat — разбирает значение флага -format.
func ParseFormat(s string) (InputFormat, error) {
	switch f := InputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatAuto:
		return FormatAuto, nil
	case FormatJSON, FormatJSONL:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %q", s)
	}
}

// DetectFormat — формат по расширению; stdin и неизвестные расширения читаются как JSONL/JSON.
func DetectFormat(path string) InputFormat {
	if path == StdinPath {
		return FormatJSONL
	}
	if strings.EqualFold(filepath.Ext(path), ".jsonl") {
		return FormatJSONL
	}
	return FormatJSON
}

// ValidateFile — валидирует файл (или stdin) как JSON или JSONL, валидные записи пишет в ow.
func ValidateFile(ctx context.Context, validator ports.MedicineValidator, path string, format InputFormat, ow io.Writer) (JSONLResult, error) {
	if format == FormatAuto {
		format = DetectFormat(path)
	}

	in, closeFn, err := openInput(path)
	if err != nil {
		return JSONLResult{}, err
	}
	defer closeFn()

	return ValidateReader(ctx, validator, in, format, ow)
}

// ValidateReader — то же, что ValidateFile, но над произвольным reader'ом.
func ValidateReader(ctx context.Context, validator ports.MedicineValidator, in io.Reader, format InputFormat, ow io.Writer) (JSONLResult, error) {
	switch format {
	case FormatJSONL:
		return ValidateJSONLStream(ctx, validator, in, ow)
	case FormatJSON:
		raw, err := io.ReadAll(in)
		if err != nil {
			return JSONLResult{}, fmt.Errorf("read input: %w", err)
		}
		medicine, err := ValidateMedicineFromJSON(ctx, validator, raw)
		if err != nil {
			return JSONLResult{Invalid: 1, Errors: []LineError{{Line: 1, Err: err}}}, nil
		}
		if err := writeCanonical(ow, medicine); err != nil {
			return JSONLResult{}, err
		}
		return JSONLResult{Valid: 1}, nil
	default:
		return JSONLResult{}, fmt.Errorf("unsupported format: %s", format)
	}
}

func openInput(path string) (io.Reader, func(), error) {
	if path == StdinPath {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open file: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
