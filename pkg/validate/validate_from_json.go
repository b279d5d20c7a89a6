package validate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/ports"
)

// ValidateMedicineFromJSON — строгий разбор и валидация одной карточки из JSON.
func ValidateMedicineFromJSON(ctx context.Context, validator ports.MedicineValidator, raw []byte) (*domain.Medicine, error) {
	var m domain.Medicine
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&m); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrInvalidMedicine, err)
	}
	if err := dec.Decode(new(struct{})); err != io.EOF {
		return nil, fmt.Errorf("%w: invalid json: trailing data", ErrInvalidMedicine)
	}
	if err := validator.Validate(ctx, &m); err != nil {
		return nil, err
	}
	return &m, nil
}
