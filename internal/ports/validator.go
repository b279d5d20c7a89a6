package ports

import (
	"context"

	"github.com/Gunvolt24/medcatalog/internal/domain"
)

type MedicineValidator interface {
	Validate(ctx context.Context, medicine *domain.Medicine) error
}
