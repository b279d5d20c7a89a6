package ports

import (
	"context"

	"github.com/Gunvolt24/medcatalog/internal/domain"
)

// MedicineRepository — хранилище лекарств. Если записи нет, Get/Update возвращают (nil, nil).
type MedicineRepository interface {
	Create(ctx context.Context, medicine *domain.Medicine) error
	Upsert(ctx context.Context, medicine *domain.Medicine) error
	Update(ctx context.Context, id string, patch *domain.MedicinePatch) (*domain.Medicine, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByID(ctx context.Context, id string) (*domain.Medicine, error)
	List(ctx context.Context) ([]domain.Medicine, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Medicine, error)
	Search(ctx context.Context, term string) ([]domain.Medicine, error)
	Categories(ctx context.Context) ([]string, error)
	Ping(ctx context.Context) error
}

// SymptomRepository — хранилище симптомов со ссылками на лекарства.
type SymptomRepository interface {
	Create(ctx context.Context, symptom *domain.Symptom) error
	GetByID(ctx context.Context, id string) (*domain.Symptom, error)
	List(ctx context.Context) ([]domain.Symptom, error)
	// Medicines — лекарства симптома в порядке ссылок; found=false, если симптома нет.
	Medicines(ctx context.Context, symptomID string) (medicines []domain.Medicine, found bool, err error)
}
