package ports

import (
	"context"

	"github.com/Gunvolt24/medcatalog/internal/domain"
)

// CatalogReadService — чтение каталога из хранилища (сторона API).
// Для одиночных записей (nil, nil) означает «не найдено».
type CatalogReadService interface {
	ListMedicines(ctx context.Context) ([]domain.Medicine, error)
	GetMedicine(ctx context.Context, id string) (*domain.Medicine, error)
	MedicinesByCategory(ctx context.Context, category string) ([]domain.Medicine, error)
	SearchMedicines(ctx context.Context, term string) ([]domain.Medicine, error)
	Categories(ctx context.Context) ([]string, error)
	ListSymptoms(ctx context.Context) ([]domain.Symptom, error)
	GetSymptom(ctx context.Context, id string) (*domain.Symptom, error)
	MedicinesBySymptom(ctx context.Context, symptomID string) ([]domain.Medicine, bool, error)
	Health(ctx context.Context) error
}

// CatalogAdminService — изменения каталога (сторона API).
// Update/Delete возвращают (nil, nil) / (false, nil), если записи нет.
type CatalogAdminService interface {
	CreateMedicine(ctx context.Context, in *domain.MedicineInput) (*domain.Medicine, error)
	UpdateMedicine(ctx context.Context, id string, patch *domain.MedicinePatch) (*domain.Medicine, error)
	DeleteMedicine(ctx context.Context, id string) (bool, error)
}
