package ports

import (
	"context"

	"github.com/Gunvolt24/medcatalog/internal/domain"
)

// CatalogDataService — клиентская сторона каталога: кэш коллекций поверх удалённого API.
// Коллекции и Reload возвращают ошибки; точечные запросы и админ-операции
// гасят ошибки в пустой результат / false.
type CatalogDataService interface {
	GetMedicines(ctx context.Context) ([]domain.Medicine, error)
	GetSymptoms(ctx context.Context) ([]domain.Symptom, error)
	Reload(ctx context.Context) error

	GetMedicineByID(ctx context.Context, id string) (*domain.Medicine, bool)
	GetSymptomByID(ctx context.Context, id string) (*domain.Symptom, bool)
	GetMedicinesByCategory(ctx context.Context, category string) []domain.Medicine
	SearchMedicines(ctx context.Context, term string) []domain.Medicine
	GetMedicinesBySymptomID(ctx context.Context, symptomID string) []domain.Medicine
	GetCategories(ctx context.Context) []string
	CheckAPIHealth(ctx context.Context) bool

	CreateMedicine(ctx context.Context, in domain.MedicineInput) (*domain.Medicine, bool)
	UpdateMedicine(ctx context.Context, id string, patch domain.MedicinePatch) (*domain.Medicine, bool)
	DeleteMedicine(ctx context.Context, id string) bool
}
