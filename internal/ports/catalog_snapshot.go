package ports

import (
	"context"

	"github.com/Gunvolt24/medcatalog/internal/domain"
)

// CatalogSnapshot — снимок двух коллекций в памяти.
// Требования к реализации: потокобезопасность; слот либо пуст, либо заполнен целиком;
// замена только целиком, без поэлементных изменений.
type CatalogSnapshot interface {
	// Medicines — (список, true), если слот заполнен; (nil, false) — холодный кэш.
	Medicines(ctx context.Context) ([]domain.Medicine, bool)

	// Symptoms — (список, true), если слот заполнен; (nil, false) — холодный кэш.
	Symptoms(ctx context.Context) ([]domain.Symptom, bool)

	// FillMedicines — записать слот лекарств, только если он холодный.
	// Возвращает то, что лежит в слоте после вызова: переданное или уже заполненное.
	FillMedicines(ctx context.Context, medicines []domain.Medicine) []domain.Medicine

	// FillSymptoms — то же для симптомов.
	FillSymptoms(ctx context.Context, symptoms []domain.Symptom) []domain.Symptom

	// Replace — атомарно заменить оба слота.
	Replace(ctx context.Context, symptoms []domain.Symptom, medicines []domain.Medicine)
}
