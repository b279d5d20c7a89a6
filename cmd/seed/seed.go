package main

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/repo/postgres"
)

//go:embed catalog.json
var catalogJSON []byte

// seedFile — демо-каталог: симптомы ссылаются на лекарства по индексу в списке.
type seedFile struct {
	Medicines []domain.MedicineInput `json:"medicines"`
	Symptoms  []struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		Medicines   []int  `json:"medicines"`
	} `json:"symptoms"`
}

// buildCatalog — готовые к вставке записи с новыми идентификаторами.
func buildCatalog(raw []byte, now time.Time, newID func() string) ([]domain.Medicine, []domain.Symptom, error) {
	var f seedFile
	if err := json.Unmarshal(raw, &f); err != nil {
		return nil, nil, fmt.Errorf("decode seed catalog: %w", err)
	}

	medicines := make([]domain.Medicine, 0, len(f.Medicines))
	for i := range f.Medicines {
		m := f.Medicines[i].ToMedicine()
		m.DocID = newID()
		m.CreatedAt, m.UpdatedAt = now, now
		medicines = append(medicines, m)
	}

	symptoms := make([]domain.Symptom, 0, len(f.Symptoms))
	for _, s := range f.Symptoms {
		refs := make([]domain.MedicineRef, 0, len(s.Medicines))
		for _, idx := range s.Medicines {
			if idx < 0 || idx >= len(medicines) {
				return nil, nil, fmt.Errorf("symptom %q: medicine index %d out of range", s.Name, idx)
			}
			refs = append(refs, domain.MedicineRef(medicines[idx].DocID))
		}
		symptoms = append(symptoms, domain.Symptom{
			DocID:            newID(),
			Name:             s.Name,
			Description:      s.Description,
			RelatedMedicines: refs,
			CreatedAt:        now,
			UpdatedAt:        now,
		})
	}
	return medicines, symptoms, nil
}

// seed — миграции, очистка и вставка демо-каталога.
func seed(ctx context.Context, dsn string, out io.Writer) error {
	medicines, symptoms, err := buildCatalog(catalogJSON, time.Now().UTC(), uuid.NewString)
	if err != nil {
		return err
	}

	if err := postgres.Migrate(ctx, dsn); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	pool, err := postgres.NewPool(ctx, dsn, 4)
	if err != nil {
		return err
	}
	defer pool.Close()

	return insert(ctx, pool, medicines, symptoms, out)
}

func insert(ctx context.Context, pool *pgxpool.Pool, medicines []domain.Medicine, symptoms []domain.Symptom, out io.Writer) error {
	if err := postgres.Truncate(ctx, pool); err != nil {
		return fmt.Errorf("clear catalog: %w", err)
	}
	fmt.Fprintln(out, "Cleared existing data")

	medRepo := postgres.NewMedicineRepository(pool)
	for i := range medicines {
		if err := medRepo.Create(ctx, &medicines[i]); err != nil {
			return fmt.Errorf("insert medicine %q: %w", medicines[i].Name, err)
		}
	}
	fmt.Fprintf(out, "Inserted %d medicines\n", len(medicines))

	symRepo := postgres.NewSymptomRepository(pool)
	for i := range symptoms {
		if err := symRepo.Create(ctx, &symptoms[i]); err != nil {
			return fmt.Errorf("insert symptom %q: %w", symptoms[i].Name, err)
		}
	}
	fmt.Fprintf(out, "Inserted %d symptoms\n", len(symptoms))
	return nil
}
