package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/ports"
)

// Проверка, что SymptomRepository удовлетворяет интерфейсу SymptomRepository.
var _ ports.SymptomRepository = (*SymptomRepository)(nil)

// SymptomRepository — симптомы и упорядоченные ссылки на лекарства (symptom_medicines).
type SymptomRepository struct {
	pool *pgxpool.Pool
}

// NewSymptomRepository — конструктор SymptomRepository.
func NewSymptomRepository(pool *pgxpool.Pool) *SymptomRepository {
	return &SymptomRepository{pool: pool}
}

// Create — транзакционно: симптом + ссылки (порядок сохраняется в position).
func (r *SymptomRepository) Create(ctx context.Context, s *domain.Symptom) error {
	if s == nil || s.DocID == "" {
		return errors.New("symptom is empty or id is required")
	}

	transaction, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		// При уже завершённой транзакции Rollback вернёт ErrTxClosed — игнорируем.
		_ = transaction.Rollback(ctx)
	}()

	if _, err = transaction.Exec(ctx, `
		INSERT INTO symptoms (id, name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`, s.DocID, s.Name, s.Description, s.CreatedAt, s.UpdatedAt); err != nil {
		return fmt.Errorf("insert symptom: %w", err)
	}

	if len(s.RelatedMedicines) > 0 {
		if err = copyReferences(ctx, transaction, s.DocID, s.RelatedMedicines); err != nil {
			return err
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// GetByID — если не нашли, возвращает (nil, nil).
func (r *SymptomRepository) GetByID(ctx context.Context, id string) (*domain.Symptom, error) {
	var s domain.Symptom
	err := r.pool.QueryRow(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM symptoms WHERE id = $1
	`, id).Scan(&s.DocID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select symptom: %w", err)
	}

	refs, err := r.references(ctx, []string{id})
	if err != nil {
		return nil, err
	}
	s.RelatedMedicines = refs[id]
	if s.RelatedMedicines == nil {
		s.RelatedMedicines = []domain.MedicineRef{}
	}
	return &s, nil
}

// List — все симптомы: два запроса (базовые записи + ссылки), склейка в памяти.
func (r *SymptomRepository) List(ctx context.Context) ([]domain.Symptom, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, name, description, created_at, updated_at
		FROM symptoms
		ORDER BY created_at, id
	`)
	if err != nil {
		return nil, fmt.Errorf("select symptoms: %w", err)
	}
	defer rows.Close()

	symptoms := make([]domain.Symptom, 0)
	ids := make([]string, 0)
	for rows.Next() {
		var s domain.Symptom
		if err := rows.Scan(&s.DocID, &s.Name, &s.Description, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan symptom: %w", err)
		}
		symptoms = append(symptoms, s)
		ids = append(ids, s.DocID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("symptoms rows: %w", err)
	}
	if len(symptoms) == 0 {
		return symptoms, nil
	}

	refs, err := r.references(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range symptoms {
		symptoms[i].RelatedMedicines = refs[symptoms[i].DocID]
		if symptoms[i].RelatedMedicines == nil {
			symptoms[i].RelatedMedicines = []domain.MedicineRef{}
		}
	}
	return symptoms, nil
}

// Medicines — полные записи лекарств симптома в порядке ссылок; found=false, если симптома нет.
func (r *SymptomRepository) Medicines(ctx context.Context, symptomID string) ([]domain.Medicine, bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM symptoms WHERE id = $1)`, symptomID).Scan(&exists); err != nil {
		return nil, false, fmt.Errorf("select symptom: %w", err)
	}
	if !exists {
		return nil, false, nil
	}

	rows, err := r.pool.Query(ctx, `
		SELECT m.id, m.name, m.description, m.price, m.image, m.dosage, m.category, m.created_at, m.updated_at
		FROM symptom_medicines sm
		JOIN medicines m ON m.id = sm.medicine_id
		WHERE sm.symptom_id = $1
		ORDER BY sm.position
	`, symptomID)
	if err != nil {
		return nil, false, fmt.Errorf("select symptom medicines: %w", err)
	}
	defer rows.Close()

	medicines, err := collectMedicines(rows)
	if err != nil {
		return nil, false, err
	}
	return medicines, true, nil
}

// ------вспомогательные функции------

// references — ссылки для набора симптомов, упорядоченные по position.
func (r *SymptomRepository) references(ctx context.Context, ids []string) (map[string][]domain.MedicineRef, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT symptom_id, medicine_id
		FROM symptom_medicines
		WHERE symptom_id = ANY($1::text[])
		ORDER BY symptom_id, position
	`, ids)
	if err != nil {
		return nil, fmt.Errorf("select references: %w", err)
	}
	defer rows.Close()

	out := make(map[string][]domain.MedicineRef, len(ids))
	for rows.Next() {
		var symptomID, medicineID string
		if err := rows.Scan(&symptomID, &medicineID); err != nil {
			return nil, fmt.Errorf("scan reference: %w", err)
		}
		out[symptomID] = append(out[symptomID], domain.MedicineRef(medicineID))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("references rows: %w", err)
	}
	return out, nil
}

// copyReferences — пакетная вставка ссылок через COPY.
func copyReferences(ctx context.Context, tx pgx.Tx, symptomID string, refs []domain.MedicineRef) error {
	rows := make([][]any, 0, len(refs))
	for i, ref := range refs {
		if ref == "" {
			continue
		}
		rows = append(rows, []any{symptomID, int32(i), string(ref)})
	}

	_, err := tx.CopyFrom(
		ctx,
		pgx.Identifier{"symptom_medicines"},
		[]string{"symptom_id", "position", "medicine_id"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("copy references: %w", err)
	}
	return nil
}
