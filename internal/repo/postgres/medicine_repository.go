package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/ports"
)

// Проверка, что MedicineRepository удовлетворяет интерфейсу MedicineRepository.
var _ ports.MedicineRepository = (*MedicineRepository)(nil)

const medicineColumns = `id, name, description, price, image, dosage, category, created_at, updated_at`

// MedicineRepository — репозиторий лекарств на Postgres (pgxpool).
type MedicineRepository struct {
	pool *pgxpool.Pool
}

// NewMedicineRepository — конструктор MedicineRepository.
func NewMedicineRepository(pool *pgxpool.Pool) *MedicineRepository {
	return &MedicineRepository{pool: pool}
}

// Create — вставка новой записи; идентификатор (DocID) задаёт вызывающий.
func (r *MedicineRepository) Create(ctx context.Context, m *domain.Medicine) error {
	if m == nil || m.DocID == "" {
		return errors.New("medicine is empty or id is required")
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO medicines (`+medicineColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`, medicineArgs(m)...); err != nil {
		return fmt.Errorf("insert medicine: %w", err)
	}
	return nil
}

// Upsert — идемпотентная запись по id; created_at существующей записи не меняется.
func (r *MedicineRepository) Upsert(ctx context.Context, m *domain.Medicine) error {
	if m == nil || m.DocID == "" {
		return errors.New("medicine is empty or id is required")
	}
	if _, err := r.pool.Exec(ctx, `
		INSERT INTO medicines (`+medicineColumns+`)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			description = EXCLUDED.description,
			price = EXCLUDED.price,
			image = EXCLUDED.image,
			dosage = EXCLUDED.dosage,
			category = EXCLUDED.category,
			updated_at = EXCLUDED.updated_at
	`, medicineArgs(m)...); err != nil {
		return fmt.Errorf("upsert medicine: %w", err)
	}
	return nil
}

// Update — частичное обновление (nil-поля патча не трогаются). Если записи нет, (nil, nil).
func (r *MedicineRepository) Update(ctx context.Context, id string, patch *domain.MedicinePatch) (*domain.Medicine, error) {
	if patch == nil {
		patch = &domain.MedicinePatch{}
	}
	row := r.pool.QueryRow(ctx, `
		UPDATE medicines SET
			name = COALESCE($2::text, name),
			description = COALESCE($3::text, description),
			price = COALESCE($4::double precision, price),
			image = COALESCE($5::text, image),
			dosage = COALESCE($6::text, dosage),
			category = COALESCE($7::text, category),
			updated_at = now()
		WHERE id = $1
		RETURNING `+medicineColumns,
		id, patch.Name, patch.Description, patch.Price, patch.Image, patch.Dosage, patch.Category,
	)
	m, err := scanMedicine(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("update medicine: %w", err)
	}
	return m, nil
}

// Delete — false, если записи не было. Ссылки из симптомов удаляются каскадом.
func (r *MedicineRepository) Delete(ctx context.Context, id string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM medicines WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("delete medicine: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// GetByID — если не нашли, возвращает (nil, nil).
func (r *MedicineRepository) GetByID(ctx context.Context, id string) (*domain.Medicine, error) {
	row := r.pool.QueryRow(ctx, `SELECT `+medicineColumns+` FROM medicines WHERE id = $1`, id)
	m, err := scanMedicine(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("select medicine: %w", err)
	}
	return m, nil
}

// List — все лекарства в порядке добавления.
func (r *MedicineRepository) List(ctx context.Context) ([]domain.Medicine, error) {
	return r.query(ctx, `SELECT `+medicineColumns+` FROM medicines ORDER BY created_at, id`)
}

// ListByCategory — точное совпадение категории.
func (r *MedicineRepository) ListByCategory(ctx context.Context, category string) ([]domain.Medicine, error) {
	return r.query(ctx, `
		SELECT `+medicineColumns+` FROM medicines
		WHERE category = $1
		ORDER BY created_at, id
	`, category)
}

// Search — подстрока без учёта регистра по name, description, category.
// Спецсимволы LIKE в термине экранируются.
func (r *MedicineRepository) Search(ctx context.Context, term string) ([]domain.Medicine, error) {
	pattern := "%" + likeEscaper.Replace(term) + "%"
	return r.query(ctx, `
		SELECT `+medicineColumns+` FROM medicines
		WHERE name ILIKE $1 OR description ILIKE $1 OR category ILIKE $1
		ORDER BY created_at, id
	`, pattern)
}

// Categories — уникальные непустые категории по алфавиту.
func (r *MedicineRepository) Categories(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT DISTINCT category FROM medicines
		WHERE category <> ''
		ORDER BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("select categories: %w", err)
	}
	categories, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("scan categories: %w", err)
	}
	return categories, nil
}

// Ping — проверка соединения (для /health).
func (r *MedicineRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

// ------вспомогательные функции------

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func (r *MedicineRepository) query(ctx context.Context, sql string, args ...any) ([]domain.Medicine, error) {
	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("select medicines: %w", err)
	}
	defer rows.Close()
	return collectMedicines(rows)
}

func medicineArgs(m *domain.Medicine) []any {
	return []any{m.DocID, m.Name, m.Description, m.Price, m.Image, m.Dosage, m.Category, m.CreatedAt, m.UpdatedAt}
}

func scanMedicine(row pgx.Row) (*domain.Medicine, error) {
	var m domain.Medicine
	if err := row.Scan(
		&m.DocID, &m.Name, &m.Description, &m.Price, &m.Image, &m.Dosage, &m.Category, &m.CreatedAt, &m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func collectMedicines(rows pgx.Rows) ([]domain.Medicine, error) {
	out := make([]domain.Medicine, 0)
	for rows.Next() {
		m, err := scanMedicine(rows)
		if err != nil {
			return nil, fmt.Errorf("scan medicine: %w", err)
		}
		out = append(out, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("medicines rows: %w", err)
	}
	return out, nil
}
