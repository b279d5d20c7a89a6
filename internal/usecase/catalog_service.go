package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/validate"
)

var (
	_ ports.CatalogReadService  = (*CatalogService)(nil)
	_ ports.CatalogAdminService = (*CatalogService)(nil)
)

// CatalogService — прикладная логика каталога на стороне API (без знаний о транспорте).
type CatalogService struct {
	medicines ports.MedicineRepository
	symptoms  ports.SymptomRepository
	log       ports.Logger
	validator ports.MedicineValidator

	now   func() time.Time
	newID func() string
}

// NewCatalogService — DI-конструктор.
func NewCatalogService(
	medicines ports.MedicineRepository,
	symptoms ports.SymptomRepository,
	log ports.Logger,
	validator ports.MedicineValidator,
) *CatalogService {
	return &CatalogService{
		medicines: medicines,
		symptoms:  symptoms,
		log:       log,
		validator: validator,
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
}

func (s *CatalogService) ListMedicines(ctx context.Context) ([]domain.Medicine, error) {
	list, err := s.medicines.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.List medicines failed err=%v", err)
		return nil, err
	}
	return domain.NormalizeMedicines(list), nil
}

// GetMedicine — (nil, nil), если записи нет.
func (s *CatalogService) GetMedicine(ctx context.Context, id string) (*domain.Medicine, error) {
	m, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID medicine id=%s failed err=%v", id, err)
		return nil, err
	}
	return normalizedMedicine(m), nil
}

func (s *CatalogService) MedicinesByCategory(ctx context.Context, category string) ([]domain.Medicine, error) {
	list, err := s.medicines.ListByCategory(ctx, category)
	if err != nil {
		s.log.Errorf(ctx, "repo.ListByCategory category=%q failed err=%v", category, err)
		return nil, err
	}
	return domain.NormalizeMedicines(list), nil
}

// SearchMedicines — подстрока без учёта регистра по названию, описанию и категории.
// Пустой термин — пустой результат.
func (s *CatalogService) SearchMedicines(ctx context.Context, term string) ([]domain.Medicine, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return []domain.Medicine{}, nil
	}
	list, err := s.medicines.Search(ctx, term)
	if err != nil {
		s.log.Errorf(ctx, "repo.Search term=%q failed err=%v", term, err)
		return nil, err
	}
	return domain.NormalizeMedicines(list), nil
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	categories, err := s.medicines.Categories(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.Categories failed err=%v", err)
		return nil, err
	}
	if categories == nil {
		categories = []string{}
	}
	return categories, nil
}

func (s *CatalogService) ListSymptoms(ctx context.Context) ([]domain.Symptom, error) {
	list, err := s.symptoms.List(ctx)
	if err != nil {
		s.log.Errorf(ctx, "repo.List symptoms failed err=%v", err)
		return nil, err
	}
	return domain.NormalizeSymptoms(list), nil
}

// GetSymptom — (nil, nil), если записи нет.
func (s *CatalogService) GetSymptom(ctx context.Context, id string) (*domain.Symptom, error) {
	sym, err := s.symptoms.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID symptom id=%s failed err=%v", id, err)
		return nil, err
	}
	if sym == nil {
		return nil, nil
	}
	n := domain.NormalizeSymptom(*sym)
	return &n, nil
}

// MedicinesBySymptom — лекарства в порядке ссылок симптома; found=false, если симптома нет.
func (s *CatalogService) MedicinesBySymptom(ctx context.Context, symptomID string) ([]domain.Medicine, bool, error) {
	list, found, err := s.symptoms.Medicines(ctx, symptomID)
	if err != nil {
		s.log.Errorf(ctx, "repo.Medicines symptom id=%s failed err=%v", symptomID, err)
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return domain.NormalizeMedicines(list), true, nil
}

// Health — доступность хранилища.
func (s *CatalogService) Health(ctx context.Context) error {
	return s.medicines.Ping(ctx)
}

// CreateMedicine — валидация, новый идентификатор и метки времени, запись в БД.
func (s *CatalogService) CreateMedicine(ctx context.Context, in *domain.MedicineInput) (*domain.Medicine, error) {
	if in == nil {
		return nil, fmt.Errorf("%w: тело запроса пустое", validate.ErrInvalidMedicine)
	}
	m := in.ToMedicine()
	if err := s.validator.Validate(ctx, &m); err != nil {
		s.log.Warnf(ctx, "create medicine: validation failed err=%v", err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	now := s.now()
	m.DocID = s.newID()
	m.CreatedAt, m.UpdatedAt = now, now
	if err := s.medicines.Create(ctx, &m); err != nil {
		s.log.Errorf(ctx, "repo.Create medicine name=%q failed err=%v", m.Name, err)
		return nil, fmt.Errorf("failed to create medicine: %w", err)
	}
	s.log.Infof(ctx, "medicine created id=%s", m.DocID)
	return normalizedMedicine(&m), nil
}

// UpdateMedicine — частичное обновление; результат проверяется валидатором до записи.
// (nil, nil), если записи нет.
func (s *CatalogService) UpdateMedicine(ctx context.Context, id string, patch *domain.MedicinePatch) (*domain.Medicine, error) {
	if patch == nil {
		patch = &domain.MedicinePatch{}
	}
	current, err := s.medicines.GetByID(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.GetByID medicine id=%s failed err=%v", id, err)
		return nil, err
	}
	if current == nil {
		return nil, nil
	}

	candidate := *current
	patch.Apply(&candidate)
	if err := s.validator.Validate(ctx, &candidate); err != nil {
		s.log.Warnf(ctx, "update medicine id=%s: validation failed err=%v", id, err)
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	updated, err := s.medicines.Update(ctx, id, patch)
	if err != nil {
		s.log.Errorf(ctx, "repo.Update medicine id=%s failed err=%v", id, err)
		return nil, fmt.Errorf("failed to update medicine: %w", err)
	}
	if updated == nil {
		return nil, nil
	}
	s.log.Infof(ctx, "medicine updated id=%s", id)
	return normalizedMedicine(updated), nil
}

// DeleteMedicine — false, если записи не было.
func (s *CatalogService) DeleteMedicine(ctx context.Context, id string) (bool, error) {
	deleted, err := s.medicines.Delete(ctx, id)
	if err != nil {
		s.log.Errorf(ctx, "repo.Delete medicine id=%s failed err=%v", id, err)
		return false, fmt.Errorf("failed to delete medicine: %w", err)
	}
	if deleted {
		s.log.Infof(ctx, "medicine deleted id=%s", id)
	}
	return deleted, nil
}

// ImportFromMessage — сохранить лекарство, пришедшее из Kafka (raw JSON).
// Шаги:
//  1. строгий разбор JSON и доменная валидация (validate.ErrInvalidMedicine при проблемах);
//  2. идентификатор: _id, затем id, иначе новый;
//  3. идемпотентный upsert.
func (s *CatalogService) ImportFromMessage(ctx context.Context, raw []byte) error {
	m, err := validate.ValidateMedicineFromJSON(ctx, s.validator, raw)
	if err != nil {
		s.log.Warnf(ctx, "import medicine: rejected err=%v", err)
		return fmt.Errorf("validation failed: %w", err)
	}

	m.DocID = strings.TrimSpace(m.DocID)
	if m.DocID == "" {
		m.DocID = strings.TrimSpace(m.ID)
	}
	if m.DocID == "" {
		m.DocID = s.newID()
	}
	m.ID = ""
	now := s.now()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	m.UpdatedAt = now

	if err := s.medicines.Upsert(ctx, m); err != nil {
		s.log.Errorf(ctx, "repo.Upsert medicine id=%s failed err=%v", m.DocID, err)
		return fmt.Errorf("failed to save medicine: %w", err)
	}
	s.log.Infof(ctx, "medicine imported id=%s", m.DocID)
	return nil
}

func normalizedMedicine(m *domain.Medicine) *domain.Medicine {
	if m == nil {
		return nil
	}
	n := domain.NormalizeMedicine(*m)
	return &n
}
