package memory

import (
	"context"
	"sync"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/metrics"
)

var _ ports.CatalogSnapshot = (*CatalogSnapshot)(nil)

const (
	slotMedicines = "medicines"
	slotSymptoms  = "symptoms"
)

// CatalogSnapshot — снимок двух коллекций каталога в памяти.
// Слот либо пуст (холодный), либо заполнен целиком; замена только целиком.
// Читатели получают сам сохранённый срез и не должны его изменять.
type CatalogSnapshot struct {
	mu sync.RWMutex

	medicines       []domain.Medicine
	medicinesFilled bool

	symptoms       []domain.Symptom
	symptomsFilled bool
}

// NewCatalogSnapshot — пустой снимок.
func NewCatalogSnapshot() *CatalogSnapshot { return &CatalogSnapshot{} }

func (s *CatalogSnapshot) Medicines(_ context.Context) ([]domain.Medicine, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.medicinesFilled {
		metrics.CacheOps.WithLabelValues(slotMedicines, "miss").Inc()
		return nil, false
	}
	metrics.CacheOps.WithLabelValues(slotMedicines, "hit").Inc()
	return s.medicines, true
}

func (s *CatalogSnapshot) Symptoms(_ context.Context) ([]domain.Symptom, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.symptomsFilled {
		metrics.CacheOps.WithLabelValues(slotSymptoms, "miss").Inc()
		return nil, false
	}
	metrics.CacheOps.WithLabelValues(slotSymptoms, "hit").Inc()
	return s.symptoms, true
}

// FillMedicines — заполняет только холодный слот; заполненный (например, Replace,
// пришедшим во время загрузки) не трогает. nil сохраняется как пустой, но заполненный слот.
func (s *CatalogSnapshot) FillMedicines(_ context.Context, medicines []domain.Medicine) []domain.Medicine {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.medicinesFilled {
		metrics.CacheOps.WithLabelValues(slotMedicines, "stale").Inc()
		return s.medicines
	}
	s.storeMedicines(medicines)
	return s.medicines
}

// FillSymptoms — то же для симптомов.
func (s *CatalogSnapshot) FillSymptoms(_ context.Context, symptoms []domain.Symptom) []domain.Symptom {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.symptomsFilled {
		metrics.CacheOps.WithLabelValues(slotSymptoms, "stale").Inc()
		return s.symptoms
	}
	s.storeSymptoms(symptoms)
	return s.symptoms
}

// Replace — оба слота под одной блокировкой: читатель не увидит новую пару наполовину.
func (s *CatalogSnapshot) Replace(_ context.Context, symptoms []domain.Symptom, medicines []domain.Medicine) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.storeSymptoms(symptoms)
	s.storeMedicines(medicines)
}

// ------вспомогательные функции------

func (s *CatalogSnapshot) storeMedicines(medicines []domain.Medicine) {
	if medicines == nil {
		medicines = []domain.Medicine{}
	}
	s.medicines = medicines
	s.medicinesFilled = true
	metrics.CacheOps.WithLabelValues(slotMedicines, "store").Inc()
	metrics.CacheSize.WithLabelValues(slotMedicines).Set(float64(len(medicines)))
}

func (s *CatalogSnapshot) storeSymptoms(symptoms []domain.Symptom) {
	if symptoms == nil {
		symptoms = []domain.Symptom{}
	}
	s.symptoms = symptoms
	s.symptomsFilled = true
	metrics.CacheOps.WithLabelValues(slotSymptoms, "store").Inc()
	metrics.CacheSize.WithLabelValues(slotSymptoms).Set(float64(len(symptoms)))
}
