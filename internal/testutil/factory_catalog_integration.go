//go:build integration

package testutil

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/Gunvolt24/medcatalog/internal/domain"
)

func randHex(n int) string {
	b := make([]byte, n)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}

func UniqSuffix() string { return randHex(6) }

// MakeMedicine — валидная карточка с уникальным id.
func MakeMedicine(opts ...func(*domain.Medicine)) domain.Medicine {
	now := time.Now().UTC().Truncate(time.Millisecond)
	m := domain.Medicine{
		DocID:       "med-" + UniqSuffix(),
		Name:        "Paracetamol " + UniqSuffix(),
		Description: "Pain reliever and fever reducer",
		Price:       30,
		Image:       "https://example.com/paracetamol.jpg",
		Dosage:      "500mg",
		Category:    "Pain Relief",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	for _, fn := range opts {
		fn(&m)
	}
	return m
}

func WithName(name string) func(*domain.Medicine) {
	return func(m *domain.Medicine) { m.Name = name }
}

func WithCategory(category string) func(*domain.Medicine) {
	return func(m *domain.Medicine) { m.Category = category }
}

func WithCreatedAt(t time.Time) func(*domain.Medicine) {
	return func(m *domain.Medicine) { m.CreatedAt, m.UpdatedAt = t, t }
}

// MakeSymptom — симптом со ссылками на лекарства в заданном порядке.
func MakeSymptom(medicineIDs ...string) domain.Symptom {
	now := time.Now().UTC().Truncate(time.Millisecond)
	refs := make([]domain.MedicineRef, 0, len(medicineIDs))
	for _, id := range medicineIDs {
		refs = append(refs, domain.MedicineRef(id))
	}
	return domain.Symptom{
		DocID:            "sym-" + UniqSuffix(),
		Name:             "Headache",
		Description:      "Pain in the head or neck",
		RelatedMedicines: refs,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
