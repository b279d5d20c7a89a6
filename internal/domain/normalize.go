package domain

// Нормализация записей, пришедших из хранилища документов.
// Идентификатор берётся из первого непустого алиаса в порядке: _id, id.
// Функции чистые и идемпотентные: Normalize(Normalize(x)) == Normalize(x).

// NormalizeMedicine — приводит запись лекарства к каноническому виду.
func NormalizeMedicine(m Medicine) Medicine {
	return Medicine{
		ID:          firstNonEmpty(m.DocID, m.ID),
		DocID:       m.DocID,
		Name:        m.Name,
		Description: m.Description,
		Price:       m.Price,
		Image:       m.Image,
		Dosage:      m.Dosage,
		Category:    m.Category,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// NormalizeSymptom — приводит запись симптома к каноническому виду.
func NormalizeSymptom(s Symptom) Symptom {
	return Symptom{
		ID:               firstNonEmpty(s.DocID, s.ID),
		DocID:            s.DocID,
		Name:             s.Name,
		Description:      s.Description,
		RelatedMedicines: s.RelatedMedicines,
		CreatedAt:        s.CreatedAt,
		UpdatedAt:        s.UpdatedAt,
	}
}

// NormalizeMedicines — нормализует каждую запись; порядок сохраняется.
func NormalizeMedicines(list []Medicine) []Medicine {
	out := make([]Medicine, 0, len(list))
	for i := range list {
		out = append(out, NormalizeMedicine(list[i]))
	}
	return out
}

// NormalizeSymptoms — нормализует каждую запись; порядок сохраняется.
func NormalizeSymptoms(list []Symptom) []Symptom {
	out := make([]Symptom, 0, len(list))
	for i := range list {
		out = append(out, NormalizeSymptom(list[i]))
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
