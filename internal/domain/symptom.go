package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Symptom — симптом и упорядоченный список связанных лекарств (ссылки, не вложенные объекты).
type Symptom struct {
	ID               string        `json:"id,omitempty"`
	DocID            string        `json:"_id,omitempty"`
	Name             string        `json:"name"`
	Description      string        `json:"description"`
	RelatedMedicines []MedicineRef `json:"relatedMedicines"`
	CreatedAt        time.Time     `json:"createdAt"`
	UpdatedAt        time.Time     `json:"updatedAt"`
}

// MedicineRef — ссылка на лекарство по идентификатору.
// На входе допускается как строка ("665f..."), так и объект {"_id": ..., "id": ...}.
type MedicineRef string

// UnmarshalJSON — разбирает строковую или объектную форму ссылки.
func (r *MedicineRef) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*r = ""
		return nil
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*r = MedicineRef(s)
		return nil
	case data[0] == '{':
		var obj struct {
			DocID string `json:"_id"`
			ID    string `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return err
		}
		*r = MedicineRef(firstNonEmpty(obj.DocID, obj.ID))
		return nil
	default:
		return fmt.Errorf("medicine ref: unexpected json %s", data)
	}
}
