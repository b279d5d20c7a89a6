package domain

import "time"

// Medicine — карточка лекарства в каноническом виде.
// ID всегда заполнен после нормализации; DocID — идентификатор документа в хранилище, как пришёл с сервера.
type Medicine struct {
	ID          string    `json:"id,omitempty"`
	DocID       string    `json:"_id,omitempty"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Image       string    `json:"image,omitempty"`
	Dosage      string    `json:"dosage,omitempty"`
	Category    string    `json:"category,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// MedicineInput — тело запроса на создание лекарства.
type MedicineInput struct {
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Dosage      string  `json:"dosage,omitempty"`
	Category    string  `json:"category,omitempty"`
}

// MedicinePatch — частичное обновление: nil-поле не меняется.
type MedicinePatch struct {
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Image       *string  `json:"image,omitempty"`
	Dosage      *string  `json:"dosage,omitempty"`
	Category    *string  `json:"category,omitempty"`
}

// ToMedicine — новая карточка из входных данных (без идентификатора и меток времени).
func (in *MedicineInput) ToMedicine() Medicine {
	return Medicine{
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Image:       in.Image,
		Dosage:      in.Dosage,
		Category:    in.Category,
	}
}

// Apply — накладывает патч на карточку.
func (p *MedicinePatch) Apply(m *Medicine) {
	if p.Name != nil {
		m.Name = *p.Name
	}
	if p.Description != nil {
		m.Description = *p.Description
	}
	if p.Price != nil {
		m.Price = *p.Price
	}
	if p.Image != nil {
		m.Image = *p.Image
	}
	if p.Dosage != nil {
		m.Dosage = *p.Dosage
	}
	if p.Category != nil {
		m.Category = *p.Category
	}
}
