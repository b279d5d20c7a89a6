package validate

import (
	"context"
	"errors"
	"fmt"
	"math"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/ports"
)

// Проверка, что MedicineValidator удовлетворяет интерфейсу MedicineValidator.
var _ ports.MedicineValidator = (*MedicineValidator)(nil)

// ErrInvalidMedicine — базовая (sentinel error) ошибка валидации.
var ErrInvalidMedicine = errors.New("medicine validation failed")

// MaxNameLength — предельная длина названия в символах.
const MaxNameLength = 200

// MedicineValidator — структура для валидации карточки лекарства.
type MedicineValidator struct{}

// NewMedicineValidator — конструктор MedicineValidator.
// Возвращает ErrInvalidMedicine (с обёрнутой причиной) при любой проблеме.
func NewMedicineValidator() *MedicineValidator { return &MedicineValidator{} }

// Validate — проверяет корректность полей лекарства.
func (v *MedicineValidator) Validate(_ context.Context, m *domain.Medicine) error {
	if m == nil {
		return fmt.Errorf("%w: лекарство не может быть nil", ErrInvalidMedicine)
	}
	if err := v.validateText(m); err != nil {
		return err
	}
	if err := v.validatePrice(m.Price); err != nil {
		return err
	}
	return v.validateImage(m.Image)
}

func (v *MedicineValidator) validateText(m *domain.Medicine) error {
	if strings.TrimSpace(m.Name) == "" {
		return fmt.Errorf("%w: name обязателен", ErrInvalidMedicine)
	}
	if utf8.RuneCountInString(m.Name) > MaxNameLength {
		return fmt.Errorf("%w: name длиннее %d символов", ErrInvalidMedicine, MaxNameLength)
	}
	if strings.TrimSpace(m.Description) == "" {
		return fmt.Errorf("%w: description обязателен", ErrInvalidMedicine)
	}
	return nil
}

func (v *MedicineValidator) validatePrice(price float64) error {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return fmt.Errorf("%w: price некорректен", ErrInvalidMedicine)
	}
	if price < 0 {
		return fmt.Errorf("%w: price должен быть неотрицательным", ErrInvalidMedicine)
	}
	return nil
}

// Картинка: пусто, относительный путь к ассету (assets/images/x.jpg) или абсолютный http(s) URL.
func (v *MedicineValidator) validateImage(image string) error {
	if image == "" {
		return nil
	}
	u, err := url.Parse(image)
	switch {
	case err != nil:
		return fmt.Errorf("%w: image некорректен", ErrInvalidMedicine)
	case u.Scheme == "" && u.Host == "":
		return nil
	case (u.Scheme == "http" || u.Scheme == "https") && u.Host != "":
		return nil
	default:
		return fmt.Errorf("%w: image некорректен", ErrInvalidMedicine)
	}
}

// ValidateInput — те же правила для тела запроса на создание.
func (v *MedicineValidator) ValidateInput(ctx context.Context, in *domain.MedicineInput) error {
	if in == nil {
		return fmt.Errorf("%w: тело запроса пустое", ErrInvalidMedicine)
	}
	m := in.ToMedicine()
	return v.Validate(ctx, &m)
}
