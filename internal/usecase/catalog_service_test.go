package usecase_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/ports/mocks"
	"github.com/Gunvolt24/medcatalog/internal/usecase"
	"github.com/Gunvolt24/medcatalog/pkg/validate"
)

type catalogDeps struct {
	medicines *mocks.MockMedicineRepository
	symptoms  *mocks.MockSymptomRepository
	validator *mocks.MockMedicineValidator
	svc       *usecase.CatalogService
}

func newCatalog(t *testing.T) catalogDeps {
	ctrl := gomock.NewController(t)
	d := catalogDeps{
		medicines: mocks.NewMockMedicineRepository(ctrl),
		symptoms:  mocks.NewMockSymptomRepository(ctrl),
		validator: mocks.NewMockMedicineValidator(ctrl),
	}
	d.svc = usecase.NewCatalogService(d.medicines, d.symptoms, noopLogger{}, d.validator)
	return d
}

func TestCatalog_GetMedicine(t *testing.T) {
	d := newCatalog(t)
	ctx := context.Background()

	d.medicines.EXPECT().GetByID(gomock.Any(), "a1").Return(&domain.Medicine{DocID: "a1", Name: "Paracetamol"}, nil)
	d.medicines.EXPECT().GetByID(gomock.Any(), "none").Return(nil, nil)

	m, err := d.svc.GetMedicine(ctx, "a1")
	if err != nil || m == nil || m.ID != "a1" {
		t.Fatalf("expected normalized medicine, got %+v %v", m, err)
	}
	m, err = d.svc.GetMedicine(ctx, "none")
	if err != nil || m != nil {
		t.Fatalf("expected (nil, nil), got %+v %v", m, err)
	}
}

func TestCatalog_SearchBlankTerm(t *testing.T) {
	d := newCatalog(t)
	d.medicines.EXPECT().Search(gomock.Any(), gomock.Any()).Times(0)

	list, err := d.svc.SearchMedicines(context.Background(), "   ")
	if err != nil || list == nil || len(list) != 0 {
		t.Fatalf("expected empty list, got %v %v", list, err)
	}
}

func TestCatalog_SearchTrimsTerm(t *testing.T) {
	d := newCatalog(t)
	d.medicines.EXPECT().Search(gomock.Any(), "para").Return([]domain.Medicine{{DocID: "a1"}}, nil)

	list, err := d.svc.SearchMedicines(context.Background(), "  para ")
	if err != nil || len(list) != 1 || list[0].ID != "a1" {
		t.Fatalf("unexpected result %v %v", list, err)
	}
}

func TestCatalog_MedicinesBySymptom(t *testing.T) {
	d := newCatalog(t)
	ctx := context.Background()

	d.symptoms.EXPECT().Medicines(gomock.Any(), "s1").Return([]domain.Medicine{{DocID: "b"}, {DocID: "a"}}, true, nil)
	d.symptoms.EXPECT().Medicines(gomock.Any(), "nope").Return(nil, false, nil)

	list, found, err := d.svc.MedicinesBySymptom(ctx, "s1")
	if err != nil || !found || len(list) != 2 || list[0].ID != "b" {
		t.Fatalf("unexpected %v %v %v", list, found, err)
	}
	if _, found, err := d.svc.MedicinesBySymptom(ctx, "nope"); err != nil || found {
		t.Fatalf("expected not found, got %v %v", found, err)
	}
}

func TestCatalog_CategoriesNeverNil(t *testing.T) {
	d := newCatalog(t)
	d.medicines.EXPECT().Categories(gomock.Any()).Return(nil, nil)

	c, err := d.svc.Categories(context.Background())
	if err != nil || c == nil {
		t.Fatalf("expected empty non-nil slice, got %v %v", c, err)
	}
}

func TestCatalog_CreateMedicine(t *testing.T) {
	d := newCatalog(t)
	in := &domain.MedicineInput{Name: "Cetirizine", Description: "Antihistamine", Price: 18}

	d.validator.EXPECT().Validate(gomock.Any(), gomock.AssignableToTypeOf(&domain.Medicine{})).Return(nil)
	d.medicines.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(&domain.Medicine{})).
		DoAndReturn(func(_ context.Context, m *domain.Medicine) error {
			if m.DocID == "" || m.CreatedAt.IsZero() || !m.CreatedAt.Equal(m.UpdatedAt) {
				t.Errorf("id and timestamps must be assigned before Create: %+v", m)
			}
			return nil
		})

	m, err := d.svc.CreateMedicine(context.Background(), in)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if m.ID == "" || m.ID != m.DocID || m.Name != "Cetirizine" {
		t.Fatalf("unexpected created medicine: %+v", m)
	}
}

func TestCatalog_CreateMedicine_Invalid(t *testing.T) {
	d := newCatalog(t)

	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidMedicine)
	d.medicines.EXPECT().Create(gomock.Any(), gomock.Any()).Times(0)

	_, err := d.svc.CreateMedicine(context.Background(), &domain.MedicineInput{Price: -1})
	if !errors.Is(err, validate.ErrInvalidMedicine) {
		t.Fatalf("want wrapped ErrInvalidMedicine, got %v", err)
	}
	if _, err := d.svc.CreateMedicine(context.Background(), nil); !errors.Is(err, validate.ErrInvalidMedicine) {
		t.Fatalf("nil input: want ErrInvalidMedicine, got %v", err)
	}
}

func TestCatalog_UpdateMedicine(t *testing.T) {
	d := newCatalog(t)
	ctx := context.Background()
	price := 99.0
	patch := &domain.MedicinePatch{Price: &price}

	gomock.InOrder(
		d.medicines.EXPECT().GetByID(gomock.Any(), "a1").Return(&domain.Medicine{DocID: "a1", Name: "P", Description: "d", Price: 1}, nil),
		d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, m *domain.Medicine) error {
			if m.Price != 99 {
				t.Errorf("validator must see the patched record, got price %v", m.Price)
			}
			return nil
		}),
		d.medicines.EXPECT().Update(gomock.Any(), "a1", patch).Return(&domain.Medicine{DocID: "a1", Price: 99}, nil),
	)

	m, err := d.svc.UpdateMedicine(ctx, "a1", patch)
	if err != nil || m.ID != "a1" || m.Price != 99 {
		t.Fatalf("unexpected %+v %v", m, err)
	}
}

func TestCatalog_UpdateMedicine_NotFoundAndInvalid(t *testing.T) {
	d := newCatalog(t)
	ctx := context.Background()
	neg := -1.0

	d.medicines.EXPECT().GetByID(gomock.Any(), "gone").Return(nil, nil)
	d.medicines.EXPECT().GetByID(gomock.Any(), "a1").Return(&domain.Medicine{DocID: "a1"}, nil)
	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(validate.ErrInvalidMedicine)
	d.medicines.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	if m, err := d.svc.UpdateMedicine(ctx, "gone", &domain.MedicinePatch{}); m != nil || err != nil {
		t.Fatalf("expected (nil, nil), got %+v %v", m, err)
	}
	if _, err := d.svc.UpdateMedicine(ctx, "a1", &domain.MedicinePatch{Price: &neg}); !errors.Is(err, validate.ErrInvalidMedicine) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCatalog_DeleteMedicine(t *testing.T) {
	d := newCatalog(t)
	boom := errors.New("db down")

	d.medicines.EXPECT().Delete(gomock.Any(), "a1").Return(true, nil)
	d.medicines.EXPECT().Delete(gomock.Any(), "a2").Return(false, boom)

	if ok, err := d.svc.DeleteMedicine(context.Background(), "a1"); !ok || err != nil {
		t.Fatalf("unexpected %v %v", ok, err)
	}
	if _, err := d.svc.DeleteMedicine(context.Background(), "a2"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestImportFromMessage_InvalidJson(t *testing.T) {
	d := newCatalog(t)
	d.medicines.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	err := d.svc.ImportFromMessage(context.Background(), []byte("{"))
	if !errors.Is(err, validate.ErrInvalidMedicine) || !strings.Contains(err.Error(), "invalid json") {
		t.Fatalf("expected invalid json error, got %v", err)
	}
}

func TestImportFromMessage_ValidationFailed(t *testing.T) {
	d := newCatalog(t)
	d.validator.EXPECT().Validate(gomock.Any(), gomock.AssignableToTypeOf(&domain.Medicine{})).Return(validate.ErrInvalidMedicine)
	d.medicines.EXPECT().Upsert(gomock.Any(), gomock.Any()).Times(0)

	err := d.svc.ImportFromMessage(context.Background(), []byte(`{"_id":"a1","name":"","description":"d","price":1}`))
	if !errors.Is(err, validate.ErrInvalidMedicine) {
		t.Fatalf("want wrapped ErrInvalidMedicine, got %v", err)
	}
}

func TestImportFromMessage_Success(t *testing.T) {
	d := newCatalog(t)
	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	d.medicines.EXPECT().Upsert(gomock.Any(), gomock.AssignableToTypeOf(&domain.Medicine{})).
		DoAndReturn(func(_ context.Context, m *domain.Medicine) error {
			if m.DocID != "legacy-7" || m.ID != "" || m.UpdatedAt.IsZero() || m.CreatedAt.IsZero() {
				t.Errorf("unexpected record for upsert: %+v", m)
			}
			return nil
		})

	raw := []byte(`{"id":"legacy-7","name":"Aspirin","description":"Pain relief","price":12}`)
	if err := d.svc.ImportFromMessage(context.Background(), raw); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestImportFromMessage_RepoError(t *testing.T) {
	d := newCatalog(t)
	boom := errors.New("db down")
	d.validator.EXPECT().Validate(gomock.Any(), gomock.Any()).Return(nil)
	d.medicines.EXPECT().Upsert(gomock.Any(), gomock.Any()).Return(boom)

	err := d.svc.ImportFromMessage(context.Background(), []byte(`{"name":"Aspirin","description":"d","price":1}`))
	if !errors.Is(err, boom) || errors.Is(err, validate.ErrInvalidMedicine) {
		t.Fatalf("expected temporary repo error, got %v", err)
	}
}
