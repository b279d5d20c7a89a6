package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
	"github.com/Gunvolt24/medcatalog/pkg/metrics"
	"github.com/Gunvolt24/medcatalog/pkg/retry"
)

var _ ports.CatalogDataService = (*DataService)(nil)

const (
	slotMedicines = "medicines"
	slotSymptoms  = "symptoms"

	pathMedicines      = "/medicines"
	pathSymptoms       = "/symptoms"
	pathCategories     = "/categories"
	pathHealth         = "/health"
	pathAdminMedicines = "/admin/medicines"
)

// DataServiceOptions — политики повтора для заполнения слотов; нулевые значения — 3 попытки по 1s.
type DataServiceOptions struct {
	MedicinesRetry retry.Policy
	SymptomsRetry  retry.Policy
	// FillTimeout — потолок общего заполнения холодного слота; 0 — 30s.
	FillTimeout time.Duration
}

const defaultFillTimeout = 30 * time.Second

// DataService — клиентская сторона каталога: снимок коллекций поверх API.
type DataService struct {
	api   ports.CatalogAPI
	cache ports.CatalogSnapshot
	log   ports.Logger

	medicinesRetry retry.Policy
	symptomsRetry  retry.Policy
	fillTimeout    time.Duration

	// склеивает одновременные заполнения одного холодного слота
	flight singleflight.Group
}

// NewDataService — DI-конструктор.
func NewDataService(api ports.CatalogAPI, cache ports.CatalogSnapshot, log ports.Logger, opts DataServiceOptions) *DataService {
	fillTimeout := opts.FillTimeout
	if fillTimeout <= 0 {
		fillTimeout = defaultFillTimeout
	}
	return &DataService{
		api:            api,
		cache:          cache,
		log:            log,
		medicinesRetry: opts.MedicinesRetry,
		symptomsRetry:  opts.SymptomsRetry,
		fillTimeout:    fillTimeout,
	}
}

// GetMedicines — слот из снимка; на холодном кэше загрузка с повтором, нормализация и запись в слот.
// При ошибке слот остаётся прежним.
func (s *DataService) GetMedicines(ctx context.Context) ([]domain.Medicine, error) {
	if medicines, ok := s.cache.Medicines(ctx); ok {
		return medicines, nil
	}
	v, err := s.fill(ctx, slotMedicines, func(fctx context.Context) (any, error) {
		medicines, err := s.fetchMedicines(fctx)
		if err != nil {
			return nil, err
		}
		medicines = s.cache.FillMedicines(fctx, medicines)
		s.log.Infof(fctx, "cached medicines count=%d", len(medicines))
		return medicines, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Medicine), nil
}

// GetSymptoms — то же для симптомов.
func (s *DataService) GetSymptoms(ctx context.Context) ([]domain.Symptom, error) {
	if symptoms, ok := s.cache.Symptoms(ctx); ok {
		return symptoms, nil
	}
	v, err := s.fill(ctx, slotSymptoms, func(fctx context.Context) (any, error) {
		symptoms, err := s.fetchSymptoms(fctx)
		if err != nil {
			return nil, err
		}
		symptoms = s.cache.FillSymptoms(fctx, symptoms)
		s.log.Infof(fctx, "cached symptoms count=%d", len(symptoms))
		return symptoms, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Symptom), nil
}

// fill — одно заполнение слота на всех ожидающих. Загрузка не привязана к отмене
// первого вызывающего и ограничена fillTimeout; каждый ждёт результат в пределах своего ctx.
func (s *DataService) fill(ctx context.Context, slot string, load func(context.Context) (any, error)) (any, error) {
	ch := s.flight.DoChan(slot, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.fillTimeout)
		defer cancel()
		return load(fctx)
	})
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

// Refresh — безусловно заменяет оба слота целиком.
func (s *DataService) Refresh(ctx context.Context, symptoms []domain.Symptom, medicines []domain.Medicine) {
	s.cache.Replace(ctx, domain.NormalizeSymptoms(symptoms), domain.NormalizeMedicines(medicines))
}

// WarmUp — прогрев при старте: обе коллекции загружаются параллельно,
// Refresh вызывается только если обе загрузки успешны. Ошибка должна останавливать запуск.
func (s *DataService) WarmUp(ctx context.Context) error {
	start := time.Now()
	if err := s.Reload(ctx); err != nil {
		s.log.Errorf(ctx, "cache warm-up failed err=%v", err)
		return fmt.Errorf("warm up: %w", err)
	}
	s.log.Infof(ctx, "cache warmed in %s", time.Since(start))
	return nil
}

// Reload — загрузить обе коллекции и заменить снимок; при любой ошибке снимок не меняется.
func (s *DataService) Reload(ctx context.Context) error {
	var (
		medicines []domain.Medicine
		symptoms  []domain.Symptom
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		symptoms, err = s.fetchSymptoms(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		medicines, err = s.fetchMedicines(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	s.Refresh(ctx, symptoms, medicines)
	s.log.Infof(ctx, "catalog snapshot replaced medicines=%d symptoms=%d", len(medicines), len(symptoms))
	return nil
}

// ------ точечные запросы: мимо снимка, ошибки гасятся ------

// GetMedicineByID — (nil, false), если записи нет или запрос не удался.
func (s *DataService) GetMedicineByID(ctx context.Context, id string) (*domain.Medicine, bool) {
	var m *domain.Medicine
	if err := s.getJSON(ctx, pathMedicines+"/"+url.PathEscape(id), &m); err != nil || m == nil {
		s.softFail(ctx, "get medicine id="+id, err)
		return nil, false
	}
	n := domain.NormalizeMedicine(*m)
	return &n, true
}

func (s *DataService) GetSymptomByID(ctx context.Context, id string) (*domain.Symptom, bool) {
	var sym *domain.Symptom
	if err := s.getJSON(ctx, pathSymptoms+"/"+url.PathEscape(id), &sym); err != nil || sym == nil {
		s.softFail(ctx, "get symptom id="+id, err)
		return nil, false
	}
	n := domain.NormalizeSymptom(*sym)
	return &n, true
}

func (s *DataService) GetMedicinesByCategory(ctx context.Context, category string) []domain.Medicine {
	return s.medicineList(ctx, pathMedicines+"/category/"+url.PathEscape(category))
}

// SearchMedicines — поиск на стороне API; термин экранируется как сегмент пути.
func (s *DataService) SearchMedicines(ctx context.Context, term string) []domain.Medicine {
	return s.medicineList(ctx, pathMedicines+"/search/"+url.PathEscape(term))
}

func (s *DataService) GetMedicinesBySymptomID(ctx context.Context, symptomID string) []domain.Medicine {
	return s.medicineList(ctx, pathSymptoms+"/"+url.PathEscape(symptomID)+"/medicines")
}

func (s *DataService) GetCategories(ctx context.Context) []string {
	categories, err := getList[string](ctx, s.api, pathCategories)
	if err != nil {
		s.softFail(ctx, "get categories", err)
		return []string{}
	}
	return categories
}

// CheckAPIHealth — GET /health и status == "OK".
func (s *DataService) CheckAPIHealth(ctx context.Context) bool {
	var body struct {
		Status string `json:"status"`
	}
	if err := s.getJSON(ctx, pathHealth, &body); err != nil {
		s.softFail(ctx, "health check", err)
		return false
	}
	return body.Status == "OK"
}

// ------ админ-операции: проксируются в API, снимок не трогают ------

// CreateMedicine — (nil, false) при любой ошибке.
func (s *DataService) CreateMedicine(ctx context.Context, in domain.MedicineInput) (*domain.Medicine, bool) {
	return s.mutateMedicine(ctx, http.MethodPost, pathAdminMedicines, in)
}

// UpdateMedicine — (nil, false) при любой ошибке.
func (s *DataService) UpdateMedicine(ctx context.Context, id string, patch domain.MedicinePatch) (*domain.Medicine, bool) {
	return s.mutateMedicine(ctx, http.MethodPut, pathAdminMedicines+"/"+url.PathEscape(id), patch)
}

// DeleteMedicine — true, если API подтвердил удаление.
func (s *DataService) DeleteMedicine(ctx context.Context, id string) bool {
	ctx = ctxmeta.WithCallerOnly(ctx)
	if _, err := s.api.Request(ctx, http.MethodDelete, pathAdminMedicines+"/"+url.PathEscape(id), nil); err != nil {
		s.softFail(ctx, "delete medicine id="+id, err)
		return false
	}
	return true
}

// FormatIndianPrice — цена в рупиях с двумя знаками.
func (s *DataService) FormatIndianPrice(price float64) string {
	return domain.FormatIndianPrice(price)
}

// ------вспомогательные функции------

// fetchMedicines — путь заполнения слота без записи в снимок.
func (s *DataService) fetchMedicines(ctx context.Context) ([]domain.Medicine, error) {
	var raw []domain.Medicine
	err := s.medicinesRetry.DoNotify(ctx, func(ctx context.Context) error {
		var err error
		raw, err = getList[domain.Medicine](ctx, s.api, pathMedicines)
		return err
	}, s.retryNotify(ctx, slotMedicines))
	if err != nil {
		return nil, fmt.Errorf("fetch medicines: %w", err)
	}
	return domain.NormalizeMedicines(raw), nil
}

func (s *DataService) fetchSymptoms(ctx context.Context) ([]domain.Symptom, error) {
	var raw []domain.Symptom
	err := s.symptomsRetry.DoNotify(ctx, func(ctx context.Context) error {
		var err error
		raw, err = getList[domain.Symptom](ctx, s.api, pathSymptoms)
		return err
	}, s.retryNotify(ctx, slotSymptoms))
	if err != nil {
		return nil, fmt.Errorf("fetch symptoms: %w", err)
	}
	return domain.NormalizeSymptoms(raw), nil
}

func (s *DataService) retryNotify(ctx context.Context, slot string) func(int, error) {
	return func(attempt int, err error) {
		metrics.FetchRetries.WithLabelValues(slot).Inc()
		s.log.Warnf(ctx, "fetch %s attempt=%d failed, retrying err=%v", slot, attempt, err)
	}
}

func (s *DataService) medicineList(ctx context.Context, path string) []domain.Medicine {
	medicines, err := getList[domain.Medicine](ctx, s.api, path)
	if err != nil {
		s.softFail(ctx, "get "+path, err)
		return []domain.Medicine{}
	}
	return domain.NormalizeMedicines(medicines)
}

// mutateMedicine — админ-вызовы идут только с токеном вызывающего.
func (s *DataService) mutateMedicine(ctx context.Context, method, path string, body any) (*domain.Medicine, bool) {
	ctx = ctxmeta.WithCallerOnly(ctx)
	raw, err := s.api.Request(ctx, method, path, body)
	if err != nil {
		s.softFail(ctx, method+" "+path, err)
		return nil, false
	}
	var m *domain.Medicine
	if err := decodeObject(path, raw, &m); err != nil || m == nil {
		s.softFail(ctx, method+" "+path, err)
		return nil, false
	}
	n := domain.NormalizeMedicine(*m)
	return &n, true
}

func (s *DataService) getJSON(ctx context.Context, path string, dst any) error {
	raw, err := s.api.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	return decodeObject(path, raw, dst)
}

func (s *DataService) softFail(ctx context.Context, op string, err error) {
	if err == nil {
		err = &ValidationError{Reason: "empty body"}
	}
	s.log.Warnf(ctx, "%s failed, returning empty result err=%v", op, err)
}

// getList — GET path и разбор JSON-массива; всё, кроме массива, — ValidationError.
func getList[T any](ctx context.Context, api ports.CatalogAPI, path string) ([]T, error) {
	raw, err := api.Request(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, &ValidationError{Path: path, Reason: "expected JSON array"}
	}
	var out []T
	if err := json.Unmarshal(trimmed, &out); err != nil {
		return nil, &ValidationError{Path: path, Reason: err.Error()}
	}
	return out, nil
}

func decodeObject(path string, raw json.RawMessage, dst any) error {
	if len(bytes.TrimSpace(raw)) == 0 {
		return &ValidationError{Path: path, Reason: "empty body"}
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &ValidationError{Path: path, Reason: err.Error()}
	}
	return nil
}
