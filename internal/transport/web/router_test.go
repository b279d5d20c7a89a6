package web_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/internal/ports/mocks"
	"github.com/Gunvolt24/medcatalog/internal/transport/web"
	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
)

type noopLogger struct{}

func (noopLogger) Infof(context.Context, string, ...any)  {}
func (noopLogger) Warnf(context.Context, string, ...any)  {}
func (noopLogger) Errorf(context.Context, string, ...any) {}

func setup(t *testing.T) (*mocks.MockCatalogDataService, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	data := mocks.NewMockCatalogDataService(gomock.NewController(t))
	return data, web.NewRouter(web.NewHandler(data, noopLogger{}), web.Options{RefreshToken: refreshToken})
}

const (
	refreshToken = "refresh-secret"
	authHeader   = "Authorization"
	adminBearer  = "Bearer admin-token"
)

func serve(r *gin.Engine, method, path, body string, hdr ...string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, http.NoBody)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	for i := 0; i+1 < len(hdr); i += 2 {
		req.Header.Set(hdr[i], hdr[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var paracetamol = domain.Medicine{ID: "a1", DocID: "a1", Name: "Paracetamol", Description: "d", Price: 30}

func TestMedicines_IncludesFormattedPrice(t *testing.T) {
	data, r := setup(t)
	data.EXPECT().GetMedicines(gomock.Any()).Return([]domain.Medicine{paracetamol}, nil)

	w := serve(r, http.MethodGet, "/medicines", "")
	require.Equal(t, http.StatusOK, w.Code)

	var got []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "a1", got[0]["id"])
	assert.Equal(t, "Paracetamol", got[0]["name"])
	assert.Equal(t, "₹30.00", got[0]["priceFormatted"])
}

func TestMedicines_ColdCacheFailure(t *testing.T) {
	data, r := setup(t)
	data.EXPECT().GetMedicines(gomock.Any()).Return(nil, errors.New("api down"))

	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/medicines", "").Code)
}

func TestMedicineByID(t *testing.T) {
	data, r := setup(t)
	m := paracetamol
	data.EXPECT().GetMedicineByID(gomock.Any(), "a1").Return(&m, true)
	data.EXPECT().GetMedicineByID(gomock.Any(), "x").Return(nil, false)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/medicines/a1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/medicines/x", "").Code)
}

func TestSoftFailLookups_ReturnEmptyLists(t *testing.T) {
	data, r := setup(t)
	data.EXPECT().GetMedicinesByCategory(gomock.Any(), "Allergy").Return([]domain.Medicine{})
	data.EXPECT().SearchMedicines(gomock.Any(), "para cet").Return(nil)
	data.EXPECT().GetMedicinesBySymptomID(gomock.Any(), "s1").Return([]domain.Medicine{})
	data.EXPECT().GetCategories(gomock.Any()).Return([]string{})

	for _, path := range []string{
		"/medicines/category/Allergy",
		"/medicines/search/para%20cet",
		"/symptoms/s1/medicines",
		"/categories",
	} {
		w := serve(r, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.JSONEq(t, "[]", w.Body.String(), path)
	}
}

func TestSymptoms(t *testing.T) {
	data, r := setup(t)
	s := domain.Symptom{ID: "s1", DocID: "s1", Name: "Fever", RelatedMedicines: []domain.MedicineRef{"a1"}}
	data.EXPECT().GetSymptoms(gomock.Any()).Return([]domain.Symptom{s}, nil)
	data.EXPECT().GetSymptomByID(gomock.Any(), "s1").Return(&s, true)
	data.EXPECT().GetSymptomByID(gomock.Any(), "nope").Return(nil, false)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/symptoms", "").Code)
	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/symptoms/s1", "").Code)
	assert.Equal(t, http.StatusNotFound, serve(r, http.MethodGet, "/symptoms/nope", "").Code)
}

func TestHealth(t *testing.T) {
	data, r := setup(t)
	data.EXPECT().CheckAPIHealth(gomock.Any()).Return(true)
	data.EXPECT().CheckAPIHealth(gomock.Any()).Return(false)

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, serve(r, http.MethodGet, "/health", "").Code)
}

func TestRefresh(t *testing.T) {
	data, r := setup(t)
	data.EXPECT().Reload(gomock.Any()).Return(nil)
	data.EXPECT().Reload(gomock.Any()).Return(errors.New("symptoms: 500"))

	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodPost, "/refresh", "", authHeader, "Bearer "+refreshToken).Code)
	assert.Equal(t, http.StatusBadGateway, serve(r, http.MethodPost, "/refresh", "", authHeader, "Bearer "+refreshToken).Code)
}

func TestRefresh_RequiresToken(t *testing.T) {
	data, r := setup(t)
	data.EXPECT().Reload(gomock.Any()).Times(0)

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/refresh", "").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/refresh", "", authHeader, adminBearer).Code)
}

func TestRefresh_ClosedWithoutConfiguredToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	data := mocks.NewMockCatalogDataService(gomock.NewController(t))
	data.EXPECT().Reload(gomock.Any()).Times(0)
	r := web.NewRouter(web.NewHandler(data, noopLogger{}), web.Options{})

	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/refresh", "", authHeader, "Bearer ").Code)
	assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodPost, "/refresh", "", authHeader, "Bearer anything").Code)
}

func TestAdmin_ForwardsCallerToken(t *testing.T) {
	data, r := setup(t)
	created := domain.Medicine{ID: "n1", DocID: "n1", Name: "Aspirin", Description: "d", Price: 12.5}

	data.EXPECT().CreateMedicine(gomock.Any(), domain.MedicineInput{Name: "Aspirin", Description: "d", Price: 12.5}).
		DoAndReturn(func(ctx context.Context, _ domain.MedicineInput) (*domain.Medicine, bool) {
			token, ok := ctxmeta.BearerTokenFromContext(ctx)
			assert.True(t, ok)
			assert.Equal(t, "admin-token", token)
			return &created, true
		})

	w := serve(r, http.MethodPost, "/admin/medicines", `{"name":"Aspirin","description":"d","price":12.5}`,
		authHeader, adminBearer)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"priceFormatted":"₹12.50"`)
}

func TestAdmin_FailuresMapTo502(t *testing.T) {
	data, r := setup(t)
	data.EXPECT().CreateMedicine(gomock.Any(), gomock.Any()).Return(nil, false)
	data.EXPECT().UpdateMedicine(gomock.Any(), "a1", gomock.Any()).Return(nil, false)
	data.EXPECT().DeleteMedicine(gomock.Any(), "a1").Return(false)

	assert.Equal(t, http.StatusBadGateway, serve(r, http.MethodPost, "/admin/medicines", `{"name":"x"}`, authHeader, adminBearer).Code)
	assert.Equal(t, http.StatusBadGateway, serve(r, http.MethodPut, "/admin/medicines/a1", `{"price":1}`, authHeader, adminBearer).Code)
	assert.Equal(t, http.StatusBadGateway, serve(r, http.MethodDelete, "/admin/medicines/a1", "", authHeader, adminBearer).Code)
}

func TestAdmin_UpdateAndDelete_OK(t *testing.T) {
	data, r := setup(t)
	updated := paracetamol
	updated.Price = 35
	data.EXPECT().UpdateMedicine(gomock.Any(), "a1", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, p domain.MedicinePatch) (*domain.Medicine, bool) {
			require.NotNil(t, p.Price)
			assert.Equal(t, 35.0, *p.Price)
			return &updated, true
		})
	data.EXPECT().DeleteMedicine(gomock.Any(), "a1").Return(true)

	w := serve(r, http.MethodPut, "/admin/medicines/a1", `{"price":35}`, authHeader, adminBearer)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"priceFormatted":"₹35.00"`)
	assert.Equal(t, http.StatusNoContent, serve(r, http.MethodDelete, "/admin/medicines/a1", "", authHeader, adminBearer).Code)
}

func TestAdmin_BadJSON(t *testing.T) {
	_, r := setup(t)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/admin/medicines", `{`, authHeader, adminBearer).Code)
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPut, "/admin/medicines/a1", `[1]`, authHeader, adminBearer).Code)
}

func TestAdmin_AnonymousRejected(t *testing.T) {
	data, r := setup(t)
	data.EXPECT().CreateMedicine(gomock.Any(), gomock.Any()).Times(0)
	data.EXPECT().UpdateMedicine(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	data.EXPECT().DeleteMedicine(gomock.Any(), gomock.Any()).Times(0)

	for _, tc := range []struct{ method, path, body string }{
		{http.MethodPost, "/admin/medicines", `{"name":"x","description":"d","price":1}`},
		{http.MethodPut, "/admin/medicines/a1", `{"price":1}`},
		{http.MethodDelete, "/admin/medicines/a1", ""},
	} {
		w := serve(r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusUnauthorized, w.Code, tc.method)
		assert.JSONEq(t, `{"error":"unauthorized"}`, w.Body.String())
	}
}
