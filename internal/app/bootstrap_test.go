package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/http/httputil"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Gunvolt24/medcatalog/config"
)

type nopLogger struct{}

func (nopLogger) Infof(context.Context, string, ...any)  {}
func (nopLogger) Warnf(context.Context, string, ...any)  {}
func (nopLogger) Errorf(context.Context, string, ...any) {}

// fakeConsumer ждёт отмены контекста.
type fakeConsumer struct {
	runCalls   int32
	closeCalls int32
}

func (f *fakeConsumer) Run(ctx context.Context) error {
	atomic.AddInt32(&f.runCalls, 1)
	<-ctx.Done()
	return ctx.Err()
}

func (f *fakeConsumer) Close() error {
	atomic.AddInt32(&f.closeCalls, 1)
	return nil
}

func TestAppRun_GracefulShutdown(t *testing.T) {
	fc := &fakeConsumer{}
	a := &App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
		Consumer:   fc,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 300*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
	assert.EqualValues(t, 1, atomic.LoadInt32(&fc.runCalls))
	assert.EqualValues(t, 1, atomic.LoadInt32(&fc.closeCalls))
}

func TestAppRun_WithoutConsumer(t *testing.T) {
	a := &App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "127.0.0.1:0", Handler: http.NewServeMux()},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	require.NoError(t, a.Run(ctx))
}

func TestAppRun_ListenErrorIsReturned(t *testing.T) {
	a := &App{
		Logger:     nopLogger{},
		HTTPServer: &http.Server{Addr: "bad-address", Handler: http.NewServeMux()},
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	err := a.Run(ctx)
	require.Error(t, err)
	assert.False(t, errors.Is(err, context.DeadlineExceeded))
}

func TestApplyGinMode(t *testing.T) {
	defer gin.SetMode(gin.TestMode)

	for mode, want := range map[string]string{
		"release":   gin.ReleaseMode,
		" TEST ":    gin.TestMode,
		"":          gin.DebugMode,
		"something": gin.DebugMode,
	} {
		applyGinMode(context.Background(), mode, nopLogger{})
		assert.Equal(t, want, gin.Mode(), "mode %q", mode)
	}
}

// fakeCatalogAPI — API каталога с подсчётом обращений к коллекциям.
func fakeCatalogAPI(t *testing.T, symptomsStatus int) (*httptest.Server, *int32) {
	t.Helper()
	var hits int32
	mux := http.NewServeMux()
	mux.HandleFunc("/api/health", func(w http.ResponseWriter, _ *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"status": "OK"})
	})
	mux.HandleFunc("/api/medicines", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		_, _ = w.Write([]byte(`[{"_id":"a1","name":"Paracetamol","description":"d","price":30},
			{"_id":"b2","name":"Cetirizine","description":"d","price":45.5}]`))
	})
	mux.HandleFunc("/api/symptoms", func(w http.ResponseWriter, _ *http.Request) {
		atomic.AddInt32(&hits, 1)
		if symptomsStatus != http.StatusOK {
			w.WriteHeader(symptomsStatus)
			_, _ = w.Write([]byte(`{"error":"boom"}`))
			return
		}
		_, _ = w.Write([]byte(`[{"_id":"s1","name":"Fever","description":"d","relatedMedicines":["a1"]}]`))
	})
	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return ts, &hits
}

// adminSpy — запросы, дошедшие до /api/admin/medicines, и их Authorization.
type adminSpy struct {
	mu    sync.Mutex
	auths []string
}

func (s *adminSpy) seen() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.auths...)
}

// withAdmin — fakeCatalogAPI плюс админ-маршруты API.
func withAdmin(t *testing.T, ts *httptest.Server) (*httptest.Server, *adminSpy) {
	t.Helper()
	spy := &adminSpy{}
	mux := http.NewServeMux()
	mux.HandleFunc("/api/admin/medicines/", func(w http.ResponseWriter, r *http.Request) {
		spy.mu.Lock()
		spy.auths = append(spy.auths, r.Header.Get("Authorization"))
		spy.mu.Unlock()
		_, _ = w.Write([]byte(`{"message":"deleted"}`))
	})
	mux.Handle("/", httputil.NewSingleHostReverseProxy(mustParseURL(t, ts.URL)))
	front := httptest.NewServer(mux)
	t.Cleanup(front.Close)
	return front, spy
}

func mustParseURL(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func webConfig(t *testing.T, baseURL string) *config.Config {
	t.Helper()
	cfg, err := config.LoadWithPrefix("MEDCATALOG_APP_TEST")
	require.NoError(t, err)
	cfg.HTTP.GinMode = "test"
	cfg.Web.Addr = "127.0.0.1:0"
	cfg.APIClient.BaseURL = baseURL
	cfg.APIClient.Timeout = time.Second
	cfg.Catalog.MedicinesRetryDelay = 10 * time.Millisecond
	cfg.Catalog.SymptomsRetryDelay = 10 * time.Millisecond
	cfg.Catalog.WarmUpTimeout = 5 * time.Second
	return cfg
}

func TestBootstrapWeb_ServesPrimedSnapshot(t *testing.T) {
	ts, hits := fakeCatalogAPI(t, http.StatusOK)

	a, cleanup, err := BootstrapWeb(context.Background(), webConfig(t, ts.URL+"/api"))
	require.NoError(t, err)
	defer cleanup()

	primed := atomic.LoadInt32(hits)
	assert.EqualValues(t, 2, primed)

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		a.HTTPServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/medicines", http.NoBody))
		require.Equal(t, http.StatusOK, w.Code)

		var got []map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, "a1", got[0]["id"])
		assert.Equal(t, "₹45.50", got[1]["priceFormatted"])
	}
	assert.Equal(t, primed, atomic.LoadInt32(hits), "reads must come from the snapshot")
}

func TestBootstrapWeb_WarmUpFailureIsFatal(t *testing.T) {
	ts, _ := fakeCatalogAPI(t, http.StatusInternalServerError)

	a, _, err := BootstrapWeb(context.Background(), webConfig(t, ts.URL+"/api"))
	require.Error(t, err)
	assert.Nil(t, a)
}

func TestBootstrapWeb_BadProbeMode(t *testing.T) {
	cfg := webConfig(t, "http://127.0.0.1:1/api")
	cfg.APIClient.Probe = "sometimes"

	_, _, err := BootstrapWeb(context.Background(), cfg)
	require.Error(t, err)
}

func TestBootstrapWeb_AdminNeverUsesServiceToken(t *testing.T) {
	api, _ := fakeCatalogAPI(t, http.StatusOK)
	ts, spy := withAdmin(t, api)

	cfg := webConfig(t, ts.URL+"/api")
	cfg.APIClient.Token = "service-secret"

	a, cleanup, err := BootstrapWeb(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()

	w := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/admin/medicines/a1", http.NoBody))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, spy.seen(), "anonymous admin call must not reach the API")

	req := httptest.NewRequest(http.MethodDelete, "/admin/medicines/a1", http.NoBody)
	req.Header.Set("Authorization", "Bearer operator-token")
	w = httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, []string{"Bearer operator-token"}, spy.seen())
}

func TestBootstrapWeb_RefreshGatedByToken(t *testing.T) {
	ts, hits := fakeCatalogAPI(t, http.StatusOK)

	cfg := webConfig(t, ts.URL+"/api")
	cfg.Web.RefreshToken = "refresh-secret"

	a, cleanup, err := BootstrapWeb(context.Background(), cfg)
	require.NoError(t, err)
	defer cleanup()
	primed := atomic.LoadInt32(hits)

	w := httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/refresh", http.NoBody))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, primed, atomic.LoadInt32(hits))

	req := httptest.NewRequest(http.MethodPost, "/refresh", http.NoBody)
	req.Header.Set("Authorization", "Bearer refresh-secret")
	w = httptest.NewRecorder()
	a.HTTPServer.Handler.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, primed+2, atomic.LoadInt32(hits))
}
