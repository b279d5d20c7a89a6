package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/medcatalog/config"
	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/logger"
	"github.com/Gunvolt24/medcatalog/pkg/metrics"
	"github.com/Gunvolt24/medcatalog/pkg/telemetry"
)

// App — собранный сервис: HTTP-сервер и, опционально, консьюмер.
type App struct {
	Logger          ports.Logger
	HTTPServer      *http.Server
	Consumer        ports.MessageConsumer // nil — без фонового консьюмера
	gracefulTimeout time.Duration
}

// Cleanup — освобождение ресурсов в обратном порядке.
type Cleanup func()

func noCleanup() {}

// applyGinMode — режим Gin по строке; неизвестное значение → debug с предупреждением.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// base — общая часть обоих сервисов: логгер, метрики, трейсинг.
type base struct {
	log           *logger.ZapLogger
	closeLogger   func() error
	shutdownTrace telemetry.Shutdown
	serviceName   string // для otelgin; пусто, если трейсинг выключен
}

func newBase(ctx context.Context, cfg *config.Config, serviceName string) (*base, error) {
	logg, closeLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, err
	}
	metrics.MustRegister()

	b := &base{log: logg, closeLogger: closeLogger, shutdownTrace: func(context.Context) error { return nil }}

	tcfg := telemetry.Config{
		Enabled:     cfg.Tracing.Enabled,
		ServiceName: serviceName,
		Endpoint:    cfg.Tracing.Endpoint,
		SampleRatio: cfg.Tracing.SampleRatio,
	}
	shutdown, err := telemetry.Setup(ctx, tcfg)
	switch {
	case err != nil:
		logg.Warnf(ctx, "failed to setup tracing: %v", err)
	case cfg.Tracing.Enabled:
		logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
			serviceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		b.shutdownTrace = shutdown
		b.serviceName = serviceName
	}

	applyGinMode(ctx, cfg.HTTP.GinMode, logg)
	return b, nil
}

func (b *base) close(ctx context.Context) {
	if err := b.shutdownTrace(context.Background()); err != nil {
		b.log.Warnf(ctx, "shutdown tracing: %v", err)
	}
	if err := b.closeLogger(); err != nil {
		b.log.Warnf(ctx, "cleanup logger: %v", err)
	}
}

func newHTTPServer(addr string, h http.Handler, cfg config.HTTP) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadTimeout:       cfg.ReadTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		IdleTimeout:       cfg.IdleTimeout,
	}
}

// Run — запускает HTTP-сервер и консьюмер; ждёт отмены контекста или фоновой ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 2)

	if a.Consumer != nil {
		go func() {
			a.Logger.Infof(ctx, "consumer starting")
			if err := a.Consumer.Run(ctx); err != nil {
				errCh <- err
			}
		}()
	}

	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	var runErr error
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			a.Logger.Infof(ctx, "background component stopped: %v", err)
		} else {
			a.Logger.Errorf(ctx, "background error: %v", err)
			runErr = err
		}
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	if a.Consumer != nil {
		if err := a.Consumer.Close(); err != nil {
			a.Logger.Warnf(ctx, "consumer close error: %v", err)
		}
	}

	a.Logger.Infof(ctx, "service stopped")
	return runErr
}
