package app

import (
	"context"
	"time"

	"github.com/Gunvolt24/medcatalog/config"
	"github.com/Gunvolt24/medcatalog/internal/apiclient"
	cachemem "github.com/Gunvolt24/medcatalog/internal/cache/memory"
	"github.com/Gunvolt24/medcatalog/internal/credentials"
	"github.com/Gunvolt24/medcatalog/internal/transport/web"
	"github.com/Gunvolt24/medcatalog/internal/usecase"
	"github.com/Gunvolt24/medcatalog/pkg/retry"
)

// BootstrapWeb — front-end сервер: клиент API, снимок каталога и его прогрев.
// Неудачный прогрев возвращается ошибкой: без снимка сервер не стартует.
func BootstrapWeb(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	b, err := newBase(ctx, cfg, cfg.Tracing.ServiceName+"-web")
	if err != nil {
		return nil, noCleanup, err
	}

	data, err := newDataService(cfg, b)
	if err != nil {
		b.close(ctx)
		return nil, noCleanup, err
	}

	warmCtx, cancel := context.WithTimeout(ctx, warmUpTimeout(cfg.Catalog.WarmUpTimeout))
	defer cancel()
	if err := data.WarmUp(warmCtx); err != nil {
		b.log.Errorf(ctx, "catalog warm-up failed: %v", err)
		b.close(ctx)
		return nil, noCleanup, err
	}
	b.log.Infof(ctx, "catalog snapshot primed")

	router := web.NewRouter(web.NewHandler(data, b.log.Named("http")), web.Options{
		ServiceName:  b.serviceName,
		StaticDir:    cfg.Web.StaticDir,
		RefreshToken: cfg.Web.RefreshToken,
	})

	a := &App{
		Logger:          b.log,
		HTTPServer:      newHTTPServer(cfg.Web.Addr, router, cfg.HTTP),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}
	return a, func() { b.close(ctx) }, nil
}

// newDataService — DataService поверх HTTP-клиента API.
// Токен вызывающего (из контекста запроса) приоритетнее токена из конфига.
func newDataService(cfg *config.Config, b *base) (*usecase.DataService, error) {
	probe, err := apiclient.ParseProbeMode(cfg.APIClient.Probe)
	if err != nil {
		return nil, err
	}
	creds := &credentials.FromContext{Next: credentials.NewStaticToken(cfg.APIClient.Token)}
	client, err := apiclient.New(apiclient.Config{
		BaseURL: cfg.APIClient.BaseURL,
		Timeout: cfg.APIClient.Timeout,
		Probe:   probe,
		Traced:  b.serviceName != "",
	}, creds, b.log.Named("apiclient"))
	if err != nil {
		return nil, err
	}

	return usecase.NewDataService(client, cachemem.NewCatalogSnapshot(), b.log.Named("catalog"), usecase.DataServiceOptions{
		MedicinesRetry: retry.Policy{MaxAttempts: cfg.Catalog.MedicinesRetryAttempts, Delay: cfg.Catalog.MedicinesRetryDelay},
		SymptomsRetry:  retry.Policy{MaxAttempts: cfg.Catalog.SymptomsRetryAttempts, Delay: cfg.Catalog.SymptomsRetryDelay},
		FillTimeout:    warmUpTimeout(cfg.Catalog.WarmUpTimeout),
	}), nil
}

func warmUpTimeout(d time.Duration) time.Duration {
	if d <= 0 {
		return 30 * time.Second
	}
	return d
}
