package app

import (
	"context"
	"fmt"

	"github.com/Gunvolt24/medcatalog/config"
	"github.com/Gunvolt24/medcatalog/internal/kafka"
	"github.com/Gunvolt24/medcatalog/internal/repo/postgres"
	rest "github.com/Gunvolt24/medcatalog/internal/transport/http"
	"github.com/Gunvolt24/medcatalog/internal/usecase"
	"github.com/Gunvolt24/medcatalog/pkg/validate"
)

// BootstrapAPI — сервер каталога: Postgres, миграции, REST API и (опционально) Kafka-импорт.
func BootstrapAPI(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	b, err := newBase(ctx, cfg, cfg.Tracing.ServiceName+"-api")
	if err != nil {
		return nil, noCleanup, err
	}

	if err := postgres.Migrate(ctx, cfg.Postgres.DSN); err != nil {
		b.close(ctx)
		return nil, noCleanup, fmt.Errorf("migrate: %w", err)
	}
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		b.close(ctx)
		return nil, noCleanup, err
	}

	catalog := usecase.NewCatalogService(
		postgres.NewMedicineRepository(pool),
		postgres.NewSymptomRepository(pool),
		b.log.Named("catalog"),
		validate.NewMedicineValidator(),
	)

	if cfg.Auth.AdminToken == "" {
		b.log.Warnf(ctx, "MEDCATALOG_AUTH_ADMIN_TOKEN is empty, admin routes are closed")
	}
	handler := rest.NewHandler(catalog, catalog, b.log.Named("http"), cfg.HTTP.HandlerTimeout)
	router := rest.NewRouter(handler, rest.RouterOptions{
		ServiceName: b.serviceName,
		AdminToken:  cfg.Auth.AdminToken,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	})

	a := &App{
		Logger:          b.log,
		HTTPServer:      newHTTPServer(cfg.HTTP.Addr, router, cfg.HTTP),
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	var consumer *kafka.Consumer
	if cfg.Kafka.Enabled {
		consumer = kafka.NewConsumer(&kafka.ConsumerConfig{
			Brokers:        cfg.Kafka.Brokers,
			Topic:          cfg.Kafka.Topic,
			GroupID:        cfg.Kafka.GroupID,
			StartOffset:    cfg.Kafka.StartOffset,
			ProcessTimeout: cfg.Kafka.ProcessTimeout,
			RetryInitial:   cfg.Kafka.RetryInitial,
			RetryMax:       cfg.Kafka.RetryMax,
		}, catalog, b.log.Named("kafka"))
		a.Consumer = consumer
	}

	cleanup := func() {
		if consumer != nil {
			if err := consumer.Close(); err != nil {
				b.log.Warnf(ctx, "consumer close error: %v", err)
			}
		}
		pool.Close()
		b.close(ctx)
	}
	return a, cleanup, nil
}
