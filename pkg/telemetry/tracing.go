package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.17.0"
)

const defaultEndpoint = "localhost:4318"

// Config — параметры трейсинга сервиса.
type Config struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
	SampleRatio float64
}

// Shutdown — остановка провайдера с досылкой буфера.
type Shutdown func(context.Context) error

func noopShutdown(context.Context) error { return nil }

// Setup — при cfg.Enabled настраивает OTLP/HTTP экспорт, семплинг и глобальные пропагаторы.
// Выключенный трейсинг возвращает no-op Shutdown.
func Setup(ctx context.Context, cfg Config) (Shutdown, error) {
	if !cfg.Enabled {
		return noopShutdown, nil
	}
	cfg = cfg.normalized()

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(cfg.Endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithSampler(sdktrace.ParentBased(sdktrace.TraceIDRatioBased(cfg.SampleRatio))),
		sdktrace.WithResource(resource.NewWithAttributes(
			semconv.SchemaURL,
			semconv.ServiceName(cfg.ServiceName),
			attribute.String("telemetry.sdk", "opentelemetry"),
		)),
	)

	otel.SetTracerProvider(provider)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))

	return provider.Shutdown, nil
}

// normalized — endpoint по умолчанию и доля семплинга в [0..1].
func (c Config) normalized() Config {
	if c.Endpoint == "" {
		c.Endpoint = defaultEndpoint
	}
	if c.ServiceName == "" {
		c.ServiceName = "medcatalog"
	}
	switch {
	case c.SampleRatio < 0:
		c.SampleRatio = 0
	case c.SampleRatio > 1:
		c.SampleRatio = 1
	}
	return c
}
