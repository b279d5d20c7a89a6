package logger

import (
	"context"

	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger — реализация ports.Logger поверх zap.
type ZapLogger struct {
	base   *zap.Logger
	sugar  *zap.SugaredLogger
	isProd bool
}

// NewZapLogger — production (JSON) или development (консоль) конфигурация zap.
func NewZapLogger(isProd bool) (*ZapLogger, func() error, error) {
	cfg := zap.NewDevelopmentConfig()
	if isProd {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "ts"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	}

	base, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		return nil, nil, err
	}

	l := &ZapLogger{base: base, sugar: base.Sugar(), isProd: isProd}
	return l, base.Sync, nil
}

// Named — дочерний логгер с именем компонента (apiclient, catalog, kafka...).
func (z *ZapLogger) Named(name string) *ZapLogger {
	base := z.base.Named(name)
	return &ZapLogger{base: base, sugar: base.Sugar(), isProd: z.isProd}
}

func (z *ZapLogger) Infof(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Infof(format, args...)
}
func (z *ZapLogger) Warnf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Warnf(format, args...)
}
func (z *ZapLogger) Errorf(ctx context.Context, format string, args ...any) {
	z.withMeta(ctx).Errorf(format, args...)
}

// withMeta — добавляет request_id, trace_id и span_id из контекста, если они есть.
func (z *ZapLogger) withMeta(ctx context.Context) *zap.SugaredLogger {
	if ctx == nil {
		return z.sugar
	}
	var fields []any
	if rid, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		fields = append(fields, "request_id", rid)
	}
	if tr, ok := ctxmeta.TraceIDFromContext(ctx); ok {
		fields = append(fields, "trace_id", tr)
		if sp, ok := ctxmeta.SpanIDFromContext(ctx); ok {
			fields = append(fields, "span_id", sp)
		}
	}
	if len(fields) == 0 {
		return z.sugar
	}
	return z.sugar.With(fields...)
}
