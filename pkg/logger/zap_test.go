package logger

import (
	"context"
	"testing"

	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func newObserved() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zap.InfoLevel)
	base := zap.New(core)
	return &ZapLogger{base: base, sugar: base.Sugar()}, logs
}

func TestInfof_AddsRequestID(t *testing.T) {
	l, logs := newObserved()

	ctx := ctxmeta.WithRequestID(context.Background(), "req-7")
	l.Infof(ctx, "hello %s", "world")

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("want 1 entry, got %d", len(entries))
	}
	if entries[0].Message != "hello world" {
		t.Fatalf("message: got %q", entries[0].Message)
	}
	if got := entries[0].ContextMap()["request_id"]; got != "req-7" {
		t.Fatalf("request_id field: got %v", got)
	}
}

func TestWarnf_NoMetaWithoutContextValues(t *testing.T) {
	l, logs := newObserved()

	l.Warnf(context.Background(), "plain")

	entries := logs.All()
	if len(entries) != 1 || len(entries[0].Context) != 0 {
		t.Fatalf("want 1 entry without fields, got %+v", entries)
	}
}

func TestNamed_KeepsLevelAndName(t *testing.T) {
	l, logs := newObserved()

	l.Named("apiclient").Errorf(context.Background(), "boom")

	entries := logs.All()
	if len(entries) != 1 || entries[0].LoggerName != "apiclient" {
		t.Fatalf("want named entry, got %+v", entries)
	}
}

func TestErrorf_AddsTraceAndSpanIDs(t *testing.T) {
	l, logs := newObserved()

	tid, _ := trace.TraceIDFromHex("4bf92f3577b34da6a3ce929d0e0e4736")
	sid, _ := trace.SpanIDFromHex("00f067aa0ba902b7")
	ctx := trace.ContextWithSpanContext(context.Background(),
		trace.NewSpanContext(trace.SpanContextConfig{TraceID: tid, SpanID: sid}))

	l.Errorf(ctx, "fetch failed")

	fields := logs.All()[0].ContextMap()
	if fields["trace_id"] != tid.String() || fields["span_id"] != sid.String() {
		t.Fatalf("trace fields: got %v", fields)
	}
}

func TestNewZapLogger_BothModes(t *testing.T) {
	for _, prod := range []bool{false, true} {
		l, cleanup, err := NewZapLogger(prod)
		if err != nil {
			t.Fatalf("NewZapLogger(%v): %v", prod, err)
		}
		l.Infof(context.Background(), "started")
		_ = cleanup()
	}
}
