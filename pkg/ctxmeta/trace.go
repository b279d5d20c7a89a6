package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceIDFromContext — trace id активного спана (в том числе пришедшего через propagator).
func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasTraceID() {
		return "", false
	}
	return sc.TraceID().String(), true
}

// SpanIDFromContext — span id активного спана.
func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc := trace.SpanContextFromContext(ctx)
	if !sc.HasSpanID() {
		return "", false
	}
	return sc.SpanID().String(), true
}
