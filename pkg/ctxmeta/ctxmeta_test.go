package ctxmeta_test

import (
	"context"
	"testing"

	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
)

// accessor — пара put/get для одного ключа контекста.
type accessor struct {
	name string
	key  any
	put  func(context.Context, string) context.Context
	get  func(context.Context) (string, bool)
}

var accessors = []accessor{
	{"request_id", ctxmeta.KeyRequestID, ctxmeta.WithRequestID, ctxmeta.RequestIDFromContext},
	{"bearer_token", ctxmeta.KeyBearerToken, ctxmeta.WithBearerToken, ctxmeta.BearerTokenFromContext},
}

func TestAccessors(t *testing.T) {
	for _, a := range accessors {
		t.Run(a.name, func(t *testing.T) {
			parent := context.Background()

			ctx := a.put(parent, "v-123")
			if got, ok := a.get(ctx); !ok || got != "v-123" {
				t.Fatalf("want v-123; got %q ok=%v", got, ok)
			}
			if _, ok := a.get(parent); ok {
				t.Fatalf("parent context must stay untouched")
			}

			if a.put(parent, "") != parent {
				t.Fatalf("empty value must return the same ctx")
			}

			var nilCtx context.Context
			if a.put(nilCtx, "v") != nil {
				t.Fatalf("put on nil ctx must return nil")
			}
			if got, ok := a.get(nilCtx); ok || got != "" {
				t.Fatalf("get on nil ctx must be empty, got %q", got)
			}

			stored := context.WithValue(parent, a.key, "")
			if got, ok := a.get(stored); ok || got != "" {
				t.Fatalf("empty stored value must be treated as absent, got %q", got)
			}

			plain := context.WithValue(parent, a.name, "v-plain") //nolint:staticcheck
			if got, ok := a.get(plain); ok {
				t.Fatalf("plain string key must not be recognized, got %q", got)
			}
		})
	}
}

func TestAccessors_KeysAreIndependent(t *testing.T) {
	ctx := ctxmeta.WithBearerToken(context.Background(), "tok-1")
	if _, ok := ctxmeta.RequestIDFromContext(ctx); ok {
		t.Fatalf("bearer token must not be visible as request_id")
	}
	ctx = ctxmeta.WithRequestID(ctx, "req-1")
	if tok, _ := ctxmeta.BearerTokenFromContext(ctx); tok != "tok-1" {
		t.Fatalf("request_id must not shadow the token, got %q", tok)
	}
}

func TestCallerOnly(t *testing.T) {
	parent := context.Background()
	if ctxmeta.CallerOnly(parent) {
		t.Fatalf("flag must be off by default")
	}

	ctx := ctxmeta.WithCallerOnly(parent)
	if !ctxmeta.CallerOnly(ctx) {
		t.Fatalf("flag must be set")
	}
	if ctxmeta.CallerOnly(parent) {
		t.Fatalf("parent context must stay untouched")
	}

	var nilCtx context.Context
	if ctxmeta.WithCallerOnly(nilCtx) != nil || ctxmeta.CallerOnly(nilCtx) {
		t.Fatalf("nil ctx must stay nil and unflagged")
	}
}
