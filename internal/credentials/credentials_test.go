package credentials

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/oauth2"

	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
)

type failingSource struct{}

func (failingSource) Token() (*oauth2.Token, error) { return nil, errors.New("expired") }

func TestNone(t *testing.T) {
	if tok, ok := (None{}).Token(context.Background()); ok || tok != "" {
		t.Fatalf("None must not yield a token, got %q", tok)
	}
}

func TestStatic(t *testing.T) {
	ctx := context.Background()

	if tok, ok := NewStaticToken("svc-token").Token(ctx); !ok || tok != "svc-token" {
		t.Fatalf("got %q %v", tok, ok)
	}
	if _, ok := NewStaticToken("").(None); !ok {
		t.Fatalf("empty token must produce None")
	}
	if _, ok := NewStatic(failingSource{}).Token(ctx); ok {
		t.Fatalf("source error must yield no token")
	}
	if _, ok := NewStatic(oauth2.StaticTokenSource(&oauth2.Token{})).Token(ctx); ok {
		t.Fatalf("empty access token must yield no token")
	}
	var nilStatic *Static
	if _, ok := nilStatic.Token(ctx); ok {
		t.Fatalf("nil source must yield no token")
	}
}

func TestFromContext(t *testing.T) {
	src := &FromContext{Next: NewStaticToken("fallback")}

	ctx := ctxmeta.WithBearerToken(context.Background(), "caller")
	if tok, ok := src.Token(ctx); !ok || tok != "caller" {
		t.Fatalf("context token must win, got %q", tok)
	}
	if tok, ok := src.Token(context.Background()); !ok || tok != "fallback" {
		t.Fatalf("expected fallback, got %q %v", tok, ok)
	}
	if _, ok := (&FromContext{}).Token(context.Background()); ok {
		t.Fatalf("no token expected without context value and next")
	}
}

func TestFromContext_CallerOnlySkipsNext(t *testing.T) {
	src := &FromContext{Next: NewStaticToken("service-secret")}

	ctx := ctxmeta.WithCallerOnly(context.Background())
	if tok, ok := src.Token(ctx); ok || tok != "" {
		t.Fatalf("service token must not leak into caller-only ctx, got %q", tok)
	}

	ctx = ctxmeta.WithBearerToken(ctx, "caller")
	if tok, ok := src.Token(ctx); !ok || tok != "caller" {
		t.Fatalf("caller token expected, got %q %v", tok, ok)
	}
}
