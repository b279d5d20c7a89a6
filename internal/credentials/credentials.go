// Package credentials — источники bearer-токена для клиента каталога.
package credentials

import (
	"context"

	"golang.org/x/oauth2"

	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
)

var (
	_ ports.CredentialSource = None{}
	_ ports.CredentialSource = (*Static)(nil)
	_ ports.CredentialSource = (*FromContext)(nil)
)

// None — источник без токена: запросы уходят без Authorization.
type None struct{}

// Token — всегда ("", false).
func (None) Token(context.Context) (string, bool) { return "", false }

// Static — токен из oauth2.TokenSource.
type Static struct {
	src oauth2.TokenSource
}

// NewStatic — источник поверх произвольного TokenSource.
func NewStatic(src oauth2.TokenSource) *Static { return &Static{src: src} }

// NewStaticToken — источник с заранее выданным сервисным токеном.
// Для пустой строки возвращает None.
func NewStaticToken(token string) ports.CredentialSource {
	if token == "" {
		return None{}
	}
	return NewStatic(oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}))
}

// Token — ошибка источника или пустой access token означают отсутствие токена.
func (s *Static) Token(context.Context) (string, bool) {
	if s == nil || s.src == nil {
		return "", false
	}
	tok, err := s.src.Token()
	if err != nil || tok == nil || tok.AccessToken == "" {
		return "", false
	}
	return tok.AccessToken, true
}

// FromContext — токен вызывающей стороны, положенный в контекст middleware'ом;
// при его отсутствии спрашивает Next (если задан). В контексте с флагом
// ctxmeta.WithCallerOnly к Next не обращается.
type FromContext struct {
	Next ports.CredentialSource
}

// Token — сначала контекст, затем Next.
func (s *FromContext) Token(ctx context.Context) (string, bool) {
	if tok, ok := ctxmeta.BearerTokenFromContext(ctx); ok {
		return tok, true
	}
	if ctxmeta.CallerOnly(ctx) {
		return "", false
	}
	if s.Next != nil {
		return s.Next.Token(ctx)
	}
	return "", false
}
