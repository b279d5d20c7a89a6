package httpx

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

const bearerPrefix = "Bearer "

// BearerToken — достаёт токен из значения заголовка Authorization ("Bearer <token>").
func BearerToken(header string) (string, bool) {
	if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
		return "", false
	}
	token := strings.TrimSpace(header[len(bearerPrefix):])
	return token, token != ""
}

// RequireBearer — пропускает запрос только с Authorization: Bearer <expected>.
// Пустой expected закрывает маршруты полностью.
func RequireBearer(expected string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok || expected == "" || subtle.ConstantTimeCompare([]byte(token), []byte(expected)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		c.Next()
	}
}

// ForwardBearer — требует Authorization: Bearer и кладёт токен вызывающего в контекст,
// чтобы исходящие вызовы к API шли от его имени (и только от его имени).
// Без токена — 401, дальше запрос не идёт.
func ForwardBearer() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, ok := BearerToken(c.GetHeader("Authorization"))
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			return
		}
		ctx := ctxmeta.WithCallerOnly(ctxmeta.WithBearerToken(c.Request.Context(), token))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
