package httpx

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
)

// HeaderRequestID — заголовок корреляции запросов между web и api.
const HeaderRequestID = "X-Request-ID"

const maxRequestIDLen = 128

// RequestIDMiddleware — берёт X-Request-ID клиента, если он пригоден, иначе генерирует UUID.
// Значение кладётся в контекст (его подхватывают логгер и клиент API) и возвращается в ответе.
func RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(HeaderRequestID)
		if !validRequestID(requestID) {
			requestID = uuid.NewString()
		}
		c.Header(HeaderRequestID, requestID)

		c.Request = c.Request.WithContext(ctxmeta.WithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// validRequestID — непустой, ограниченной длины, только печатаемый ASCII.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}
	return true
}
