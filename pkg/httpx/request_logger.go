package httpx

import (
	"time"

	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/ctxmeta"
	"github.com/gin-gonic/gin"
)

// quietPaths — служебные маршруты, которые не логируем.
var quietPaths = map[string]struct{}{
	"/metrics":    {},
	"/ping":       {},
	"/api/health": {},
}

// RequestLogger — middleware для логирования HTTP-запросов.
func RequestLogger(log ports.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		path := c.FullPath()
		if _, quiet := quietPaths[path]; quiet {
			return
		}
		if path == "" {
			path = c.Request.URL.Path
		}

		ctx := c.Request.Context()
		rid, _ := ctxmeta.RequestIDFromContext(ctx)
		tr, _ := ctxmeta.TraceIDFromContext(ctx)
		sp, _ := ctxmeta.SpanIDFromContext(ctx)

		status := c.Writer.Status()
		logf := log.Infof
		if status >= 500 {
			logf = log.Warnf
		}
		logf(
			ctx,
			"request id=%s trace=%s span=%s method=%s path=%s status=%d ip=%s duration=%s size=%d",
			rid, tr, sp,
			c.Request.Method,
			path,
			status,
			c.ClientIP(),
			time.Since(start),
			c.Writer.Size(),
		)
	}
}
