package rest

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/httpx"
)

// RouterOptions — параметры сборки роутера API.
type RouterOptions struct {
	// ServiceName включает otelgin; пустое значение — без трейсинга.
	ServiceName string
	// AdminToken — bearer-токен для /api/admin; пустой закрывает админку.
	AdminToken string
	// CORSOrigins — разрешённые источники; пусто или "*" — любые.
	CORSOrigins []string
}

// Handler — HTTP-обработчики каталога.
type Handler struct {
	read    ports.CatalogReadService
	admin   ports.CatalogAdminService
	log     ports.Logger
	timeout time.Duration
}

// NewHandler — timeout <= 0 отключает дедлайн на обработку.
func NewHandler(read ports.CatalogReadService, admin ports.CatalogAdminService, log ports.Logger, timeout time.Duration) *Handler {
	return &Handler{read: read, admin: admin, log: log, timeout: timeout}
}

// NewRouter — роутер API: служебные маршруты, /api и /api/admin.
func NewRouter(h *Handler, opts RouterOptions) *gin.Engine {
	r := gin.New()
	r.HandleMethodNotAllowed = true

	if opts.ServiceName != "" {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(
		gin.Recovery(),
		httpx.RequestIDMiddleware(),
		httpx.RequestLogger(h.log),
		cors.New(corsConfig(opts.CORSOrigins)),
	)

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	api.GET("/health", h.health)
	api.GET("/medicines", h.listMedicines)
	api.GET("/medicines/:id", h.getMedicine)
	api.GET("/medicines/category/:category", h.medicinesByCategory)
	api.GET("/medicines/search/:term", h.searchMedicines)
	api.GET("/categories", h.categories)
	api.GET("/symptoms", h.listSymptoms)
	api.GET("/symptoms/:id", h.getSymptom)
	api.GET("/symptoms/:id/medicines", h.medicinesBySymptom)

	admin := api.Group("/admin", httpx.RequireBearer(opts.AdminToken))
	admin.POST("/medicines", h.createMedicine)
	admin.PUT("/medicines/:id", h.updateMedicine)
	admin.DELETE("/medicines/:id", h.deleteMedicine)

	r.NoRoute(func(c *gin.Context) { c.JSON(http.StatusNotFound, gin.H{"error": "route not found"}) })
	r.NoMethod(func(c *gin.Context) { c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"}) })

	return r
}

func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders: []string{"X-Request-ID"},
		MaxAge:        12 * time.Hour,
	}
	cleaned := make([]string, 0, len(origins))
	for _, o := range origins {
		if o = strings.TrimSpace(o); o != "" {
			cleaned = append(cleaned, o)
		}
	}
	if len(cleaned) == 0 || cleaned[0] == "*" {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = cleaned
	return cfg
}
