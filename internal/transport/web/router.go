// Package web — HTTP-сервер клиентской стороны каталога: отдаёт данные из
// снимка DataService и проксирует админ-операции в API.
package web

import (
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Gunvolt24/medcatalog/internal/ports"
	"github.com/Gunvolt24/medcatalog/pkg/httpx"
)

// Options — параметры роутера.
type Options struct {
	ServiceName  string // otelgin; пусто — без трейсинга
	StaticDir    string // каталог со статикой UI; пусто — не отдаём
	RefreshToken string // bearer для POST /refresh; пусто — маршрут закрыт
}

type Handler struct {
	data ports.CatalogDataService
	log  ports.Logger
}

func NewHandler(data ports.CatalogDataService, log ports.Logger) *Handler {
	return &Handler{data: data, log: log}
}

func NewRouter(h *Handler, opts Options) *gin.Engine {
	r := gin.New()
	if opts.ServiceName != "" {
		r.Use(otelgin.Middleware(opts.ServiceName))
	}
	r.Use(gin.Recovery(), httpx.RequestIDMiddleware(), httpx.RequestLogger(h.log))

	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", h.health)
	r.POST("/refresh", httpx.RequireBearer(opts.RefreshToken), h.refresh)

	r.GET("/medicines", h.medicines)
	r.GET("/medicines/:id", h.medicine)
	r.GET("/medicines/category/:category", h.medicinesByCategory)
	r.GET("/medicines/search/:term", h.searchMedicines)
	r.GET("/categories", h.categories)
	r.GET("/symptoms", h.symptoms)
	r.GET("/symptoms/:id", h.symptom)
	r.GET("/symptoms/:id/medicines", h.medicinesBySymptom)

	// админка — только от имени вызывающего, без токена 401
	admin := r.Group("/admin", httpx.ForwardBearer())
	admin.POST("/medicines", h.createMedicine)
	admin.PUT("/medicines/:id", h.updateMedicine)
	admin.DELETE("/medicines/:id", h.deleteMedicine)

	if opts.StaticDir != "" {
		r.Static("/static", opts.StaticDir)
		r.StaticFile("/", filepath.Join(opts.StaticDir, "index.html"))
	}

	return r
}
