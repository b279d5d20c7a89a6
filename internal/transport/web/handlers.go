package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/medcatalog/internal/domain"
)

// medicineView — карточка для UI с отформатированной ценой.
type medicineView struct {
	domain.Medicine
	PriceFormatted string `json:"priceFormatted"`
}

func viewOf(m domain.Medicine) medicineView {
	return medicineView{Medicine: m, PriceFormatted: domain.FormatIndianPrice(m.Price)}
}

func viewsOf(list []domain.Medicine) []medicineView {
	out := make([]medicineView, 0, len(list))
	for _, m := range list {
		out = append(out, viewOf(m))
	}
	return out
}

func (h *Handler) health(c *gin.Context) {
	if !h.data.CheckAPIHealth(c.Request.Context()) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN", "api": false})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK", "api": true})
}

// refresh — ручное обновление снимка; при ошибке прежний снимок остаётся.
func (h *Handler) refresh(c *gin.Context) {
	ctx := c.Request.Context()
	if err := h.data.Reload(ctx); err != nil {
		h.log.Warnf(ctx, "manual refresh failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "refresh failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *Handler) medicines(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.data.GetMedicines(ctx)
	if err != nil {
		h.log.Errorf(ctx, "GetMedicines failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, viewsOf(list))
}

func (h *Handler) medicine(c *gin.Context) {
	m, ok := h.data.GetMedicineByID(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "medicine not found"})
		return
	}
	c.JSON(http.StatusOK, viewOf(*m))
}

func (h *Handler) medicinesByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, viewsOf(h.data.GetMedicinesByCategory(c.Request.Context(), c.Param("category"))))
}

func (h *Handler) searchMedicines(c *gin.Context) {
	c.JSON(http.StatusOK, viewsOf(h.data.SearchMedicines(c.Request.Context(), c.Param("term"))))
}

func (h *Handler) categories(c *gin.Context) {
	c.JSON(http.StatusOK, h.data.GetCategories(c.Request.Context()))
}

func (h *Handler) symptoms(c *gin.Context) {
	ctx := c.Request.Context()
	list, err := h.data.GetSymptoms(ctx)
	if err != nil {
		h.log.Errorf(ctx, "GetSymptoms failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "catalog unavailable"})
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) symptom(c *gin.Context) {
	s, ok := h.data.GetSymptomByID(c.Request.Context(), c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "symptom not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) medicinesBySymptom(c *gin.Context) {
	c.JSON(http.StatusOK, viewsOf(h.data.GetMedicinesBySymptomID(c.Request.Context(), c.Param("id"))))
}

// --- admin: ошибки API гасятся в DataService, здесь только 502 ---

func (h *Handler) createMedicine(c *gin.Context) {
	var in domain.MedicineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}
	m, ok := h.data.CreateMedicine(c.Request.Context(), in)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusCreated, viewOf(*m))
}

func (h *Handler) updateMedicine(c *gin.Context) {
	var patch domain.MedicinePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}
	m, ok := h.data.UpdateMedicine(c.Request.Context(), c.Param("id"), patch)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "update failed"})
		return
	}
	c.JSON(http.StatusOK, viewOf(*m))
}

func (h *Handler) deleteMedicine(c *gin.Context) {
	if !h.data.DeleteMedicine(c.Request.Context(), c.Param("id")) {
		c.JSON(http.StatusBadGateway, gin.H{"error": "delete failed"})
		return
	}
	c.Status(http.StatusNoContent)
}
