package rest

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Gunvolt24/medcatalog/internal/domain"
	"github.com/Gunvolt24/medcatalog/pkg/validate"
)

// requestContext — контекст запроса с таймаутом обработчика.
func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// fail — единый ответ об ошибке сервиса.
func (h *Handler) fail(c *gin.Context, op string, err error) {
	ctx := c.Request.Context()
	switch {
	case errors.Is(err, validate.ErrInvalidMedicine):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		h.log.Warnf(ctx, "%s timed out: %v", op, err)
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": "request timed out"})
	default:
		h.log.Errorf(ctx, "%s failed: %v", op, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

func (h *Handler) health(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	if err := h.read.Health(ctx); err != nil {
		h.log.Warnf(ctx, "health check failed: %v", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "DOWN"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}

func (h *Handler) listMedicines(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.read.ListMedicines(ctx)
	if err != nil {
		h.fail(c, "ListMedicines", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getMedicine(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	m, err := h.read.GetMedicine(ctx, id)
	if err != nil {
		h.fail(c, "GetMedicine id="+id, err)
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "medicine not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) medicinesByCategory(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.read.MedicinesByCategory(ctx, c.Param("category"))
	if err != nil {
		h.fail(c, "MedicinesByCategory", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) searchMedicines(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.read.SearchMedicines(ctx, c.Param("term"))
	if err != nil {
		h.fail(c, "SearchMedicines", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) categories(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.read.Categories(ctx)
	if err != nil {
		h.fail(c, "Categories", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) listSymptoms(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	list, err := h.read.ListSymptoms(ctx)
	if err != nil {
		h.fail(c, "ListSymptoms", err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (h *Handler) getSymptom(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	s, err := h.read.GetSymptom(ctx, id)
	if err != nil {
		h.fail(c, "GetSymptom id="+id, err)
		return
	}
	if s == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "symptom not found"})
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *Handler) medicinesBySymptom(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := c.Param("id")
	list, found, err := h.read.MedicinesBySymptom(ctx, id)
	if err != nil {
		h.fail(c, "MedicinesBySymptom id="+id, err)
		return
	}
	if !found {
		c.JSON(http.StatusNotFound, gin.H{"error": "symptom not found"})
		return
	}
	c.JSON(http.StatusOK, list)
}

// --- admin ---

func (h *Handler) createMedicine(c *gin.Context) {
	var in domain.MedicineInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	m, err := h.admin.CreateMedicine(ctx, &in)
	if err != nil {
		h.fail(c, "CreateMedicine", err)
		return
	}
	c.JSON(http.StatusCreated, m)
}

func (h *Handler) updateMedicine(c *gin.Context) {
	var patch domain.MedicinePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid json: " + err.Error()})
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := strings.TrimSpace(c.Param("id"))
	m, err := h.admin.UpdateMedicine(ctx, id, &patch)
	if err != nil {
		h.fail(c, "UpdateMedicine id="+id, err)
		return
	}
	if m == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "medicine not found"})
		return
	}
	c.JSON(http.StatusOK, m)
}

func (h *Handler) deleteMedicine(c *gin.Context) {
	ctx, cancel := h.requestContext(c)
	defer cancel()

	id := strings.TrimSpace(c.Param("id"))
	deleted, err := h.admin.DeleteMedicine(ctx, id)
	if err != nil {
		h.fail(c, "DeleteMedicine id="+id, err)
		return
	}
	if !deleted {
		c.JSON(http.StatusNotFound, gin.H{"error": "medicine not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Medicine deleted successfully"})
}
