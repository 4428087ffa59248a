package handlers

import (
	"errors"
	"net/http"

	"shotz/models"
	"shotz/services/catalog"

	"github.com/gin-gonic/gin"
)

// CatalogHandler serves the read-only service catalog.
type CatalogHandler struct {
	Catalog *catalog.Catalog
}

// NewCatalogHandler returns a CatalogHandler.
func NewCatalogHandler(cat *catalog.Catalog) *CatalogHandler {
	return &CatalogHandler{Catalog: cat}
}

// ListServices handles GET /api/services. An optional ?category= query
// filters by category tag.
func (h *CatalogHandler) ListServices(c *gin.Context) {
	if category := c.Query("category"); category != "" {
		c.JSON(http.StatusOK, h.Catalog.FilterByCategory(category))
		return
	}
	c.JSON(http.StatusOK, h.Catalog.ListAll())
}

// GetServiceByID handles GET /api/services/:id.
func (h *CatalogHandler) GetServiceByID(c *gin.Context) {
	svc, err := h.Catalog.FindByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, catalog.ErrServiceNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "service not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to fetch service"})
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ListServicesByCategory handles GET /api/services/category/:category.
func (h *CatalogHandler) ListServicesByCategory(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.FilterByCategory(c.Param("category")))
}

// ListTimeSlots handles GET /api/timeslots.
func (h *CatalogHandler) ListTimeSlots(c *gin.Context) {
	c.JSON(http.StatusOK, models.TimeSlots)
}

// ListPaymentMethods handles GET /api/payment-methods.
func (h *CatalogHandler) ListPaymentMethods(c *gin.Context) {
	c.JSON(http.StatusOK, models.PaymentMethods)
}
