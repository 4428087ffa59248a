package handlers

import (
	"errors"
	"net/http"
	"strings"

	bookingsRepo "shotz/database/repository/bookings"
	"shotz/models"
	"shotz/services/admin"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AdminHandler exposes the passcode-gated admin surface.
type AdminHandler struct {
	AdminSvc admin.Service
	Logger   *zap.Logger
}

// NewAdminHandler returns an AdminHandler.
func NewAdminHandler(adminSvc admin.Service, logger *zap.Logger) *AdminHandler {
	return &AdminHandler{AdminSvc: adminSvc, Logger: logger}
}

// Login handles POST /api/admin/login.
func (h *AdminHandler) Login(c *gin.Context) {
	var input struct {
		Passcode string `json:"passcode" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	token, err := h.AdminSvc.Login(input.Passcode)
	if err != nil {
		if errors.Is(err, admin.ErrInvalidPasscode) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid passcode"})
			return
		}
		h.Logger.Error("Admin login failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "login failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token})
}

// Logout handles POST /api/admin/logout.
func (h *AdminHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.AdminSvc.Logout(token); err != nil {
		h.Logger.Error("Admin logout failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "logout failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"loggedOut": true})
}

// ListBookings handles GET /api/admin/bookings with an optional ?status= filter.
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.AdminSvc.ListBookings(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// BookingStats handles GET /api/admin/bookings/stats.
func (h *AdminHandler) BookingStats(c *gin.Context) {
	bookings, err := h.AdminSvc.ListBookings(c.Request.Context(), "")
	if err != nil {
		h.respondError(c, err)
		return
	}
	counts := map[string]int{
		"total":                len(bookings),
		models.StatusPending:   0,
		models.StatusConfirmed: 0,
		models.StatusCancelled: 0,
		models.StatusCompleted: 0,
	}
	for _, b := range bookings {
		counts[b.Status]++
	}
	c.JSON(http.StatusOK, counts)
}

// CreateBooking handles POST /api/admin/bookings, the manual entry path for
// bookings taken outside the site (phone, walk-in).
func (h *AdminHandler) CreateBooking(c *gin.Context) {
	var input struct {
		ServiceID     string `json:"serviceId"`
		ServiceName   string `json:"service"`
		PackageName   string `json:"packageName"`
		Date          string `json:"date"`
		Time          string `json:"time"`
		Name          string `json:"name"`
		Email         string `json:"email"`
		Phone         string `json:"phone"`
		Notes         string `json:"notes"`
		PaymentMethod string `json:"paymentMethod"`
		Deposit       int    `json:"deposit"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.AdminSvc.CreateBooking(c.Request.Context(), models.Booking{
		ServiceID:     input.ServiceID,
		ServiceName:   input.ServiceName,
		PackageName:   input.PackageName,
		Date:          input.Date,
		Time:          input.Time,
		Name:          input.Name,
		Email:         input.Email,
		Phone:         input.Phone,
		Notes:         input.Notes,
		PaymentMethod: input.PaymentMethod,
		Deposit:       input.Deposit,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// GetBooking handles GET /api/admin/bookings/:id.
func (h *AdminHandler) GetBooking(c *gin.Context) {
	booking, err := h.AdminSvc.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// UpdateBooking handles PUT /api/admin/bookings/:id. Only fields present in
// the body are changed.
func (h *AdminHandler) UpdateBooking(c *gin.Context) {
	var input struct {
		Date          *string `json:"date"`
		Time          *string `json:"time"`
		Name          *string `json:"name"`
		Email         *string `json:"email"`
		Phone         *string `json:"phone"`
		Notes         *string `json:"notes"`
		PaymentMethod *string `json:"paymentMethod"`
		Status        *string `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	ctx := c.Request.Context()
	booking, err := h.AdminSvc.GetBooking(ctx, c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}

	updated := *booking
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&updated.Date, input.Date)
	apply(&updated.Time, input.Time)
	apply(&updated.Name, input.Name)
	apply(&updated.Email, input.Email)
	apply(&updated.Phone, input.Phone)
	apply(&updated.Notes, input.Notes)
	apply(&updated.PaymentMethod, input.PaymentMethod)
	apply(&updated.Status, input.Status)

	result, err := h.AdminSvc.UpdateBooking(ctx, updated)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// UpdateStatus handles PUT /api/admin/bookings/:id/status.
func (h *AdminHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status string `json:"status" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	booking, err := h.AdminSvc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

// DeleteBooking handles DELETE /api/admin/bookings/:id.
func (h *AdminHandler) DeleteBooking(c *gin.Context) {
	if err := h.AdminSvc.DeleteBooking(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"deleted": true})
}

// ResyncCalendar handles POST /api/admin/bookings/:id/calendar-sync.
func (h *AdminHandler) ResyncCalendar(c *gin.Context) {
	booking, err := h.AdminSvc.ResyncCalendar(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (h *AdminHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, bookingsRepo.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, admin.ErrInvalidStatus),
		errors.Is(err, admin.ErrMissingFields):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("Admin operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
