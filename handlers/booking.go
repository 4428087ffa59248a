package handlers

import (
	"errors"
	"net/http"

	"shotz/services/booking"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking wizard over HTTP.
type BookingHandler struct {
	SessionSvc booking.SessionService
	Logger     *zap.Logger
}

// NewBookingHandler returns a BookingHandler.
func NewBookingHandler(sessionSvc booking.SessionService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{SessionSvc: sessionSvc, Logger: logger}
}

// StartSession handles POST /api/booking/session. A service and package may
// be pre-selected via body or query, mirroring deep links from the services
// pages; unknown references are silently ignored.
func (h *BookingHandler) StartSession(c *gin.Context) {
	var input struct {
		ServiceID   string `json:"service"`
		PackageName string `json:"package"`
	}
	// The body is optional; fall back to query parameters.
	_ = c.ShouldBindJSON(&input)
	if input.ServiceID == "" {
		input.ServiceID = c.Query("service")
	}
	if input.PackageName == "" {
		input.PackageName = c.Query("package")
	}

	session, err := h.SessionSvc.InitiateSession(input.ServiceID, input.PackageName)
	if err != nil {
		h.Logger.Error("StartSession: failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to start booking session"})
		return
	}
	c.JSON(http.StatusOK, session)
}

// GetSession handles GET /api/booking/session/:sessionID.
func (h *BookingHandler) GetSession(c *gin.Context) {
	session, err := h.SessionSvc.GetSession(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectService handles PUT /api/booking/session/:sessionID/service.
func (h *BookingHandler) SelectService(c *gin.Context) {
	var input struct {
		ServiceID string `json:"serviceId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.SessionSvc.SelectService(c.Param("sessionID"), input.ServiceID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SelectPackage handles PUT /api/booking/session/:sessionID/package.
func (h *BookingHandler) SelectPackage(c *gin.Context) {
	var input struct {
		PackageName string `json:"packageName" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.SessionSvc.SelectPackage(c.Param("sessionID"), input.PackageName)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetSchedule handles PUT /api/booking/session/:sessionID/schedule.
func (h *BookingHandler) SetSchedule(c *gin.Context) {
	var input struct {
		Date string `json:"date"`
		Time string `json:"time"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.SessionSvc.SetSchedule(c.Param("sessionID"), input.Date, input.Time)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetContact handles PUT /api/booking/session/:sessionID/contact. Only the
// fields present in the body are applied.
func (h *BookingHandler) SetContact(c *gin.Context) {
	var input struct {
		Name  *string `json:"name"`
		Email *string `json:"email"`
		Phone *string `json:"phone"`
		Notes *string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	sessionID := c.Param("sessionID")
	fields := map[string]*string{
		"name":  input.Name,
		"email": input.Email,
		"phone": input.Phone,
		"notes": input.Notes,
	}
	for field, value := range fields {
		if value == nil {
			continue
		}
		if _, err := h.SessionSvc.SetContactField(sessionID, field, *value); err != nil {
			h.respondError(c, err)
			return
		}
	}

	session, err := h.SessionSvc.GetSession(sessionID)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SetPayment handles PUT /api/booking/session/:sessionID/payment.
func (h *BookingHandler) SetPayment(c *gin.Context) {
	var input struct {
		PaymentMethod string `json:"paymentMethod" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}
	session, err := h.SessionSvc.SetPaymentMethod(c.Param("sessionID"), input.PaymentMethod)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// Advance handles POST /api/booking/session/:sessionID/advance. An incomplete
// stage is not an error: the response reports advanced=false with the missing
// fields, the way the UI disables its continue button.
func (h *BookingHandler) Advance(c *gin.Context) {
	result, err := h.SessionSvc.Advance(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// Retreat handles POST /api/booking/session/:sessionID/retreat.
func (h *BookingHandler) Retreat(c *gin.Context) {
	session, err := h.SessionSvc.Retreat(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// SubmitBooking handles POST /api/booking/session/:sessionID/submit.
func (h *BookingHandler) SubmitBooking(c *gin.Context) {
	confirmation, err := h.SessionSvc.Submit(c.Param("sessionID"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"confirmation": confirmation})
}

// CancelSession handles DELETE /api/booking/session/:sessionID.
func (h *BookingHandler) CancelSession(c *gin.Context) {
	if err := h.SessionSvc.CancelSession(c.Param("sessionID")); err != nil {
		h.Logger.Error("CancelSession: failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to cancel booking session"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"cancelled": true})
}

func (h *BookingHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, booking.ErrSessionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrUnknownService),
		errors.Is(err, booking.ErrUnknownPackage):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrNoServiceSelected),
		errors.Is(err, booking.ErrInvalidPaymentMethod),
		errors.Is(err, booking.ErrUnknownContactField),
		errors.Is(err, booking.ErrDraftIncomplete):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, booking.ErrAlreadySubmitted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.Logger.Error("Booking wizard operation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}
