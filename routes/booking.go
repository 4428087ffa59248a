package routes

import (
	"shotz/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterBookingRoutes registers all endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, h *handlers.BookingHandler) {
	booking := r.Group("/api/booking")
	{
		booking.POST("/session", h.StartSession)
		booking.GET("/session/:sessionID", h.GetSession)
		booking.DELETE("/session/:sessionID", h.CancelSession)

		booking.PUT("/session/:sessionID/service", h.SelectService)
		booking.PUT("/session/:sessionID/package", h.SelectPackage)
		booking.PUT("/session/:sessionID/schedule", h.SetSchedule)
		booking.PUT("/session/:sessionID/contact", h.SetContact)
		booking.PUT("/session/:sessionID/payment", h.SetPayment)

		booking.POST("/session/:sessionID/advance", h.Advance)
		booking.POST("/session/:sessionID/retreat", h.Retreat)
		booking.POST("/session/:sessionID/submit", h.SubmitBooking)
	}
}
