package routes

import (
	"net/http"
	"time"

	"shotz/config"
	"shotz/handlers"
	"shotz/middleware"
	"shotz/services/admin"
	"shotz/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter builds the Gin engine with the shared middleware stack.
func NewRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())
	router.Use(cors.New(cors.Config{
		AllowOrigins:     config.AppConfig.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	return router
}

// RegisterCatalogRoutes registers the read-only service catalog endpoints.
func RegisterCatalogRoutes(r *gin.Engine, h *handlers.CatalogHandler) {
	api := r.Group("/api")
	{
		api.GET("/services", h.ListServices)
		api.GET("/services/:id", h.GetServiceByID)
		api.GET("/services/category/:category", h.ListServicesByCategory)
		api.GET("/timeslots", h.ListTimeSlots)
		api.GET("/payment-methods", h.ListPaymentMethods)
	}
}

// RegisterAdminRoutes registers the admin panel endpoints. Everything except
// login sits behind the admin session middleware.
func RegisterAdminRoutes(r *gin.Engine, h *handlers.AdminHandler, authSvc admin.Service) {
	api := r.Group("/api/admin")
	{
		api.POST("/login", h.Login)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware(authSvc))
		protected.POST("/logout", h.Logout)
		protected.GET("/bookings", h.ListBookings)
		protected.POST("/bookings", h.CreateBooking)
		protected.GET("/bookings/stats", h.BookingStats)
		protected.GET("/bookings/:id", h.GetBooking)
		protected.PUT("/bookings/:id", h.UpdateBooking)
		protected.PUT("/bookings/:id/status", h.UpdateStatus)
		protected.DELETE("/bookings/:id", h.DeleteBooking)
		protected.POST("/bookings/:id/calendar-sync", h.ResyncCalendar)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}
