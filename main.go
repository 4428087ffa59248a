// File: shotz/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shotz/config"
	bookingsRepo "shotz/database/repository/bookings"
	"shotz/handlers"
	"shotz/routes"
	"shotz/services/admin"
	"shotz/services/booking"
	"shotz/services/calendar"
	"shotz/services/catalog"
	"shotz/utils"

	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	utils.InitRedis()
	cacheClient := utils.GetCacheClient()
	authCacheClient := utils.GetAuthCacheClient()
	utils.StartHealthMonitor([]*redis.Client{cacheClient, authCacheClient})

	router := routes.NewRouter()

	// Repositories.
	bookingRepo := bookingsRepo.NewRedisBookingRepo(cacheClient)

	// Services.
	serviceCatalog := catalog.Default()

	calendarClient := calendar.NewSimulatedClient(
		time.Duration(config.AppConfig.CalendarSyncDelayMs)*time.Millisecond,
		logger,
	)

	sessionService := &booking.DefaultSessionService{
		Catalog:     serviceCatalog,
		Repo:        bookingRepo,
		CalendarSvc: calendarClient,
		Cache:       cacheClient,
		SessionTTL:  config.WizardSessionTTL(),
		Logger:      logger,
	}

	adminService := &admin.DefaultAdminService{
		Passcode:    config.AppConfig.AdminPasscode,
		SessionTTL:  config.AdminSessionTTL(),
		AuthCache:   authCacheClient,
		Repo:        bookingRepo,
		CalendarSvc: calendarClient,
		Logger:      logger,
	}
	if config.AppConfig.AdminPasscode == "" {
		logger.Warn("ADMIN_PASSCODE is not set; admin login is disabled")
	}

	// Handlers and routes.
	bookingHandler := handlers.NewBookingHandler(sessionService, logger)
	catalogHandler := handlers.NewCatalogHandler(serviceCatalog)
	adminHandler := handlers.NewAdminHandler(adminService, logger)

	routes.RegisterHealthRoute(router)
	routes.RegisterCatalogRoutes(router, catalogHandler)
	routes.RegisterBookingRoutes(router, bookingHandler)
	routes.RegisterAdminRoutes(router, adminHandler, adminService)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
