// File: salonbot/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"salonbot/config"
	"salonbot/handlers"
	"salonbot/middleware"
	"salonbot/routes"
	"salonbot/services/calendar"
	"salonbot/services/dialog"
	ai "salonbot/services/intelligence"
	"salonbot/services/ledger"
	"salonbot/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	ctx := context.Background()

	// Gateways.
	calendarGW, err := calendar.NewGoogleGateway(ctx, config.AppConfig.GoogleCredentials, config.AppConfig.CalendarID)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize calendar gateway: %v", err)
	}

	var ledgerGW ledger.Gateway
	if config.AppConfig.SpreadsheetID != "" {
		ledgerGW, err = ledger.NewSheetsGateway(ctx, config.AppConfig.GoogleCredentials,
			config.AppConfig.SpreadsheetID, config.AppConfig.SheetRange)
		if err != nil {
			logger.Sugar().Fatalf("main: failed to initialize sheets gateway: %v", err)
		}
	} else {
		logger.Warn("No spreadsheet configured, booking ledger disabled")
	}

	responder, err := ai.NewGeminiResponder(ctx, config.AppConfig.GeminiAPIKey)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize generative responder: %v", err)
	}

	// The conversation engine.
	dialogService := dialog.NewDialogService(dialog.Options{
		WorkingHoursStart: config.AppConfig.WorkingHoursStart,
		WorkingHoursEnd:   config.AppConfig.WorkingHoursEnd,
		DefaultTimezone:   config.AppConfig.DefaultTimezone,
		StaticBaseURL:     config.AppConfig.StaticBaseURL,
	}, calendarGW, ledgerGW, responder)

	webhookHandler := handlers.NewWebhookHandler(dialogService)
	routes.RegisterRoutes(router, webhookHandler)

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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
