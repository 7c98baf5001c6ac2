// File: vetbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"vetbook/config"
	"vetbook/database"
	slotRepoPkg "vetbook/database/repository/slot"
	vetRepoPkg "vetbook/database/repository/vet"
	"vetbook/handlers"
	"vetbook/middleware"
	"vetbook/routes"
	"vetbook/services/slots"
	"vetbook/services/timezone"
	"vetbook/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()
	zap.ReplaceGlobals(logger)

	database.InitDB()
	utils.InitCache()
	utils.InitAuthCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	slotRepo := slotRepoPkg.NewMongoSlotRepo()
	vetRepo := vetRepoPkg.NewMongoVetRepo()
	if err := slotRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure slot indexes: %v", err)
	}
	if err := vetRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure vet indexes: %v", err)
	}

	// services.
	tzService := timezone.NewService(timezone.SystemClock{})
	slotService, err := slots.NewDefaultSlotService(slotRepo, tzService)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize slot service: %v", err)
	}

	// handlers.
	vetHandler := handlers.NewVetHandler(vetRepo, tzService)
	slotHandler := handlers.NewSlotHandler(slotService, vetRepo)

	routes.RegisterRoutes(router, vetHandler, slotHandler, vetRepo)

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
