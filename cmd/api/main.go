package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	_ "github.com/johnquangdev/hcp-crm/docs"
	"github.com/johnquangdev/hcp-crm/internal/adapter/handler"
	"github.com/johnquangdev/hcp-crm/internal/adapter/repository"
	"github.com/johnquangdev/hcp-crm/internal/app"
	httpmw "github.com/johnquangdev/hcp-crm/internal/infrastructure/http/middleware"
	aiuse "github.com/johnquangdev/hcp-crm/internal/usecase/ai"
	interactionuc "github.com/johnquangdev/hcp-crm/internal/usecase/interaction"
	"github.com/johnquangdev/hcp-crm/pkg/config"
	"github.com/johnquangdev/hcp-crm/pkg/logger"
	pkgvalidator "github.com/johnquangdev/hcp-crm/pkg/validator"
)

// @title           AI-Powered CRM API
// @version         1.0
// @description     Log and browse interactions with Healthcare Professionals, and extract interaction details from free-text notes.
// @BasePath        /

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Server.Environment, cfg.Server.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer zl.Sync()

	// Initialize dependencies. Neither the pool nor the model client is
	// required to start: failures are kept on the application context.
	zl.Info("🔧 Initializing dependencies...")
	startCtx, cancelStart := context.WithTimeout(context.Background(), time.Minute)
	application := app.New(startCtx, cfg, zl)
	cancelStart()
	defer func() {
		if err := application.Close(); err != nil {
			zl.Error("failed to close database", zap.Error(err))
		}
	}()

	if err := application.MigrateIfEnabled(context.Background()); err != nil {
		zl.Fatal("❌ Schema bootstrap failed", zap.Error(err))
	}

	// Initialize repositories and services
	zl.Info("⚙️  Initializing services...")
	interactionRepo := repository.NewInteractionRepository(application.Gateway)
	interactionService := interactionuc.NewInteractionService(interactionRepo, application.Metrics, zl)
	extractionService := aiuse.NewExtractionService(application.ChatModel(), application.ModelErr, application.Metrics, zl)

	// Initialize handlers
	interactionHandler := handler.NewInteractionHandler(interactionService, zl, cfg.IsProduction())
	aiController := handler.NewAIController(extractionService, zl, cfg.IsProduction())

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true
	e.Validator = pkgvalidator.New()

	e.Pre(middleware.RemoveTrailingSlash())
	e.Use(middleware.Recover())
	e.Use(httpmw.RequestID())
	e.Use(httpmw.RequestLogger(zl))
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     cfg.Server.AllowedOrigins,
		AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch, http.MethodOptions},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
	}))

	zl.Info("🛣️  Setting up routes...")
	router := handler.NewRouter(
		cfg,
		interactionHandler,
		aiController,
		application.Registry,
		application.Gateway.Err,
		extractionService.Available,
	)
	router.Setup(e)

	// Start server
	go func() {
		addr := cfg.Address()
		zl.Info("🚀 Starting server",
			zap.String("addr", addr),
			zap.String("environment", cfg.Server.Environment),
		)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			zl.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	zl.Info("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		zl.Error("❌ Server forced to shutdown", zap.Error(err))
		return
	}

	zl.Info("✅ Server stopped gracefully")
}
