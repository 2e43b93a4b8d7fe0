package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/johnquangdev/hcp-crm/internal/infrastructure/database"
	"github.com/johnquangdev/hcp-crm/internal/observability/metrics"
	aiuse "github.com/johnquangdev/hcp-crm/internal/usecase/ai"
	pkgai "github.com/johnquangdev/hcp-crm/pkg/ai"
	"github.com/johnquangdev/hcp-crm/pkg/config"
)

// ErrAutoMigrateInProduction is returned when DB_AUTO_MIGRATE is set in production
var ErrAutoMigrateInProduction = errors.New("DB_AUTO_MIGRATE is not allowed in production")

// App is the application context built once at startup and handed to every
// component that needs a collaborator. Initialization failures are kept
// alongside the collaborator instead of aborting the process.
type App struct {
	Config   *config.Config
	Logger   *zap.Logger
	Gateway  *database.Gateway
	Model    *pkgai.GroqClient
	ModelErr error
	Registry *prometheus.Registry
	Metrics  *metrics.CRMMetrics
}

// New wires the collaborators described by cfg
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) *App {
	if logger == nil {
		logger = zap.NewNop()
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	a := &App{
		Config:   cfg,
		Logger:   logger,
		Registry: registry,
		Metrics:  metrics.NewCRMMetrics(registry),
	}

	a.Gateway = database.NewGateway(ctx, cfg.Database, cfg.IsProduction(), logger)

	a.Model, a.ModelErr = pkgai.NewGroqClient(cfg.Groq)
	if a.ModelErr != nil {
		logger.Error("❌ Groq chat model not initialized", zap.Error(a.ModelErr))
	} else {
		logger.Info("✅ Initialized Groq chat model", zap.String("model", a.Model.Model()))
	}
	return a
}

// MigrateIfEnabled runs the development schema bootstrap when DB_AUTO_MIGRATE is set
func (a *App) MigrateIfEnabled(ctx context.Context) error {
	if !a.Config.Database.AutoMigrate {
		a.Logger.Info("🔄 Skipping GORM AutoMigrate")
		return nil
	}
	if a.Config.IsProduction() {
		return ErrAutoMigrateInProduction
	}
	a.Logger.Info("🔄 Running GORM AutoMigrate (development only)")
	if err := a.Gateway.AutoMigrate(ctx); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// ChatModel returns the model client as an interface value, nil when it failed to initialize
func (a *App) ChatModel() aiuse.ChatModel {
	if a.ModelErr != nil || a.Model == nil {
		return nil
	}
	return a.Model
}

// Close releases the pool
func (a *App) Close() error {
	return a.Gateway.Close()
}
