package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	echoSwagger "github.com/swaggo/echo-swagger"

	"github.com/johnquangdev/hcp-crm/internal/adapter/dto/common"
	"github.com/johnquangdev/hcp-crm/pkg/config"
	pkgvalidator "github.com/johnquangdev/hcp-crm/pkg/validator"
)

// HealthFunc reports whether a collaborator initialized; nil means available
type HealthFunc func() error

// Router holds all handlers
type Router struct {
	cfg                *config.Config
	interactionHandler *Interaction
	aiController       *AIController
	gatherer           prometheus.Gatherer
	dbHealth           HealthFunc
	aiHealth           HealthFunc
}

// NewRouter creates a new router with all handlers
func NewRouter(
	cfg *config.Config,
	interactionHandler *Interaction,
	aiController *AIController,
	gatherer prometheus.Gatherer,
	dbHealth HealthFunc,
	aiHealth HealthFunc,
) *Router {
	return &Router{
		cfg:                cfg,
		interactionHandler: interactionHandler,
		aiController:       aiController,
		gatherer:           gatherer,
		dbHealth:           dbHealth,
		aiHealth:           aiHealth,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	if e.Validator == nil {
		e.Validator = pkgvalidator.New()
	}

	e.GET("/", rt.root)
	e.GET("/health", rt.healthCheck)
	e.GET("/swagger/*", echoSwagger.WrapHandler)
	if rt.gatherer != nil {
		e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(rt.gatherer, promhttp.HandlerOpts{})))
	}

	rt.setupInteractionRoutes(e.Group("/interactions"))
}

// setupInteractionRoutes configures interaction routes
func (rt *Router) setupInteractionRoutes(g *echo.Group) {
	g.POST("", rt.interactionHandler.CreateInteraction)
	g.GET("", rt.interactionHandler.ListInteractions)
	g.POST("/process-text", rt.aiController.ProcessText)
	g.GET("/:id", rt.interactionHandler.GetInteraction)
}

// root returns the welcome message
// @Summary  Welcome message
// @Tags     Health
// @Produce  json
// @Success  200  {object}  common.MessageResponse
// @Router   / [get]
func (rt *Router) root(c echo.Context) error {
	return c.JSON(http.StatusOK, common.MessageResponse{Message: "Welcome to the AI-Powered CRM API"})
}

// healthCheck returns health status
// @Summary  Health check
// @Tags     Health
// @Produce  json
// @Success  200  {object}  common.HealthResponse
// @Router   /health [get]
func (rt *Router) healthCheck(c echo.Context) error {
	resp := common.HealthResponse{
		Status:   "ok",
		Database: availability(rt.dbHealth),
		AI:       availability(rt.aiHealth),
	}
	if rt.cfg != nil {
		resp.Environment = rt.cfg.Server.Environment
	}
	if resp.Database != "available" || resp.AI != "available" {
		resp.Status = "degraded"
	}
	return c.JSON(http.StatusOK, resp)
}

func availability(check HealthFunc) string {
	if check == nil || check() != nil {
		return "unavailable"
	}
	return "available"
}
