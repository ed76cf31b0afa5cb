package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/calldesk-team/call-insight/pkg/config"
)

// Router holds all handlers
type Router struct {
	cfg            *config.Config
	analyzeHandler *AnalyzeController
}

// NewRouter creates a new router with all handlers
func NewRouter(cfg *config.Config, analyzeHandler *AnalyzeController) *Router {
	return &Router{
		cfg:            cfg,
		analyzeHandler: analyzeHandler,
	}
}

// Setup configures all application routes
func (rt *Router) Setup(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", rt.healthCheck)

	e.GET("/", rt.analyzeHandler.Index)
	e.POST("/analyze", rt.analyzeHandler.Analyze)
}

// healthCheck returns health status
func (rt *Router) healthCheck(c echo.Context) error {
	env := "development"
	if rt.cfg != nil {
		env = rt.cfg.Server.Environment
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": env,
	})
}
