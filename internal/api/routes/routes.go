package routes

import (
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"

	"cv-parser-api/internal/api/handlers"
	"cv-parser-api/internal/api/middleware"
	"cv-parser-api/internal/config"
	"cv-parser-api/internal/llm"
)

// SetupRoutes configures all API routes
func SetupRoutes(e *echo.Echo, cfg *config.Config, llmManager *llm.Manager) {
	// Global middleware
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.Recover())
	e.Use(middleware.CORSConfig())
	e.Use(middleware.RequestValidation(cfg.Upload.MaxSize))
	e.Use(middleware.TimeoutConfig(cfg.Server.RequestTimeout))

	// Health check route
	e.GET("/health", handlers.HealthHandler)

	// CV parsing route
	e.POST("/parse-cv", handlers.ParseCVHandler(cfg, llmManager))

	// Root route
	e.GET("/", handlers.RootHandler)
}
