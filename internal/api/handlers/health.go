package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cv-parser-api/pkg/models"
)

// HealthHandler handles health check requests. The body is a fixed contract
// with no dependency checks: the endpoint answers from process state only.
func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.HealthResponse{Status: "healthy"})
}

// RootHandler describes the running service
func RootHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, models.ServiceInfoResponse{
		Service: "CV Parser API",
		Version: "1.0.0",
		Status:  "running",
	})
}
