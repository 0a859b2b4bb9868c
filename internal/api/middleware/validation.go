package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cv-parser-api/pkg/models"
	"cv-parser-api/pkg/utils"
)

// RequestValidation assigns a request ID to every request and caps the size
// of uploaded bodies
func RequestValidation(maxBodySize int64) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := utils.GenerateRequestID()
			c.Set("request_id", requestID)
			c.Response().Header().Set("X-Request-ID", requestID)

			if c.Request().Method == http.MethodPost && maxBodySize > 0 {
				if c.Request().ContentLength > maxBodySize {
					return c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse{
						Error:     "request_too_large",
						Message:   "Request body too large",
						RequestID: requestID,
						Timestamp: time.Now(),
					})
				}
			}

			return next(c)
		}
	}
}
