package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// HealthCheck reports service liveness
func HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":  "healthy",
		"service": "notify-server",
	})
}

// Root identifies the service
func Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"ok":      true,
		"service": "insyd-notify-server",
	})
}
