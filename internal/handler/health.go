package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/cafe-comptoir-api/internal/model"
)

// Health is a liveness probe for load balancers. It does not touch the
// store.
func Health(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

// Banner handles GET /api/.
func Banner(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"message":    "API Café Comptoir - Montbrison",
		"restaurant": "Café Comptoir",
		"location":   "Montbrison, France",
		"status":     "operational",
	})
}

// Info handles GET /api/info.
func Info(info model.RestaurantInfo) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.JSON(http.StatusOK, info)
	}
}
