package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health reports liveness and database reachability. Always 200; the body
// says whether the database answered.
// GET /health
func (h *Handler) Health(c echo.Context) error {
	sqlDB, err := h.DB.DB()
	if err == nil {
		err = sqlDB.PingContext(c.Request().Context())
	}
	if err != nil {
		return c.JSON(http.StatusOK, echo.Map{"status": "error", "database": "disconnected"})
	}
	return c.JSON(http.StatusOK, echo.Map{"status": "ok", "database": "connected"})
}
