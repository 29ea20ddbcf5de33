package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/RajoelinaAaron/api-travel-visas/config"
	"github.com/RajoelinaAaron/api-travel-visas/services"
)

// Handler carries the dependencies shared by all HTTP handlers. The database
// handle is injected here rather than read from a package-level variable so
// tests can substitute an in-memory store.
type Handler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func New(database *gorm.DB, cfg *config.Config) *Handler {
	return &Handler{DB: database, Cfg: cfg}
}

// errorJSON writes the uniform error body.
func errorJSON(c echo.Context, status int, message string) error {
	return c.JSON(status, map[string]string{"error": message})
}

// serviceError classifies a services-layer error: NotFoundError becomes a
// 404, anything else a 500.
func serviceError(c echo.Context, err error) error {
	var notFound *services.NotFoundError
	if errors.As(err, &notFound) {
		return errorJSON(c, http.StatusNotFound, notFound.Error())
	}
	return errorJSON(c, http.StatusInternalServerError, "Internal server error")
}
