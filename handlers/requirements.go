package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RajoelinaAaron/api-travel-visas/services"
)

// GetRequirements runs the aggregation for a nationality/destination pair.
// GET /v1/requirements?nationality=FR&destination=JP&purpose=tourism&lang=fr
func (h *Handler) GetRequirements(c echo.Context) error {
	nationality := c.QueryParam("nationality")
	destination := c.QueryParam("destination")
	if nationality == "" {
		return errorJSON(c, http.StatusBadRequest, "nationality is required")
	}
	if destination == "" {
		return errorJSON(c, http.StatusBadRequest, "destination is required")
	}

	purpose := c.QueryParam("purpose")
	if purpose == "" {
		purpose = "tourism"
	}
	lang := c.QueryParam("lang")
	if lang == "" {
		lang = "fr"
	}

	result, err := services.AggregateRequirements(c.Request().Context(), h.DB, nationality, destination, purpose, lang)
	if err != nil {
		return serviceError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}
