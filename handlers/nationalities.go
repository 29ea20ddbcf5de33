package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/RajoelinaAaron/api-travel-visas/services"
)

// ListNationalities returns nationalities filtered by search with
// limit/offset pagination.
// GET /v1/nationalities
func (h *Handler) ListNationalities(c echo.Context) error {
	filter := services.NationalityFilter{Search: c.QueryParam("search")}

	var err error
	if filter.Limit, err = parseIntParam(c, "limit"); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}
	if filter.Offset, err = parseIntParam(c, "offset"); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	nationalities, err := services.ListNationalities(h.DB, filter)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, nationalities)
}
