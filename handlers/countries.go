package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/RajoelinaAaron/api-travel-visas/models"
	"github.com/RajoelinaAaron/api-travel-visas/services"
)

// ListCountries returns countries filtered by search/continent/popular with
// limit/offset pagination.
// GET /v1/countries
func (h *Handler) ListCountries(c echo.Context) error {
	filter, err := parseCountryFilter(c)
	if err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	countries, err := services.ListCountries(h.DB, filter)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, countries)
}

func parseCountryFilter(c echo.Context) (services.CountryFilter, error) {
	filter := services.CountryFilter{
		Search:    c.QueryParam("search"),
		Continent: c.QueryParam("continent"),
	}

	switch c.QueryParam("popular") {
	case "":
	case "1":
		popular := true
		filter.Popular = &popular
	case "0":
		popular := false
		filter.Popular = &popular
	default:
		return filter, errors.New("popular must be 0 or 1")
	}

	var err error
	if filter.Limit, err = parseIntParam(c, "limit"); err != nil {
		return filter, err
	}
	if filter.Offset, err = parseIntParam(c, "offset"); err != nil {
		return filter, err
	}
	return filter, nil
}

func parseIntParam(c echo.Context, name string) (int, error) {
	raw := c.QueryParam(name)
	if raw == "" {
		return 0, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.New(name + " must be a non-negative integer")
	}
	return value, nil
}

type countryWithPortal struct {
	models.Country
	OfficialPortal *string `json:"official_portal"`
}

// GetCountry returns a country by ISO2 code, with its official portal URL.
// GET /v1/countries/:iso2
func (h *Handler) GetCountry(c echo.Context) error {
	iso2 := strings.ToUpper(c.Param("iso2"))

	country, err := services.GetCountryByIso2(h.DB, iso2)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if country == nil {
		return errorJSON(c, http.StatusNotFound, "Country not found")
	}

	portal, err := services.GetOfficialPortal(h.DB, country.ID)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	response := countryWithPortal{Country: *country}
	if portal != nil {
		response.OfficialPortal = &portal.URL
	}
	return c.JSON(http.StatusOK, response)
}

// GetCountryGuide returns the guide text for a country in one language.
// GET /v1/countries/:iso2/guide?lang=fr
func (h *Handler) GetCountryGuide(c echo.Context) error {
	iso2 := strings.ToUpper(c.Param("iso2"))
	lang := c.QueryParam("lang")
	if lang == "" {
		lang = "fr"
	}

	country, err := services.GetCountryByIso2(h.DB, iso2)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if country == nil {
		return errorJSON(c, http.StatusNotFound, "Country not found")
	}

	guide, err := services.GetCountryGuide(h.DB, country.ID, lang)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if guide == nil {
		return errorJSON(c, http.StatusNotFound, "Guide not found")
	}
	return c.JSON(http.StatusOK, guide)
}
