package handlers

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"golang.org/x/sync/errgroup"

	"github.com/RajoelinaAaron/api-travel-visas/models"
	"github.com/RajoelinaAaron/api-travel-visas/services"
)

func parseProfileID(c echo.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(id), true
}

type entryProfileResponse struct {
	Profile            *models.EntryProfile       `json:"profile"`
	Documents          []models.EntryDocument     `json:"documents"`
	TravelRequirements *models.TravelRequirements `json:"travel_requirements"`
	HealthRequirements *models.HealthRequirements `json:"health_requirements"`
	Sources            []services.SourceItem      `json:"sources"`
}

// GetEntryProfile returns a profile with its documents, travel and health
// sub-sections and decoded sources. The sub-section reads run concurrently.
// GET /v1/entry-profiles/:id
func (h *Handler) GetEntryProfile(c echo.Context) error {
	profileID, ok := parseProfileID(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "Invalid profile ID")
	}

	profile, err := services.GetEntryProfileByID(h.DB, profileID)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if profile == nil {
		return errorJSON(c, http.StatusNotFound, "Entry profile not found")
	}

	response := entryProfileResponse{Profile: profile}
	group, groupCtx := errgroup.WithContext(c.Request().Context())
	group.Go(func() error {
		var err error
		response.Documents, err = services.GetEntryDocuments(h.DB.WithContext(groupCtx), profileID)
		return err
	})
	group.Go(func() error {
		var err error
		response.TravelRequirements, err = services.GetTravelRequirements(h.DB.WithContext(groupCtx), profileID)
		return err
	})
	group.Go(func() error {
		var err error
		response.HealthRequirements, err = services.GetHealthRequirements(h.DB.WithContext(groupCtx), profileID)
		return err
	})
	if err := group.Wait(); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}

	response.Sources = services.DecodeSources(profile.LLMSourcesJSON)
	return c.JSON(http.StatusOK, response)
}

// GetEntryDocuments returns the document set of a profile.
// GET /v1/entry-profiles/:id/documents
func (h *Handler) GetEntryDocuments(c echo.Context) error {
	profileID, ok := parseProfileID(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "Invalid profile ID")
	}

	documents, err := services.GetEntryDocuments(h.DB, profileID)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, documents)
}

// GetTravelRequirements returns a profile's travel requirements row.
// GET /v1/entry-profiles/:id/travel-requirements
func (h *Handler) GetTravelRequirements(c echo.Context) error {
	profileID, ok := parseProfileID(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "Invalid profile ID")
	}

	travel, err := services.GetTravelRequirements(h.DB, profileID)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if travel == nil {
		return errorJSON(c, http.StatusNotFound, "Travel requirements not found")
	}
	return c.JSON(http.StatusOK, travel)
}

// GetHealthRequirements returns a profile's health requirements row.
// GET /v1/entry-profiles/:id/health
func (h *Handler) GetHealthRequirements(c echo.Context) error {
	profileID, ok := parseProfileID(c)
	if !ok {
		return errorJSON(c, http.StatusBadRequest, "Invalid profile ID")
	}

	health, err := services.GetHealthRequirements(h.DB, profileID)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if health == nil {
		return errorJSON(c, http.StatusNotFound, "Health requirements not found")
	}
	return c.JSON(http.StatusOK, health)
}
