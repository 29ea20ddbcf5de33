package handlers

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/RajoelinaAaron/api-travel-visas/models"
	"github.com/RajoelinaAaron/api-travel-visas/services"
)

// Admin upsert handlers. All of them sit behind the API-key middleware and
// follow the same shape: bind, validate, upsert by natural key, echo the
// payload with the durable id.

// UpsertNationality creates or updates a nationality keyed by name.
// POST /v1/admin/nationalities
func (h *Handler) UpsertNationality(c echo.Context) error {
	var req NationalityRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	id, err := services.UpsertNationality(h.DB, req.NameFr, req.Iso2)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":      id,
		"name_fr": req.NameFr,
		"iso2":    req.Iso2,
	})
}

// UpsertCountry creates or updates a country keyed by iso2, falling back to
// name.
// POST /v1/admin/countries
func (h *Handler) UpsertCountry(c echo.Context) error {
	var req CountryRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	id, err := services.UpsertCountry(h.DB, services.CountryInput{
		NameFr:              req.NameFr,
		Iso2:                req.Iso2,
		Continent:           req.Continent,
		PopularDestination:  req.PopularDestination,
		ImageURL:            req.ImageURL,
		ProcessedVisasCount: req.ProcessedVisasCount,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":                    id,
		"name_fr":               req.NameFr,
		"iso2":                  req.Iso2,
		"continent":             req.Continent,
		"popular_destination":   req.PopularDestination,
		"image_url":             req.ImageURL,
		"processed_visas_count": req.ProcessedVisasCount,
	})
}

// UpsertOfficialPortal sets a country's official portal URL.
// POST /v1/admin/countries/:iso2/official-portal
func (h *Handler) UpsertOfficialPortal(c echo.Context) error {
	iso2 := strings.ToUpper(c.Param("iso2"))

	var req OfficialPortalRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	country, err := services.GetCountryByIso2(h.DB, iso2)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if country == nil {
		return errorJSON(c, http.StatusNotFound, "Country not found")
	}

	id, err := services.UpsertOfficialPortal(h.DB, country.ID, req.URL)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusCreated, echo.Map{
		"id":         id,
		"country_id": country.ID,
		"url":        req.URL,
	})
}

// UpsertEntryProfile creates or updates a profile keyed by its triple.
// PUT /v1/admin/entry-profiles
func (h *Handler) UpsertEntryProfile(c echo.Context) error {
	var req EntryProfileRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	id, err := services.UpsertEntryProfile(h.DB, services.EntryProfileInput{
		NationalityID:        req.NationalityID,
		DestinationCountryID: req.DestinationCountryID,
		Purpose:              req.Purpose,
		LastChecked:          req.LastCheckedAt(),
		SourceConfidence:     req.SourceConfidence,
		NeedsManualReview:    req.NeedsManualReview,
		LLMModel:             req.LLMModel,
		LLMPromptVersion:     req.LLMPromptVersion,
		LLMSourcesJSON:       req.LLMSourcesJSON,
		LLMRawJSON:           req.LLMRawJSON,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":                     id,
		"nationality_id":         req.NationalityID,
		"destination_country_id": req.DestinationCountryID,
		"purpose":                req.Purpose,
		"last_checked":           req.LastChecked,
		"source_confidence":      req.SourceConfidence,
		"needs_manual_review":    req.NeedsManualReview,
		"llm_model":              req.LLMModel,
		"llm_prompt_version":     req.LLMPromptVersion,
	})
}

// ReplaceEntryDocuments swaps a profile's full document set.
// PUT /v1/admin/entry-profiles/:id/documents
func (h *Handler) ReplaceEntryDocuments(c echo.Context) error {
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

	var req DocumentsRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	documents := make([]models.EntryDocument, 0, len(req.Documents))
	for _, doc := range req.Documents {
		documents = append(documents, models.EntryDocument{
			NomDocument:        doc.NomDocument,
			TypeDocument:       doc.TypeDocument,
			Required:           doc.Required,
			DureeValiditeText:  doc.DureeValiditeText,
			DureeValiditeDays:  doc.DureeValiditeDays,
			NombreEntrees:      doc.NombreEntrees,
			DureeSejourMaxText: doc.DureeSejourMaxText,
			DureeSejourMaxDays: doc.DureeSejourMaxDays,
			PrixMontant:        doc.PrixMontant,
			PrixDevise:         doc.PrixDevise,
			PrixMontantEur:     doc.PrixMontantEur,
			PrixLibelle:        doc.PrixLibelle,
			TempsObtentionVisa: doc.TempsObtentionVisa,
			ApplicationURL:     doc.ApplicationURL,
			SourceOfficielle:   doc.SourceOfficielle,
			Confidence:         doc.Confidence,
		})
	}

	if err := services.ReplaceEntryDocuments(h.DB, profileID, documents); err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"success":         true,
		"profile_id":      profileID,
		"documents_count": len(req.Documents),
	})
}

// UpsertTravelRequirements creates or updates a profile's travel
// requirements.
// PUT /v1/admin/entry-profiles/:id/travel-requirements
func (h *Handler) UpsertTravelRequirements(c echo.Context) error {
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

	var req TravelRequirementsRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	id, err := services.UpsertTravelRequirements(h.DB, profileID, services.TravelRequirementsInput{
		TravelAuthorizationRequired: req.TravelAuthorizationRequired,
		TravelAuthorizationName:     req.TravelAuthorizationName,
		TravelAuthorizationURL:      req.TravelAuthorizationURL,
		ArrivalFormRequired:         req.ArrivalFormRequired,
		ArrivalFormName:             req.ArrivalFormName,
		ArrivalFormURL:              req.ArrivalFormURL,
		OtherRequirementsJSON:       req.OtherRequirementsJSON,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":                            id,
		"profile_id":                    profileID,
		"travel_authorization_required": req.TravelAuthorizationRequired,
		"travel_authorization_name":     req.TravelAuthorizationName,
		"travel_authorization_url":      req.TravelAuthorizationURL,
		"arrival_form_required":         req.ArrivalFormRequired,
		"arrival_form_name":             req.ArrivalFormName,
		"arrival_form_url":              req.ArrivalFormURL,
	})
}

// UpsertHealthRequirements creates or updates a profile's health
// requirements.
// PUT /v1/admin/entry-profiles/:id/health
func (h *Handler) UpsertHealthRequirements(c echo.Context) error {
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

	var req HealthRequirementsRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	id, err := services.UpsertHealthRequirements(h.DB, profileID, services.HealthRequirementsInput{
		VaccinesRequiredJSON:    req.VaccinesRequiredJSON,
		VaccinesRecommendedJSON: req.VaccinesRecommendedJSON,
		Notes:                   req.Notes,
	})
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":                        id,
		"profile_id":                profileID,
		"vaccines_required_json":    req.VaccinesRequiredJSON,
		"vaccines_recommended_json": req.VaccinesRecommendedJSON,
		"notes":                     req.Notes,
	})
}

// UpsertCountryGuide creates or updates a country's guide for one language.
// PUT /v1/admin/countries/:iso2/guide
func (h *Handler) UpsertCountryGuide(c echo.Context) error {
	iso2 := strings.ToUpper(c.Param("iso2"))

	var req CountryGuideRequest
	if err := c.Bind(&req); err != nil {
		return errorJSON(c, http.StatusBadRequest, "Invalid request body")
	}
	if err := req.Validate(); err != nil {
		return errorJSON(c, http.StatusBadRequest, err.Error())
	}

	country, err := services.GetCountryByIso2(h.DB, iso2)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	if country == nil {
		return errorJSON(c, http.StatusNotFound, "Country not found")
	}

	id, err := services.UpsertCountryGuide(h.DB, country.ID, req.Lang, req.GuideText)
	if err != nil {
		return errorJSON(c, http.StatusInternalServerError, "Internal server error")
	}
	return c.JSON(http.StatusOK, echo.Map{
		"id":         id,
		"country_id": country.ID,
		"lang":       req.Lang,
		"guide_text": req.GuideText,
	})
}
