package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/RajoelinaAaron/api-travel-visas/services"
)

func TestGetRequirementsEndToEnd(t *testing.T) {
	e, _ := newTestServer(t)
	nationalityID := seedNationality(t, e, "France", "FR")
	countryID := seedCountry(t, e, "Japon", "JP")
	seedProfile(t, e, nationalityID, countryID, "tourism")

	rec := doRequest(t, e, http.MethodPut, "/v1/admin/entry-profiles/1/travel-requirements", testAPIKey, map[string]interface{}{
		"travel_authorization_required": false,
		"arrival_form_required":         true,
		"arrival_form_name":             "Visit Japan Web",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, e, http.MethodGet, "/v1/requirements?nationality=FR&destination=JP", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response services.RequirementsResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, "France", response.Nationality.NameFr)
	assert.Equal(t, "Japon", response.Destination.NameFr)
	assert.Equal(t, "tourism", response.Purpose)
	assert.False(t, response.Sections.TravelAuthorization.Required)
	assert.Equal(t, services.MsgNoAuthorizationNeeded, response.Sections.TravelAuthorization.Message)
	assert.True(t, response.Sections.ArrivalForm.Required)
	assert.Equal(t, "Visit Japan Web", response.Sections.ArrivalForm.Name)
	assert.Equal(t, "", response.Sections.ArrivalForm.Notes)
	assert.NotNil(t, response.Sources)
	assert.Equal(t, "fr", response.Sections.Guide.Lang)
}

func TestGetRequirementsByName(t *testing.T) {
	e, _ := newTestServer(t)
	nationalityID := seedNationality(t, e, "France", "FR")
	countryID := seedCountry(t, e, "Japon", "JP")
	seedProfile(t, e, nationalityID, countryID, "tourism")

	// Tokens resolve by name as well as by code, case-insensitively for codes.
	rec := doRequest(t, e, http.MethodGet, "/v1/requirements?nationality=France&destination=jp", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetRequirementsMissingParams(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/v1/requirements?destination=JP", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "nationality is required", decodeBody(t, rec)["error"])

	rec = doRequest(t, e, http.MethodGet, "/v1/requirements?nationality=FR", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "destination is required", decodeBody(t, rec)["error"])
}

func TestGetRequirementsNotFound(t *testing.T) {
	e, _ := newTestServer(t)
	nationalityID := seedNationality(t, e, "France", "FR")
	countryID := seedCountry(t, e, "Japon", "JP")
	seedProfile(t, e, nationalityID, countryID, "tourism")

	// Unknown nationality token.
	rec := doRequest(t, e, http.MethodGet, "/v1/requirements?nationality=XX&destination=JP", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "Nationality not found")

	// Unknown destination token.
	rec = doRequest(t, e, http.MethodGet, "/v1/requirements?nationality=FR&destination=Atlantide", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "Destination country not found")

	// Known pair, no profile for this purpose.
	rec = doRequest(t, e, http.MethodGet, "/v1/requirements?nationality=FR&destination=JP&purpose=business", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "Entry profile not found")
}
