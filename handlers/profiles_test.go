package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetEntryProfileComposite(t *testing.T) {
	e, _ := newTestServer(t)
	nationalityID := seedNationality(t, e, "France", "FR")
	countryID := seedCountry(t, e, "Japon", "JP")
	seedProfile(t, e, nationalityID, countryID, "tourism")

	rec := doRequest(t, e, http.MethodPut, "/v1/admin/entry-profiles/1/documents", testAPIKey, map[string]interface{}{
		"documents": []map[string]interface{}{
			{"nom_document": "Passeport", "type_document": "passport_only", "required": true, "nombre_entrees": "unknown"},
		},
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, e, http.MethodPut, "/v1/admin/entry-profiles/1/travel-requirements", testAPIKey, map[string]interface{}{
		"travel_authorization_required": true,
		"travel_authorization_name":     "Japan eVisa",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, e, http.MethodGet, "/v1/entry-profiles/1", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	var response struct {
		Profile struct {
			ID      uint   `json:"id"`
			Purpose string `json:"purpose"`
		} `json:"profile"`
		Documents []struct {
			NomDocument string `json:"nom_document"`
		} `json:"documents"`
		TravelRequirements *struct {
			TravelAuthorizationRequired bool `json:"travel_authorization_required"`
		} `json:"travel_requirements"`
		HealthRequirements json.RawMessage `json:"health_requirements"`
		Sources            []interface{}    `json:"sources"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &response))

	assert.Equal(t, uint(1), response.Profile.ID)
	assert.Equal(t, "tourism", response.Profile.Purpose)
	assert.Len(t, response.Documents, 1)
	assert.Equal(t, "Passeport", response.Documents[0].NomDocument)
	assert.NotNil(t, response.TravelRequirements)
	assert.True(t, response.TravelRequirements.TravelAuthorizationRequired)
	// Health never written, so the sub-section is null while the call still
	// succeeds.
	assert.Equal(t, "null", string(response.HealthRequirements))
	assert.NotNil(t, response.Sources)
	assert.Empty(t, response.Sources)
}

func TestGetEntryProfileBadID(t *testing.T) {
	e, _ := newTestServer(t)

	rec := doRequest(t, e, http.MethodGet, "/v1/entry-profiles/abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Invalid profile ID", decodeBody(t, rec)["error"])

	rec = doRequest(t, e, http.MethodGet, "/v1/entry-profiles/999", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Entry profile not found", decodeBody(t, rec)["error"])
}

func TestGetEntryDocumentsEmpty(t *testing.T) {
	e, _ := newTestServer(t)
	nationalityID := seedNationality(t, e, "France", "FR")
	countryID := seedCountry(t, e, "Japon", "JP")
	seedProfile(t, e, nationalityID, countryID, "tourism")

	// No documents yet is an empty list, not a 404.
	rec := doRequest(t, e, http.MethodGet, "/v1/entry-profiles/1/documents", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]\n", rec.Body.String())
}

func TestGetTravelAndHealthSubResources(t *testing.T) {
	e, _ := newTestServer(t)
	nationalityID := seedNationality(t, e, "France", "FR")
	countryID := seedCountry(t, e, "Japon", "JP")
	seedProfile(t, e, nationalityID, countryID, "tourism")

	rec := doRequest(t, e, http.MethodGet, "/v1/entry-profiles/1/travel-requirements", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Travel requirements not found", decodeBody(t, rec)["error"])

	rec = doRequest(t, e, http.MethodGet, "/v1/entry-profiles/1/health", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Health requirements not found", decodeBody(t, rec)["error"])

	rec = doRequest(t, e, http.MethodPut, "/v1/admin/entry-profiles/1/travel-requirements", testAPIKey, map[string]interface{}{
		"travel_authorization_required": true,
		"travel_authorization_name":     "Japan eVisa",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	rec = doRequest(t, e, http.MethodPut, "/v1/admin/entry-profiles/1/health", testAPIKey, map[string]interface{}{
		"notes": "RAS",
	})
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doRequest(t, e, http.MethodGet, "/v1/entry-profiles/1/travel-requirements", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, decodeBody(t, rec)["travel_authorization_required"])

	rec = doRequest(t, e, http.MethodGet, "/v1/entry-profiles/1/health", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "RAS", decodeBody(t, rec)["notes"])
}
