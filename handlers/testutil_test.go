package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/RajoelinaAaron/api-travel-visas/config"
	"github.com/RajoelinaAaron/api-travel-visas/models"
)

const testAPIKey = "test-admin-key"

// setupTestDB initializes a fresh in-memory DB. A unique shared-cache name
// lets the aggregator's concurrent reads see the same data; a single open
// connection keeps shared-cache sqlite free of table-lock errors. Foreign
// keys are enforced so the tests see the same constraints as Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	assert.NoError(t, err)

	sqlDB, err := testDB.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = testDB.AutoMigrate(
		&models.Country{},
		&models.Nationality{},
		&models.OfficialPortal{},
		&models.EntryProfile{},
		&models.EntryDocument{},
		&models.TravelRequirements{},
		&models.HealthRequirements{},
		&models.CountryGuide{},
	)
	assert.NoError(t, err)

	return testDB
}

// newTestServer builds an echo instance with the full route table registered
// against an in-memory DB.
func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()
	testDB := setupTestDB(t)
	h := New(testDB, &config.Config{AdminAPIKey: testAPIKey, Environment: "test"})

	e := echo.New()
	Register(e, h)
	return e, testDB
}

// doRequest runs one request through the router. A nil body sends no payload;
// an empty apiKey sends no x-api-key header.
func doRequest(t *testing.T, e *echo.Echo, method, target, apiKey string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(t, err)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if apiKey != "" {
		req.Header.Set("x-api-key", apiKey)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decodeBody unmarshals a JSON response body into a generic map.
func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

// seedCountry inserts a country via the admin endpoint and returns its id.
func seedCountry(t *testing.T, e *echo.Echo, nameFr, iso2 string) uint {
	t.Helper()
	rec := doRequest(t, e, http.MethodPost, "/v1/admin/countries", testAPIKey, map[string]interface{}{
		"name_fr": nameFr,
		"iso2":    iso2,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	return uint(body["id"].(float64))
}

// seedNationality inserts a nationality via the admin endpoint and returns
// its id.
func seedNationality(t *testing.T, e *echo.Echo, nameFr, iso2 string) uint {
	t.Helper()
	rec := doRequest(t, e, http.MethodPost, "/v1/admin/nationalities", testAPIKey, map[string]interface{}{
		"name_fr": nameFr,
		"iso2":    iso2,
	})
	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	return uint(body["id"].(float64))
}

// seedProfile inserts an entry profile for the given pair and returns its id.
func seedProfile(t *testing.T, e *echo.Echo, nationalityID, countryID uint, purpose string) uint {
	t.Helper()
	rec := doRequest(t, e, http.MethodPut, "/v1/admin/entry-profiles", testAPIKey, map[string]interface{}{
		"nationality_id":         nationalityID,
		"destination_country_id": countryID,
		"purpose":                purpose,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	return uint(body["id"].(float64))
}
