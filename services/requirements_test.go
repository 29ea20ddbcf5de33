package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"

	"github.com/RajoelinaAaron/api-travel-visas/models"
)

// seedProfile creates a France->Japon tourism profile plus its parents and
// returns the created rows.
func seedProfile(t *testing.T, db *gorm.DB) (models.Nationality, models.Country, models.EntryProfile) {
	t.Helper()

	france := models.Nationality{NameFr: "France", Iso2: strPtr("FR")}
	assert.NoError(t, db.Create(&france).Error)

	japan := models.Country{NameFr: "Japon", Iso2: strPtr("JP"), Continent: strPtr("Asie")}
	assert.NoError(t, db.Create(&japan).Error)

	lastChecked := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	profile := models.EntryProfile{
		NationalityID:        france.ID,
		DestinationCountryID: japan.ID,
		Purpose:              "tourism",
		LastChecked:          &lastChecked,
		SourceConfidence:     floatPtr(0.9),
		LLMModel:             strPtr("gpt-4o"),
		LLMPromptVersion:     strPtr("v3"),
	}
	assert.NoError(t, db.Create(&profile).Error)

	return france, japan, profile
}

func TestAggregateRequirementsFullProfile(t *testing.T) {
	db := setupTestDB(t)
	france, japan, profile := seedProfile(t, db)

	assert.NoError(t, db.Model(&profile).Update("llm_sources_json",
		`[{"url":"https://example.org/visa","title":"Japan eVisa"}]`).Error)

	assert.NoError(t, db.Create(&models.EntryDocument{
		ProfileID:     profile.ID,
		NomDocument:   "Passeport",
		TypeDocument:  "passport_only",
		Required:      true,
		NombreEntrees: "single",
	}).Error)
	assert.NoError(t, db.Create(&models.TravelRequirements{
		ProfileID:                   profile.ID,
		TravelAuthorizationRequired: true,
		TravelAuthorizationName:     strPtr("Japan eVisa"),
		TravelAuthorizationURL:      strPtr("https://evisa.example.jp"),
	}).Error)
	assert.NoError(t, db.Create(&models.HealthRequirements{
		ProfileID:            profile.ID,
		VaccinesRequiredJSON: strPtr(`["fievre jaune"]`),
		Notes:                strPtr("Aucune obligation particuliere."),
	}).Error)
	assert.NoError(t, db.Create(&models.CountryGuide{
		CountryID: japan.ID,
		Lang:      "fr",
		GuideText: strPtr("Guide du Japon"),
	}).Error)
	assert.NoError(t, db.Create(&models.OfficialPortal{
		CountryID: japan.ID,
		URL:       "https://www.mofa.go.jp",
		Label:     models.OfficialPortalLabel,
	}).Error)

	result, err := AggregateRequirements(context.Background(), db, "FR", "JP", "tourism", "fr")
	assert.NoError(t, err)

	assert.Equal(t, france.ID, result.Nationality.ID)
	assert.Equal(t, "France", result.Nationality.NameFr)
	assert.Equal(t, japan.ID, result.Destination.ID)
	assert.Equal(t, "https://www.mofa.go.jp", *result.Destination.OfficialPortal)
	assert.Equal(t, "tourism", result.Purpose)
	assert.Equal(t, "2025-06-01", *result.LastChecked)
	assert.Equal(t, 0.9, *result.SourceConfidence)

	assert.Len(t, result.Sections.Documents, 1)
	assert.Equal(t, "Passeport", result.Sections.Documents[0].NomDocument)

	assert.True(t, result.Sections.TravelAuthorization.Required)
	assert.Equal(t, "Japan eVisa", result.Sections.TravelAuthorization.Name)
	assert.Equal(t, "Autorisation requise: Japan eVisa", result.Sections.TravelAuthorization.Message)

	assert.Equal(t, []interface{}{"fievre jaune"}, result.Sections.Vaccines.Required)
	assert.Empty(t, result.Sections.Vaccines.Recommended)
	assert.Equal(t, "Aucune obligation particuliere.", *result.Sections.Vaccines.Notes)

	assert.Equal(t, "fr", result.Sections.Guide.Lang)
	assert.Equal(t, "Guide du Japon", *result.Sections.Guide.Text)

	assert.Len(t, result.Sources, 1)
	assert.Equal(t, "https://example.org/visa", result.Sources[0].URL)
	assert.Equal(t, "gpt-4o", *result.LLM.Model)
}

func TestAggregateRequirementsProfileNotFound(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db)

	// Known pair, unknown purpose: no fallback across purposes.
	_, err := AggregateRequirements(context.Background(), db, "FR", "JP", "business", "fr")
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "Entry profile not found")
}

func TestAggregateRequirementsMissingSubSections(t *testing.T) {
	db := setupTestDB(t)
	seedProfile(t, db)

	// A bare profile with no documents, travel, health, guide or portal
	// still aggregates; every section defaults.
	result, err := AggregateRequirements(context.Background(), db, "FR", "JP", "tourism", "fr")
	assert.NoError(t, err)

	assert.Empty(t, result.Sections.Documents)
	assert.False(t, result.Sections.TravelAuthorization.Required)
	assert.Equal(t, MsgNoAuthorizationNeeded, result.Sections.TravelAuthorization.Message)
	assert.Equal(t, "", result.Sections.ArrivalForm.Notes)
	assert.Empty(t, result.Sections.Vaccines.Required)
	assert.Empty(t, result.Sections.Vaccines.Recommended)
	assert.Equal(t, "fr", result.Sections.Guide.Lang)
	assert.Nil(t, result.Sections.Guide.Text)
	assert.Nil(t, result.Destination.OfficialPortal)
	assert.Empty(t, result.Sources)
}

func TestAggregateRequirementsMalformedStoredJSON(t *testing.T) {
	db := setupTestDB(t)
	_, _, profile := seedProfile(t, db)

	assert.NoError(t, db.Model(&profile).Update("llm_sources_json", "{not json").Error)
	assert.NoError(t, db.Create(&models.HealthRequirements{
		ProfileID:               profile.ID,
		VaccinesRequiredJSON:    strPtr("also not json"),
		VaccinesRecommendedJSON: strPtr(`["typhoide"]`),
	}).Error)

	result, err := AggregateRequirements(context.Background(), db, "FR", "JP", "tourism", "fr")
	assert.NoError(t, err)
	assert.Equal(t, []SourceItem{}, result.Sources)
	assert.Equal(t, []interface{}{}, result.Sections.Vaccines.Required)
	assert.Equal(t, []interface{}{"typhoide"}, result.Sections.Vaccines.Recommended)
}

func TestAggregateRequirementsGuideLangFallback(t *testing.T) {
	db := setupTestDB(t)
	_, japan, _ := seedProfile(t, db)

	assert.NoError(t, db.Create(&models.CountryGuide{
		CountryID: japan.ID,
		Lang:      "fr",
		GuideText: strPtr("Guide du Japon"),
	}).Error)

	// No English guide exists: the section keeps the requested lang and a
	// nil text.
	result, err := AggregateRequirements(context.Background(), db, "FR", "JP", "tourism", "en")
	assert.NoError(t, err)
	assert.Equal(t, "en", result.Sections.Guide.Lang)
	assert.Nil(t, result.Sections.Guide.Text)
}

func TestTravelAuthorizationMessage(t *testing.T) {
	assert.Equal(t, MsgNoAuthorizationNeeded, TravelAuthorizationMessage(nil))

	notRequired := &models.TravelRequirements{TravelAuthorizationRequired: false}
	assert.Equal(t, MsgNoAuthorizationNeeded, TravelAuthorizationMessage(notRequired))

	unnamed := &models.TravelRequirements{TravelAuthorizationRequired: true}
	assert.Equal(t, MsgAuthorizationRequired, TravelAuthorizationMessage(unnamed))

	named := &models.TravelRequirements{
		TravelAuthorizationRequired: true,
		TravelAuthorizationName:     strPtr("ESTA"),
	}
	assert.Equal(t, "Autorisation requise: ESTA", TravelAuthorizationMessage(named))
}

func TestDecodeSources(t *testing.T) {
	assert.Equal(t, []SourceItem{}, DecodeSources(nil))
	assert.Equal(t, []SourceItem{}, DecodeSources(strPtr("")))
	assert.Equal(t, []SourceItem{}, DecodeSources(strPtr("{not json")))
	assert.Equal(t, []SourceItem{}, DecodeSources(strPtr("null")))

	decoded := DecodeSources(strPtr(`[{"url":"https://a.example","title":"A"}]`))
	assert.Len(t, decoded, 1)
	assert.Equal(t, "A", decoded[0].Title)
}
