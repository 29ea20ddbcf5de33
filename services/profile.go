package services

import (
	"errors"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"gorm.io/gorm"

	"github.com/RajoelinaAaron/api-travel-visas/models"
)

// guidePolicy strips unsafe markup from stored guide text while keeping
// basic formatting.
var guidePolicy = bluemonday.UGCPolicy()

// EntryProfileInput carries the upsertable fields of an entry profile.
type EntryProfileInput struct {
	NationalityID        uint
	DestinationCountryID uint
	Purpose              string
	LastChecked          *time.Time
	SourceConfidence     *float64
	NeedsManualReview    bool
	LLMModel             *string
	LLMPromptVersion     *string
	LLMSourcesJSON       *string
	LLMRawJSON           *string
}

// TravelRequirementsInput carries the upsertable fields of a profile's
// travel requirements.
type TravelRequirementsInput struct {
	TravelAuthorizationRequired bool
	TravelAuthorizationName     *string
	TravelAuthorizationURL      *string
	ArrivalFormRequired         bool
	ArrivalFormName             *string
	ArrivalFormURL              *string
	OtherRequirementsJSON       *string
}

// HealthRequirementsInput carries the upsertable fields of a profile's
// health requirements.
type HealthRequirementsInput struct {
	VaccinesRequiredJSON    *string
	VaccinesRecommendedJSON *string
	Notes                   *string
}

// GetEntryProfile returns the profile for an exact (nationality, destination,
// purpose) triple, or nil when none exists. There is no fuzzy matching and no
// fallback across purposes.
func GetEntryProfile(db *gorm.DB, nationalityID, destinationCountryID uint, purpose string) (*models.EntryProfile, error) {
	var profile models.EntryProfile
	err := db.Where("nationality_id = ? AND destination_country_id = ? AND purpose = ?",
		nationalityID, destinationCountryID, purpose).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// GetEntryProfileByID returns the profile with the given id, or nil.
func GetEntryProfileByID(db *gorm.DB, id uint) (*models.EntryProfile, error) {
	var profile models.EntryProfile
	err := db.First(&profile, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpsertEntryProfile creates or updates a profile keyed by its triple,
// refreshing all non-key fields. The id is stable across repeated calls.
func UpsertEntryProfile(db *gorm.DB, in EntryProfileInput) (uint, error) {
	var id uint
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := GetEntryProfile(tx, in.NationalityID, in.DestinationCountryID, in.Purpose)
		if err != nil {
			return err
		}
		if existing != nil {
			updates := map[string]interface{}{
				"last_checked":        in.LastChecked,
				"source_confidence":   in.SourceConfidence,
				"needs_manual_review": in.NeedsManualReview,
				"llm_model":           in.LLMModel,
				"llm_prompt_version":  in.LLMPromptVersion,
				"llm_sources_json":    in.LLMSourcesJSON,
				"llm_raw_json":        in.LLMRawJSON,
			}
			if err := tx.Model(&models.EntryProfile{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
				return err
			}
			id = existing.ID
			return nil
		}
		profile := models.EntryProfile{
			NationalityID:        in.NationalityID,
			DestinationCountryID: in.DestinationCountryID,
			Purpose:              in.Purpose,
			LastChecked:          in.LastChecked,
			SourceConfidence:     in.SourceConfidence,
			NeedsManualReview:    in.NeedsManualReview,
			LLMModel:             in.LLMModel,
			LLMPromptVersion:     in.LLMPromptVersion,
			LLMSourcesJSON:       in.LLMSourcesJSON,
			LLMRawJSON:           in.LLMRawJSON,
		}
		if err := tx.Create(&profile).Error; err != nil {
			return err
		}
		id = profile.ID
		return nil
	})
	return id, err
}

// GetEntryDocuments returns a profile's documents in insertion order.
func GetEntryDocuments(db *gorm.DB, profileID uint) ([]models.EntryDocument, error) {
	documents := []models.EntryDocument{}
	err := db.Where("profile_id = ?", profileID).Order("id asc").Find(&documents).Error
	return documents, err
}

// ReplaceEntryDocuments swaps a profile's document set for the given one as a
// single transaction. A failure partway through leaves the prior set intact.
// An empty slice clears the set.
func ReplaceEntryDocuments(db *gorm.DB, profileID uint, documents []models.EntryDocument) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("profile_id = ?", profileID).Delete(&models.EntryDocument{}).Error; err != nil {
			return err
		}
		if len(documents) == 0 {
			return nil
		}
		rows := make([]models.EntryDocument, len(documents))
		for i, doc := range documents {
			doc.ID = 0
			doc.ProfileID = profileID
			rows[i] = doc
		}
		return tx.Create(&rows).Error
	})
}

// GetTravelRequirements returns a profile's travel requirements, or nil.
func GetTravelRequirements(db *gorm.DB, profileID uint) (*models.TravelRequirements, error) {
	var travel models.TravelRequirements
	err := db.Where("profile_id = ?", profileID).First(&travel).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &travel, nil
}

// UpsertTravelRequirements creates or updates the travel requirements row for
// a profile, keyed by profile_id.
func UpsertTravelRequirements(db *gorm.DB, profileID uint, in TravelRequirementsInput) (uint, error) {
	var id uint
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := GetTravelRequirements(tx, profileID)
		if err != nil {
			return err
		}
		if existing != nil {
			updates := map[string]interface{}{
				"travel_authorization_required": in.TravelAuthorizationRequired,
				"travel_authorization_name":     in.TravelAuthorizationName,
				"travel_authorization_url":      in.TravelAuthorizationURL,
				"arrival_form_required":         in.ArrivalFormRequired,
				"arrival_form_name":             in.ArrivalFormName,
				"arrival_form_url":              in.ArrivalFormURL,
				"other_requirements_json":       in.OtherRequirementsJSON,
			}
			if err := tx.Model(&models.TravelRequirements{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
				return err
			}
			id = existing.ID
			return nil
		}
		travel := models.TravelRequirements{
			ProfileID:                   profileID,
			TravelAuthorizationRequired: in.TravelAuthorizationRequired,
			TravelAuthorizationName:     in.TravelAuthorizationName,
			TravelAuthorizationURL:      in.TravelAuthorizationURL,
			ArrivalFormRequired:         in.ArrivalFormRequired,
			ArrivalFormName:             in.ArrivalFormName,
			ArrivalFormURL:              in.ArrivalFormURL,
			OtherRequirementsJSON:       in.OtherRequirementsJSON,
		}
		if err := tx.Create(&travel).Error; err != nil {
			return err
		}
		id = travel.ID
		return nil
	})
	return id, err
}

// GetHealthRequirements returns a profile's health requirements, or nil.
func GetHealthRequirements(db *gorm.DB, profileID uint) (*models.HealthRequirements, error) {
	var health models.HealthRequirements
	err := db.Where("profile_id = ?", profileID).First(&health).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &health, nil
}

// UpsertHealthRequirements creates or updates the health requirements row for
// a profile, keyed by profile_id.
func UpsertHealthRequirements(db *gorm.DB, profileID uint, in HealthRequirementsInput) (uint, error) {
	var id uint
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := GetHealthRequirements(tx, profileID)
		if err != nil {
			return err
		}
		if existing != nil {
			updates := map[string]interface{}{
				"vaccines_required_json":    in.VaccinesRequiredJSON,
				"vaccines_recommended_json": in.VaccinesRecommendedJSON,
				"notes":                     in.Notes,
			}
			if err := tx.Model(&models.HealthRequirements{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
				return err
			}
			id = existing.ID
			return nil
		}
		health := models.HealthRequirements{
			ProfileID:               profileID,
			VaccinesRequiredJSON:    in.VaccinesRequiredJSON,
			VaccinesRecommendedJSON: in.VaccinesRecommendedJSON,
			Notes:                   in.Notes,
		}
		if err := tx.Create(&health).Error; err != nil {
			return err
		}
		id = health.ID
		return nil
	})
	return id, err
}

// GetCountryGuide returns the guide for a country in one language, or nil.
func GetCountryGuide(db *gorm.DB, countryID uint, lang string) (*models.CountryGuide, error) {
	var guide models.CountryGuide
	err := db.Where("country_id = ? AND lang = ?", countryID, lang).First(&guide).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &guide, nil
}

// UpsertCountryGuide creates or updates a guide keyed by (country_id, lang).
// Guide text comes from admin tooling and may carry markup; it is sanitized
// before storage.
func UpsertCountryGuide(db *gorm.DB, countryID uint, lang string, guideText *string) (uint, error) {
	if guideText != nil {
		sanitized := guidePolicy.Sanitize(*guideText)
		guideText = &sanitized
	}

	var id uint
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := GetCountryGuide(tx, countryID, lang)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := tx.Model(&models.CountryGuide{}).Where("id = ?", existing.ID).Update("guide_text", guideText).Error; err != nil {
				return err
			}
			id = existing.ID
			return nil
		}
		guide := models.CountryGuide{CountryID: countryID, Lang: lang, GuideText: guideText}
		if err := tx.Create(&guide).Error; err != nil {
			return err
		}
		id = guide.ID
		return nil
	})
	return id, err
}
