package handlers

import (
	"errors"
	"fmt"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/RajoelinaAaron/api-travel-visas/models"
)

// Request DTOs for the admin surface. Each one validates the untyped JSON
// body at the boundary so the services layer only ever sees well-formed,
// strongly-typed input.

var iso2Pattern = regexp.MustCompile(`^[A-Z]{2}$`)

const dateLayout = "2006-01-02"

func validateIso2(iso2 *string) (*string, error) {
	if iso2 == nil {
		return nil, nil
	}
	normalized := strings.ToUpper(strings.TrimSpace(*iso2))
	if !iso2Pattern.MatchString(normalized) {
		return nil, errors.New("iso2 must be exactly 2 letters")
	}
	return &normalized, nil
}

func validateOptionalURL(field string, raw *string) error {
	if raw == nil || *raw == "" {
		return nil
	}
	return validateRequiredURL(field, *raw)
}

func validateRequiredURL(field string, raw string) error {
	parsed, err := url.Parse(raw)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return fmt.Errorf("%s must be a valid URL", field)
	}
	return nil
}

func validateConfidence(field string, value *float64) error {
	if value == nil {
		return nil
	}
	if *value < 0 || *value > 1 {
		return fmt.Errorf("%s must be between 0 and 1", field)
	}
	return nil
}

func inEnum(value string, allowed []string) bool {
	for _, candidate := range allowed {
		if value == candidate {
			return true
		}
	}
	return false
}

type NationalityRequest struct {
	NameFr string  `json:"name_fr"`
	Iso2   *string `json:"iso2"`
}

func (r *NationalityRequest) Validate() error {
	if strings.TrimSpace(r.NameFr) == "" {
		return errors.New("name_fr is required")
	}
	iso2, err := validateIso2(r.Iso2)
	if err != nil {
		return err
	}
	r.Iso2 = iso2
	return nil
}

type CountryRequest struct {
	NameFr              string  `json:"name_fr"`
	Iso2                *string `json:"iso2"`
	Continent           *string `json:"continent"`
	PopularDestination  bool    `json:"popular_destination"`
	ImageURL            *string `json:"image_url"`
	ProcessedVisasCount *int    `json:"processed_visas_count"`
}

func (r *CountryRequest) Validate() error {
	if strings.TrimSpace(r.NameFr) == "" {
		return errors.New("name_fr is required")
	}
	iso2, err := validateIso2(r.Iso2)
	if err != nil {
		return err
	}
	r.Iso2 = iso2
	return validateOptionalURL("image_url", r.ImageURL)
}

type OfficialPortalRequest struct {
	URL string `json:"url"`
}

func (r *OfficialPortalRequest) Validate() error {
	if r.URL == "" {
		return errors.New("url is required")
	}
	return validateRequiredURL("url", r.URL)
}

type EntryProfileRequest struct {
	NationalityID        uint     `json:"nationality_id"`
	DestinationCountryID uint     `json:"destination_country_id"`
	Purpose              string   `json:"purpose"`
	LastChecked          *string  `json:"last_checked"`
	SourceConfidence     *float64 `json:"source_confidence"`
	NeedsManualReview    bool     `json:"needs_manual_review"`
	LLMModel             *string  `json:"llm_model"`
	LLMPromptVersion     *string  `json:"llm_prompt_version"`
	LLMSourcesJSON       *string  `json:"llm_sources_json"`
	LLMRawJSON           *string  `json:"llm_raw_json"`

	lastCheckedAt *time.Time
}

func (r *EntryProfileRequest) Validate() error {
	if r.NationalityID == 0 {
		return errors.New("nationality_id is required")
	}
	if r.DestinationCountryID == 0 {
		return errors.New("destination_country_id is required")
	}
	if strings.TrimSpace(r.Purpose) == "" {
		return errors.New("purpose is required")
	}
	if err := validateConfidence("source_confidence", r.SourceConfidence); err != nil {
		return err
	}
	if r.LastChecked != nil && *r.LastChecked != "" {
		parsed, err := time.Parse(dateLayout, *r.LastChecked)
		if err != nil {
			return errors.New("last_checked must be a date in YYYY-MM-DD format")
		}
		r.lastCheckedAt = &parsed
	}
	return nil
}

// LastCheckedAt returns the parsed last_checked date; valid after Validate.
func (r *EntryProfileRequest) LastCheckedAt() *time.Time {
	return r.lastCheckedAt
}

type DocumentRequest struct {
	NomDocument        string   `json:"nom_document"`
	TypeDocument       string   `json:"type_document"`
	Required           bool     `json:"required"`
	DureeValiditeText  *string  `json:"duree_validite_text"`
	DureeValiditeDays  *int     `json:"duree_validite_days"`
	NombreEntrees      string   `json:"nombre_entrees"`
	DureeSejourMaxText *string  `json:"duree_sejour_max_text"`
	DureeSejourMaxDays *int     `json:"duree_sejour_max_days"`
	PrixMontant        *float64 `json:"prix_montant"`
	PrixDevise         *string  `json:"prix_devise"`
	PrixMontantEur     *float64 `json:"prix_montant_eur"`
	PrixLibelle        *string  `json:"prix_libelle"`
	TempsObtentionVisa *string  `json:"temps_obtention_visa"`
	ApplicationURL     *string  `json:"application_url"`
	SourceOfficielle   *string  `json:"source_officielle"`
	Confidence         *float64 `json:"confidence"`
}

func (r *DocumentRequest) Validate() error {
	if strings.TrimSpace(r.NomDocument) == "" {
		return errors.New("nom_document is required")
	}
	if !inEnum(r.TypeDocument, models.DocumentTypes) {
		return fmt.Errorf("type_document must be one of: %s", strings.Join(models.DocumentTypes, ", "))
	}
	if !inEnum(r.NombreEntrees, models.EntryCounts) {
		return fmt.Errorf("nombre_entrees must be one of: %s", strings.Join(models.EntryCounts, ", "))
	}
	if r.PrixDevise != nil && len(*r.PrixDevise) != 3 {
		return errors.New("prix_devise must be exactly 3 characters")
	}
	if err := validateConfidence("confidence", r.Confidence); err != nil {
		return err
	}
	return validateOptionalURL("application_url", r.ApplicationURL)
}

type DocumentsRequest struct {
	Documents []DocumentRequest `json:"documents"`
}

func (r *DocumentsRequest) Validate() error {
	if r.Documents == nil {
		return errors.New("documents is required")
	}
	for i := range r.Documents {
		if err := r.Documents[i].Validate(); err != nil {
			return fmt.Errorf("documents[%d]: %w", i, err)
		}
	}
	return nil
}

type TravelRequirementsRequest struct {
	TravelAuthorizationRequired bool    `json:"travel_authorization_required"`
	TravelAuthorizationName     *string `json:"travel_authorization_name"`
	TravelAuthorizationURL      *string `json:"travel_authorization_url"`
	ArrivalFormRequired         bool    `json:"arrival_form_required"`
	ArrivalFormName             *string `json:"arrival_form_name"`
	ArrivalFormURL              *string `json:"arrival_form_url"`
	OtherRequirementsJSON       *string `json:"other_requirements_json"`
}

func (r *TravelRequirementsRequest) Validate() error {
	if err := validateOptionalURL("travel_authorization_url", r.TravelAuthorizationURL); err != nil {
		return err
	}
	return validateOptionalURL("arrival_form_url", r.ArrivalFormURL)
}

type HealthRequirementsRequest struct {
	VaccinesRequiredJSON    *string `json:"vaccines_required_json"`
	VaccinesRecommendedJSON *string `json:"vaccines_recommended_json"`
	Notes                   *string `json:"notes"`
}

func (r *HealthRequirementsRequest) Validate() error {
	return nil
}

type CountryGuideRequest struct {
	Lang      string  `json:"lang"`
	GuideText *string `json:"guide_text"`
}

func (r *CountryGuideRequest) Validate() error {
	if r.Lang == "" {
		r.Lang = "fr"
	}
	return nil
}
