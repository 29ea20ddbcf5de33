package services

import (
	"context"
	"encoding/json"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/RajoelinaAaron/api-travel-visas/models"
)

// Travel-authorization messages served to end users.
const (
	MsgNoAuthorizationNeeded = "Vous n'avez PAS besoin d'autorisation de voyage pour ce trajet."
	MsgAuthorizationRequired = "Une autorisation de voyage est requise."
	MsgAuthorizationPrefix   = "Autorisation requise: "
)

// SourceItem is one source reference stored in a profile's llm_sources_json.
type SourceItem struct {
	URL   string `json:"url"`
	Title string `json:"title"`
}

// NationalitySummary is the nationality block of a requirements response.
type NationalitySummary struct {
	ID     uint    `json:"id"`
	NameFr string  `json:"name_fr"`
	Iso2   *string `json:"iso2"`
}

// DestinationSummary is the destination block of a requirements response.
type DestinationSummary struct {
	ID             uint    `json:"id"`
	NameFr         string  `json:"name_fr"`
	Iso2           *string `json:"iso2"`
	Continent      *string `json:"continent"`
	ImageURL       *string `json:"image_url"`
	OfficialPortal *string `json:"official_portal"`
}

// DocumentView is the per-document projection inside sections.documents.
type DocumentView struct {
	ID                 uint     `json:"id"`
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

// TravelAuthorizationSection summarizes the travel-authorization rules.
type TravelAuthorizationSection struct {
	Required bool   `json:"required"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Message  string `json:"message"`
}

// ArrivalFormSection summarizes the arrival-form rules. Notes has no backing
// column and is always emitted as an empty string.
type ArrivalFormSection struct {
	Required bool   `json:"required"`
	Name     string `json:"name"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
}

// VaccinesSection carries the decoded vaccine lists plus free-text notes.
type VaccinesSection struct {
	Required    []interface{} `json:"required"`
	Recommended []interface{} `json:"recommended"`
	Notes       *string       `json:"notes"`
}

// GuideSection carries the guide text; lang falls back to the requested
// language when no guide row exists.
type GuideSection struct {
	Lang string  `json:"lang"`
	Text *string `json:"text"`
}

// RequirementsSections groups the sub-sections of a requirements response.
type RequirementsSections struct {
	Documents           []DocumentView             `json:"documents"`
	TravelAuthorization TravelAuthorizationSection `json:"travel_authorization"`
	ArrivalForm         ArrivalFormSection         `json:"arrival_form"`
	Vaccines            VaccinesSection            `json:"vaccines"`
	Guide               GuideSection               `json:"guide"`
}

// LLMInfo identifies the model run that produced the profile's content.
type LLMInfo struct {
	Model         *string `json:"model"`
	PromptVersion *string `json:"prompt_version"`
}

// RequirementsResponse is the denormalized aggregation document.
type RequirementsResponse struct {
	Nationality       NationalitySummary   `json:"nationality"`
	Destination       DestinationSummary   `json:"destination"`
	Purpose           string               `json:"purpose"`
	LastChecked       *string              `json:"last_checked"`
	SourceConfidence  *float64             `json:"source_confidence"`
	NeedsManualReview bool                 `json:"needs_manual_review"`
	Sections          RequirementsSections `json:"sections"`
	Sources           []SourceItem         `json:"sources"`
	LLM               LLMInfo              `json:"llm"`
}

// AggregateRequirements resolves the nationality and destination tokens,
// loads the matching entry profile and assembles the full requirements
// document. The five sub-section reads run concurrently; any of them may
// come back empty without failing the call, since a profile can exist before
// all its sections are populated.
func AggregateRequirements(ctx context.Context, db *gorm.DB, nationalityToken, destinationToken, purpose, lang string) (*RequirementsResponse, error) {
	nationality, err := ResolveNationality(db, nationalityToken)
	if err != nil {
		return nil, err
	}

	destination, err := ResolveCountry(db, destinationToken)
	if err != nil {
		return nil, err
	}

	profile, err := GetEntryProfile(db, nationality.ID, destination.ID, purpose)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &NotFoundError{Kind: "Entry profile"}
	}

	var (
		documents []models.EntryDocument
		travel    *models.TravelRequirements
		health    *models.HealthRequirements
		guide     *models.CountryGuide
		portal    *models.OfficialPortal
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var err error
		documents, err = GetEntryDocuments(db.WithContext(groupCtx), profile.ID)
		return err
	})
	group.Go(func() error {
		var err error
		travel, err = GetTravelRequirements(db.WithContext(groupCtx), profile.ID)
		return err
	})
	group.Go(func() error {
		var err error
		health, err = GetHealthRequirements(db.WithContext(groupCtx), profile.ID)
		return err
	})
	group.Go(func() error {
		var err error
		guide, err = GetCountryGuide(db.WithContext(groupCtx), destination.ID, lang)
		return err
	})
	group.Go(func() error {
		var err error
		portal, err = GetOfficialPortal(db.WithContext(groupCtx), destination.ID)
		return err
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	response := &RequirementsResponse{
		Nationality: NationalitySummary{
			ID:     nationality.ID,
			NameFr: nationality.NameFr,
			Iso2:   nationality.Iso2,
		},
		Destination: DestinationSummary{
			ID:        destination.ID,
			NameFr:    destination.NameFr,
			Iso2:      destination.Iso2,
			Continent: destination.Continent,
			ImageURL:  destination.ImageURL,
		},
		Purpose:           purpose,
		SourceConfidence:  profile.SourceConfidence,
		NeedsManualReview: profile.NeedsManualReview,
		Sections: RequirementsSections{
			Documents:           documentViews(documents),
			TravelAuthorization: travelAuthorizationSection(travel),
			ArrivalForm:         arrivalFormSection(travel),
			Vaccines:            vaccinesSection(health),
			Guide:               guideSection(guide, lang),
		},
		Sources: DecodeSources(profile.LLMSourcesJSON),
		LLM: LLMInfo{
			Model:         profile.LLMModel,
			PromptVersion: profile.LLMPromptVersion,
		},
	}

	if portal != nil {
		response.Destination.OfficialPortal = &portal.URL
	}
	if profile.LastChecked != nil {
		formatted := profile.LastChecked.Format("2006-01-02")
		response.LastChecked = &formatted
	}

	return response, nil
}

// DecodeSources decodes a profile's stored source list. Historical rows
// predate validation, so malformed or absent JSON degrades to an empty list
// instead of failing the request.
func DecodeSources(raw *string) []SourceItem {
	if raw == nil || *raw == "" {
		return []SourceItem{}
	}
	var sources []SourceItem
	if err := json.Unmarshal([]byte(*raw), &sources); err != nil || sources == nil {
		return []SourceItem{}
	}
	return sources
}

// DecodeVaccines decodes a stored vaccine array with the same
// empty-on-malformed policy as DecodeSources.
func DecodeVaccines(raw *string) []interface{} {
	if raw == nil || *raw == "" {
		return []interface{}{}
	}
	var vaccines []interface{}
	if err := json.Unmarshal([]byte(*raw), &vaccines); err != nil || vaccines == nil {
		return []interface{}{}
	}
	return vaccines
}

func documentViews(documents []models.EntryDocument) []DocumentView {
	views := make([]DocumentView, 0, len(documents))
	for _, doc := range documents {
		views = append(views, DocumentView{
			ID:                 doc.ID,
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
	return views
}

func travelAuthorizationSection(travel *models.TravelRequirements) TravelAuthorizationSection {
	return TravelAuthorizationSection{
		Required: travel != nil && travel.TravelAuthorizationRequired,
		Name:     strOrEmpty(travelName(travel)),
		URL:      strOrEmpty(travelURL(travel)),
		Message:  TravelAuthorizationMessage(travel),
	}
}

// TravelAuthorizationMessage picks the human-readable authorization message:
// no row or not required means the fixed "no authorization" message, a named
// authorization is called out, anything else gets the generic message.
func TravelAuthorizationMessage(travel *models.TravelRequirements) string {
	switch {
	case travel == nil || !travel.TravelAuthorizationRequired:
		return MsgNoAuthorizationNeeded
	case travel.TravelAuthorizationName != nil && *travel.TravelAuthorizationName != "":
		return MsgAuthorizationPrefix + *travel.TravelAuthorizationName
	default:
		return MsgAuthorizationRequired
	}
}

func arrivalFormSection(travel *models.TravelRequirements) ArrivalFormSection {
	section := ArrivalFormSection{Notes: ""}
	if travel != nil {
		section.Required = travel.ArrivalFormRequired
		section.Name = strOrEmpty(travel.ArrivalFormName)
		section.URL = strOrEmpty(travel.ArrivalFormURL)
	}
	return section
}

func vaccinesSection(health *models.HealthRequirements) VaccinesSection {
	section := VaccinesSection{
		Required:    []interface{}{},
		Recommended: []interface{}{},
	}
	if health != nil {
		section.Required = DecodeVaccines(health.VaccinesRequiredJSON)
		section.Recommended = DecodeVaccines(health.VaccinesRecommendedJSON)
		section.Notes = health.Notes
	}
	return section
}

func guideSection(guide *models.CountryGuide, requestedLang string) GuideSection {
	if guide == nil {
		return GuideSection{Lang: requestedLang}
	}
	return GuideSection{Lang: guide.Lang, Text: guide.GuideText}
}

func travelName(travel *models.TravelRequirements) *string {
	if travel == nil {
		return nil
	}
	return travel.TravelAuthorizationName
}

func travelURL(travel *models.TravelRequirements) *string {
	if travel == nil {
		return nil
	}
	return travel.TravelAuthorizationURL
}

func strOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
