package models

import "time"

// EntryProfile describes the entry rules for one nationality traveling to one
// destination for one purpose. The triple is unique; re-submission updates
// the row in place. The llm_* columns replay pre-computed extraction output,
// stored as opaque JSON text.
type EntryProfile struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NationalityID        uint   `gorm:"not null;uniqueIndex:idx_profile_triple" json:"nationality_id"`
	DestinationCountryID uint   `gorm:"not null;uniqueIndex:idx_profile_triple" json:"destination_country_id"`
	Purpose              string `gorm:"size:50;not null;uniqueIndex:idx_profile_triple" json:"purpose"`

	LastChecked       *time.Time `json:"last_checked"`
	SourceConfidence  *float64   `json:"source_confidence"`
	NeedsManualReview bool       `json:"needs_manual_review"`

	LLMModel         *string `gorm:"column:llm_model;size:100" json:"llm_model"`
	LLMPromptVersion *string `gorm:"column:llm_prompt_version;size:50" json:"llm_prompt_version"`
	LLMSourcesJSON   *string `gorm:"column:llm_sources_json;type:text" json:"llm_sources_json"`
	LLMRawJSON       *string `gorm:"column:llm_raw_json;type:text" json:"llm_raw_json"`
}

// TableName specifies the table name
func (EntryProfile) TableName() string {
	return "entry_profiles"
}
