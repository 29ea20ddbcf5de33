package models

import "time"

// Document type and entry count enumerations, as accepted by the admin API.
var (
	DocumentTypes = []string{"passport_only", "eta", "evisa", "visa", "visa_on_arrival", "esta", "etias", "other", "unknown"}
	EntryCounts   = []string{"single", "multiple", "unknown"}
)

// EntryDocument is one required or optional document for an entry profile.
// The set for a profile is always replaced wholesale, never patched, so rows
// carry no natural key beyond profile + insertion order. Field names follow
// the French content model.
type EntryDocument struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProfileID uint         `gorm:"not null;index" json:"profile_id"`
	Profile   EntryProfile `gorm:"foreignKey:ProfileID" json:"-"`

	NomDocument  string `gorm:"size:255;not null" json:"nom_document"`
	TypeDocument string `gorm:"size:50;not null" json:"type_document"`
	Required     bool   `json:"required"`

	DureeValiditeText  *string `json:"duree_validite_text"`
	DureeValiditeDays  *int    `json:"duree_validite_days"`
	NombreEntrees      string  `gorm:"size:20;not null" json:"nombre_entrees"`
	DureeSejourMaxText *string `json:"duree_sejour_max_text"`
	DureeSejourMaxDays *int    `json:"duree_sejour_max_days"`

	PrixMontant    *float64 `json:"prix_montant"`
	PrixDevise     *string  `gorm:"size:3" json:"prix_devise"`
	PrixMontantEur *float64 `gorm:"column:prix_montant_eur" json:"prix_montant_eur"`
	PrixLibelle    *string  `json:"prix_libelle"`

	TempsObtentionVisa *string  `json:"temps_obtention_visa"`
	ApplicationURL     *string  `gorm:"column:application_url" json:"application_url"`
	SourceOfficielle   *string  `json:"source_officielle"`
	Confidence         *float64 `json:"confidence"`
}

// TableName specifies the table name
func (EntryDocument) TableName() string {
	return "entry_documents"
}
