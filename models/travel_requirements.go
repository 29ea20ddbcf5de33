package models

import "time"

// TravelRequirements holds the travel-authorization and arrival-form rules
// for a profile. At most one row exists per profile.
type TravelRequirements struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProfileID uint         `gorm:"not null;uniqueIndex" json:"profile_id"`
	Profile   EntryProfile `gorm:"foreignKey:ProfileID" json:"-"`

	TravelAuthorizationRequired bool    `json:"travel_authorization_required"`
	TravelAuthorizationName     *string `json:"travel_authorization_name"`
	TravelAuthorizationURL      *string `gorm:"column:travel_authorization_url" json:"travel_authorization_url"`

	ArrivalFormRequired bool    `json:"arrival_form_required"`
	ArrivalFormName     *string `json:"arrival_form_name"`
	ArrivalFormURL      *string `gorm:"column:arrival_form_url" json:"arrival_form_url"`

	OtherRequirementsJSON *string `gorm:"column:other_requirements_json;type:text" json:"other_requirements_json"`
}

// TableName specifies the table name
func (TravelRequirements) TableName() string {
	return "travel_requirements"
}
