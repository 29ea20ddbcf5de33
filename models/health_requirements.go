package models

import "time"

// HealthRequirements holds vaccine requirements for a profile as stored JSON
// arrays plus free-text notes. At most one row exists per profile.
type HealthRequirements struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	ProfileID uint         `gorm:"not null;uniqueIndex" json:"profile_id"`
	Profile   EntryProfile `gorm:"foreignKey:ProfileID" json:"-"`

	VaccinesRequiredJSON    *string `gorm:"column:vaccines_required_json;type:text" json:"vaccines_required_json"`
	VaccinesRecommendedJSON *string `gorm:"column:vaccines_recommended_json;type:text" json:"vaccines_recommended_json"`
	Notes                   *string `gorm:"type:text" json:"notes"`
}

// TableName specifies the table name
func (HealthRequirements) TableName() string {
	return "health_requirements"
}
