package models

import "time"

// CountryGuide is free-text guide content for a country in one language.
type CountryGuide struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CountryID uint    `gorm:"not null;uniqueIndex:idx_guide_country_lang" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID" json:"-"`

	Lang      string  `gorm:"size:10;not null;uniqueIndex:idx_guide_country_lang" json:"lang"`
	GuideText *string `gorm:"type:text" json:"guide_text"`
}

// TableName specifies the table name
func (CountryGuide) TableName() string {
	return "country_guides"
}
