package models

import "time"

// Nationality represents a traveler nationality, keyed by its French name
// with an optional unique ISO2 code.
type Nationality struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NameFr string  `gorm:"column:name_fr;size:100;not null" json:"name_fr"`
	Iso2   *string `gorm:"size:2;uniqueIndex" json:"iso2"`
}

// TableName specifies the table name
func (Nationality) TableName() string {
	return "nationalities"
}
