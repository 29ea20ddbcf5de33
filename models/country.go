package models

import "time"

// Country represents a destination country. The ISO2 code is a secondary
// unique key; countries without one are identified by their French name.
type Country struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	NameFr              string  `gorm:"column:name_fr;size:100;not null" json:"name_fr"`
	Iso2                *string `gorm:"size:2;uniqueIndex" json:"iso2"`
	Continent           *string `gorm:"size:50" json:"continent"`
	PopularDestination  bool    `json:"popular_destination"`
	ImageURL            *string `gorm:"column:image_url" json:"image_url"`
	ProcessedVisasCount *int    `json:"processed_visas_count"`
}

// TableName specifies the table name
func (Country) TableName() string {
	return "countries"
}
