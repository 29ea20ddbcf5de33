package models

import "time"

// OfficialPortalLabel is the single label currently stored. The schema allows
// one portal row per (country, label) pair.
const OfficialPortalLabel = "official_portal"

// OfficialPortal is a country's official visa/entry information site.
type OfficialPortal struct {
	ID        uint      `gorm:"primarykey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CountryID uint    `gorm:"not null;uniqueIndex:idx_portal_country_label" json:"country_id"`
	Country   Country `gorm:"foreignKey:CountryID" json:"-"`

	URL   string `gorm:"column:url;not null" json:"url"`
	Label string `gorm:"size:50;not null;uniqueIndex:idx_portal_country_label" json:"label"`
}

// TableName specifies the table name
func (OfficialPortal) TableName() string {
	return "official_portals"
}
