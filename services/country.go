package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RajoelinaAaron/api-travel-visas/models"
)

// CountryFilter narrows the country listing. Popular is tri-state: nil means
// no popularity filter.
type CountryFilter struct {
	Search    string
	Continent string
	Popular   *bool
	Limit     int
	Offset    int
}

// CountryInput carries the upsertable fields of a country.
type CountryInput struct {
	NameFr              string
	Iso2                *string
	Continent           *string
	PopularDestination  bool
	ImageURL            *string
	ProcessedVisasCount *int
}

// ListCountries returns countries ordered by French name, optionally filtered
// by name/iso2 substring, continent and popularity.
func ListCountries(db *gorm.DB, filter CountryFilter) ([]models.Country, error) {
	query := db.Model(&models.Country{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name_fr LIKE ? OR iso2 LIKE ?", pattern, pattern)
	}
	if filter.Continent != "" {
		query = query.Where("continent = ?", filter.Continent)
	}
	if filter.Popular != nil {
		query = query.Where("popular_destination = ?", *filter.Popular)
	}

	query = query.Order("name_fr asc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Offset > 0 {
			query = query.Offset(filter.Offset)
		}
	}

	countries := []models.Country{}
	err := query.Find(&countries).Error
	return countries, err
}

// GetCountryByIso2 returns the country with the given ISO2 code, or nil when
// no such country exists.
func GetCountryByIso2(db *gorm.DB, iso2 string) (*models.Country, error) {
	var country models.Country
	err := db.Where("iso2 = ?", iso2).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// GetCountryByName returns the country with the given canonical French name,
// or nil when no such country exists.
func GetCountryByName(db *gorm.DB, name string) (*models.Country, error) {
	var country models.Country
	err := db.Where("name_fr = ?", name).First(&country).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &country, nil
}

// UpsertCountry creates or updates a country keyed by iso2 when present,
// falling back to the French name. The row id is stable across repeated
// calls with the same natural key.
func UpsertCountry(db *gorm.DB, in CountryInput) (uint, error) {
	var id uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var existing *models.Country
		var err error
		if in.Iso2 != nil {
			existing, err = GetCountryByIso2(tx, *in.Iso2)
		} else {
			existing, err = GetCountryByName(tx, in.NameFr)
		}
		if err != nil {
			return err
		}

		if existing != nil {
			// iso2 is the key, all other fields follow the submission
			updates := map[string]interface{}{
				"name_fr":               in.NameFr,
				"continent":             in.Continent,
				"popular_destination":   in.PopularDestination,
				"image_url":             in.ImageURL,
				"processed_visas_count": in.ProcessedVisasCount,
			}
			if err := tx.Model(&models.Country{}).Where("id = ?", existing.ID).Updates(updates).Error; err != nil {
				return err
			}
			id = existing.ID
			return nil
		}

		country := models.Country{
			NameFr:              in.NameFr,
			Iso2:                in.Iso2,
			Continent:           in.Continent,
			PopularDestination:  in.PopularDestination,
			ImageURL:            in.ImageURL,
			ProcessedVisasCount: in.ProcessedVisasCount,
		}
		if err := tx.Create(&country).Error; err != nil {
			return err
		}
		id = country.ID
		return nil
	})
	return id, err
}

// GetOfficialPortal returns a country's official portal, or nil when none is
// recorded.
func GetOfficialPortal(db *gorm.DB, countryID uint) (*models.OfficialPortal, error) {
	var portal models.OfficialPortal
	err := db.Where("country_id = ? AND label = ?", countryID, models.OfficialPortalLabel).First(&portal).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &portal, nil
}

// UpsertOfficialPortal creates or updates the portal URL for a country, keyed
// by (country_id, label).
func UpsertOfficialPortal(db *gorm.DB, countryID uint, url string) (uint, error) {
	var id uint
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := GetOfficialPortal(tx, countryID)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := tx.Model(&models.OfficialPortal{}).Where("id = ?", existing.ID).Update("url", url).Error; err != nil {
				return err
			}
			id = existing.ID
			return nil
		}
		portal := models.OfficialPortal{CountryID: countryID, URL: url, Label: models.OfficialPortalLabel}
		if err := tx.Create(&portal).Error; err != nil {
			return err
		}
		id = portal.ID
		return nil
	})
	return id, err
}
