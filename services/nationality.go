package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/RajoelinaAaron/api-travel-visas/models"
)

// NationalityFilter narrows the nationality listing.
type NationalityFilter struct {
	Search string
	Limit  int
	Offset int
}

// ListNationalities returns nationalities ordered by French name, optionally
// filtered by name/iso2 substring.
func ListNationalities(db *gorm.DB, filter NationalityFilter) ([]models.Nationality, error) {
	query := db.Model(&models.Nationality{})

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name_fr LIKE ? OR iso2 LIKE ?", pattern, pattern)
	}

	query = query.Order("name_fr asc")
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
		if filter.Offset > 0 {
			query = query.Offset(filter.Offset)
		}
	}

	nationalities := []models.Nationality{}
	err := query.Find(&nationalities).Error
	return nationalities, err
}

// GetNationalityByIso2 returns the nationality with the given ISO2 code, or
// nil when no such nationality exists.
func GetNationalityByIso2(db *gorm.DB, iso2 string) (*models.Nationality, error) {
	var nationality models.Nationality
	err := db.Where("iso2 = ?", iso2).First(&nationality).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &nationality, nil
}

// GetNationalityByName returns the nationality with the given canonical
// French name, or nil when no such nationality exists.
func GetNationalityByName(db *gorm.DB, name string) (*models.Nationality, error) {
	var nationality models.Nationality
	err := db.Where("name_fr = ?", name).First(&nationality).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &nationality, nil
}

// UpsertNationality creates or updates a nationality keyed by its French
// name; iso2 is a non-key field refreshed on update.
func UpsertNationality(db *gorm.DB, nameFr string, iso2 *string) (uint, error) {
	var id uint
	err := db.Transaction(func(tx *gorm.DB) error {
		existing, err := GetNationalityByName(tx, nameFr)
		if err != nil {
			return err
		}
		if existing != nil {
			if err := tx.Model(&models.Nationality{}).Where("id = ?", existing.ID).Update("iso2", iso2).Error; err != nil {
				return err
			}
			id = existing.ID
			return nil
		}
		nationality := models.Nationality{NameFr: nameFr, Iso2: iso2}
		if err := tx.Create(&nationality).Error; err != nil {
			return err
		}
		id = nationality.ID
		return nil
	})
	return id, err
}
