package services

import (
	"strings"

	"gorm.io/gorm"

	"github.com/RajoelinaAaron/api-travel-visas/models"
)

// ResolveNationality maps a user-supplied token (2-letter code or exact
// French name) to a nationality. A 2-character token that matches no ISO2
// code still falls through to the name lookup, so short names are not
// rejected.
func ResolveNationality(db *gorm.DB, token string) (*models.Nationality, error) {
	if len(token) == 2 {
		nationality, err := GetNationalityByIso2(db, strings.ToUpper(token))
		if err != nil {
			return nil, err
		}
		if nationality != nil {
			return nationality, nil
		}
	}

	nationality, err := GetNationalityByName(db, token)
	if err != nil {
		return nil, err
	}
	if nationality == nil {
		return nil, &NotFoundError{Kind: "Nationality", Token: token}
	}
	return nationality, nil
}

// ResolveCountry maps a user-supplied token to a destination country using
// the same code-or-name policy as ResolveNationality.
func ResolveCountry(db *gorm.DB, token string) (*models.Country, error) {
	if len(token) == 2 {
		country, err := GetCountryByIso2(db, strings.ToUpper(token))
		if err != nil {
			return nil, err
		}
		if country != nil {
			return country, nil
		}
	}

	country, err := GetCountryByName(db, token)
	if err != nil {
		return nil, err
	}
	if country == nil {
		return nil, &NotFoundError{Kind: "Destination country", Token: token}
	}
	return country, nil
}
