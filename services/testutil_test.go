package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/RajoelinaAaron/api-travel-visas/models"
)

// setupTestDB initializes a fresh in-memory DB. A unique shared-cache name
// lets the aggregator's concurrent reads see the same data; a single open
// connection keeps shared-cache sqlite free of table-lock errors. Foreign
// keys are enforced so the tests see the same constraints as Postgres.
func setupTestDB(t *testing.T) *gorm.DB {
	dbName := "mem_" + uuid.New().String()
	testDB, err := gorm.Open(sqlite.Open("file:"+dbName+"?mode=memory&cache=shared&_busy_timeout=5000&_foreign_keys=on"), &gorm.Config{})
	assert.NoError(t, err)

	sqlDB, err := testDB.DB()
	assert.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	err = testDB.AutoMigrate(
		&models.Country{},
		&models.Nationality{},
		&models.OfficialPortal{},
		&models.EntryProfile{},
		&models.EntryDocument{},
		&models.TravelRequirements{},
		&models.HealthRequirements{},
		&models.CountryGuide{},
	)
	assert.NoError(t, err)

	return testDB
}

func strPtr(s string) *string {
	return &s
}

func floatPtr(f float64) *float64 {
	return &f
}
