package database

import (
	"github.com/fadzzz/timesheet/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the remote Postgres store and migrates the schema.
// Callers that run without a configured DATABASE_URL skip this entirely
// and hand a nil *gorm.DB to the store layer.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, err
	}

	// Auto migrate the schema
	if err := db.AutoMigrate(&models.User{}, &models.TimeEntry{}, &models.Client{}); err != nil {
		return nil, err
	}

	return db, nil
}
