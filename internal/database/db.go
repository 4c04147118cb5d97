package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/hirenest/job-portal-api/internal/models"
)

// Connect opens the postgres connection and runs migrations.
func Connect(dsn string) *gorm.DB {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	log.Info().Msg("database connection established")

	if err := Migrate(db); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
	return db
}

// Migrate creates/updates the tables. Shared with the test setup, which
// runs it against an in-memory sqlite database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&models.User{}, &models.Company{}, &models.Job{}, &models.Application{})
}
