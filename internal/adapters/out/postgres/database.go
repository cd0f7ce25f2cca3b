package postgres

import (
	"fmt"

	"parceltracking/internal/adapters/out/postgres/parcelrepo"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// DSN builds a libpq-style connection string.
func DSN(host, port, user, password, dbName, sslMode string) string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		host, port, user, password, dbName, sslMode,
	)
}

// Open connects to PostgreSQL. Driver errors are translated into GORM's
// portable ones, which the repositories rely on for duplicate detection.
func Open(dsn string) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
}

// Migrate creates or updates the parcel tables.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(&parcelrepo.ParcelDTO{}, &parcelrepo.AuditEntryDTO{})
}
