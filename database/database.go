package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"lumiere-backend/internal/domain/catalog"
	"lumiere-backend/internal/domain/content"
	"lumiere-backend/internal/domain/journal"
	"lumiere-backend/internal/domain/settings"
)

// Connect opens the Postgres pool and runs migrations. The handle is owned by
// the caller and injected into repositories; there is no package-level
// singleton.
func Connect(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, err
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every domain model. Split out so tests can run
// it against an in-memory database.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		// content
		&content.Page{},
		&content.Section{},

		// catalog
		&catalog.Product{},

		// journal
		&journal.Author{},
		&journal.Category{},
		&journal.Article{},

		// singletons
		&settings.GlobalSetting{},
		&settings.About{},
		&settings.AboutBlock{},
	)
}
