package database

import (
	"testing"

	"stockroom/internal/config"
	"stockroom/internal/logger"

	"gorm.io/gorm"
)

// NewTestDB returns a migrated in-memory sqlite database seeded with the
// default external location.
func NewTestDB(t testing.TB) *gorm.DB {
	t.Helper()

	db, err := Open(config.DBConfig{Driver: config.DriverSQLite, DSN: ":memory:"}, logger.Nop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := Migrate(db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	if _, err := Seed(db, config.SeedConfig{LocationName: "Abroad", LocationDescription: "Not a warehouse"}); err != nil {
		t.Fatalf("seed test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}
