package database

import (
	"errors"
	"testing"

	"stockroom/internal/config"
	"stockroom/internal/models"

	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSeed_CreatesExternalLocationOnce(t *testing.T) {
	db := NewTestDB(t)

	loc, err := Seed(db, config.SeedConfig{LocationName: "Elsewhere"})
	require.NoError(t, err)
	assert.Equal(t, uint(1), loc.ID)
	assert.Equal(t, "Abroad", loc.Name)
	assert.True(t, loc.IsExternal)

	var count int64
	db.Model(&models.Location{}).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestUniqueNameIndex(t *testing.T) {
	db := NewTestDB(t)

	require.NoError(t, db.Create(&models.Product{Name: "carrot"}).Error)
	err := db.Create(&models.Product{Name: "carrot"}).Error
	assert.True(t, errors.Is(err, gorm.ErrDuplicatedKey), "got %v", err)
}

func TestPing(t *testing.T) {
	db := NewTestDB(t)
	assert.NoError(t, Ping(db))
}

func TestEmbeddedMigrations(t *testing.T) {
	goose.SetBaseFS(migrationsFS)
	t.Cleanup(func() { goose.SetBaseFS(nil) })

	migrations, err := goose.CollectMigrations(migrationsDir, 0, goose.MaxVersion)
	require.NoError(t, err)
	require.Len(t, migrations, 1)
	assert.Equal(t, int64(1), migrations[0].Version)
}
