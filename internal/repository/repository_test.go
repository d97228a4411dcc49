package repository

import (
	"context"
	"fmt"
	"testing"

	"comiclib/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database with the catalog schema.
// SQLite's BINARY collation matches the bytewise ordering the postgres
// schema pins with COLLATE "C".
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_pragma=foreign_keys(1)", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&models.Series{},
		&models.ComicBook{},
		&models.Artist{},
		&models.Role{},
		&models.ComicBookArtist{},
	))
	return db
}

// seedComicBook inserts a series, artist, role and one fully credited comic
// book, returning the comic book id.
func seedComicBook(t *testing.T, db *gorm.DB, seriesTitle string, issue int) int64 {
	t.Helper()

	series := models.Series{Title: seriesTitle}
	require.NoError(t, db.Create(&series).Error)

	artist := models.Artist{Name: "Jack Kirby"}
	require.NoError(t, db.Create(&artist).Error)

	role := models.Role{Name: "Penciller"}
	require.NoError(t, db.Create(&role).Error)

	cb := models.ComicBook{IssueNumber: issue, SeriesID: series.ID}
	require.NoError(t, db.Create(&cb).Error)

	credit := models.ComicBookArtist{ComicBookID: cb.ID, ArtistID: artist.ID, RoleID: role.ID}
	require.NoError(t, db.Create(&credit).Error)

	return cb.ID
}

func countRows[T any](t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var total int64
	require.NoError(t, db.Model(new(T)).Count(&total).Error)
	return total
}

func TestBaseDeleteMissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewSeriesRepo(db)

	err := repo.Delete(context.Background(), 42)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBaseDeleteByIDStub(t *testing.T) {
	db := newTestDB(t)
	repo := NewSeriesRepo(db)

	series := models.Series{Title: "Watchmen"}
	require.NoError(t, db.Create(&series).Error)

	require.NoError(t, repo.Delete(context.Background(), series.ID))
	require.EqualValues(t, 0, countRows[models.Series](t, db))
}

func TestBaseUpdateMissingRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewSeriesRepo(db)

	err := repo.Update(context.Background(), &models.Series{ID: 99, Title: "Ghost"})
	require.ErrorIs(t, err, ErrNotFound)

	// the failed update must not have inserted a row with that key
	require.EqualValues(t, 0, countRows[models.Series](t, db))
}

func TestBaseAddAssignsKey(t *testing.T) {
	db := newTestDB(t)
	repo := NewSeriesRepo(db)

	series := models.Series{Title: "Sandman"}
	require.NoError(t, repo.Add(context.Background(), &series))
	require.Positive(t, series.ID)
}
