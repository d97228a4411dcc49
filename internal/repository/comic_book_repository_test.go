package repository

import (
	"context"
	"testing"

	"comiclib/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComicBookGetListOrdering(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	alpha := models.Series{Title: "Alpha Flight"}
	beta := models.Series{Title: "Beta Ray Bill"}
	require.NoError(t, db.Create(&alpha).Error)
	require.NoError(t, db.Create(&beta).Error)

	// insertion order deliberately scrambled
	require.NoError(t, db.Create(&models.ComicBook{IssueNumber: 2, SeriesID: alpha.ID}).Error)
	require.NoError(t, db.Create(&models.ComicBook{IssueNumber: 1, SeriesID: beta.ID}).Error)
	require.NoError(t, db.Create(&models.ComicBook{IssueNumber: 1, SeriesID: alpha.ID}).Error)

	list, err := repo.GetList(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 3)

	// sorted by series title, then issue number
	assert.Equal(t, "Alpha Flight", list[0].Series.Title)
	assert.Equal(t, 1, list[0].IssueNumber)
	assert.Equal(t, "Alpha Flight", list[1].Series.Title)
	assert.Equal(t, 2, list[1].IssueNumber)
	assert.Equal(t, "Beta Ray Bill", list[2].Series.Title)
	assert.Equal(t, 1, list[2].IssueNumber)
}

func TestComicBookGetListOrderingIsBytewise(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	lower := models.Series{Title: "astonishing tales"}
	upper := models.Series{Title: "Byrne Robotics"}
	require.NoError(t, db.Create(&lower).Error)
	require.NoError(t, db.Create(&upper).Error)
	require.NoError(t, db.Create(&models.ComicBook{IssueNumber: 1, SeriesID: lower.ID}).Error)
	require.NoError(t, db.Create(&models.ComicBook{IssueNumber: 1, SeriesID: upper.ID}).Error)

	list, err := repo.GetList(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)

	// uppercase sorts before lowercase bytewise, no culture-aware folding
	assert.Equal(t, "Byrne Robotics", list[0].Series.Title)
	assert.Equal(t, "astonishing tales", list[1].Series.Title)
}

func TestComicBookGetPopulatesRelations(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	id := seedComicBook(t, db, "Fantastic Four", 48)

	cb, err := repo.Get(context.Background(), id)
	require.NoError(t, err)

	require.NotNil(t, cb.Series)
	assert.Equal(t, "Fantastic Four", cb.Series.Title)
	require.Len(t, cb.Credits, 1)
	require.NotNil(t, cb.Credits[0].Artist)
	assert.Equal(t, "Jack Kirby", cb.Credits[0].Artist.Name)
	require.NotNil(t, cb.Credits[0].Role)
	assert.Equal(t, "Penciller", cb.Credits[0].Role.Name)
}

func TestComicBookGetNotFound(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	_, err := repo.Get(context.Background(), 7)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestComicBookCount(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	seedComicBook(t, db, "Daredevil", 1)

	total, err := repo.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestComicBookAddExistingSeriesNotReinserted(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	series := models.Series{Title: "The Spirit"}
	require.NoError(t, db.Create(&series).Error)

	cb := models.ComicBook{
		IssueNumber: 3,
		// stale title on purpose: an existing reference must stay unmodified
		Series: &models.Series{ID: series.ID, Title: "WRONG", State: models.RecordExisting},
	}
	require.NoError(t, repo.Add(context.Background(), &cb))

	assert.EqualValues(t, 1, countRows[models.Series](t, db))

	var stored models.Series
	require.NoError(t, db.First(&stored, series.ID).Error)
	assert.Equal(t, "The Spirit", stored.Title)
	assert.Equal(t, series.ID, cb.SeriesID)
}

func TestComicBookAddNewRelatedRowsInserted(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	role := models.Role{Name: "Writer"}
	require.NoError(t, db.Create(&role).Error)

	cb := models.ComicBook{
		IssueNumber: 1,
		Series:      &models.Series{Title: "Nexus", State: models.RecordNew},
		Credits: []models.ComicBookArtist{
			{
				Artist: &models.Artist{Name: "Steve Rude", State: models.RecordNew},
				Role:   &models.Role{ID: role.ID, State: models.RecordExisting},
			},
		},
	}
	require.NoError(t, repo.Add(context.Background(), &cb))

	// exactly one new artist and one new series, existing role untouched
	assert.EqualValues(t, 1, countRows[models.Artist](t, db))
	assert.EqualValues(t, 1, countRows[models.Series](t, db))
	assert.EqualValues(t, 1, countRows[models.Role](t, db))

	require.Positive(t, cb.ID)
	var credit models.ComicBookArtist
	require.NoError(t, db.First(&credit, "comic_book_id = ?", cb.ID).Error)
	assert.Equal(t, role.ID, credit.RoleID)
	assert.Positive(t, credit.ArtistID)
}

func TestComicBookUpdateBlindOverwrite(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	id := seedComicBook(t, db, "Akira", 6)

	var stored models.ComicBook
	require.NoError(t, db.First(&stored, id).Error)

	// a detached instance with issue number left at its zero value: the
	// overwrite persists the zero instead of preserving the stored 6
	detached := models.ComicBook{ID: id, SeriesID: stored.SeriesID}
	require.NoError(t, repo.Update(context.Background(), &detached))

	require.NoError(t, db.First(&stored, id).Error)
	assert.Equal(t, 0, stored.IssueNumber)
}

func TestComicBookUpdateDeletedDoesNotResurrect(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	id := seedComicBook(t, db, "Cerebus", 1)
	var stored models.ComicBook
	require.NoError(t, db.First(&stored, id).Error)
	require.NoError(t, repo.Delete(context.Background(), id))

	// updating a deleted book must fail, not re-insert it under its old id
	err := repo.Update(context.Background(), &models.ComicBook{
		ID:          id,
		IssueNumber: 2,
		SeriesID:    stored.SeriesID,
	})
	require.ErrorIs(t, err, ErrNotFound)
	require.EqualValues(t, 0, countRows[models.ComicBook](t, db))
}

func TestComicBookUpdateRequiresID(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	err := repo.Update(context.Background(), &models.ComicBook{IssueNumber: 1, SeriesID: 1})
	require.ErrorIs(t, err, ErrMissingID)
}

func TestComicBookDeleteRemovesCredits(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	id := seedComicBook(t, db, "Hellboy", 1)
	require.EqualValues(t, 1, countRows[models.ComicBookArtist](t, db))

	require.NoError(t, repo.Delete(context.Background(), id))

	assert.EqualValues(t, 0, countRows[models.ComicBook](t, db))
	assert.EqualValues(t, 0, countRows[models.ComicBookArtist](t, db))
}

func TestComicBookDeleteMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewComicBookRepo(db)

	err := repo.Delete(context.Background(), 404)
	require.ErrorIs(t, err, ErrNotFound)
}
