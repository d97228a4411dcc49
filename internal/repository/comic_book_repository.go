package repository

import (
	"context"
	"fmt"

	"comiclib/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ComicBookRepo struct {
	base[models.ComicBook]
}

func NewComicBookRepo(db *gorm.DB) *ComicBookRepo {
	return &ComicBookRepo{base[models.ComicBook]{db: db}}
}

// Count returns the total number of comic books.
func (r *ComicBookRepo) Count(ctx context.Context) (int64, error) {
	return r.count(ctx)
}

// GetList returns every comic book with its Series populated, ordered by
// series title then issue number. Title ordering is bytewise; the schema
// pins the column collation so the store agrees.
func (r *ComicBookRepo) GetList(ctx context.Context) ([]models.ComicBook, error) {
	var list []models.ComicBook
	if err := r.db.WithContext(ctx).
		Joins("JOIN series ON series.id = comic_books.series_id").
		Preload("Series").
		Order("series.title asc, comic_books.issue_number asc").
		Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get comic books: %w", err)
	}
	return list, nil
}

// Get returns one comic book with Series and, on each credit, Artist and
// Role populated.
func (r *ComicBookRepo) Get(ctx context.Context, id int64) (*models.ComicBook, error) {
	tx := r.db.WithContext(ctx).
		Preload("Series").
		Preload("Credits.Artist").
		Preload("Credits.Role")
	return r.one(tx, id)
}

// Add inserts the comic book and its credit rows in one transaction.
// Referenced Series/Artist/Role records tagged RecordExisting are linked by
// id and never re-inserted or updated; records tagged RecordNew are
// inserted first and their generated keys used for the link.
func (r *ComicBookRepo) Add(ctx context.Context, cb *models.ComicBook) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if cb.Series != nil {
			if cb.Series.State == models.RecordNew {
				if err := tx.Omit(clause.Associations).Create(cb.Series).Error; err != nil {
					return fmt.Errorf("insert series: %w", err)
				}
			}
			cb.SeriesID = cb.Series.ID
		}

		credits := cb.Credits
		cb.Credits = nil
		if err := tx.Omit(clause.Associations).Create(cb).Error; err != nil {
			cb.Credits = credits
			return fmt.Errorf("insert comic book: %w", err)
		}
		cb.Credits = credits

		for i := range credits {
			credit := &credits[i]
			if credit.Artist != nil {
				if credit.Artist.State == models.RecordNew {
					if err := tx.Omit(clause.Associations).Create(credit.Artist).Error; err != nil {
						return fmt.Errorf("insert artist: %w", err)
					}
				}
				credit.ArtistID = credit.Artist.ID
			}
			if credit.Role != nil {
				if credit.Role.State == models.RecordNew {
					if err := tx.Omit(clause.Associations).Create(credit.Role).Error; err != nil {
						return fmt.Errorf("insert role: %w", err)
					}
				}
				credit.RoleID = credit.Role.ID
			}
			credit.ComicBookID = cb.ID
			if err := tx.Omit(clause.Associations).Create(credit).Error; err != nil {
				return fmt.Errorf("insert credit: %w", err)
			}
		}
		return nil
	})
}

// Delete removes the comic book and its credit rows by id alone, without
// reading the row first. The credit rows go explicitly so the behavior does
// not depend on the store enforcing the cascade.
func (r *ComicBookRepo) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comic_book_id = ?", id).Delete(&models.ComicBookArtist{}).Error; err != nil {
			return fmt.Errorf("delete credits: %w", err)
		}
		res := tx.Delete(&models.ComicBook{}, id)
		if res.Error != nil {
			return fmt.Errorf("delete comic book: %w", res.Error)
		}
		if res.RowsAffected == 0 {
			return ErrNotFound
		}
		return nil
	})
}

// Update reattaches a detached comic book and overwrites every scalar
// column with the values given, including ones the caller never touched.
// Credit rows are left alone; only the comic book row is written.
func (r *ComicBookRepo) Update(ctx context.Context, cb *models.ComicBook) error {
	if cb.ID == 0 {
		return ErrMissingID
	}
	if cb.Series != nil && cb.SeriesID == 0 {
		cb.SeriesID = cb.Series.ID
	}
	return r.base.Update(ctx, cb)
}
