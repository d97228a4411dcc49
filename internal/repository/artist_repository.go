package repository

import (
	"context"
	"fmt"

	"comiclib/internal/models"

	"gorm.io/gorm"
)

type ArtistRepo struct {
	base[models.Artist]
}

func NewArtistRepo(db *gorm.DB) *ArtistRepo {
	return &ArtistRepo{base[models.Artist]{db: db}}
}

// GetList returns every artist ordered by name ascending (bytewise).
func (r *ArtistRepo) GetList(ctx context.Context) ([]models.Artist, error) {
	var list []models.Artist
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get artists: %w", err)
	}
	return list, nil
}

func (r *ArtistRepo) Get(ctx context.Context, id int64) (*models.Artist, error) {
	return r.one(r.db.WithContext(ctx), id)
}
