package repository

import (
	"context"
	"fmt"

	"comiclib/internal/models"

	"gorm.io/gorm"
)

type SeriesRepo struct {
	base[models.Series]
}

func NewSeriesRepo(db *gorm.DB) *SeriesRepo {
	return &SeriesRepo{base[models.Series]{db: db}}
}

// GetList returns every series ordered by title ascending (bytewise).
func (r *SeriesRepo) GetList(ctx context.Context) ([]models.Series, error) {
	var list []models.Series
	if err := r.db.WithContext(ctx).Order("title asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get series: %w", err)
	}
	return list, nil
}

// Get returns one series with its comic books populated.
func (r *SeriesRepo) Get(ctx context.Context, id int64) (*models.Series, error) {
	tx := r.db.WithContext(ctx).Preload("ComicBooks")
	return r.one(tx, id)
}
