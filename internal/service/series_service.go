package service

import (
	"context"
	"errors"
	"strings"

	"comiclib/internal/models"
	"comiclib/internal/repository"
)

type SeriesService interface {
	GetAll(ctx context.Context) ([]models.Series, error)
	GetByID(ctx context.Context, id int64) (*models.Series, error)
	Create(ctx context.Context, se *models.Series) error
}

type seriesService struct {
	repo *repository.SeriesRepo
}

func NewSeriesService(r *repository.SeriesRepo) SeriesService {
	return &seriesService{repo: r}
}

func (s *seriesService) GetAll(ctx context.Context) ([]models.Series, error) {
	return s.repo.GetList(ctx)
}

func (s *seriesService) GetByID(ctx context.Context, id int64) (*models.Series, error) {
	return s.repo.Get(ctx, id)
}

func (s *seriesService) Create(ctx context.Context, se *models.Series) error {
	se.Title = strings.TrimSpace(se.Title)
	if se.Title == "" {
		return errors.New("title is required")
	}
	return s.repo.Add(ctx, se)
}
