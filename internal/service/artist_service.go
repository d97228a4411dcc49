package service

import (
	"context"
	"errors"
	"strings"

	"comiclib/internal/models"
	"comiclib/internal/repository"
)

type ArtistService interface {
	GetAll(ctx context.Context) ([]models.Artist, error)
	GetByID(ctx context.Context, id int64) (*models.Artist, error)
	Create(ctx context.Context, a *models.Artist) error
}

type artistService struct {
	repo *repository.ArtistRepo
}

func NewArtistService(r *repository.ArtistRepo) ArtistService {
	return &artistService{repo: r}
}

func (s *artistService) GetAll(ctx context.Context) ([]models.Artist, error) {
	return s.repo.GetList(ctx)
}

func (s *artistService) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	return s.repo.Get(ctx, id)
}

func (s *artistService) Create(ctx context.Context, a *models.Artist) error {
	a.Name = strings.TrimSpace(a.Name)
	if a.Name == "" {
		return errors.New("name is required")
	}
	return s.repo.Add(ctx, a)
}
