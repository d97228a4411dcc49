package service

import (
	"context"
	"errors"

	"comiclib/internal/models"
	"comiclib/internal/repository"
)

type ComicBookService interface {
	Count(ctx context.Context) (int64, error)
	GetAll(ctx context.Context) ([]models.ComicBook, error)
	GetByID(ctx context.Context, id int64) (*models.ComicBook, error)
	Create(ctx context.Context, cb *models.ComicBook) error
	Update(ctx context.Context, id int64, cb *models.ComicBook) error
	Delete(ctx context.Context, id int64) error
}

type comicBookService struct {
	repo *repository.ComicBookRepo
}

func NewComicBookService(r *repository.ComicBookRepo) ComicBookService {
	return &comicBookService{repo: r}
}

func (s *comicBookService) Count(ctx context.Context) (int64, error) {
	return s.repo.Count(ctx)
}

func (s *comicBookService) GetAll(ctx context.Context) ([]models.ComicBook, error) {
	return s.repo.GetList(ctx)
}

func (s *comicBookService) GetByID(ctx context.Context, id int64) (*models.ComicBook, error) {
	return s.repo.Get(ctx, id)
}

func (s *comicBookService) Create(ctx context.Context, cb *models.ComicBook) error {
	// basic validation
	if cb.IssueNumber <= 0 {
		return errors.New("issue number must be positive")
	}
	if cb.Series == nil && cb.SeriesID == 0 {
		return errors.New("series is required")
	}
	for i := range cb.Credits {
		credit := &cb.Credits[i]
		if credit.Artist == nil && credit.ArtistID == 0 {
			return errors.New("credit artist is required")
		}
		if credit.Role == nil && credit.RoleID == 0 {
			return errors.New("credit role is required")
		}
	}
	return s.repo.Add(ctx, cb)
}

func (s *comicBookService) Update(ctx context.Context, id int64, cb *models.ComicBook) error {
	// ensure ID set for the overwrite
	cb.ID = id
	if cb.IssueNumber <= 0 {
		return errors.New("issue number must be positive")
	}
	return s.repo.Update(ctx, cb)
}

func (s *comicBookService) Delete(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}
