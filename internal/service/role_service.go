package service

import (
	"context"
	"errors"
	"strings"

	"comiclib/internal/models"
	"comiclib/internal/repository"
)

type RoleService interface {
	GetAll(ctx context.Context) ([]models.Role, error)
	GetByID(ctx context.Context, id int64) (*models.Role, error)
	Create(ctx context.Context, role *models.Role) error
}

type roleService struct {
	repo *repository.RoleRepo
}

func NewRoleService(r *repository.RoleRepo) RoleService {
	return &roleService{repo: r}
}

func (s *roleService) GetAll(ctx context.Context) ([]models.Role, error) {
	return s.repo.GetList(ctx)
}

func (s *roleService) GetByID(ctx context.Context, id int64) (*models.Role, error) {
	return s.repo.Get(ctx, id)
}

func (s *roleService) Create(ctx context.Context, role *models.Role) error {
	role.Name = strings.TrimSpace(role.Name)
	if role.Name == "" {
		return errors.New("name is required")
	}
	return s.repo.Add(ctx, role)
}
