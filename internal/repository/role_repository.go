package repository

import (
	"context"
	"fmt"

	"comiclib/internal/models"

	"gorm.io/gorm"
)

type RoleRepo struct {
	base[models.Role]
}

func NewRoleRepo(db *gorm.DB) *RoleRepo {
	return &RoleRepo{base[models.Role]{db: db}}
}

// GetList returns every role ordered by name ascending (bytewise).
func (r *RoleRepo) GetList(ctx context.Context) ([]models.Role, error) {
	var list []models.Role
	if err := r.db.WithContext(ctx).Order("name asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get roles: %w", err)
	}
	return list, nil
}

func (r *RoleRepo) Get(ctx context.Context, id int64) (*models.Role, error) {
	return r.one(r.db.WithContext(ctx), id)
}
