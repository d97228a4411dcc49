package repository

import (
	"context"
	"fmt"

	"comiclib/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Repository defines the generic CRUD contract every entity repository
// satisfies. T is the entity type (e.g. ComicBook, Series).
//
// Get and GetList leave the eager-loading and ordering policy to the
// concrete repository: each one decides which associations "related" covers
// and how lists are sorted.
type Repository[T any] interface {
	// Get retrieves an entity by primary key with its related rows
	// populated. Returns ErrNotFound when no row matches and
	// ErrMultipleMatches when the id is not unique in the store.
	Get(ctx context.Context, id int64) (*T, error)

	// GetList retrieves all entities in the repository's documented order.
	GetList(ctx context.Context) ([]T, error)

	// Add inserts the entity and assigns the generated key to it.
	Add(ctx context.Context, entity *T) error

	// Update overwrites every scalar column of the stored row with the
	// values on entity, whether or not the caller changed them. Fields the
	// caller left at their zero value are persisted as zero values; there
	// is no merge with what is stored. Returns ErrNotFound when no row
	// with the entity's id exists.
	Update(ctx context.Context, entity *T) error

	// Delete removes the row with the given id using a key-only stub,
	// without reading the row first. Returns ErrNotFound when nothing was
	// deleted.
	Delete(ctx context.Context, id int64) error
}

var (
	_ Repository[models.ComicBook] = (*ComicBookRepo)(nil)
	_ Repository[models.Series]    = (*SeriesRepo)(nil)
	_ Repository[models.Artist]    = (*ArtistRepo)(nil)
	_ Repository[models.Role]      = (*RoleRepo)(nil)
)

// base supplies the write half of Repository for any entity type. Entity
// repositories embed it and add their Get/GetList policies on top.
type base[T any] struct {
	db *gorm.DB
}

func (r *base[T]) Add(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Omit(clause.Associations).Create(entity).Error; err != nil {
		return fmt.Errorf("insert: %w", err)
	}
	return nil
}

func (r *base[T]) Update(ctx context.Context, entity *T) error {
	// Save with a populated key updates every column, so a stale or
	// partially filled entity overwrites stored data. The explicit
	// Select("*") keeps Save in update mode: without it, an update that
	// matches no row falls back to inserting the entity. Associations are
	// omitted; only the row itself is written.
	tx := r.db.WithContext(ctx).Select("*").Omit(clause.Associations).Save(entity)
	if tx.Error != nil {
		return fmt.Errorf("update: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *base[T]) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(new(T), id)
	if tx.Error != nil {
		return fmt.Errorf("delete: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// one materializes the single row with the given id from an already scoped
// query (preloads applied by the caller). It fetches up to two rows so a
// duplicated id surfaces as ErrMultipleMatches instead of silently picking
// one.
func (r *base[T]) one(tx *gorm.DB, id int64) (*T, error) {
	var rows []T
	if err := tx.Limit(2).Find(&rows, "id = ?", id).Error; err != nil {
		return nil, fmt.Errorf("get by id: %w", err)
	}
	switch len(rows) {
	case 0:
		return nil, ErrNotFound
	case 1:
		return &rows[0], nil
	default:
		return nil, ErrMultipleMatches
	}
}

func (r *base[T]) count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(new(T)).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("count: %w", err)
	}
	return total, nil
}
