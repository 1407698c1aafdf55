package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tidynest/tidynest-backend/internal/store"
)

// CRUD is a generic persistence collaborator satisfying store.Backend.
// Domain repositories embed it and add their own finders on top.
type CRUD[T store.Entity] struct {
	Base
}

// NewCRUD constructs a CRUD repository for entity T.
func NewCRUD[T store.Entity](db *gorm.DB) CRUD[T] {
	return CRUD[T]{Base: NewBase(db)}
}

// List returns rows matching filter in creation order. A nil filter
// lists everything.
func (c CRUD[T]) List(ctx context.Context, filter store.Filter) ([]T, error) {
	query := c.DB(ctx).Order("created_at ASC")
	if len(filter) > 0 {
		query = query.Where(map[string]any(filter))
	}
	var rows []T
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// Create inserts the row.
func (c CRUD[T]) Create(ctx context.Context, item T) error {
	return c.DB(ctx).Create(&item).Error
}

// Update loads the row, applies mutate, and saves it, all inside a
// transaction. The bool result reports whether the id existed.
func (c CRUD[T]) Update(ctx context.Context, id uuid.UUID, mutate func(*T)) (T, bool, error) {
	var out T
	found := false
	err := c.DB(ctx).Transaction(func(tx *gorm.DB) error {
		var row T
		if err := tx.First(&row, "id = ?", id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil
			}
			return err
		}
		mutate(&row)
		if err := tx.Save(&row).Error; err != nil {
			return err
		}
		out = row
		found = true
		return nil
	})
	if err != nil {
		var zero T
		return zero, false, err
	}
	return out, found, nil
}

// Delete removes the row. The bool result reports whether it existed.
func (c CRUD[T]) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	var model T
	result := c.DB(ctx).Delete(&model, "id = ?", id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
