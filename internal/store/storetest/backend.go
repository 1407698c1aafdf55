// Package storetest provides an in-memory store.Backend for service tests.
package storetest

import (
	"context"
	"reflect"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/internal/store"
)

// Backend is an in-memory store.Backend with per-operation failure
// injection. The zero value is ready to use.
type Backend[T store.Entity] struct {
	mu   sync.Mutex
	rows []T

	FailList   error
	FailCreate error
	FailUpdate error
	FailDelete error
}

// Seed replaces the stored rows.
func (b *Backend[T]) Seed(rows ...T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = append([]T(nil), rows...)
}

// Rows returns a copy of the stored rows.
func (b *Backend[T]) Rows() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]T(nil), b.rows...)
}

func (b *Backend[T]) List(_ context.Context, filter store.Filter) ([]T, error) {
	if b.FailList != nil {
		return nil, b.FailList
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]T(nil), b.rows...), nil
}

func (b *Backend[T]) Create(_ context.Context, item T) error {
	if b.FailCreate != nil {
		return b.FailCreate
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	b.rows = append(b.rows, item)
	return nil
}

func (b *Backend[T]) Update(_ context.Context, id uuid.UUID, mutate func(*T)) (T, bool, error) {
	if b.FailUpdate != nil {
		var zero T
		return zero, false, b.FailUpdate
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.rows {
		if b.rows[i].EntityID() == id {
			mutate(&b.rows[i])
			touchUpdatedAt(&b.rows[i])
			return b.rows[i], true, nil
		}
	}
	var zero T
	return zero, false, nil
}

// touchUpdatedAt mirrors the persistence layer, which refreshes
// UpdatedAt on every save.
func touchUpdatedAt[T any](row *T) {
	value := reflect.ValueOf(row).Elem()
	if value.Kind() != reflect.Struct {
		return
	}
	field := value.FieldByName("UpdatedAt")
	if field.IsValid() && field.CanSet() && field.Type() == reflect.TypeOf(time.Time{}) {
		field.Set(reflect.ValueOf(time.Now().UTC()))
	}
}

func (b *Backend[T]) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	if b.FailDelete != nil {
		return false, b.FailDelete
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := range b.rows {
		if b.rows[i].EntityID() == id {
			b.rows = append(b.rows[:i], b.rows[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}
