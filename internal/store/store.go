package store

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
	"github.com/tidynest/tidynest-backend/pkg/metrics"
)

// Entity is anything a Store can hold. Implementations are plain value
// types keyed by a client-minted UUID.
type Entity interface {
	EntityID() uuid.UUID
}

// Filter narrows a backend List call. Keys are column names; a nil or
// empty Filter lists everything.
type Filter map[string]any

// Backend is the persistence collaborator behind a Store. Every Store
// mutation is confirmed by the backend before the in-memory slice is
// touched, so a backend failure leaves the cached state untouched.
//
// Update applies mutate to the persisted row inside a transaction and
// returns the updated row. The bool result reports whether the id
// existed; Update and Delete return (zero, false, nil) rather than an
// error when it did not, and the Store maps that onto CodeNotFound.
type Backend[T Entity] interface {
	List(ctx context.Context, filter Filter) ([]T, error)
	Create(ctx context.Context, item T) error
	Update(ctx context.Context, id uuid.UUID, mutate func(*T)) (T, bool, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// Store is an explicitly-owned, mutation-serialized cache over a
// Backend. Reads return copies; writes go through the backend first and
// only then update the cached slice, under a single mutex.
//
// FetchAll replaces the slice wholesale, guarded by a generation token:
// any mutation that lands while a fetch is in flight bumps the
// generation, and the fetch discards its stale snapshot instead of
// clobbering the newer state.
type Store[T Entity] struct {
	name    string
	backend Backend[T]
	metrics *metrics.StoreMetrics
	logg    *logger.Logger

	mu       sync.Mutex
	items    []T
	selected *T
	lastErr  string
	gen      uint64

	inflight atomic.Int32
}

// New builds a Store over backend. metrics may be nil.
func New[T Entity](name string, backend Backend[T], m *metrics.StoreMetrics, logg *logger.Logger) *Store[T] {
	return &Store[T]{
		name:    name,
		backend: backend,
		metrics: m,
		logg:    logg,
	}
}

// Name returns the store's label as used in logs and metrics.
func (s *Store[T]) Name() string { return s.name }

// begin marks the start of an operation: the call-scoped error is
// cleared, the loading gauge rises, and the returned func records the
// outcome. Callers must invoke done exactly once.
func (s *Store[T]) begin(op string) (done func(err error)) {
	s.mu.Lock()
	s.lastErr = ""
	s.mu.Unlock()

	s.inflight.Add(1)
	s.metrics.LoadingStarted(s.name)
	start := time.Now()

	return func(err error) {
		s.metrics.ObserveDuration(s.name, op, time.Since(start))
		s.metrics.LoadingFinished(s.name)
		s.inflight.Add(-1)

		if err != nil {
			s.metrics.IncFailure(s.name, op)
			s.mu.Lock()
			s.lastErr = err.Error()
			s.mu.Unlock()
		}
	}
}

// FetchAll loads items from the backend, optionally filtered, and
// replaces the cached slice. If any mutation completed while the
// backend call was in flight the fetched snapshot is stale and is
// discarded; the caller can fetch again if it wants the merged view.
func (s *Store[T]) FetchAll(ctx context.Context, filter Filter) ([]T, error) {
	done := s.begin("fetch_all")

	s.mu.Lock()
	startGen := s.gen
	s.mu.Unlock()

	items, err := s.backend.List(ctx, filter)
	if err != nil {
		err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "listing "+s.name)
		done(err)
		return nil, err
	}

	s.mu.Lock()
	if s.gen == startGen {
		s.items = items
	} else {
		s.logg.Warn(s.logg.WithStore(ctx, s.name), "discarding stale fetch result")
	}
	out := s.snapshotLocked()
	s.mu.Unlock()

	done(nil)
	return out, nil
}

// Create persists item and, on success, appends it to the cached slice.
func (s *Store[T]) Create(ctx context.Context, item T) (T, error) {
	done := s.begin("create")

	if err := s.backend.Create(ctx, item); err != nil {
		err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "creating "+s.name)
		done(err)
		var zero T
		return zero, err
	}

	s.mu.Lock()
	s.items = append(s.items, item)
	s.gen++
	s.mu.Unlock()

	done(nil)
	return item, nil
}

// Update applies mutate to the persisted row, then mirrors the result
// into the cached slice. Unknown ids surface as CodeNotFound.
func (s *Store[T]) Update(ctx context.Context, id uuid.UUID, mutate func(*T)) (T, error) {
	done := s.begin("update")
	var zero T

	updated, found, err := s.backend.Update(ctx, id, mutate)
	if err != nil {
		err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "updating "+s.name)
		done(err)
		return zero, err
	}
	if !found {
		err = pkgerrors.New(pkgerrors.CodeNotFound, s.name+" not found")
		done(err)
		return zero, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items[i] = updated
			break
		}
	}
	if s.selected != nil && (*s.selected).EntityID() == id {
		item := updated
		s.selected = &item
	}
	s.gen++
	s.mu.Unlock()

	done(nil)
	return updated, nil
}

// Delete removes the row from the backend, then from the cached slice.
// Unknown ids surface as CodeNotFound.
func (s *Store[T]) Delete(ctx context.Context, id uuid.UUID) error {
	done := s.begin("delete")

	found, err := s.backend.Delete(ctx, id)
	if err != nil {
		err = pkgerrors.Wrap(pkgerrors.CodeDependency, err, "deleting "+s.name)
		done(err)
		return err
	}
	if !found {
		err = pkgerrors.New(pkgerrors.CodeNotFound, s.name+" not found")
		done(err)
		return err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	if s.selected != nil && (*s.selected).EntityID() == id {
		s.selected = nil
	}
	s.gen++
	s.mu.Unlock()

	done(nil)
	return nil
}

// Items returns a copy of the cached slice in insertion order.
func (s *Store[T]) Items() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Get returns the cached item with the given id, if present.
func (s *Store[T]) Get(id uuid.UUID) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].EntityID() == id {
			return s.items[i], true
		}
	}
	var zero T
	return zero, false
}

// Where returns the cached items matching pred, preserving order.
func (s *Store[T]) Where(pred func(T) bool) []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []T
	for i := range s.items {
		if pred(s.items[i]) {
			out = append(out, s.items[i])
		}
	}
	return out
}

// Select marks an item as the current selection.
func (s *Store[T]) Select(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := item
	s.selected = &copied
}

// Selected returns the current selection, if any.
func (s *Store[T]) Selected() (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

// ClearSelection drops the current selection.
func (s *Store[T]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
}

// Loading reports whether any operation is in flight.
func (s *Store[T]) Loading() bool {
	return s.inflight.Load() > 0
}

// Err returns the message of the most recent failed operation, or the
// empty string. It is call-scoped: each new operation clears it.
func (s *Store[T]) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// Reset drops all cached state. The backend is not touched.
func (s *Store[T]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.selected = nil
	s.lastErr = ""
	s.gen++
}

func (s *Store[T]) snapshotLocked() []T {
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}
