package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	redislib "github.com/redis/go-redis/v9"
)

type mockStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMockStore() *mockStore {
	return &mockStore{data: make(map[string]string)}
}

func (m *mockStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = fmt.Sprint(value)
	return nil
}

func (m *mockStore) Get(ctx context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	val, ok := m.data[key]
	if !ok {
		return "", redislib.Nil
	}
	return val, nil
}

func (m *mockStore) Del(ctx context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.data, key)
	}
	return nil
}

func (m *mockStore) AccessSessionKey(accessID string) string {
	return fmt.Sprintf("sess:%s", accessID)
}

func newTestManager(store *mockStore) *Manager {
	return &Manager{store: store, keyer: store, ttl: time.Hour}
}

func TestGenerateAndHasSession(t *testing.T) {
	store := newMockStore()
	mgr := newTestManager(store)
	ctx := context.Background()

	accessID := NewAccessID()
	token, err := mgr.Generate(ctx, accessID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if token == "" {
		t.Fatal("expected non-empty refresh token")
	}

	ok, err := mgr.HasSession(ctx, accessID)
	if err != nil {
		t.Fatalf("has session: %v", err)
	}
	if !ok {
		t.Fatal("expected active session after generate")
	}

	ok, err = mgr.HasSession(ctx, NewAccessID())
	if err != nil {
		t.Fatalf("has session unknown: %v", err)
	}
	if ok {
		t.Fatal("unknown access id should have no session")
	}
}

func TestRotateInvalidatesOldSession(t *testing.T) {
	store := newMockStore()
	mgr := newTestManager(store)
	ctx := context.Background()

	oldAccessID := NewAccessID()
	oldToken, err := mgr.Generate(ctx, oldAccessID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	newAccessID, newToken, err := mgr.Rotate(ctx, oldAccessID, oldToken)
	if err != nil {
		t.Fatalf("rotate: %v", err)
	}
	if newAccessID == oldAccessID || newToken == oldToken {
		t.Fatal("rotation must produce a fresh pair")
	}

	if ok, _ := mgr.HasSession(ctx, oldAccessID); ok {
		t.Fatal("old session must be gone after rotation")
	}
	if ok, _ := mgr.HasSession(ctx, newAccessID); !ok {
		t.Fatal("new session must be active after rotation")
	}

	// Replaying the consumed token must fail.
	if _, _, err := mgr.Rotate(ctx, oldAccessID, oldToken); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken for replay, got %v", err)
	}
}

func TestRotateRejectsWrongToken(t *testing.T) {
	store := newMockStore()
	mgr := newTestManager(store)
	ctx := context.Background()

	accessID := NewAccessID()
	if _, err := mgr.Generate(ctx, accessID); err != nil {
		t.Fatalf("generate: %v", err)
	}

	if _, _, err := mgr.Rotate(ctx, accessID, "forged-token"); !errors.Is(err, ErrInvalidRefreshToken) {
		t.Fatalf("expected ErrInvalidRefreshToken, got %v", err)
	}
}

func TestRevoke(t *testing.T) {
	store := newMockStore()
	mgr := newTestManager(store)
	ctx := context.Background()

	accessID := NewAccessID()
	if _, err := mgr.Generate(ctx, accessID); err != nil {
		t.Fatalf("generate: %v", err)
	}
	if err := mgr.Revoke(ctx, accessID); err != nil {
		t.Fatalf("revoke: %v", err)
	}
	if ok, _ := mgr.HasSession(ctx, accessID); ok {
		t.Fatal("revoked session should be gone")
	}
}
