package repo

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/tidynest/tidynest-backend/internal/store"
)

type note struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Body      string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (n note) EntityID() uuid.UUID { return n.ID }

func newCRUDTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open("file::memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, conn.AutoMigrate(&note{}))
	return conn
}

func TestCRUDRoundTrip(t *testing.T) {
	crud := NewCRUD[note](newCRUDTestDB(t))
	ctx := context.Background()

	first := note{ID: uuid.New(), Body: "first", CreatedAt: time.Now().Add(-time.Minute)}
	second := note{ID: uuid.New(), Body: "second", CreatedAt: time.Now()}
	require.NoError(t, crud.Create(ctx, first))
	require.NoError(t, crud.Create(ctx, second))

	rows, err := crud.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, first.ID, rows[0].ID, "rows should come back in creation order")

	filtered, err := crud.List(ctx, store.Filter{"body": "second"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, second.ID, filtered[0].ID)
}

func TestCRUDUpdate(t *testing.T) {
	crud := NewCRUD[note](newCRUDTestDB(t))
	ctx := context.Background()

	row := note{ID: uuid.New(), Body: "before", UpdatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, crud.Create(ctx, row))

	updated, found, err := crud.Update(ctx, row.ID, func(n *note) { n.Body = "after" })
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "after", updated.Body)
	assert.True(t, updated.UpdatedAt.After(row.UpdatedAt), "save must refresh UpdatedAt")

	_, found, err = crud.Update(ctx, uuid.New(), func(n *note) {})
	require.NoError(t, err)
	assert.False(t, found, "unknown id must report not found")
}

func TestCRUDDelete(t *testing.T) {
	crud := NewCRUD[note](newCRUDTestDB(t))
	ctx := context.Background()

	row := note{ID: uuid.New(), Body: "gone"}
	require.NoError(t, crud.Create(ctx, row))

	found, err := crud.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.True(t, found)

	found, err = crud.Delete(ctx, row.ID)
	require.NoError(t, err)
	assert.False(t, found, "delete is idempotent at the backend level")
}
