package houses

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/internal/store/storetest"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

func newTestService(t *testing.T, backend *storetest.Backend[models.House]) Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(backend, nil, logg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestCreateDefaultsStatusActive(t *testing.T) {
	backend := &storetest.Backend[models.House]{}
	svc := newTestService(t, backend)

	house, err := svc.Create(context.Background(), CreateHouseInput{
		Name:    "Seaside Villa",
		Address: types.Address{Street: "1 Shore Rd", City: "Brighton"},
		Owner:   types.ContactSnapshot{UserID: uuid.New(), Name: "Owner"},
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if house.Status != enums.HouseStatusActive {
		t.Fatalf("expected active default, got %s", house.Status)
	}
	if house.ID == uuid.Nil || house.CreatedAt.IsZero() {
		t.Fatal("expected minted id and timestamps")
	}
}

func TestCreateRejectsEmptyName(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.House]{})

	_, err := svc.Create(context.Background(), CreateHouseInput{Name: "  "})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestUpdateMergesSingleField(t *testing.T) {
	existing := models.House{
		ID:     uuid.New(),
		Name:   "Old Name",
		Status: enums.HouseStatusActive,
		Color:  "#aabbcc",
	}
	backend := &storetest.Backend[models.House]{}
	backend.Seed(existing)
	svc := newTestService(t, backend)
	if _, err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	name := "New Name"
	updated, err := svc.Update(context.Background(), existing.ID, UpdateHouseInput{Name: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New Name" {
		t.Fatalf("name not updated: %+v", updated)
	}
	if updated.Color != "#aabbcc" || updated.Status != enums.HouseStatusActive {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
}

func TestStatusQueries(t *testing.T) {
	owner := uuid.New()
	active := models.House{ID: uuid.New(), Name: "A", Status: enums.HouseStatusActive, Owner: types.ContactSnapshot{UserID: owner}}
	maintenance := models.House{ID: uuid.New(), Name: "B", Status: enums.HouseStatusMaintenance}
	backend := &storetest.Backend[models.House]{}
	backend.Seed(active, maintenance)
	svc := newTestService(t, backend)
	if _, err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if got := svc.Active(); len(got) != 1 || got[0].ID != active.ID {
		t.Fatalf("Active mismatch: %+v", got)
	}
	if got := svc.ByStatus(enums.HouseStatusMaintenance); len(got) != 1 || got[0].ID != maintenance.ID {
		t.Fatalf("ByStatus mismatch: %+v", got)
	}
	if got := svc.ByOwner(owner); len(got) != 1 || got[0].ID != active.ID {
		t.Fatalf("ByOwner mismatch: %+v", got)
	}
}

func TestDeleteUnknownHouseIsNotFound(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.House]{})

	if err := svc.Delete(context.Background(), uuid.New()); !pkgerrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
