package users

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/internal/store/storetest"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

func newTestService(t *testing.T, backend *storetest.Backend[models.User]) Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(backend, nil, logg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestNewServiceRequiresBackend(t *testing.T) {
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	if _, err := NewService(nil, nil, logg); err == nil {
		t.Fatal("expected error creating service without backend")
	}
}

func TestCreateMintsIDAndTimestamps(t *testing.T) {
	backend := &storetest.Backend[models.User]{}
	svc := newTestService(t, backend)

	user, err := svc.Create(context.Background(), CreateUserInput{
		Email:        "Ana@Example.com",
		DisplayName:  "Ana",
		PasswordHash: "$argon2id$hash",
		Role:         enums.UserRoleUser,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID == uuid.Nil {
		t.Fatal("expected a minted id")
	}
	if user.CreatedAt.IsZero() || user.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps to be stamped")
	}
	if user.Email != "ana@example.com" {
		t.Fatalf("expected normalized email, got %q", user.Email)
	}
	if rows := backend.Rows(); len(rows) != 1 || rows[0].ID != user.ID {
		t.Fatalf("backend not written: %+v", rows)
	}
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.User]{})

	cases := []CreateUserInput{
		{Email: "no-at", DisplayName: "x", PasswordHash: "h", Role: enums.UserRoleUser},
		{Email: "a@b.c", DisplayName: "", PasswordHash: "h", Role: enums.UserRoleUser},
		{Email: "a@b.c", DisplayName: "x", PasswordHash: "", Role: enums.UserRoleUser},
		{Email: "a@b.c", DisplayName: "x", PasswordHash: "h", Role: enums.UserRole("chief")},
	}
	for _, input := range cases {
		_, err := svc.Create(context.Background(), input)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("expected validation error for %+v, got %v", input, err)
		}
	}
}

func TestUpdateMergesFields(t *testing.T) {
	existing := models.User{ID: uuid.New(), Email: "a@b.c", DisplayName: "Before", Role: enums.UserRoleUser}
	backend := &storetest.Backend[models.User]{}
	backend.Seed(existing)
	svc := newTestService(t, backend)
	if _, err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	name := "After"
	updated, err := svc.Update(context.Background(), existing.ID, UpdateUserInput{DisplayName: &name})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.DisplayName != "After" {
		t.Fatalf("display name not updated: %+v", updated)
	}
	if updated.Email != "a@b.c" || updated.Role != enums.UserRoleUser {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if !updated.UpdatedAt.After(existing.UpdatedAt) {
		t.Fatalf("UpdatedAt not refreshed: %v", updated.UpdatedAt)
	}
}

func TestUpdateUnknownUserIsNotFound(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.User]{})

	name := "x"
	_, err := svc.Update(context.Background(), uuid.New(), UpdateUserInput{DisplayName: &name})
	if !pkgerrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}

func TestQueriesFilterCachedUsers(t *testing.T) {
	admin := models.User{ID: uuid.New(), Email: "admin@tidynest.io", DisplayName: "Admin", Role: enums.UserRoleAdmin, EmailVerified: true}
	staff := models.User{ID: uuid.New(), Email: "staff@tidynest.io", DisplayName: "Staff", Role: enums.UserRoleUser}
	backend := &storetest.Backend[models.User]{}
	backend.Seed(admin, staff)
	svc := newTestService(t, backend)
	if _, err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if got := svc.ByRole(enums.UserRoleAdmin); len(got) != 1 || got[0].ID != admin.ID {
		t.Fatalf("ByRole mismatch: %+v", got)
	}
	if got, ok := svc.ByEmail("Staff@TidyNest.io"); !ok || got.ID != staff.ID {
		t.Fatalf("ByEmail mismatch: %+v ok=%v", got, ok)
	}
	if got := svc.Verified(); len(got) != 1 || got[0].ID != admin.ID {
		t.Fatalf("Verified mismatch: %+v", got)
	}
}

func TestDeleteRemovesUser(t *testing.T) {
	existing := models.User{ID: uuid.New(), Email: "a@b.c", DisplayName: "Gone", Role: enums.UserRoleUser}
	backend := &storetest.Backend[models.User]{}
	backend.Seed(existing)
	svc := newTestService(t, backend)
	if _, err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if err := svc.Delete(context.Background(), existing.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok := svc.Get(existing.ID); ok {
		t.Fatal("deleted user still cached")
	}
	if err := svc.Delete(context.Background(), existing.ID); !pkgerrors.IsNotFound(err) {
		t.Fatalf("expected not-found on second delete, got %v", err)
	}
}
