package users

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/internal/store"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
	"github.com/tidynest/tidynest-backend/pkg/metrics"
)

// Service exposes user operations backed by an explicitly-owned store.
type Service interface {
	FetchAll(ctx context.Context) ([]models.User, error)
	Create(ctx context.Context, input CreateUserInput) (models.User, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (models.User, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Items() []models.User
	Get(id uuid.UUID) (models.User, bool)
	ByRole(role enums.UserRole) []models.User
	ByEmail(email string) (models.User, bool)
	Verified() []models.User

	Select(user models.User)
	Selected() (models.User, bool)
	ClearSelection()

	Loading() bool
	Err() string
	Reset()
}

type service struct {
	store *store.Store[models.User]
}

// NewService builds a users service over the provided backend.
func NewService(backend store.Backend[models.User], m *metrics.StoreMetrics, logg *logger.Logger) (Service, error) {
	if backend == nil {
		return nil, fmt.Errorf("users backend required")
	}
	return &service{
		store: store.New[models.User]("users", backend, m, logg),
	}, nil
}

func (s *service) FetchAll(ctx context.Context) ([]models.User, error) {
	return s.store.FetchAll(ctx, nil)
}

func (s *service) Create(ctx context.Context, input CreateUserInput) (models.User, error) {
	if err := validateCreate(input); err != nil {
		var zero models.User
		return zero, err
	}

	now := time.Now().UTC()
	user := models.User{
		ID:           uuid.New(),
		Email:        strings.ToLower(strings.TrimSpace(input.Email)),
		DisplayName:  strings.TrimSpace(input.DisplayName),
		PasswordHash: input.PasswordHash,
		PhotoURL:     input.PhotoURL,
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	return s.store.Create(ctx, user)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (models.User, error) {
	if input.Role != nil && !input.Role.IsValid() {
		var zero models.User
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}

	return s.store.Update(ctx, id, func(u *models.User) {
		if input.DisplayName != nil {
			u.DisplayName = *input.DisplayName
		}
		if input.PhotoURL != nil {
			u.PhotoURL = input.PhotoURL
		}
		if input.Role != nil {
			u.Role = *input.Role
		}
		if input.EmailVerified != nil {
			u.EmailVerified = *input.EmailVerified
		}
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

func (s *service) Items() []models.User { return s.store.Items() }

func (s *service) Get(id uuid.UUID) (models.User, bool) { return s.store.Get(id) }

func (s *service) ByRole(role enums.UserRole) []models.User {
	return s.store.Where(func(u models.User) bool { return u.Role == role })
}

func (s *service) ByEmail(email string) (models.User, bool) {
	needle := strings.ToLower(strings.TrimSpace(email))
	matches := s.store.Where(func(u models.User) bool { return u.Email == needle })
	if len(matches) == 0 {
		var zero models.User
		return zero, false
	}
	return matches[0], true
}

func (s *service) Verified() []models.User {
	return s.store.Where(func(u models.User) bool { return u.EmailVerified })
}

func (s *service) Select(user models.User)       { s.store.Select(user) }
func (s *service) Selected() (models.User, bool) { return s.store.Selected() }
func (s *service) ClearSelection()               { s.store.ClearSelection() }
func (s *service) Loading() bool                 { return s.store.Loading() }
func (s *service) Err() string                   { return s.store.Err() }
func (s *service) Reset()                        { s.store.Reset() }

func validateCreate(input CreateUserInput) error {
	if !strings.Contains(input.Email, "@") {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid email")
	}
	if strings.TrimSpace(input.DisplayName) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "display name required")
	}
	if input.PasswordHash == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "password hash required")
	}
	if !input.Role.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "invalid role")
	}
	return nil
}
