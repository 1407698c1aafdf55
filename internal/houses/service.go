package houses

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tidynest/tidynest-backend/internal/store"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
	"github.com/tidynest/tidynest-backend/pkg/metrics"
)

// Service exposes house operations backed by an explicitly-owned store.
type Service interface {
	FetchAll(ctx context.Context) ([]models.House, error)
	Create(ctx context.Context, input CreateHouseInput) (models.House, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateHouseInput) (models.House, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Items() []models.House
	Get(id uuid.UUID) (models.House, bool)
	Active() []models.House
	ByStatus(status enums.HouseStatus) []models.House
	ByOwner(ownerUserID uuid.UUID) []models.House

	Select(house models.House)
	Selected() (models.House, bool)
	ClearSelection()

	Loading() bool
	Err() string
	Reset()
}

type service struct {
	store *store.Store[models.House]
}

// NewService builds a houses service over the provided backend.
func NewService(backend store.Backend[models.House], m *metrics.StoreMetrics, logg *logger.Logger) (Service, error) {
	if backend == nil {
		return nil, fmt.Errorf("houses backend required")
	}
	return &service{
		store: store.New[models.House]("houses", backend, m, logg),
	}, nil
}

func (s *service) FetchAll(ctx context.Context) ([]models.House, error) {
	return s.store.FetchAll(ctx, nil)
}

func (s *service) Create(ctx context.Context, input CreateHouseInput) (models.House, error) {
	var zero models.House
	if strings.TrimSpace(input.Name) == "" {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	status := input.Status
	if status == "" {
		status = enums.HouseStatusActive
	}
	if !status.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}

	now := time.Now().UTC()
	house := models.House{
		ID:          uuid.New(),
		Name:        strings.TrimSpace(input.Name),
		Description: input.Description,
		Address:     input.Address,
		Location:    input.Location,
		Features:    pq.StringArray(input.Features),
		Images:      input.Images,
		Status:      status,
		Owner:       input.Owner,
		Manager:     input.Manager,
		Settings:    input.Settings,
		Color:       input.Color,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return s.store.Create(ctx, house)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateHouseInput) (models.House, error) {
	if input.Status != nil && !input.Status.IsValid() {
		var zero models.House
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}

	return s.store.Update(ctx, id, func(h *models.House) {
		if input.Name != nil {
			h.Name = *input.Name
		}
		if input.Description != nil {
			h.Description = *input.Description
		}
		if input.Address != nil {
			h.Address = *input.Address
		}
		if input.Location != nil {
			h.Location = input.Location
		}
		if input.Features != nil {
			h.Features = pq.StringArray(*input.Features)
		}
		if input.Images != nil {
			h.Images = *input.Images
		}
		if input.Status != nil {
			h.Status = *input.Status
		}
		if input.Owner != nil {
			h.Owner = *input.Owner
		}
		if input.Manager != nil {
			h.Manager = input.Manager
		}
		if input.Settings != nil {
			h.Settings = *input.Settings
		}
		if input.Color != nil {
			h.Color = *input.Color
		}
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

func (s *service) Items() []models.House { return s.store.Items() }

func (s *service) Get(id uuid.UUID) (models.House, bool) { return s.store.Get(id) }

func (s *service) Active() []models.House {
	return s.ByStatus(enums.HouseStatusActive)
}

func (s *service) ByStatus(status enums.HouseStatus) []models.House {
	return s.store.Where(func(h models.House) bool { return h.Status == status })
}

func (s *service) ByOwner(ownerUserID uuid.UUID) []models.House {
	return s.store.Where(func(h models.House) bool { return h.Owner.UserID == ownerUserID })
}

func (s *service) Select(house models.House)      { s.store.Select(house) }
func (s *service) Selected() (models.House, bool) { return s.store.Selected() }
func (s *service) ClearSelection()                { s.store.ClearSelection() }
func (s *service) Loading() bool                  { return s.store.Loading() }
func (s *service) Err() string                    { return s.store.Err() }
func (s *service) Reset()                         { s.store.Reset() }
