package properties

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

// Service exposes property operations backed by an explicitly-owned store.
type Service interface {
	FetchAll(ctx context.Context) ([]models.Property, error)
	Create(ctx context.Context, input CreatePropertyInput) (models.Property, error)
	Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (models.Property, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Items() []models.Property
	Get(id uuid.UUID) (models.Property, bool)
	Active() []models.Property
	ByType(propertyType enums.PropertyType) []models.Property
	ByStatus(status enums.PropertyStatus) []models.Property

	Select(property models.Property)
	Selected() (models.Property, bool)
	ClearSelection()

	Loading() bool
	Err() string
	Reset()
}

type service struct {
	store *store.Store[models.Property]
}

// NewService builds a properties service over the provided backend.
func NewService(backend store.Backend[models.Property], m *metrics.StoreMetrics, logg *logger.Logger) (Service, error) {
	if backend == nil {
		return nil, fmt.Errorf("properties backend required")
	}
	return &service{
		store: store.New[models.Property]("properties", backend, m, logg),
	}, nil
}

func (s *service) FetchAll(ctx context.Context) ([]models.Property, error) {
	return s.store.FetchAll(ctx, nil)
}

func (s *service) Create(ctx context.Context, input CreatePropertyInput) (models.Property, error) {
	var zero models.Property
	if strings.TrimSpace(input.Name) == "" {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "name required")
	}
	if !input.Type.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid property type")
	}
	status := input.Status
	if status == "" {
		status = enums.PropertyStatusActive
	}
	if !status.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}

	now := time.Now().UTC()
	property := models.Property{
		ID:                   uuid.New(),
		Name:                 strings.TrimSpace(input.Name),
		Address:              input.Address,
		Location:             input.Location,
		Type:                 input.Type,
		CleaningRequirements: input.CleaningRequirements,
		Contact:              input.Contact,
		AccessInstructions:   input.AccessInstructions,
		ColorCode:            input.ColorCode,
		Status:               status,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	return s.store.Create(ctx, property)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdatePropertyInput) (models.Property, error) {
	var zero models.Property
	if input.Type != nil && !input.Type.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid property type")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid status")
	}

	return s.store.Update(ctx, id, func(p *models.Property) {
		if input.Name != nil {
			p.Name = *input.Name
		}
		if input.Address != nil {
			p.Address = *input.Address
		}
		if input.Location != nil {
			p.Location = input.Location
		}
		if input.Type != nil {
			p.Type = *input.Type
		}
		if input.CleaningRequirements != nil {
			p.CleaningRequirements = *input.CleaningRequirements
		}
		if input.Contact != nil {
			p.Contact = *input.Contact
		}
		if input.AccessInstructions != nil {
			p.AccessInstructions = *input.AccessInstructions
		}
		if input.ColorCode != nil {
			p.ColorCode = *input.ColorCode
		}
		if input.Status != nil {
			p.Status = *input.Status
		}
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

func (s *service) Items() []models.Property { return s.store.Items() }

func (s *service) Get(id uuid.UUID) (models.Property, bool) { return s.store.Get(id) }

func (s *service) Active() []models.Property {
	return s.ByStatus(enums.PropertyStatusActive)
}

func (s *service) ByType(propertyType enums.PropertyType) []models.Property {
	return s.store.Where(func(p models.Property) bool { return p.Type == propertyType })
}

func (s *service) ByStatus(status enums.PropertyStatus) []models.Property {
	return s.store.Where(func(p models.Property) bool { return p.Status == status })
}

func (s *service) Select(property models.Property)   { s.store.Select(property) }
func (s *service) Selected() (models.Property, bool) { return s.store.Selected() }
func (s *service) ClearSelection()                   { s.store.ClearSelection() }
func (s *service) Loading() bool                     { return s.store.Loading() }
func (s *service) Err() string                       { return s.store.Err() }
func (s *service) Reset()                            { s.store.Reset() }
