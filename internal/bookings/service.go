package bookings

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/internal/store"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
	"github.com/tidynest/tidynest-backend/pkg/metrics"
)

// Service exposes booking operations backed by an explicitly-owned store.
type Service interface {
	FetchAll(ctx context.Context) ([]models.HouseBooking, error)
	Create(ctx context.Context, input CreateBookingInput) (models.HouseBooking, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (models.HouseBooking, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Items() []models.HouseBooking
	Get(id uuid.UUID) (models.HouseBooking, bool)
	ByHouse(houseID uuid.UUID) []models.HouseBooking
	ByStatus(status enums.BookingStatus) []models.HouseBooking
	Upcoming(now time.Time) []models.HouseBooking

	Select(booking models.HouseBooking)
	Selected() (models.HouseBooking, bool)
	ClearSelection()

	Loading() bool
	Err() string
	Reset()
}

type service struct {
	store *store.Store[models.HouseBooking]
}

// NewService builds a bookings service over the provided backend.
func NewService(backend store.Backend[models.HouseBooking], m *metrics.StoreMetrics, logg *logger.Logger) (Service, error) {
	if backend == nil {
		return nil, fmt.Errorf("bookings backend required")
	}
	return &service{
		store: store.New[models.HouseBooking]("bookings", backend, m, logg),
	}, nil
}

func (s *service) FetchAll(ctx context.Context) ([]models.HouseBooking, error) {
	return s.store.FetchAll(ctx, nil)
}

func (s *service) Create(ctx context.Context, input CreateBookingInput) (models.HouseBooking, error) {
	var zero models.HouseBooking
	if input.HouseID == uuid.Nil {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "house id required")
	}
	if err := validateDates(input.Dates); err != nil {
		return zero, err
	}
	if input.TotalPrice.IsNegative() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "total price must not be negative")
	}
	guests := input.Guests
	if guests <= 0 {
		guests = 1
	}
	status := input.Status
	if status == "" {
		status = enums.BookingStatusPending
	}
	if !status.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid booking status")
	}
	paymentStatus := input.PaymentStatus
	if paymentStatus == "" {
		paymentStatus = enums.PaymentStatusPending
	}
	if !paymentStatus.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment status")
	}

	now := time.Now().UTC()
	booking := models.HouseBooking{
		ID:            uuid.New(),
		HouseID:       input.HouseID,
		Guest:         input.Guest,
		Dates:         input.Dates,
		Guests:        guests,
		Status:        status,
		TotalPrice:    input.TotalPrice,
		PaymentStatus: paymentStatus,
		Notes:         input.Notes,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	return s.store.Create(ctx, booking)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateBookingInput) (models.HouseBooking, error) {
	var zero models.HouseBooking
	if input.Dates != nil {
		if err := validateDates(*input.Dates); err != nil {
			return zero, err
		}
	}
	if input.TotalPrice != nil && input.TotalPrice.IsNegative() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "total price must not be negative")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid booking status")
	}
	if input.PaymentStatus != nil && !input.PaymentStatus.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid payment status")
	}
	if input.Guests != nil && *input.Guests <= 0 {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "guest count must be positive")
	}

	return s.store.Update(ctx, id, func(b *models.HouseBooking) {
		if input.Guest != nil {
			b.Guest = *input.Guest
		}
		if input.Dates != nil {
			b.Dates = *input.Dates
		}
		if input.Guests != nil {
			b.Guests = *input.Guests
		}
		if input.Status != nil {
			b.Status = *input.Status
		}
		if input.TotalPrice != nil {
			b.TotalPrice = *input.TotalPrice
		}
		if input.PaymentStatus != nil {
			b.PaymentStatus = *input.PaymentStatus
		}
		if input.Notes != nil {
			b.Notes = input.Notes
		}
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

func (s *service) Items() []models.HouseBooking { return s.store.Items() }

func (s *service) Get(id uuid.UUID) (models.HouseBooking, bool) { return s.store.Get(id) }

func (s *service) ByHouse(houseID uuid.UUID) []models.HouseBooking {
	return s.store.Where(func(b models.HouseBooking) bool { return b.HouseID == houseID })
}

func (s *service) ByStatus(status enums.BookingStatus) []models.HouseBooking {
	return s.store.Where(func(b models.HouseBooking) bool { return b.Status == status })
}

// Upcoming returns non-cancelled bookings whose check-in is at or after
// the given instant.
func (s *service) Upcoming(now time.Time) []models.HouseBooking {
	return s.store.Where(func(b models.HouseBooking) bool {
		return b.Status != enums.BookingStatusCancelled && !b.Dates.CheckIn.Before(now)
	})
}

func (s *service) Select(booking models.HouseBooking)    { s.store.Select(booking) }
func (s *service) Selected() (models.HouseBooking, bool) { return s.store.Selected() }
func (s *service) ClearSelection()                       { s.store.ClearSelection() }
func (s *service) Loading() bool                         { return s.store.Loading() }
func (s *service) Err() string                           { return s.store.Err() }
func (s *service) Reset()                                { s.store.Reset() }

func validateDates(dates types.BookingDates) error {
	if dates.CheckIn.IsZero() || dates.CheckOut.IsZero() {
		return pkgerrors.New(pkgerrors.CodeValidation, "check-in and check-out required")
	}
	if !dates.CheckOut.After(dates.CheckIn) {
		return pkgerrors.New(pkgerrors.CodeValidation, "check-out must follow check-in")
	}
	return nil
}
