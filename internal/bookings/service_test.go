package bookings

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tidynest/tidynest-backend/internal/store/storetest"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

func newTestService(t *testing.T, backend *storetest.Backend[models.HouseBooking]) Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(backend, nil, logg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func validCreateInput() CreateBookingInput {
	checkIn := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	return CreateBookingInput{
		HouseID:    uuid.New(),
		Guest:      types.PersonSnapshot{UserID: uuid.New(), Name: "Guest"},
		Dates:      types.BookingDates{CheckIn: checkIn, CheckOut: checkIn.AddDate(0, 0, 4)},
		Guests:     2,
		TotalPrice: decimal.NewFromInt(480),
	}
}

func TestCreateDefaults(t *testing.T) {
	backend := &storetest.Backend[models.HouseBooking]{}
	svc := newTestService(t, backend)

	booking, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if booking.Status != enums.BookingStatusPending {
		t.Fatalf("expected pending default, got %s", booking.Status)
	}
	if booking.PaymentStatus != enums.PaymentStatusPending {
		t.Fatalf("expected pending payment default, got %s", booking.PaymentStatus)
	}
	if booking.ID == uuid.Nil {
		t.Fatal("expected minted id")
	}
}

func TestCreateRejectsInvertedDates(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.HouseBooking]{})

	input := validCreateInput()
	input.Dates.CheckOut = input.Dates.CheckIn.Add(-time.Hour)
	_, err := svc.Create(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestCreateRejectsNegativePrice(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.HouseBooking]{})

	input := validCreateInput()
	input.TotalPrice = decimal.NewFromInt(-1)
	_, err := svc.Create(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestQueries(t *testing.T) {
	houseID := uuid.New()
	now := time.Date(2024, 6, 10, 0, 0, 0, 0, time.UTC)
	past := models.HouseBooking{
		ID:      uuid.New(),
		HouseID: houseID,
		Status:  enums.BookingStatusCompleted,
		Dates:   types.BookingDates{CheckIn: now.AddDate(0, 0, -10), CheckOut: now.AddDate(0, 0, -7)},
	}
	future := models.HouseBooking{
		ID:      uuid.New(),
		HouseID: uuid.New(),
		Status:  enums.BookingStatusConfirmed,
		Dates:   types.BookingDates{CheckIn: now.AddDate(0, 0, 5), CheckOut: now.AddDate(0, 0, 9)},
	}
	cancelled := models.HouseBooking{
		ID:      uuid.New(),
		HouseID: uuid.New(),
		Status:  enums.BookingStatusCancelled,
		Dates:   types.BookingDates{CheckIn: now.AddDate(0, 0, 5), CheckOut: now.AddDate(0, 0, 6)},
	}
	backend := &storetest.Backend[models.HouseBooking]{}
	backend.Seed(past, future, cancelled)
	svc := newTestService(t, backend)
	if _, err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if got := svc.ByHouse(houseID); len(got) != 1 || got[0].ID != past.ID {
		t.Fatalf("ByHouse mismatch: %+v", got)
	}
	if got := svc.ByStatus(enums.BookingStatusConfirmed); len(got) != 1 || got[0].ID != future.ID {
		t.Fatalf("ByStatus mismatch: %+v", got)
	}
	if got := svc.Upcoming(now); len(got) != 1 || got[0].ID != future.ID {
		t.Fatalf("Upcoming must exclude past and cancelled: %+v", got)
	}
}

func TestUpdateUnknownBookingIsNotFound(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.HouseBooking]{})

	guests := 3
	_, err := svc.Update(context.Background(), uuid.New(), UpdateBookingInput{Guests: &guests})
	if !pkgerrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
