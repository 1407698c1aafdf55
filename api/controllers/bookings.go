package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/tidynest/tidynest-backend/api/responses"
	"github.com/tidynest/tidynest-backend/api/validators"
	bookingsvc "github.com/tidynest/tidynest-backend/internal/bookings"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

// BookingsList returns every booking, refreshing the store from the
// backend. With ?upcoming=true only non-cancelled future stays are
// returned.
func BookingsList(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		bookings, err := svc.FetchAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if r.URL.Query().Get("upcoming") == "true" {
			bookings = svc.Upcoming(time.Now().UTC())
		}

		responses.WriteSuccess(w, bookings)
	}
}

// BookingsGet returns a single booking by id from the store cache.
func BookingsGet(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, ok := svc.Get(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "booking not found"))
			return
		}

		responses.WriteSuccess(w, booking)
	}
}

// BookingsCreate creates a booking.
func BookingsCreate(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		var payload createBookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, booking)
	}
}

// BookingsUpdate applies a partial update to a booking.
func BookingsUpdate(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateBookingRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		booking, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, booking)
	}
}

// BookingsDelete removes a booking.
func BookingsDelete(svc bookingsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "booking service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

type createBookingRequest struct {
	HouseID       uuid.UUID            `json:"house_id" validate:"required"`
	Guest         types.PersonSnapshot `json:"guest" validate:"required"`
	Dates         types.BookingDates   `json:"dates" validate:"required"`
	Guests        int                  `json:"guests" validate:"omitempty,min=1"`
	Status        *string              `json:"status,omitempty"`
	TotalPrice    decimal.Decimal      `json:"total_price"`
	PaymentStatus *string              `json:"payment_status,omitempty"`
	Notes         *string              `json:"notes,omitempty"`
}

type updateBookingRequest struct {
	Guest         *types.PersonSnapshot `json:"guest,omitempty"`
	Dates         *types.BookingDates   `json:"dates,omitempty"`
	Guests        *int                  `json:"guests,omitempty" validate:"omitempty,min=1"`
	Status        *string               `json:"status,omitempty"`
	TotalPrice    *decimal.Decimal      `json:"total_price,omitempty"`
	PaymentStatus *string               `json:"payment_status,omitempty"`
	Notes         *string               `json:"notes,omitempty"`
}

func (r createBookingRequest) toCreateInput() (bookingsvc.CreateBookingInput, error) {
	input := bookingsvc.CreateBookingInput{
		HouseID:    r.HouseID,
		Guest:      r.Guest,
		Dates:      r.Dates,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
		Notes:      r.Notes,
	}

	if r.Status != nil {
		status, err := enums.ParseBookingStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return bookingsvc.CreateBookingInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = status
	}

	if r.PaymentStatus != nil {
		payment, err := enums.ParsePaymentStatus(strings.TrimSpace(*r.PaymentStatus))
		if err != nil {
			return bookingsvc.CreateBookingInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment status")
		}
		input.PaymentStatus = payment
	}

	return input, nil
}

func (r updateBookingRequest) toUpdateInput() (bookingsvc.UpdateBookingInput, error) {
	input := bookingsvc.UpdateBookingInput{
		Guest:      r.Guest,
		Dates:      r.Dates,
		Guests:     r.Guests,
		TotalPrice: r.TotalPrice,
		Notes:      r.Notes,
	}

	if r.Status != nil {
		status, err := enums.ParseBookingStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return bookingsvc.UpdateBookingInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}

	if r.PaymentStatus != nil {
		payment, err := enums.ParsePaymentStatus(strings.TrimSpace(*r.PaymentStatus))
		if err != nil {
			return bookingsvc.UpdateBookingInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid payment status")
		}
		input.PaymentStatus = &payment
	}

	return input, nil
}
