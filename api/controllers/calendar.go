package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/api/responses"
	"github.com/tidynest/tidynest-backend/api/validators"
	calendarsvc "github.com/tidynest/tidynest-backend/internal/calendar"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

// CalendarEventsList returns calendar events, optionally narrowed by
// query filters. All filters are conjunctive; the date range is
// inclusive and matched against event start times.
func CalendarEventsList(svc calendarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "calendar service unavailable"))
			return
		}

		if _, err := svc.FetchAll(r.Context()); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		filters, err := eventFiltersFromQuery(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.Filtered(filters))
	}
}

// CalendarEventsGet returns a single event by id from the store cache.
func CalendarEventsGet(svc calendarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "calendar service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, ok := svc.Get(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "event not found"))
			return
		}

		responses.WriteSuccess(w, event)
	}
}

// CalendarEventsCreate creates a calendar event.
func CalendarEventsCreate(svc calendarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "calendar service unavailable"))
			return
		}

		var payload createEventRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, event)
	}
}

// CalendarEventsUpdate applies a partial update to an event.
func CalendarEventsUpdate(svc calendarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "calendar service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateEventRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		event, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, event)
	}
}

// CalendarEventsDelete removes an event.
func CalendarEventsDelete(svc calendarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "calendar service unavailable"))
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

// CalendarView reports the current view, selected date, and business
// hours configuration.
func CalendarView(svc calendarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "calendar service unavailable"))
			return
		}

		cfg := svc.Config()
		responses.WriteSuccess(w, map[string]any{
			"view":          svc.CurrentView(),
			"selected_date": svc.SelectedDate(),
			"config": map[string]any{
				"business_days":       cfg.BusinessDays,
				"business_start_time": cfg.BusinessStartTime,
				"business_end_time":   cfg.BusinessEndTime,
			},
		})
	}
}

// CalendarSetView switches the calendar view. The payload names either
// a view directly or a range keyword (month, week, day).
func CalendarSetView(svc calendarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "calendar service unavailable"))
			return
		}

		var payload setViewRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var err error
		switch {
		case payload.View != nil:
			err = svc.SetView(calendarsvc.View(strings.TrimSpace(*payload.View)))
		case payload.Range != nil:
			err = svc.SetRange(strings.TrimSpace(*payload.Range))
		default:
			err = pkgerrors.New(pkgerrors.CodeValidation, "view or range required")
		}
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"view": svc.CurrentView()})
	}
}

// CalendarSetSelectedDate moves the calendar's focal date.
func CalendarSetSelectedDate(svc calendarsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "calendar service unavailable"))
			return
		}

		var payload setSelectedDateRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.SetSelectedDate(payload.Date)
		responses.WriteSuccess(w, map[string]any{"selected_date": svc.SelectedDate()})
	}
}

type createEventRequest struct {
	PropertyID uuid.UUID         `json:"property_id" validate:"required"`
	Title      string            `json:"title" validate:"required"`
	Start      time.Time         `json:"start" validate:"required"`
	End        *time.Time        `json:"end,omitempty"`
	AllDay     bool              `json:"all_day"`
	Type       string            `json:"type" validate:"required"`
	Status     *string           `json:"status,omitempty"`
	Color      string            `json:"color"`
	Extras     types.EventExtras `json:"extras"`
}

type updateEventRequest struct {
	Title  *string            `json:"title,omitempty"`
	Start  *time.Time         `json:"start,omitempty"`
	End    *time.Time         `json:"end,omitempty"`
	AllDay *bool              `json:"all_day,omitempty"`
	Type   *string            `json:"type,omitempty"`
	Status *string            `json:"status,omitempty"`
	Color  *string            `json:"color,omitempty"`
	Extras *types.EventExtras `json:"extras,omitempty"`
}

type setViewRequest struct {
	View  *string `json:"view,omitempty"`
	Range *string `json:"range,omitempty"`
}

type setSelectedDateRequest struct {
	Date time.Time `json:"date" validate:"required"`
}

func (r createEventRequest) toCreateInput() (calendarsvc.CreateEventInput, error) {
	eventType, err := enums.ParseCalendarEventType(strings.TrimSpace(r.Type))
	if err != nil {
		return calendarsvc.CreateEventInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
	}

	input := calendarsvc.CreateEventInput{
		PropertyID: r.PropertyID,
		Title:      r.Title,
		Start:      r.Start,
		End:        r.End,
		AllDay:     r.AllDay,
		Type:       eventType,
		Color:      r.Color,
		Extras:     r.Extras,
	}

	if r.Status != nil {
		status, err := enums.ParseCalendarEventStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return calendarsvc.CreateEventInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = status
	}

	return input, nil
}

func (r updateEventRequest) toUpdateInput() (calendarsvc.UpdateEventInput, error) {
	input := calendarsvc.UpdateEventInput{
		Title:  r.Title,
		Start:  r.Start,
		End:    r.End,
		AllDay: r.AllDay,
		Color:  r.Color,
		Extras: r.Extras,
	}

	if r.Type != nil {
		eventType, err := enums.ParseCalendarEventType(strings.TrimSpace(*r.Type))
		if err != nil {
			return calendarsvc.UpdateEventInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
		}
		input.Type = &eventType
	}

	if r.Status != nil {
		status, err := enums.ParseCalendarEventStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return calendarsvc.UpdateEventInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}

	return input, nil
}

func eventFiltersFromQuery(r *http.Request) (calendarsvc.Filters, error) {
	var filters calendarsvc.Filters

	propertyID, err := validators.ParseQueryUUID(r, "property_id")
	if err != nil {
		return filters, err
	}
	filters.PropertyID = propertyID

	assignedTo, err := validators.ParseQueryUUID(r, "assigned_to")
	if err != nil {
		return filters, err
	}
	filters.AssignedTo = assignedTo

	if raw := strings.TrimSpace(r.URL.Query().Get("type")); raw != "" {
		eventType, err := enums.ParseCalendarEventType(raw)
		if err != nil {
			return filters, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
		}
		filters.Type = &eventType
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("status")); raw != "" {
		status, err := enums.ParseCalendarEventStatus(raw)
		if err != nil {
			return filters, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		filters.Status = &status
	}

	start, err := validators.ParseQueryTime(r, "start")
	if err != nil {
		return filters, err
	}
	end, err := validators.ParseQueryTime(r, "end")
	if err != nil {
		return filters, err
	}
	switch {
	case start != nil && end != nil:
		filters.DateRange = &calendarsvc.DateRange{Start: *start, End: *end}
	case start != nil || end != nil:
		return filters, pkgerrors.New(pkgerrors.CodeValidation, "start and end must be provided together")
	}

	return filters, nil
}
