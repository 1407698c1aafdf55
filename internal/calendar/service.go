package calendar

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/internal/store"
	"github.com/tidynest/tidynest-backend/pkg/config"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
	"github.com/tidynest/tidynest-backend/pkg/metrics"
)

// Service exposes calendar-event operations plus the presentation state
// the calendar widget keeps server-side: current view, selected date,
// and the business-hours configuration.
type Service interface {
	FetchAll(ctx context.Context) ([]models.CalendarEvent, error)
	Create(ctx context.Context, input CreateEventInput) (models.CalendarEvent, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateEventInput) (models.CalendarEvent, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Items() []models.CalendarEvent
	Get(id uuid.UUID) (models.CalendarEvent, bool)
	Filtered(filters Filters) []models.CalendarEvent

	SetRange(name string) error
	SetView(view View) error
	CurrentView() View
	SetSelectedDate(date time.Time)
	SelectedDate() time.Time
	Config() config.CalendarConfig

	Select(event models.CalendarEvent)
	Selected() (models.CalendarEvent, bool)
	ClearSelection()

	Loading() bool
	Err() string
	Reset()
}

type service struct {
	store *store.Store[models.CalendarEvent]
	cfg   config.CalendarConfig

	mu           sync.Mutex
	currentView  View
	selectedDate time.Time
}

// NewService builds a calendar service over the provided backend.
func NewService(backend store.Backend[models.CalendarEvent], cfg config.CalendarConfig, m *metrics.StoreMetrics, logg *logger.Logger) (Service, error) {
	if backend == nil {
		return nil, fmt.Errorf("calendar backend required")
	}
	return &service{
		store:        store.New[models.CalendarEvent]("calendar_events", backend, m, logg),
		cfg:          cfg,
		currentView:  ViewDayGridMonth,
		selectedDate: time.Now().UTC(),
	}, nil
}

func (s *service) FetchAll(ctx context.Context) ([]models.CalendarEvent, error) {
	return s.store.FetchAll(ctx, nil)
}

func (s *service) Create(ctx context.Context, input CreateEventInput) (models.CalendarEvent, error) {
	var zero models.CalendarEvent
	if input.PropertyID == uuid.Nil {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "property id required")
	}
	if strings.TrimSpace(input.Title) == "" {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "title required")
	}
	if input.Start.IsZero() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "start required")
	}
	if input.End != nil && !input.End.After(input.Start) {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "end must follow start")
	}
	if !input.Type.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid event type")
	}
	status := input.Status
	if status == "" {
		status = enums.CalendarEventStatusScheduled
	}
	if !status.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid event status")
	}

	now := time.Now().UTC()
	event := models.CalendarEvent{
		ID:         uuid.New(),
		PropertyID: input.PropertyID,
		Title:      strings.TrimSpace(input.Title),
		Start:      input.Start,
		End:        input.End,
		AllDay:     input.AllDay,
		Type:       input.Type,
		Status:     status,
		Color:      input.Color,
		Extras:     input.Extras,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.store.Create(ctx, event)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateEventInput) (models.CalendarEvent, error) {
	var zero models.CalendarEvent
	if input.Type != nil && !input.Type.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid event type")
	}
	if input.Status != nil && !input.Status.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid event status")
	}

	return s.store.Update(ctx, id, func(e *models.CalendarEvent) {
		if input.Title != nil {
			e.Title = *input.Title
		}
		if input.Start != nil {
			e.Start = *input.Start
		}
		if input.End != nil {
			e.End = input.End
		}
		if input.AllDay != nil {
			e.AllDay = *input.AllDay
		}
		if input.Type != nil {
			e.Type = *input.Type
		}
		if input.Status != nil {
			e.Status = *input.Status
		}
		if input.Color != nil {
			e.Color = *input.Color
		}
		if input.Extras != nil {
			e.Extras = *input.Extras
		}
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

func (s *service) Items() []models.CalendarEvent { return s.store.Items() }

func (s *service) Get(id uuid.UUID) (models.CalendarEvent, bool) { return s.store.Get(id) }

// Filtered applies filters to the cached events.
func (s *service) Filtered(filters Filters) []models.CalendarEvent {
	return FilterEvents(s.store.Items(), filters)
}

// SetRange switches the view by external range name (month, week, day).
func (s *service) SetRange(name string) error {
	view, err := ViewForRange(name)
	if err != nil {
		return err
	}
	return s.SetView(view)
}

func (s *service) SetView(view View) error {
	if !view.IsValid() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unknown calendar view '"+string(view)+"'")
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentView = view
	return nil
}

func (s *service) CurrentView() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.currentView
}

func (s *service) SetSelectedDate(date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selectedDate = date
}

func (s *service) SelectedDate() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.selectedDate
}

func (s *service) Config() config.CalendarConfig { return s.cfg }

func (s *service) Select(event models.CalendarEvent)      { s.store.Select(event) }
func (s *service) Selected() (models.CalendarEvent, bool) { return s.store.Selected() }
func (s *service) ClearSelection()                        { s.store.ClearSelection() }
func (s *service) Loading() bool                          { return s.store.Loading() }
func (s *service) Err() string                            { return s.store.Err() }

// Reset drops cached events and returns the presentation state to its
// defaults.
func (s *service) Reset() {
	s.store.Reset()
	s.mu.Lock()
	s.currentView = ViewDayGridMonth
	s.selectedDate = time.Now().UTC()
	s.mu.Unlock()
}
