package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// DateRange is an inclusive interval matched against event start times.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls within the range, inclusive on both ends.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.Start) && !t.After(r.End)
}

// Filters narrows an event list. Every set field must match; an unset
// field constrains nothing.
type Filters struct {
	PropertyID *uuid.UUID
	AssignedTo *uuid.UUID
	Type       *enums.CalendarEventType
	Status     *enums.CalendarEventStatus
	DateRange  *DateRange
}

// FilterEvents returns the events satisfying every set filter field,
// preserving input order. The input slice is never modified.
func FilterEvents(events []models.CalendarEvent, filters Filters) []models.CalendarEvent {
	var out []models.CalendarEvent
	for _, event := range events {
		if matches(event, filters) {
			out = append(out, event)
		}
	}
	return out
}

func matches(event models.CalendarEvent, filters Filters) bool {
	if filters.PropertyID != nil && event.PropertyID != *filters.PropertyID {
		return false
	}
	if filters.AssignedTo != nil {
		if event.Extras.AssignedTo == nil || event.Extras.AssignedTo.UserID != *filters.AssignedTo {
			return false
		}
	}
	if filters.Type != nil && event.Type != *filters.Type {
		return false
	}
	if filters.Status != nil && event.Status != *filters.Status {
		return false
	}
	if filters.DateRange != nil && !filters.DateRange.Contains(event.Start) {
		return false
	}
	return true
}
