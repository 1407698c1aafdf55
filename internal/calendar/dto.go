package calendar

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// CreateEventInput holds the data required to persist a new event.
type CreateEventInput struct {
	PropertyID uuid.UUID
	Title      string
	Start      time.Time
	End        *time.Time
	AllDay     bool
	Type       enums.CalendarEventType
	Status     enums.CalendarEventStatus
	Color      string
	Extras     types.EventExtras
}

// UpdateEventInput captures the event fields open to mutation. Nil
// fields are left untouched.
type UpdateEventInput struct {
	Title  *string
	Start  *time.Time
	End    *time.Time
	AllDay *bool
	Type   *enums.CalendarEventType
	Status *enums.CalendarEventStatus
	Color  *string
	Extras *types.EventExtras
}
