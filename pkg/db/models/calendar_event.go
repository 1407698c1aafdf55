package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// CalendarEvent is a renderable calendar entry. End is absent for all-day
// events; Extras carries the widget-facing extended properties.
type CalendarEvent struct {
	ID         uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID                 `gorm:"column:property_id;type:uuid;not null;index" json:"property_id"`
	Title      string                    `gorm:"type:text;not null" json:"title"`
	Start      time.Time                 `gorm:"column:start;not null;index" json:"start"`
	End        *time.Time                `gorm:"column:end" json:"end,omitempty"`
	AllDay     bool                      `gorm:"column:all_day;not null;default:false" json:"all_day"`
	Type       enums.CalendarEventType   `gorm:"column:type;type:calendar_event_type;not null" json:"type"`
	Status     enums.CalendarEventStatus `gorm:"column:status;type:calendar_event_status;not null;default:'scheduled'" json:"status"`
	Color      string                    `gorm:"column:color;type:text;not null;default:''" json:"color"`
	Extras     types.EventExtras         `gorm:"column:extended_props;type:jsonb;not null" json:"extended_props"`
	CreatedAt  time.Time                 `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time                 `gorm:"column:updated_at" json:"updated_at"`
}

// EntityID implements store.Entity.
func (e CalendarEvent) EntityID() uuid.UUID { return e.ID }
