package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// House is a bookable rental unit. Color is a presentation attribute used by
// the calendar, not domain state.
type House struct {
	ID          uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string                 `gorm:"type:text;not null" json:"name"`
	Description string                 `gorm:"type:text;not null;default:''" json:"description"`
	Address     types.Address          `gorm:"column:address;type:jsonb;not null" json:"address"`
	Location    *types.GeoPoint        `gorm:"column:location;type:jsonb" json:"location,omitempty"`
	Features    pq.StringArray         `gorm:"column:features;type:text[]" json:"features"`
	Images      types.HouseImages      `gorm:"column:images;type:jsonb" json:"images"`
	Status      enums.HouseStatus      `gorm:"column:status;type:house_status;not null;default:'active'" json:"status"`
	Owner       types.ContactSnapshot  `gorm:"column:owner;type:jsonb;not null" json:"owner"`
	Manager     *types.ContactSnapshot `gorm:"column:manager;type:jsonb" json:"manager,omitempty"`
	Settings    types.HouseSettings    `gorm:"column:settings;type:jsonb;not null" json:"settings"`
	Color       string                 `gorm:"column:color;type:text;not null;default:''" json:"color"`
	CreatedAt   time.Time              `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   time.Time              `gorm:"column:updated_at" json:"updated_at"`
}

// EntityID implements store.Entity.
func (h House) EntityID() uuid.UUID { return h.ID }
