package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// Property is a serviced unit from the cleaning operation's point of view.
type Property struct {
	ID                   uuid.UUID                  `gorm:"type:uuid;primaryKey" json:"id"`
	Name                 string                     `gorm:"type:text;not null" json:"name"`
	Address              types.Address              `gorm:"column:address;type:jsonb;not null" json:"address"`
	Location             *types.GeoPoint            `gorm:"column:location;type:jsonb" json:"location,omitempty"`
	Type                 enums.PropertyType         `gorm:"column:type;type:property_type;not null" json:"type"`
	CleaningRequirements types.CleaningRequirements `gorm:"column:cleaning_requirements;type:jsonb;not null" json:"cleaning_requirements"`
	Contact              types.PropertyContact      `gorm:"column:contact;type:jsonb;not null" json:"contact"`
	AccessInstructions   string                     `gorm:"column:access_instructions;type:text;not null;default:''" json:"access_instructions"`
	ColorCode            string                     `gorm:"column:color_code;type:text;not null;default:''" json:"color_code"`
	Status               enums.PropertyStatus       `gorm:"column:status;type:property_status;not null;default:'active'" json:"status"`
	CreatedAt            time.Time                  `gorm:"column:created_at" json:"created_at"`
	UpdatedAt            time.Time                  `gorm:"column:updated_at" json:"updated_at"`
}

// EntityID implements store.Entity.
func (p Property) EntityID() uuid.UUID { return p.ID }
