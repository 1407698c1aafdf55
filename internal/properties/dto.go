package properties

import (
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// CreatePropertyInput holds the data required to persist a new property.
type CreatePropertyInput struct {
	Name                 string
	Address              types.Address
	Location             *types.GeoPoint
	Type                 enums.PropertyType
	CleaningRequirements types.CleaningRequirements
	Contact              types.PropertyContact
	AccessInstructions   string
	ColorCode            string
	Status               enums.PropertyStatus
}

// UpdatePropertyInput captures the property fields open to mutation.
// Nil fields are left untouched.
type UpdatePropertyInput struct {
	Name                 *string
	Address              *types.Address
	Location             *types.GeoPoint
	Type                 *enums.PropertyType
	CleaningRequirements *types.CleaningRequirements
	Contact              *types.PropertyContact
	AccessInstructions   *string
	ColorCode            *string
	Status               *enums.PropertyStatus
}
