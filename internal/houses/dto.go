package houses

import (
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// CreateHouseInput holds the data required to persist a new house.
type CreateHouseInput struct {
	Name        string
	Description string
	Address     types.Address
	Location    *types.GeoPoint
	Features    []string
	Images      types.HouseImages
	Status      enums.HouseStatus
	Owner       types.ContactSnapshot
	Manager     *types.ContactSnapshot
	Settings    types.HouseSettings
	Color       string
}

// UpdateHouseInput captures the house fields open to mutation. Nil
// fields are left untouched.
type UpdateHouseInput struct {
	Name        *string
	Description *string
	Address     *types.Address
	Location    *types.GeoPoint
	Features    *[]string
	Images      *types.HouseImages
	Status      *enums.HouseStatus
	Owner       *types.ContactSnapshot
	Manager     *types.ContactSnapshot
	Settings    *types.HouseSettings
	Color       *string
}
