package controllers

import (
	"net/http"
	"strings"

	"github.com/tidynest/tidynest-backend/api/responses"
	"github.com/tidynest/tidynest-backend/api/validators"
	housesvc "github.com/tidynest/tidynest-backend/internal/houses"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

// HousesList returns every house, refreshing the store from the backend.
func HousesList(svc housesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "house service unavailable"))
			return
		}

		houses, err := svc.FetchAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, houses)
	}
}

// HousesGet returns a single house by id from the store cache.
func HousesGet(svc housesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "house service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		house, ok := svc.Get(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "house not found"))
			return
		}

		responses.WriteSuccess(w, house)
	}
}

// HousesCreate creates a house.
func HousesCreate(svc housesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "house service unavailable"))
			return
		}

		var payload createHouseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		house, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, house)
	}
}

// HousesUpdate applies a partial update to a house.
func HousesUpdate(svc housesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "house service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateHouseRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		house, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, house)
	}
}

// HousesDelete removes a house.
func HousesDelete(svc housesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "house service unavailable"))
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

type createHouseRequest struct {
	Name        string                 `json:"name" validate:"required"`
	Description string                 `json:"description"`
	Address     types.Address          `json:"address"`
	Location    *types.GeoPoint        `json:"location,omitempty"`
	Features    []string               `json:"features"`
	Images      types.HouseImages      `json:"images"`
	Status      *string                `json:"status,omitempty"`
	Owner       types.ContactSnapshot  `json:"owner" validate:"required"`
	Manager     *types.ContactSnapshot `json:"manager,omitempty"`
	Settings    types.HouseSettings    `json:"settings"`
	Color       string                 `json:"color"`
}

type updateHouseRequest struct {
	Name        *string                `json:"name,omitempty"`
	Description *string                `json:"description,omitempty"`
	Address     *types.Address         `json:"address,omitempty"`
	Location    *types.GeoPoint        `json:"location,omitempty"`
	Features    *[]string              `json:"features,omitempty"`
	Images      *types.HouseImages     `json:"images,omitempty"`
	Status      *string                `json:"status,omitempty"`
	Owner       *types.ContactSnapshot `json:"owner,omitempty"`
	Manager     *types.ContactSnapshot `json:"manager,omitempty"`
	Settings    *types.HouseSettings   `json:"settings,omitempty"`
	Color       *string                `json:"color,omitempty"`
}

func (r createHouseRequest) toCreateInput() (housesvc.CreateHouseInput, error) {
	input := housesvc.CreateHouseInput{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Location:    r.Location,
		Features:    r.Features,
		Images:      r.Images,
		Owner:       r.Owner,
		Manager:     r.Manager,
		Settings:    r.Settings,
		Color:       r.Color,
	}

	if r.Status != nil {
		status, err := enums.ParseHouseStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return housesvc.CreateHouseInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = status
	}

	return input, nil
}

func (r updateHouseRequest) toUpdateInput() (housesvc.UpdateHouseInput, error) {
	input := housesvc.UpdateHouseInput{
		Name:        r.Name,
		Description: r.Description,
		Address:     r.Address,
		Location:    r.Location,
		Features:    r.Features,
		Images:      r.Images,
		Owner:       r.Owner,
		Manager:     r.Manager,
		Settings:    r.Settings,
		Color:       r.Color,
	}

	if r.Status != nil {
		status, err := enums.ParseHouseStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return housesvc.UpdateHouseInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}

	return input, nil
}
