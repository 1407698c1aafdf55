package controllers

import (
	"net/http"
	"strings"

	"github.com/tidynest/tidynest-backend/api/responses"
	"github.com/tidynest/tidynest-backend/api/validators"
	propertysvc "github.com/tidynest/tidynest-backend/internal/properties"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

// PropertiesList returns every property, refreshing the store from the
// backend.
func PropertiesList(svc propertysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		properties, err := svc.FetchAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, properties)
	}
}

// PropertiesGet returns a single property by id from the store cache.
func PropertiesGet(svc propertysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		property, ok := svc.Get(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "property not found"))
			return
		}

		responses.WriteSuccess(w, property)
	}
}

// PropertiesCreate creates a property.
func PropertiesCreate(svc propertysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		var payload createPropertyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		property, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, property)
	}
}

// PropertiesUpdate applies a partial update to a property.
func PropertiesUpdate(svc propertysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updatePropertyRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		property, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, property)
	}
}

// PropertiesDelete removes a property.
func PropertiesDelete(svc propertysvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "property service unavailable"))
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

type createPropertyRequest struct {
	Name                 string                     `json:"name" validate:"required"`
	Address              types.Address              `json:"address"`
	Location             *types.GeoPoint            `json:"location,omitempty"`
	Type                 string                     `json:"type" validate:"required"`
	CleaningRequirements types.CleaningRequirements `json:"cleaning_requirements"`
	Contact              types.PropertyContact      `json:"contact"`
	AccessInstructions   string                     `json:"access_instructions"`
	ColorCode            string                     `json:"color_code"`
	Status               *string                    `json:"status,omitempty"`
}

type updatePropertyRequest struct {
	Name                 *string                     `json:"name,omitempty"`
	Address              *types.Address              `json:"address,omitempty"`
	Location             *types.GeoPoint             `json:"location,omitempty"`
	Type                 *string                     `json:"type,omitempty"`
	CleaningRequirements *types.CleaningRequirements `json:"cleaning_requirements,omitempty"`
	Contact              *types.PropertyContact      `json:"contact,omitempty"`
	AccessInstructions   *string                     `json:"access_instructions,omitempty"`
	ColorCode            *string                     `json:"color_code,omitempty"`
	Status               *string                     `json:"status,omitempty"`
}

func (r createPropertyRequest) toCreateInput() (propertysvc.CreatePropertyInput, error) {
	propertyType, err := enums.ParsePropertyType(strings.TrimSpace(r.Type))
	if err != nil {
		return propertysvc.CreatePropertyInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
	}

	input := propertysvc.CreatePropertyInput{
		Name:                 r.Name,
		Address:              r.Address,
		Location:             r.Location,
		Type:                 propertyType,
		CleaningRequirements: r.CleaningRequirements,
		Contact:              r.Contact,
		AccessInstructions:   r.AccessInstructions,
		ColorCode:            r.ColorCode,
	}

	if r.Status != nil {
		status, err := enums.ParsePropertyStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return propertysvc.CreatePropertyInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = status
	}

	return input, nil
}

func (r updatePropertyRequest) toUpdateInput() (propertysvc.UpdatePropertyInput, error) {
	input := propertysvc.UpdatePropertyInput{
		Name:                 r.Name,
		Address:              r.Address,
		Location:             r.Location,
		CleaningRequirements: r.CleaningRequirements,
		Contact:              r.Contact,
		AccessInstructions:   r.AccessInstructions,
		ColorCode:            r.ColorCode,
	}

	if r.Type != nil {
		propertyType, err := enums.ParsePropertyType(strings.TrimSpace(*r.Type))
		if err != nil {
			return propertysvc.UpdatePropertyInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
		}
		input.Type = &propertyType
	}

	if r.Status != nil {
		status, err := enums.ParsePropertyStatus(strings.TrimSpace(*r.Status))
		if err != nil {
			return propertysvc.UpdatePropertyInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status")
		}
		input.Status = &status
	}

	return input, nil
}
