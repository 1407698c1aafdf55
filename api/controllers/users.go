package controllers

import (
	"net/http"
	"strings"

	"github.com/tidynest/tidynest-backend/api/responses"
	"github.com/tidynest/tidynest-backend/api/validators"
	usersvc "github.com/tidynest/tidynest-backend/internal/users"
	"github.com/tidynest/tidynest-backend/pkg/config"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
	"github.com/tidynest/tidynest-backend/pkg/security"
)

// UsersList returns every user, refreshing the store from the backend.
func UsersList(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		users, err := svc.FetchAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, users)
	}
}

// UsersGet returns a single user by id from the store cache.
func UsersGet(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, ok := svc.Get(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "user not found"))
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// UsersCreate creates a user. The password is hashed here so the
// service layer only ever handles the encoded form.
func UsersCreate(svc usersvc.Service, cfg *config.Config, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		var payload createUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput(cfg.Password)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, user)
	}
}

// UsersUpdate applies a partial update to a user.
func UsersUpdate(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateUserRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		user, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, user)
	}
}

// UsersDelete removes a user.
func UsersDelete(svc usersvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "user service unavailable"))
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

type createUserRequest struct {
	Email       string  `json:"email" validate:"required,email"`
	DisplayName string  `json:"display_name" validate:"required"`
	Password    string  `json:"password" validate:"required,min=8"`
	PhotoURL    *string `json:"photo_url,omitempty" validate:"omitempty,url"`
	Role        string  `json:"role" validate:"required"`
}

type updateUserRequest struct {
	DisplayName   *string `json:"display_name,omitempty"`
	PhotoURL      *string `json:"photo_url,omitempty" validate:"omitempty,url"`
	Role          *string `json:"role,omitempty"`
	EmailVerified *bool   `json:"email_verified,omitempty"`
}

func (r createUserRequest) toCreateInput(cfg config.PasswordConfig) (usersvc.CreateUserInput, error) {
	role, err := enums.ParseUserRole(strings.TrimSpace(r.Role))
	if err != nil {
		return usersvc.CreateUserInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
	}

	hash, err := security.HashPassword(r.Password, cfg)
	if err != nil {
		return usersvc.CreateUserInput{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "failed to hash password")
	}

	return usersvc.CreateUserInput{
		Email:        r.Email,
		DisplayName:  r.DisplayName,
		PasswordHash: hash,
		PhotoURL:     r.PhotoURL,
		Role:         role,
	}, nil
}

func (r updateUserRequest) toUpdateInput() (usersvc.UpdateUserInput, error) {
	input := usersvc.UpdateUserInput{
		DisplayName:   r.DisplayName,
		PhotoURL:      r.PhotoURL,
		EmailVerified: r.EmailVerified,
	}

	if r.Role != nil {
		role, err := enums.ParseUserRole(strings.TrimSpace(*r.Role))
		if err != nil {
			return usersvc.UpdateUserInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid role")
		}
		input.Role = &role
	}

	return input, nil
}
