package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/tidynest/tidynest-backend/api/responses"
	"github.com/tidynest/tidynest-backend/api/validators"
	"github.com/tidynest/tidynest-backend/internal/notifications"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

// NotificationsList returns the live notifications in display order.
func NotificationsList(queue *notifications.Queue, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if queue == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification queue unavailable"))
			return
		}

		responses.WriteSuccess(w, queue.Items())
	}
}

// NotificationsAdd enqueues a notification. Without an explicit
// duration, errors stick until dismissed and everything else expires
// after the default display window.
func NotificationsAdd(queue *notifications.Queue, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if queue == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification queue unavailable"))
			return
		}

		var payload addNotificationRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		ntype, err := enums.ParseNotificationType(strings.TrimSpace(payload.Type))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type"))
			return
		}

		duration := notifications.DefaultDuration
		if ntype == enums.NotificationTypeError {
			duration = 0
		}
		if payload.DurationMS != nil {
			duration = time.Duration(*payload.DurationMS) * time.Millisecond
		}

		notification := queue.Add(ntype, payload.Message, duration)
		responses.WriteSuccessStatus(w, http.StatusCreated, notification)
	}
}

// NotificationsRemove dismisses a notification. Dismissing an id that
// already expired is not an error.
func NotificationsRemove(queue *notifications.Queue, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if queue == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification queue unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		queue.Remove(id)
		responses.WriteSuccess(w, map[string]string{"status": "removed"})
	}
}

// NotificationsClear drops every live notification.
func NotificationsClear(queue *notifications.Queue, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if queue == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notification queue unavailable"))
			return
		}

		queue.Clear()
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}

type addNotificationRequest struct {
	Type       string `json:"type" validate:"required"`
	Message    string `json:"message" validate:"required"`
	DurationMS *int64 `json:"duration_ms,omitempty" validate:"omitempty,min=0"`
}
