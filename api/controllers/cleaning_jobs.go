package controllers

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/api/responses"
	"github.com/tidynest/tidynest-backend/api/validators"
	jobsvc "github.com/tidynest/tidynest-backend/internal/cleaningjobs"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

// CleaningJobsList returns every cleaning job, refreshing the store
// from the backend.
func CleaningJobsList(svc jobsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cleaning job service unavailable"))
			return
		}

		jobs, err := svc.FetchAll(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, jobs)
	}
}

// CleaningJobsGet returns a single job by id from the store cache.
func CleaningJobsGet(svc jobsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cleaning job service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, ok := svc.Get(id)
		if !ok {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "cleaning job not found"))
			return
		}

		responses.WriteSuccess(w, job)
	}
}

// CleaningJobsCreate creates a cleaning job. New jobs always start
// scheduled.
func CleaningJobsCreate(svc jobsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cleaning job service unavailable"))
			return
		}

		var payload createJobRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toCreateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, job)
	}
}

// CleaningJobsUpdate applies a partial update to a job's schedule,
// assignment, or details. Status changes go through
// CleaningJobsUpdateStatus or CleaningJobsComplete.
func CleaningJobsUpdate(svc jobsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cleaning job service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateJobRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toUpdateInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, job)
	}
}

// CleaningJobsUpdateStatus transitions a job between lifecycle states.
func CleaningJobsUpdateStatus(svc jobsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cleaning job service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateJobStatusRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		status, err := enums.ParseCleaningJobStatus(strings.TrimSpace(payload.Status))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid status"))
			return
		}

		job, err := svc.UpdateStatus(r.Context(), id, status)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, job)
	}
}

// CleaningJobsComplete marks a job completed and records its outcome.
func CleaningJobsComplete(svc jobsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cleaning job service unavailable"))
			return
		}

		id, err := pathUUID(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload completeJobRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		job, err := svc.Complete(r.Context(), id, jobsvc.CompleteJobInput{
			CompletedBy: payload.CompletedBy,
			Notes:       payload.Notes,
			Issues:      payload.Issues,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, job)
	}
}

// CleaningJobsDelete removes a job.
func CleaningJobsDelete(svc jobsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cleaning job service unavailable"))
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

type createJobRequest struct {
	PropertyID uuid.UUID            `json:"property_id" validate:"required"`
	AssignedTo types.PersonSnapshot `json:"assigned_to"`
	Schedule   types.JobSchedule    `json:"schedule" validate:"required"`
	Type       string               `json:"type" validate:"required"`
	Details    types.JobDetails     `json:"details"`
}

type updateJobRequest struct {
	PropertyID *uuid.UUID            `json:"property_id,omitempty"`
	AssignedTo *types.PersonSnapshot `json:"assigned_to,omitempty"`
	Schedule   *types.JobSchedule    `json:"schedule,omitempty"`
	Type       *string               `json:"type,omitempty"`
	Details    *types.JobDetails     `json:"details,omitempty"`
}

type updateJobStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type completeJobRequest struct {
	CompletedBy *string  `json:"completed_by,omitempty"`
	Notes       *string  `json:"notes,omitempty"`
	Issues      []string `json:"issues,omitempty"`
}

func (r createJobRequest) toCreateInput() (jobsvc.CreateJobInput, error) {
	jobType, err := enums.ParseCleaningJobType(strings.TrimSpace(r.Type))
	if err != nil {
		return jobsvc.CreateJobInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
	}

	return jobsvc.CreateJobInput{
		PropertyID: r.PropertyID,
		AssignedTo: r.AssignedTo,
		Schedule:   r.Schedule,
		Type:       jobType,
		Details:    r.Details,
	}, nil
}

func (r updateJobRequest) toUpdateInput() (jobsvc.UpdateJobInput, error) {
	input := jobsvc.UpdateJobInput{
		PropertyID: r.PropertyID,
		AssignedTo: r.AssignedTo,
		Schedule:   r.Schedule,
		Details:    r.Details,
	}

	if r.Type != nil {
		jobType, err := enums.ParseCleaningJobType(strings.TrimSpace(*r.Type))
		if err != nil {
			return jobsvc.UpdateJobInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid type")
		}
		input.Type = &jobType
	}

	return input, nil
}
