package cleaningjobs

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/internal/store"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
	"github.com/tidynest/tidynest-backend/pkg/metrics"
)

// Service exposes cleaning-job operations backed by an explicitly-owned
// store. Status and completion always move together: a job reads as
// completed exactly when its completion record says so.
type Service interface {
	FetchAll(ctx context.Context) ([]models.CleaningJob, error)
	Create(ctx context.Context, input CreateJobInput) (models.CleaningJob, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateJobInput) (models.CleaningJob, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CleaningJobStatus) (models.CleaningJob, error)
	Complete(ctx context.Context, id uuid.UUID, input CompleteJobInput) (models.CleaningJob, error)
	Delete(ctx context.Context, id uuid.UUID) error

	Items() []models.CleaningJob
	Get(id uuid.UUID) (models.CleaningJob, bool)
	ByStatus(status enums.CleaningJobStatus) []models.CleaningJob
	Scheduled() []models.CleaningJob
	InProgress() []models.CleaningJob
	Completed() []models.CleaningJob
	Cancelled() []models.CleaningJob
	Rescheduled() []models.CleaningJob
	ByProperty(propertyID uuid.UUID) []models.CleaningJob
	ByStaff(userID uuid.UUID) []models.CleaningJob

	Select(job models.CleaningJob)
	Selected() (models.CleaningJob, bool)
	ClearSelection()

	Loading() bool
	Err() string
	Reset()
}

type service struct {
	store *store.Store[models.CleaningJob]
}

// NewService builds a cleaning-jobs service over the provided backend.
func NewService(backend store.Backend[models.CleaningJob], m *metrics.StoreMetrics, logg *logger.Logger) (Service, error) {
	if backend == nil {
		return nil, fmt.Errorf("cleaning jobs backend required")
	}
	return &service{
		store: store.New[models.CleaningJob]("cleaning_jobs", backend, m, logg),
	}, nil
}

func (s *service) FetchAll(ctx context.Context) ([]models.CleaningJob, error) {
	return s.store.FetchAll(ctx, nil)
}

func (s *service) Create(ctx context.Context, input CreateJobInput) (models.CleaningJob, error) {
	var zero models.CleaningJob
	if input.PropertyID == uuid.Nil {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "property id required")
	}
	if !input.Type.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid job type")
	}
	if !input.Schedule.End.After(input.Schedule.Start) {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "schedule end must follow start")
	}

	now := time.Now().UTC()
	job := models.CleaningJob{
		ID:         uuid.New(),
		PropertyID: input.PropertyID,
		AssignedTo: input.AssignedTo,
		Schedule:   input.Schedule,
		Type:       input.Type,
		Status:     enums.CleaningJobStatusScheduled,
		Details:    input.Details,
		Completion: types.JobCompletion{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	return s.store.Create(ctx, job)
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateJobInput) (models.CleaningJob, error) {
	var zero models.CleaningJob
	if input.Type != nil && !input.Type.IsValid() {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid job type")
	}
	if input.Schedule != nil && !input.Schedule.End.After(input.Schedule.Start) {
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "schedule end must follow start")
	}

	return s.store.Update(ctx, id, func(j *models.CleaningJob) {
		if input.PropertyID != nil {
			j.PropertyID = *input.PropertyID
		}
		if input.AssignedTo != nil {
			j.AssignedTo = *input.AssignedTo
		}
		if input.Schedule != nil {
			j.Schedule = *input.Schedule
		}
		if input.Type != nil {
			j.Type = *input.Type
		}
		if input.Details != nil {
			j.Details = *input.Details
		}
	})
}

// UpdateStatus moves the job to the given status. Entering completed
// stamps the completion record; leaving it clears the record, so the
// status/completion invariant holds through every transition.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, status enums.CleaningJobStatus) (models.CleaningJob, error) {
	if !status.IsValid() {
		var zero models.CleaningJob
		return zero, pkgerrors.New(pkgerrors.CodeValidation, "invalid job status")
	}

	return s.store.Update(ctx, id, func(j *models.CleaningJob) {
		j.Status = status
		switch {
		case status == enums.CleaningJobStatusCompleted && !j.Completion.Completed:
			at := time.Now().UTC()
			j.Completion.Completed = true
			j.Completion.CompletedAt = &at
		case status != enums.CleaningJobStatusCompleted:
			j.Completion = types.JobCompletion{}
		}
	})
}

// Complete finishes the job: status flips to completed and the outcome
// is recorded in the same store mutation.
func (s *service) Complete(ctx context.Context, id uuid.UUID, input CompleteJobInput) (models.CleaningJob, error) {
	return s.store.Update(ctx, id, func(j *models.CleaningJob) {
		at := time.Now().UTC()
		j.Status = enums.CleaningJobStatusCompleted
		j.Completion = types.JobCompletion{
			Completed:   true,
			CompletedAt: &at,
			CompletedBy: input.CompletedBy,
			Notes:       input.Notes,
			Issues:      input.Issues,
		}
	})
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	return s.store.Delete(ctx, id)
}

func (s *service) Items() []models.CleaningJob { return s.store.Items() }

func (s *service) Get(id uuid.UUID) (models.CleaningJob, bool) { return s.store.Get(id) }

func (s *service) ByStatus(status enums.CleaningJobStatus) []models.CleaningJob {
	return s.store.Where(func(j models.CleaningJob) bool { return j.Status == status })
}

func (s *service) Scheduled() []models.CleaningJob {
	return s.ByStatus(enums.CleaningJobStatusScheduled)
}

func (s *service) InProgress() []models.CleaningJob {
	return s.ByStatus(enums.CleaningJobStatusInProgress)
}

func (s *service) Completed() []models.CleaningJob {
	return s.ByStatus(enums.CleaningJobStatusCompleted)
}

func (s *service) Cancelled() []models.CleaningJob {
	return s.ByStatus(enums.CleaningJobStatusCancelled)
}

func (s *service) Rescheduled() []models.CleaningJob {
	return s.ByStatus(enums.CleaningJobStatusRescheduled)
}

func (s *service) ByProperty(propertyID uuid.UUID) []models.CleaningJob {
	return s.store.Where(func(j models.CleaningJob) bool { return j.PropertyID == propertyID })
}

func (s *service) ByStaff(userID uuid.UUID) []models.CleaningJob {
	return s.store.Where(func(j models.CleaningJob) bool { return j.AssignedTo.UserID == userID })
}

func (s *service) Select(job models.CleaningJob)        { s.store.Select(job) }
func (s *service) Selected() (models.CleaningJob, bool) { return s.store.Selected() }
func (s *service) ClearSelection()                      { s.store.ClearSelection() }
func (s *service) Loading() bool                        { return s.store.Loading() }
func (s *service) Err() string                          { return s.store.Err() }
func (s *service) Reset()                               { s.store.Reset() }
