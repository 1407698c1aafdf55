package cleaningjobs

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/internal/store/storetest"
	"github.com/tidynest/tidynest-backend/pkg/db/models"
	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
	pkgerrors "github.com/tidynest/tidynest-backend/pkg/errors"
	"github.com/tidynest/tidynest-backend/pkg/logger"
)

func newTestService(t *testing.T, backend *storetest.Backend[models.CleaningJob]) Service {
	t.Helper()
	logg := logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
	svc, err := NewService(backend, nil, logg)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func validCreateInput() CreateJobInput {
	start := time.Date(2024, 1, 5, 10, 0, 0, 0, time.UTC)
	return CreateJobInput{
		PropertyID: uuid.New(),
		AssignedTo: types.PersonSnapshot{UserID: uuid.New(), Name: "Cleaner"},
		Schedule:   types.JobSchedule{Start: start, End: start.Add(2 * time.Hour), DurationMinutes: 120},
		Type:       enums.CleaningJobTypeTurnover,
	}
}

func TestCreateStartsScheduled(t *testing.T) {
	backend := &storetest.Backend[models.CleaningJob]{}
	svc := newTestService(t, backend)

	job, err := svc.Create(context.Background(), validCreateInput())
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if job.Status != enums.CleaningJobStatusScheduled {
		t.Fatalf("expected scheduled, got %s", job.Status)
	}
	if job.Completion.Completed {
		t.Fatal("new job must not be completed")
	}
	if job.ID == uuid.Nil || job.CreatedAt.IsZero() {
		t.Fatal("expected minted id and timestamps")
	}
}

func TestCreateRejectsInvertedSchedule(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.CleaningJob]{})

	input := validCreateInput()
	input.Schedule.End = input.Schedule.Start.Add(-time.Hour)
	_, err := svc.Create(context.Background(), input)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func seedJob(t *testing.T, backend *storetest.Backend[models.CleaningJob], svc Service, status enums.CleaningJobStatus) models.CleaningJob {
	t.Helper()
	job := models.CleaningJob{
		ID:         uuid.New(),
		PropertyID: uuid.New(),
		AssignedTo: types.PersonSnapshot{UserID: uuid.New(), Name: "Cleaner"},
		Status:     status,
	}
	backend.Seed(job)
	if _, err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}
	return job
}

func TestCompleteFlipsStatusAndCompletionTogether(t *testing.T) {
	backend := &storetest.Backend[models.CleaningJob]{}
	svc := newTestService(t, backend)
	job := seedJob(t, backend, svc, enums.CleaningJobStatusInProgress)

	by := "Cleaner"
	done, err := svc.Complete(context.Background(), job.ID, CompleteJobInput{
		CompletedBy: &by,
		Issues:      []string{"broken lamp"},
	})
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if done.Status != enums.CleaningJobStatusCompleted {
		t.Fatalf("expected completed status, got %s", done.Status)
	}
	if !done.Completion.Completed || done.Completion.CompletedAt == nil {
		t.Fatalf("completion record not stamped: %+v", done.Completion)
	}
	if done.Completion.CompletedBy == nil || *done.Completion.CompletedBy != "Cleaner" {
		t.Fatalf("completed-by missing: %+v", done.Completion)
	}
}

func TestUpdateStatusKeepsCompletionConsistent(t *testing.T) {
	backend := &storetest.Backend[models.CleaningJob]{}
	svc := newTestService(t, backend)
	job := seedJob(t, backend, svc, enums.CleaningJobStatusScheduled)

	done, err := svc.UpdateStatus(context.Background(), job.ID, enums.CleaningJobStatusCompleted)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if !done.Completion.Completed || done.Completion.CompletedAt == nil {
		t.Fatalf("entering completed must stamp completion: %+v", done.Completion)
	}

	reopened, err := svc.UpdateStatus(context.Background(), job.ID, enums.CleaningJobStatusRescheduled)
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if reopened.Completion.Completed || reopened.Completion.CompletedAt != nil {
		t.Fatalf("leaving completed must clear completion: %+v", reopened.Completion)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.CleaningJob]{})

	_, err := svc.UpdateStatus(context.Background(), uuid.New(), enums.CleaningJobStatus("paused"))
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestStatusPartitionsAndLookups(t *testing.T) {
	propertyID := uuid.New()
	staffID := uuid.New()
	scheduled := models.CleaningJob{ID: uuid.New(), PropertyID: propertyID, AssignedTo: types.PersonSnapshot{UserID: staffID}, Status: enums.CleaningJobStatusScheduled}
	inProgress := models.CleaningJob{ID: uuid.New(), PropertyID: uuid.New(), AssignedTo: types.PersonSnapshot{UserID: uuid.New()}, Status: enums.CleaningJobStatusInProgress}
	backend := &storetest.Backend[models.CleaningJob]{}
	backend.Seed(scheduled, inProgress)
	svc := newTestService(t, backend)
	if _, err := svc.FetchAll(context.Background()); err != nil {
		t.Fatalf("fetch: %v", err)
	}

	if got := svc.Scheduled(); len(got) != 1 || got[0].ID != scheduled.ID {
		t.Fatalf("Scheduled mismatch: %+v", got)
	}
	if got := svc.InProgress(); len(got) != 1 || got[0].ID != inProgress.ID {
		t.Fatalf("InProgress mismatch: %+v", got)
	}
	if got := svc.ByProperty(propertyID); len(got) != 1 || got[0].ID != scheduled.ID {
		t.Fatalf("ByProperty mismatch: %+v", got)
	}
	if got := svc.ByStaff(staffID); len(got) != 1 || got[0].ID != scheduled.ID {
		t.Fatalf("ByStaff mismatch: %+v", got)
	}
}

func TestCompleteUnknownJobIsNotFound(t *testing.T) {
	svc := newTestService(t, &storetest.Backend[models.CleaningJob]{})

	_, err := svc.Complete(context.Background(), uuid.New(), CompleteJobInput{})
	if !pkgerrors.IsNotFound(err) {
		t.Fatalf("expected not-found, got %v", err)
	}
}
