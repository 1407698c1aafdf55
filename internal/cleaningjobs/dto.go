package cleaningjobs

import (
	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// CreateJobInput holds the data required to persist a new cleaning job.
// New jobs always start scheduled with an empty completion record.
type CreateJobInput struct {
	PropertyID uuid.UUID
	AssignedTo types.PersonSnapshot
	Schedule   types.JobSchedule
	Type       enums.CleaningJobType
	Details    types.JobDetails
}

// UpdateJobInput captures the job fields open to mutation. Nil fields
// are left untouched. Status and completion are not mutated here; use
// UpdateStatus or Complete so the two stay consistent.
type UpdateJobInput struct {
	PropertyID *uuid.UUID
	AssignedTo *types.PersonSnapshot
	Schedule   *types.JobSchedule
	Type       *enums.CleaningJobType
	Details    *types.JobDetails
}

// CompleteJobInput records the outcome of a finished job.
type CompleteJobInput struct {
	CompletedBy *string
	Notes       *string
	Issues      []string
}
