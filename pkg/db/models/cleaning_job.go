package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/tidynest/tidynest-backend/pkg/db/types"
	"github.com/tidynest/tidynest-backend/pkg/enums"
)

// CleaningJob is a scheduled service visit for a property.
//
// Invariant: Completion.Completed is true if and only if Status is completed,
// and Completion.CompletedAt is set exactly when the flag flips true.
type CleaningJob struct {
	ID         uuid.UUID               `gorm:"type:uuid;primaryKey" json:"id"`
	PropertyID uuid.UUID               `gorm:"column:property_id;type:uuid;not null;index" json:"property_id"`
	AssignedTo types.PersonSnapshot    `gorm:"column:assigned_to;type:jsonb;not null" json:"assigned_to"`
	Schedule   types.JobSchedule       `gorm:"column:schedule;type:jsonb;not null" json:"schedule"`
	Type       enums.CleaningJobType   `gorm:"column:type;type:cleaning_job_type;not null" json:"type"`
	Status     enums.CleaningJobStatus `gorm:"column:status;type:cleaning_job_status;not null;default:'scheduled'" json:"status"`
	Details    types.JobDetails        `gorm:"column:details;type:jsonb;not null" json:"details"`
	Completion types.JobCompletion     `gorm:"column:completion;type:jsonb;not null" json:"completion"`
	CreatedAt  time.Time               `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  time.Time               `gorm:"column:updated_at" json:"updated_at"`
}

// EntityID implements store.Entity.
func (j CleaningJob) EntityID() uuid.UUID { return j.ID }
