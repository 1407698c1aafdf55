package types

import (
	"database/sql/driver"
	"time"
)

// JobSchedule is the planned window for a cleaning job.
type JobSchedule struct {
	Start           time.Time `json:"start"`
	End             time.Time `json:"end"`
	DurationMinutes int       `json:"duration_minutes"`
}

// Value marshals the schedule into JSON for Postgres.
func (j JobSchedule) Value() (driver.Value, error) {
	return marshalJSON(j)
}

// Scan decodes JSONB into the schedule.
func (j *JobSchedule) Scan(value any) error {
	return scanJSON(value, j)
}

// JobDetails carries free-form instructions for the assigned cleaner.
type JobDetails struct {
	Notes               []string `json:"notes"`
	SuppliesNeeded      []string `json:"supplies_needed"`
	SpecialInstructions []string `json:"special_instructions"`
	// Turnover cleanings carry the guest check-in/out clock times.
	CheckInTime  *string `json:"check_in_time,omitempty"`
	CheckOutTime *string `json:"check_out_time,omitempty"`
}

// Value marshals the details into JSON for Postgres.
func (j JobDetails) Value() (driver.Value, error) {
	return marshalJSON(j)
}

// Scan decodes JSONB into the details.
func (j *JobDetails) Scan(value any) error {
	return scanJSON(value, j)
}

// JobCompletion records the outcome of a finished job. Completed flips to true
// exactly when the job status becomes completed, never independently.
type JobCompletion struct {
	Completed   bool       `json:"completed"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	CompletedBy *string    `json:"completed_by,omitempty"`
	Notes       *string    `json:"notes,omitempty"`
	Issues      []string   `json:"issues,omitempty"`
}

// Value marshals the completion record into JSON for Postgres.
func (j JobCompletion) Value() (driver.Value, error) {
	return marshalJSON(j)
}

// Scan decodes JSONB into the completion record.
func (j *JobCompletion) Scan(value any) error {
	return scanJSON(value, j)
}
