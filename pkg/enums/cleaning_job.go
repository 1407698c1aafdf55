package enums

import "fmt"

// CleaningJobStatus maps to the cleaning_job_status enum in Postgres.
type CleaningJobStatus string

const (
	CleaningJobStatusScheduled   CleaningJobStatus = "scheduled"
	CleaningJobStatusInProgress  CleaningJobStatus = "in_progress"
	CleaningJobStatusCompleted   CleaningJobStatus = "completed"
	CleaningJobStatusCancelled   CleaningJobStatus = "cancelled"
	CleaningJobStatusRescheduled CleaningJobStatus = "rescheduled"
)

var validCleaningJobStatuses = []CleaningJobStatus{
	CleaningJobStatusScheduled,
	CleaningJobStatusInProgress,
	CleaningJobStatusCompleted,
	CleaningJobStatusCancelled,
	CleaningJobStatusRescheduled,
}

// String implements fmt.Stringer.
func (s CleaningJobStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CleaningJobStatus.
func (s CleaningJobStatus) IsValid() bool {
	for _, candidate := range validCleaningJobStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCleaningJobStatus converts raw input into a CleaningJobStatus.
func ParseCleaningJobStatus(value string) (CleaningJobStatus, error) {
	for _, candidate := range validCleaningJobStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cleaning job status %q", value)
}

// CleaningJobType maps to the cleaning_job_type enum in Postgres.
type CleaningJobType string

const (
	CleaningJobTypeRegular   CleaningJobType = "regular"
	CleaningJobTypeTurnover  CleaningJobType = "turnover"
	CleaningJobTypeDeepClean CleaningJobType = "deep_clean"
	CleaningJobTypeSpecial   CleaningJobType = "special"
)

var validCleaningJobTypes = []CleaningJobType{
	CleaningJobTypeRegular,
	CleaningJobTypeTurnover,
	CleaningJobTypeDeepClean,
	CleaningJobTypeSpecial,
}

// IsValid reports whether the value is a known CleaningJobType.
func (t CleaningJobType) IsValid() bool {
	for _, candidate := range validCleaningJobTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseCleaningJobType converts raw input into a CleaningJobType.
func ParseCleaningJobType(value string) (CleaningJobType, error) {
	for _, candidate := range validCleaningJobTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cleaning job type %q", value)
}
