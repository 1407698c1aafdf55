package enums

import "fmt"

// CalendarEventType maps to the calendar_event_type enum in Postgres.
type CalendarEventType string

const (
	CalendarEventTypeCleaning    CalendarEventType = "cleaning"
	CalendarEventTypeInspection  CalendarEventType = "inspection"
	CalendarEventTypeMaintenance CalendarEventType = "maintenance"
	CalendarEventTypeOther       CalendarEventType = "other"
)

var validCalendarEventTypes = []CalendarEventType{
	CalendarEventTypeCleaning,
	CalendarEventTypeInspection,
	CalendarEventTypeMaintenance,
	CalendarEventTypeOther,
}

// IsValid reports whether the value is a known CalendarEventType.
func (t CalendarEventType) IsValid() bool {
	for _, candidate := range validCalendarEventTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseCalendarEventType converts raw input into a CalendarEventType.
func ParseCalendarEventType(value string) (CalendarEventType, error) {
	for _, candidate := range validCalendarEventTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid calendar event type %q", value)
}

// CalendarEventStatus mirrors the subset of cleaning job statuses an event can carry.
type CalendarEventStatus string

const (
	CalendarEventStatusScheduled  CalendarEventStatus = "scheduled"
	CalendarEventStatusInProgress CalendarEventStatus = "in_progress"
	CalendarEventStatusCompleted  CalendarEventStatus = "completed"
	CalendarEventStatusCancelled  CalendarEventStatus = "cancelled"
)

var validCalendarEventStatuses = []CalendarEventStatus{
	CalendarEventStatusScheduled,
	CalendarEventStatusInProgress,
	CalendarEventStatusCompleted,
	CalendarEventStatusCancelled,
}

// IsValid reports whether the value is a known CalendarEventStatus.
func (s CalendarEventStatus) IsValid() bool {
	for _, candidate := range validCalendarEventStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCalendarEventStatus converts raw input into a CalendarEventStatus.
func ParseCalendarEventStatus(value string) (CalendarEventStatus, error) {
	for _, candidate := range validCalendarEventStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid calendar event status %q", value)
}
