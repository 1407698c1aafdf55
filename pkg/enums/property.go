package enums

import "fmt"

// PropertyType maps to the property_type enum in Postgres.
type PropertyType string

const (
	PropertyTypeResidential    PropertyType = "residential"
	PropertyTypeCommercial     PropertyType = "commercial"
	PropertyTypeVacationRental PropertyType = "vacation_rental"
	PropertyTypeHotel          PropertyType = "hotel"
)

var validPropertyTypes = []PropertyType{
	PropertyTypeResidential,
	PropertyTypeCommercial,
	PropertyTypeVacationRental,
	PropertyTypeHotel,
}

// IsValid reports whether the value is a known PropertyType.
func (p PropertyType) IsValid() bool {
	for _, candidate := range validPropertyTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePropertyType converts raw input into a PropertyType.
func ParsePropertyType(value string) (PropertyType, error) {
	for _, candidate := range validPropertyTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid property type %q", value)
}

// PropertyStatus maps to the property_status enum in Postgres.
type PropertyStatus string

const (
	PropertyStatusActive   PropertyStatus = "active"
	PropertyStatusInactive PropertyStatus = "inactive"
)

var validPropertyStatuses = []PropertyStatus{
	PropertyStatusActive,
	PropertyStatusInactive,
}

// IsValid reports whether the value is a known PropertyStatus.
func (p PropertyStatus) IsValid() bool {
	for _, candidate := range validPropertyStatuses {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePropertyStatus converts raw input into a PropertyStatus.
func ParsePropertyStatus(value string) (PropertyStatus, error) {
	for _, candidate := range validPropertyStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid property status %q", value)
}

// CleaningFrequency captures how often a property is serviced.
type CleaningFrequency string

const (
	CleaningFrequencyDaily    CleaningFrequency = "daily"
	CleaningFrequencyWeekly   CleaningFrequency = "weekly"
	CleaningFrequencyBiweekly CleaningFrequency = "biweekly"
	CleaningFrequencyMonthly  CleaningFrequency = "monthly"
	CleaningFrequencyCustom   CleaningFrequency = "custom"
)

var validCleaningFrequencies = []CleaningFrequency{
	CleaningFrequencyDaily,
	CleaningFrequencyWeekly,
	CleaningFrequencyBiweekly,
	CleaningFrequencyMonthly,
	CleaningFrequencyCustom,
}

// IsValid reports whether the value is a known CleaningFrequency.
func (f CleaningFrequency) IsValid() bool {
	for _, candidate := range validCleaningFrequencies {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseCleaningFrequency converts raw input into a CleaningFrequency.
func ParseCleaningFrequency(value string) (CleaningFrequency, error) {
	for _, candidate := range validCleaningFrequencies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cleaning frequency %q", value)
}

// ContactMethod captures the preferred way to reach a property contact.
type ContactMethod string

const (
	ContactMethodEmail ContactMethod = "email"
	ContactMethodPhone ContactMethod = "phone"
	ContactMethodText  ContactMethod = "text"
)

var validContactMethods = []ContactMethod{
	ContactMethodEmail,
	ContactMethodPhone,
	ContactMethodText,
}

// IsValid reports whether the value is a known ContactMethod.
func (c ContactMethod) IsValid() bool {
	for _, candidate := range validContactMethods {
		if candidate == c {
			return true
		}
	}
	return false
}
