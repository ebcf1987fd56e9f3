package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// ValidateClientIdentification requires a registered client or a guest with a name
func ValidateClientIdentification(clientID *uuid.UUID, guest *GuestInfo) error {
	if clientID != nil {
		return nil
	}
	if guest == nil || strings.TrimSpace(guest.Name) == "" {
		return NewValidationError("client", "either a registered client or a guest name is required")
	}
	return nil
}

// ValidatePetOwnership requires the pet to belong to the registered client.
// Guest appointments cannot reference a registered pet.
func ValidatePetOwnership(clientID *uuid.UUID, pet *PetSummary) error {
	if pet == nil {
		return nil
	}
	if clientID == nil {
		return NewValidationError("petId", "guest appointments cannot reference a registered pet")
	}
	if pet.OwnerID != *clientID {
		return NewValidationError("petId", fmt.Sprintf("pet %s does not belong to client %s", pet.ID, *clientID))
	}
	return nil
}

// ValidateInterval checks end > start and the duration bounds (in minutes)
func ValidateInterval(start, end time.Time, minMinutes, maxMinutes int) error {
	if start.IsZero() {
		return NewValidationError("startTime", "start time is required")
	}
	if end.IsZero() {
		return NewValidationError("endTime", "end time is required")
	}
	if !end.After(start) {
		return NewValidationError("endTime", "end time must be after start time")
	}

	duration := end.Sub(start)
	if minMinutes > 0 && duration < time.Duration(minMinutes)*time.Minute {
		return NewValidationError("endTime", fmt.Sprintf("duration must be at least %d minutes", minMinutes))
	}
	if maxMinutes > 0 && duration > time.Duration(maxMinutes)*time.Minute {
		return NewValidationError("endTime", fmt.Sprintf("duration must be at most %d minutes", maxMinutes))
	}
	return nil
}

// ValidateEmployeeForService rejects non-clinical staff on clinical services
func ValidateEmployeeForService(serviceType ServiceType, employee *EmployeeSummary) error {
	if employee == nil || !serviceType.IsClinical() {
		return nil
	}
	if !employee.IsClinicalStaff {
		return NewValidationError("employeeId", fmt.Sprintf("%s requires clinical staff", serviceType))
	}
	return nil
}

// ValidateLength checks an optional text field against a rune limit
func ValidateLength(field string, value *string, max int) error {
	if value == nil {
		return nil
	}
	if utf8.RuneCountInString(*value) > max {
		return NewValidationError(field, fmt.Sprintf("must be at most %d characters", max))
	}
	return nil
}

// ValidateGuest checks guest info field lengths
func ValidateGuest(guest *GuestInfo) error {
	if guest == nil {
		return nil
	}
	name := guest.Name
	if err := ValidateLength("guest.name", &name, MaxGuestNameLength); err != nil {
		return err
	}
	if err := ValidateLength("guest.phone", guest.Phone, MaxGuestPhoneLength); err != nil {
		return err
	}
	return ValidateLength("guest.email", guest.Email, MaxGuestEmailLength)
}
