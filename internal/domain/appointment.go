package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment
type AppointmentStatus string

const (
	AppointmentStatusScheduled  AppointmentStatus = "scheduled"
	AppointmentStatusConfirmed  AppointmentStatus = "confirmed"
	AppointmentStatusInProgress AppointmentStatus = "in_progress"
	AppointmentStatusCompleted  AppointmentStatus = "completed"
	AppointmentStatusCancelled  AppointmentStatus = "cancelled"
	AppointmentStatusNoShow     AppointmentStatus = "no_show"
)

// ParseAppointmentStatus converts a raw string into a known status
func ParseAppointmentStatus(s string) (AppointmentStatus, error) {
	status := AppointmentStatus(s)
	switch status {
	case AppointmentStatusScheduled,
		AppointmentStatusConfirmed,
		AppointmentStatusInProgress,
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow:
		return status, nil
	default:
		return "", NewValidationError("status", fmt.Sprintf("unknown appointment status %q", s))
	}
}

// ServiceType classifies the visit
type ServiceType string

const (
	ServiceTypeConsultation ServiceType = "consultation"
	ServiceTypeVaccination  ServiceType = "vaccination"
	ServiceTypeSurgery      ServiceType = "surgery"
	ServiceTypeCheckup      ServiceType = "checkup"
	ServiceTypeEmergency    ServiceType = "emergency"
	ServiceTypeDental       ServiceType = "dental"
	ServiceTypeGrooming     ServiceType = "grooming"
	ServiceTypeOther        ServiceType = "other"
)

// ParseServiceType converts a raw string into a known service type
func ParseServiceType(s string) (ServiceType, error) {
	st := ServiceType(s)
	switch st {
	case ServiceTypeConsultation,
		ServiceTypeVaccination,
		ServiceTypeSurgery,
		ServiceTypeCheckup,
		ServiceTypeEmergency,
		ServiceTypeDental,
		ServiceTypeGrooming,
		ServiceTypeOther:
		return st, nil
	default:
		return "", NewValidationError("serviceType", fmt.Sprintf("unknown service type %q", s))
	}
}

// IsClinical returns true if the service must be performed by a veterinarian
func (s ServiceType) IsClinical() bool {
	switch s {
	case ServiceTypeGrooming, ServiceTypeOther:
		return false
	default:
		return true
	}
}

// GuestInfo identifies a walk-in client that is not in the directory
type GuestInfo struct {
	Name  string
	Phone *string
	Email *string
}

// Appointment represents a booked visit
type Appointment struct {
	ID          uuid.UUID
	Title       string
	StartTime   time.Time
	EndTime     time.Time
	ServiceType ServiceType
	Status      AppointmentStatus

	ClientID   *uuid.UUID
	Guest      *GuestInfo
	PetID      *uuid.UUID
	EmployeeID *uuid.UUID

	Reason *string
	Notes  *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy *string
	UpdatedBy *string
}

// Duration returns the length of the appointment
func (a *Appointment) Duration() time.Duration {
	return a.EndTime.Sub(a.StartTime)
}

// Overlaps reports whether [start,end) intersects the appointment interval.
// Abutting intervals do not overlap.
func (a *Appointment) Overlaps(start, end time.Time) bool {
	return a.StartTime.Before(end) && start.Before(a.EndTime)
}

// BlocksSchedule returns true if the appointment occupies the employee's time
func (a *Appointment) BlocksSchedule() bool {
	return a.Status != AppointmentStatusCancelled
}

// IsTerminal returns true if no further transitions are allowed
func (a *Appointment) IsTerminal() bool {
	return a.Status.IsTerminal()
}

func (a *Appointment) IsCancelled() bool {
	return a.Status == AppointmentStatusCancelled
}

func (a *Appointment) IsCompleted() bool {
	return a.Status == AppointmentStatusCompleted
}

// HasRegisteredClient returns true if the appointment references a directory client
func (a *Appointment) HasRegisteredClient() bool {
	return a.ClientID != nil
}

// RequiresVeterinarian returns true if the service type is clinical
func (a *Appointment) RequiresVeterinarian() bool {
	return a.ServiceType.IsClinical()
}

// AppointmentFilter filters appointment queries. Nil fields are ignored.
// From/To bound the start time as [From, To).
type AppointmentFilter struct {
	From            *time.Time
	To              *time.Time
	ClientID        *uuid.UUID
	PetID           *uuid.UUID
	EmployeeID      *uuid.UUID
	Statuses        []AppointmentStatus
	ExcludeStatuses []AppointmentStatus
}
