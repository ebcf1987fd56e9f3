package domain

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// Sentinels matched with errors.Is. Typed errors below unwrap to them.
var (
	ErrNotFound                = errors.New("not found")
	ErrValidationFailed        = errors.New("validation failed")
	ErrSchedulingConflict      = errors.New("scheduling conflict")
	ErrDuplicateWaitingEntry   = errors.New("duplicate waiting room entry")
	ErrInvalidStatusTransition = errors.New("invalid status transition")
	ErrInvalidOperation        = errors.New("invalid operation")
	ErrStorageUnavailable      = errors.New("storage unavailable")
)

// EntityKind names the kind of a referenced entity
type EntityKind string

const (
	KindClient           EntityKind = "client"
	KindPet              EntityKind = "pet"
	KindEmployee         EntityKind = "employee"
	KindAppointment      EntityKind = "appointment"
	KindWaitingRoomEntry EntityKind = "waiting_room_entry"
)

type NotFoundError struct {
	Kind EntityKind
	ID   string
}

func NewNotFound(kind EntityKind, id uuid.UUID) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id.String()}
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

func (e *NotFoundError) Unwrap() error { return ErrNotFound }

type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s: %s", e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidationFailed }

type SchedulingConflictError struct {
	EmployeeID    uuid.UUID
	ConflictingID uuid.UUID
}

func (e *SchedulingConflictError) Error() string {
	return fmt.Sprintf("employee %s already has appointment %s in this time window", e.EmployeeID, e.ConflictingID)
}

func (e *SchedulingConflictError) Unwrap() error { return ErrSchedulingConflict }

type DuplicateWaitingEntryError struct {
	ClientID uuid.UUID
	PetID    uuid.UUID
}

func (e *DuplicateWaitingEntryError) Error() string {
	return fmt.Sprintf("client %s with pet %s is already waiting", e.ClientID, e.PetID)
}

func (e *DuplicateWaitingEntryError) Unwrap() error { return ErrDuplicateWaitingEntry }

type InvalidStatusTransitionError struct {
	From string
	To   string
}

func NewInvalidStatusTransition(from, to string) *InvalidStatusTransitionError {
	return &InvalidStatusTransitionError{From: from, To: to}
}

func (e *InvalidStatusTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %s to %s", e.From, e.To)
}

func (e *InvalidStatusTransitionError) Unwrap() error { return ErrInvalidStatusTransition }

type InvalidOperationError struct {
	Reason string
}

func NewInvalidOperation(reason string) *InvalidOperationError {
	return &InvalidOperationError{Reason: reason}
}

func (e *InvalidOperationError) Error() string {
	return "invalid operation: " + e.Reason
}

func (e *InvalidOperationError) Unwrap() error { return ErrInvalidOperation }

// IsKnownError reports whether err carries one of the sentinels above
func IsKnownError(err error) bool {
	for _, sentinel := range []error{
		ErrNotFound,
		ErrValidationFailed,
		ErrSchedulingConflict,
		ErrDuplicateWaitingEntry,
		ErrInvalidStatusTransition,
		ErrInvalidOperation,
		ErrStorageUnavailable,
	} {
		if errors.Is(err, sentinel) {
			return true
		}
	}
	return false
}
