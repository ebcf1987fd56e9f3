package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// WaitingStatus represents the state of a waiting room entry
type WaitingStatus string

const (
	WaitingStatusWaiting        WaitingStatus = "waiting"
	WaitingStatusInConsultation WaitingStatus = "in_consultation"
	WaitingStatusCompleted      WaitingStatus = "completed"
	WaitingStatusCancelled      WaitingStatus = "cancelled"
)

// Priority is the triage class of a waiting room entry. Higher is more urgent.
type Priority int

const (
	PriorityNormal    Priority = 1
	PriorityUrgent    Priority = 2
	PriorityEmergency Priority = 3
)

func (p Priority) String() string {
	switch p {
	case PriorityNormal:
		return "normal"
	case PriorityUrgent:
		return "urgent"
	case PriorityEmergency:
		return "emergency"
	default:
		return fmt.Sprintf("priority(%d)", int(p))
	}
}

func (p Priority) IsValid() bool {
	return p >= PriorityNormal && p <= PriorityEmergency
}

// ParsePriority accepts either the name ("urgent") or the ordinal ("2")
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "normal", "1":
		return PriorityNormal, nil
	case "urgent", "2":
		return PriorityUrgent, nil
	case "emergency", "3":
		return PriorityEmergency, nil
	default:
		return 0, NewValidationError("priority", fmt.Sprintf("unknown priority %q", s))
	}
}

// WaitingRoomEntry is a patient (client + pet) waiting for consultation
type WaitingRoomEntry struct {
	ID          uuid.UUID
	ClientID    uuid.UUID
	PetID       uuid.UUID
	ArrivalTime time.Time
	Status      WaitingStatus
	Priority    Priority
	Reason      string
	Notes       *string

	ConsultationStartedAt *time.Time
	CompletedAt           *time.Time
	CancelledAt           *time.Time
	CancellationReason    *string

	CreatedAt time.Time
	UpdatedAt time.Time
	CreatedBy *string
	UpdatedBy *string
}

// IsActive returns true if the entry is part of the current queue
func (e *WaitingRoomEntry) IsActive() bool {
	return e.Status == WaitingStatusWaiting || e.Status == WaitingStatusInConsultation
}

func (e *WaitingRoomEntry) IsTerminal() bool {
	return e.Status.IsTerminal()
}

// WaitTime returns consultationStartedAt - arrivalTime once consultation started
func (e *WaitingRoomEntry) WaitTime() (time.Duration, bool) {
	if e.ConsultationStartedAt == nil {
		return 0, false
	}
	return e.ConsultationStartedAt.Sub(e.ArrivalTime), true
}

// WaitingRoomFilter filters waiting room queries. Nil fields are ignored.
// ArrivedFrom/ArrivedTo bound the arrival time as [from, to).
type WaitingRoomFilter struct {
	Statuses    []WaitingStatus
	ArrivedFrom *time.Time
	ArrivedTo   *time.Time
}

// WaitingRoomStatistics is a read-only summary of the waiting room
type WaitingRoomStatistics struct {
	Waiting        int
	InConsultation int
	CreatedToday   int
	// AverageWait is nil when no entry of the day reached consultation
	AverageWait *time.Duration
}
