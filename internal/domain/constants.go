package domain

import "time"

// Default scheduling bounds (overridable via config)
const (
	DefaultMinAppointmentMinutes = 15
	DefaultMaxAppointmentMinutes = 480 // 8 hours
	DefaultUpcomingWindow        = 24 * time.Hour
	DefaultSlotStepMinutes       = 30
)

// Field length limits
const (
	MaxTitleLength              = 200
	MaxReasonLength             = 1000
	MaxNotesLength              = 2000
	MaxCancellationReasonLength = 500
	MaxGuestNameLength          = 150
	MaxGuestPhoneLength         = 30
	MaxGuestEmailLength         = 254
)

// Time format constants
const (
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	ClockFormat = "15:04"      // HH:MM
)

// BlockingStatuses statuses that occupy an employee's time.
// Only cancelled appointments free the slot.
var BlockingStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusInProgress,
	AppointmentStatusCompleted,
	AppointmentStatusNoShow,
}

// ActiveQueueStatuses statuses shown in the current waiting room queue
var ActiveQueueStatuses = []WaitingStatus{
	WaitingStatusWaiting,
	WaitingStatusInConsultation,
}
