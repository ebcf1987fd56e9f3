package domain

var appointmentTransitions = map[AppointmentStatus][]AppointmentStatus{
	AppointmentStatusScheduled: {
		AppointmentStatusConfirmed,
		AppointmentStatusInProgress,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	},
	AppointmentStatusConfirmed: {
		AppointmentStatusInProgress,
		AppointmentStatusCancelled,
		AppointmentStatusNoShow,
	},
	AppointmentStatusInProgress: {
		AppointmentStatusCompleted,
		AppointmentStatusCancelled,
	},
}

var waitingTransitions = map[WaitingStatus][]WaitingStatus{
	WaitingStatusWaiting: {
		WaitingStatusInConsultation,
		WaitingStatusCancelled,
	},
	WaitingStatusInConsultation: {
		WaitingStatusCompleted,
		WaitingStatusCancelled,
	},
}

// IsTerminal returns true for completed, cancelled and no_show
func (s AppointmentStatus) IsTerminal() bool {
	return len(appointmentTransitions[s]) == 0
}

// CanTransitionTo reports whether s -> to is in the appointment state machine
func (s AppointmentStatus) CanTransitionTo(to AppointmentStatus) bool {
	for _, allowed := range appointmentTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns InvalidStatusTransitionError if s -> to is not allowed
func (s AppointmentStatus) ValidateTransition(to AppointmentStatus) error {
	if !s.CanTransitionTo(to) {
		return NewInvalidStatusTransition(string(s), string(to))
	}
	return nil
}

// IsTerminal returns true for completed and cancelled
func (s WaitingStatus) IsTerminal() bool {
	return len(waitingTransitions[s]) == 0
}

// CanTransitionTo reports whether s -> to is in the waiting room state machine
func (s WaitingStatus) CanTransitionTo(to WaitingStatus) bool {
	for _, allowed := range waitingTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// ValidateTransition returns InvalidStatusTransitionError if s -> to is not allowed
func (s WaitingStatus) ValidateTransition(to WaitingStatus) error {
	if !s.CanTransitionTo(to) {
		return NewInvalidStatusTransition(string(s), string(to))
	}
	return nil
}
