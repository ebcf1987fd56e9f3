package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allAppointmentStatuses = []AppointmentStatus{
	AppointmentStatusScheduled,
	AppointmentStatusConfirmed,
	AppointmentStatusInProgress,
	AppointmentStatusCompleted,
	AppointmentStatusCancelled,
	AppointmentStatusNoShow,
}

var allWaitingStatuses = []WaitingStatus{
	WaitingStatusWaiting,
	WaitingStatusInConsultation,
	WaitingStatusCompleted,
	WaitingStatusCancelled,
}

func TestAppointmentStatus_TransitionClosure(t *testing.T) {
	allowed := map[AppointmentStatus]map[AppointmentStatus]bool{
		AppointmentStatusScheduled: {
			AppointmentStatusConfirmed:  true,
			AppointmentStatusInProgress: true,
			AppointmentStatusCancelled:  true,
			AppointmentStatusNoShow:     true,
		},
		AppointmentStatusConfirmed: {
			AppointmentStatusInProgress: true,
			AppointmentStatusCancelled:  true,
			AppointmentStatusNoShow:     true,
		},
		AppointmentStatusInProgress: {
			AppointmentStatusCompleted: true,
			AppointmentStatusCancelled: true,
		},
	}

	for _, from := range allAppointmentStatuses {
		for _, to := range allAppointmentStatuses {
			want := allowed[from][to]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)

			err := from.ValidateTransition(to)
			if want {
				assert.NoError(t, err)
				continue
			}
			var transitionErr *InvalidStatusTransitionError
			require.ErrorAs(t, err, &transitionErr)
			assert.Equal(t, string(from), transitionErr.From)
			assert.Equal(t, string(to), transitionErr.To)
			assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		}
	}
}

func TestAppointmentStatus_Terminal(t *testing.T) {
	assert.False(t, AppointmentStatusScheduled.IsTerminal())
	assert.False(t, AppointmentStatusConfirmed.IsTerminal())
	assert.False(t, AppointmentStatusInProgress.IsTerminal())
	assert.True(t, AppointmentStatusCompleted.IsTerminal())
	assert.True(t, AppointmentStatusCancelled.IsTerminal())
	assert.True(t, AppointmentStatusNoShow.IsTerminal())
}

func TestAppointmentStatus_ScheduledToCompletedRejected(t *testing.T) {
	err := AppointmentStatusScheduled.ValidateTransition(AppointmentStatusCompleted)

	var transitionErr *InvalidStatusTransitionError
	require.ErrorAs(t, err, &transitionErr)
	assert.Equal(t, "scheduled", transitionErr.From)
	assert.Equal(t, "completed", transitionErr.To)
}

func TestWaitingStatus_TransitionClosure(t *testing.T) {
	allowed := map[WaitingStatus]map[WaitingStatus]bool{
		WaitingStatusWaiting: {
			WaitingStatusInConsultation: true,
			WaitingStatusCancelled:      true,
		},
		WaitingStatusInConsultation: {
			WaitingStatusCompleted: true,
			WaitingStatusCancelled: true,
		},
	}

	for _, from := range allWaitingStatuses {
		for _, to := range allWaitingStatuses {
			want := allowed[from][to]
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
			if want {
				assert.NoError(t, from.ValidateTransition(to))
			} else {
				assert.ErrorIs(t, from.ValidateTransition(to), ErrInvalidStatusTransition)
			}
		}
	}

	assert.True(t, WaitingStatusCompleted.IsTerminal())
	assert.True(t, WaitingStatusCancelled.IsTerminal())
	assert.False(t, WaitingStatusWaiting.IsTerminal())
}
