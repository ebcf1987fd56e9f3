package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(priority Priority, arrival time.Time, status WaitingStatus) *WaitingRoomEntry {
	return &WaitingRoomEntry{
		ID:          uuid.New(),
		ClientID:    uuid.New(),
		PetID:       uuid.New(),
		ArrivalTime: arrival,
		Status:      status,
		Priority:    priority,
		Reason:      "checkup",
	}
}

func ids(entries []*WaitingRoomEntry) []uuid.UUID {
	out := make([]uuid.UUID, len(entries))
	for i, e := range entries {
		out[i] = e.ID
	}
	return out
}

func TestSortQueue_PriorityThenArrival(t *testing.T) {
	normal0900 := newEntry(PriorityNormal, at(9, 0), WaitingStatusWaiting)
	urgent0905 := newEntry(PriorityUrgent, at(9, 5), WaitingStatusWaiting)
	normal0910 := newEntry(PriorityNormal, at(9, 10), WaitingStatusWaiting)

	queue := []*WaitingRoomEntry{normal0900, urgent0905, normal0910}
	SortQueue(queue)

	want := []uuid.UUID{urgent0905.ID, normal0900.ID, normal0910.ID}
	if diff := cmp.Diff(want, ids(queue)); diff != "" {
		t.Errorf("queue order mismatch (-want +got):\n%s", diff)
	}
}

func TestSortQueue_EmergencyJumpsTheLine(t *testing.T) {
	queue := []*WaitingRoomEntry{
		newEntry(PriorityNormal, at(8, 0), WaitingStatusInConsultation),
		newEntry(PriorityNormal, at(8, 10), WaitingStatusWaiting),
		newEntry(PriorityNormal, at(8, 20), WaitingStatusWaiting),
	}
	emergency := newEntry(PriorityEmergency, at(9, 0), WaitingStatusWaiting)
	queue = append(queue, emergency)

	SortQueue(queue)

	assert.Equal(t, emergency.ID, queue[0].ID)
	for i := 1; i < len(queue); i++ {
		assert.False(t, QueueLess(queue[i], queue[i-1]), "queue not sorted at %d", i)
	}
}

func TestQueueLess_TieBreakByID(t *testing.T) {
	a := newEntry(PriorityUrgent, at(9, 0), WaitingStatusWaiting)
	b := newEntry(PriorityUrgent, at(9, 0), WaitingStatusWaiting)

	assert.NotEqual(t, QueueLess(a, b), QueueLess(b, a))
}

func TestComputeStatistics(t *testing.T) {
	started := at(9, 20)
	withConsultation := newEntry(PriorityNormal, at(9, 0), WaitingStatusInConsultation)
	withConsultation.ConsultationStartedAt = &started

	finishedStart := at(8, 40)
	finished := newEntry(PriorityUrgent, at(8, 30), WaitingStatusCompleted)
	finished.ConsultationStartedAt = &finishedStart

	waiting := newEntry(PriorityNormal, at(9, 30), WaitingStatusWaiting)

	stats := ComputeStatistics(
		[]*WaitingRoomEntry{withConsultation, waiting},
		[]*WaitingRoomEntry{withConsultation, finished, waiting},
	)

	assert.Equal(t, 1, stats.Waiting)
	assert.Equal(t, 1, stats.InConsultation)
	assert.Equal(t, 3, stats.CreatedToday)
	require.NotNil(t, stats.AverageWait)
	// (20m + 10m) / 2
	assert.Equal(t, 15*time.Minute, *stats.AverageWait)
}

func TestComputeStatistics_NoConsultations(t *testing.T) {
	stats := ComputeStatistics(nil, []*WaitingRoomEntry{newEntry(PriorityNormal, at(9, 0), WaitingStatusWaiting)})

	assert.Equal(t, 1, stats.CreatedToday)
	assert.Nil(t, stats.AverageWait)
}

func TestParsePriority(t *testing.T) {
	p, err := ParsePriority("Emergency")
	require.NoError(t, err)
	assert.Equal(t, PriorityEmergency, p)

	p, err = ParsePriority("2")
	require.NoError(t, err)
	assert.Equal(t, PriorityUrgent, p)

	_, err = ParsePriority("low")
	assert.ErrorIs(t, err, ErrValidationFailed)
}
