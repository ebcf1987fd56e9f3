package domain

import (
	"math/rand"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var base = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return base.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func newAppointment(employeeID uuid.UUID, start, end time.Time, status AppointmentStatus) *Appointment {
	return &Appointment{
		ID:          uuid.New(),
		StartTime:   start,
		EndTime:     end,
		ServiceType: ServiceTypeConsultation,
		Status:      status,
		EmployeeID:  &employeeID,
	}
}

func TestFindConflict(t *testing.T) {
	vet := uuid.New()
	other := uuid.New()
	existing := newAppointment(vet, at(10, 0), at(11, 0), AppointmentStatusScheduled)
	noShow := newAppointment(vet, at(14, 0), at(15, 0), AppointmentStatusNoShow)

	testCases := []struct {
		name       string
		employee   uuid.UUID
		start, end time.Time
		appts      []*Appointment
		exclude    *uuid.UUID
		wantID     *uuid.UUID
	}{
		{
			name:     "overlapping window conflicts",
			employee: vet, start: at(10, 30), end: at(11, 30),
			appts:  []*Appointment{existing},
			wantID: &existing.ID,
		},
		{
			name:     "abutting after does not conflict",
			employee: vet, start: at(11, 0), end: at(12, 0),
			appts: []*Appointment{existing},
		},
		{
			name:     "abutting before does not conflict",
			employee: vet, start: at(9, 0), end: at(10, 0),
			appts: []*Appointment{existing},
		},
		{
			name:     "contained window conflicts",
			employee: vet, start: at(10, 15), end: at(10, 45),
			appts:  []*Appointment{existing},
			wantID: &existing.ID,
		},
		{
			name:     "other employee is ignored",
			employee: other, start: at(10, 0), end: at(11, 0),
			appts: []*Appointment{existing},
		},
		{
			name:     "cancelled appointment frees the slot",
			employee: vet, start: at(10, 0), end: at(11, 0),
			appts: []*Appointment{newAppointment(vet, at(10, 0), at(11, 0), AppointmentStatusCancelled)},
		},
		{
			name:     "no-show still blocks",
			employee: vet, start: at(14, 30), end: at(15, 30),
			appts:  []*Appointment{noShow},
			wantID: &noShow.ID,
		},
		{
			name:     "excluded appointment is ignored",
			employee: vet, start: at(10, 0), end: at(11, 0),
			appts:   []*Appointment{existing},
			exclude: &existing.ID,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := FindConflict(tc.appts, tc.employee, tc.start, tc.end, tc.exclude)
			if tc.wantID == nil {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, *tc.wantID, got.ID)
		})
	}
}

func TestFindConflict_ReturnsEarliest(t *testing.T) {
	vet := uuid.New()
	late := newAppointment(vet, at(11, 0), at(12, 0), AppointmentStatusConfirmed)
	early := newAppointment(vet, at(9, 0), at(10, 30), AppointmentStatusScheduled)

	got := FindConflict([]*Appointment{late, early}, vet, at(10, 0), at(11, 30), nil)

	require.NotNil(t, got)
	assert.Equal(t, early.ID, got.ID)
}

// Accepting intervals one by one through FindConflict never yields an
// overlapping pair, and every rejection is justified by an accepted interval.
func TestFindConflict_NoOverlapProperty(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	vet := uuid.New()

	for round := 0; round < 50; round++ {
		var accepted []*Appointment

		for i := 0; i < 40; i++ {
			startMin := rng.Intn(12 * 60)
			length := 15 + rng.Intn(120)
			start := base.Add(time.Duration(startMin) * time.Minute)
			end := start.Add(time.Duration(length) * time.Minute)

			conflict := FindConflict(accepted, vet, start, end, nil)
			if conflict != nil {
				assert.True(t, conflict.Overlaps(start, end))
				continue
			}
			accepted = append(accepted, newAppointment(vet, start, end, AppointmentStatusScheduled))
		}

		for i := range accepted {
			for j := i + 1; j < len(accepted); j++ {
				a, b := accepted[i], accepted[j]
				assert.False(t, a.Overlaps(b.StartTime, b.EndTime),
					"accepted intervals overlap: [%s,%s) [%s,%s)", a.StartTime, a.EndTime, b.StartTime, b.EndTime)
			}
		}
	}
}
