package appointments

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/infra/storage/memory"
	"github.com/m04kA/SMC-VetClinicService/internal/service/appointments/models"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	"github.com/m04kA/SMC-VetClinicService/pkg/logger"
	"github.com/m04kA/SMC-VetClinicService/pkg/ptr"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type fakeMetrics struct {
	mu          sync.Mutex
	transitions []string
}

func (m *fakeMetrics) RecordAppointmentTransition(from, to string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.transitions = append(m.transitions, from+"->"+to)
}

type fixture struct {
	svc     *Service
	store   *memory.Store
	metrics *fakeMetrics
	vetID   uuid.UUID
	now     time.Time
}

func newFixture(t *testing.T, loc *time.Location) *fixture {
	t.Helper()

	store := memory.NewStore()
	dir := memory.NewDirectory()
	log := logger.NewNop()

	f := &fixture{
		store:   store,
		metrics: &fakeMetrics{},
		vetID:   dir.AddEmployee("Ivan", "Sidorov", true),
		now:     time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC),
	}

	f.svc = NewService(
		store.Appointments(),
		projection.NewProjector(dir, log),
		store.TxManager(),
		f.metrics,
		loc,
		24*time.Hour,
		log,
	).WithTimeProvider(fixedTime{t: f.now})

	return f
}

func (f *fixture) seed(t *testing.T, a domain.Appointment) *domain.Appointment {
	t.Helper()

	if a.Title == "" {
		a.Title = "Visit"
	}
	if a.ServiceType == "" {
		a.ServiceType = domain.ServiceTypeCheckup
	}
	if a.Status == "" {
		a.Status = domain.AppointmentStatusScheduled
	}
	if a.EndTime.IsZero() {
		a.EndTime = a.StartTime.Add(time.Hour)
	}
	if a.Guest == nil && a.ClientID == nil {
		a.Guest = &domain.GuestInfo{Name: "Walk-in"}
	}

	created, err := f.store.Appointments().Create(context.Background(), &a)
	require.NoError(t, err)
	return created
}

func ids(list []*projection.AppointmentResponse) []uuid.UUID {
	result := make([]uuid.UUID, 0, len(list))
	for _, a := range list {
		result = append(result, a.ID)
	}
	return result
}

func utc(day, h, m int) time.Time {
	return time.Date(2026, 3, day, h, m, 0, 0, time.UTC)
}

func TestGetByID(t *testing.T) {
	f := newFixture(t, time.UTC)
	a := f.seed(t, domain.Appointment{StartTime: utc(2, 10, 0)})

	resp, err := f.svc.GetByID(context.Background(), a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.ID, resp.ID)

	_, err = f.svc.GetByID(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestList_ByDateUsesClinicTimezone(t *testing.T) {
	msk := time.FixedZone("MSK", 3*60*60)
	f := newFixture(t, msk)

	morning := f.seed(t, domain.Appointment{StartTime: utc(2, 10, 0)})
	// 22:30 UTC уже следующий день по Москве
	f.seed(t, domain.Appointment{StartTime: utc(2, 22, 30)})
	// 21:30 UTC 1 марта это 00:30 2 марта по Москве
	earlyMorning := f.seed(t, domain.Appointment{StartTime: utc(1, 21, 30)})

	resp, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		Date: ptr.Ptr(time.Date(2026, 3, 2, 0, 0, 0, 0, msk)),
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{earlyMorning.ID, morning.ID}, ids(resp))
}

func TestList_ByEmployeeAndRange(t *testing.T) {
	f := newFixture(t, time.UTC)
	otherVet := uuid.New()

	first := f.seed(t, domain.Appointment{StartTime: utc(2, 10, 0), EmployeeID: ptr.Ptr(f.vetID)})
	second := f.seed(t, domain.Appointment{StartTime: utc(2, 14, 0), EmployeeID: ptr.Ptr(f.vetID)})
	f.seed(t, domain.Appointment{StartTime: utc(2, 11, 0), EmployeeID: ptr.Ptr(otherVet)})
	f.seed(t, domain.Appointment{StartTime: utc(3, 10, 0), EmployeeID: ptr.Ptr(f.vetID)})

	resp, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		From:       ptr.Ptr(utc(2, 0, 0)),
		To:         ptr.Ptr(utc(3, 0, 0)),
		EmployeeID: ptr.Ptr(f.vetID),
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID}, ids(resp))
}

func TestList_ByClientAndStatus(t *testing.T) {
	f := newFixture(t, time.UTC)
	clientID := uuid.New()

	confirmed := f.seed(t, domain.Appointment{StartTime: utc(2, 10, 0), ClientID: &clientID, Status: domain.AppointmentStatusConfirmed})
	f.seed(t, domain.Appointment{StartTime: utc(2, 12, 0), ClientID: &clientID})
	f.seed(t, domain.Appointment{StartTime: utc(2, 13, 0), Status: domain.AppointmentStatusConfirmed})

	resp, err := f.svc.List(context.Background(), &models.ListAppointmentsRequest{
		ClientID: &clientID,
		Status:   ptr.Ptr("confirmed"),
	})
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{confirmed.ID}, ids(resp))
}

func TestList_InvalidFilters(t *testing.T) {
	testCases := []struct {
		name string
		req  *models.ListAppointmentsRequest
	}{
		{
			name: "date with range",
			req:  &models.ListAppointmentsRequest{Date: ptr.Ptr(utc(2, 0, 0)), From: ptr.Ptr(utc(1, 0, 0))},
		},
		{
			name: "empty range",
			req:  &models.ListAppointmentsRequest{From: ptr.Ptr(utc(2, 0, 0)), To: ptr.Ptr(utc(2, 0, 0))},
		},
		{
			name: "unknown status",
			req:  &models.ListAppointmentsRequest{Status: ptr.Ptr("archived")},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, time.UTC)
			_, err := f.svc.List(context.Background(), tc.req)
			assert.ErrorIs(t, err, domain.ErrValidationFailed)
		})
	}
}

func TestTodayAndUpcoming(t *testing.T) {
	f := newFixture(t, time.UTC)

	earlier := f.seed(t, domain.Appointment{StartTime: utc(2, 8, 0), Status: domain.AppointmentStatusCompleted})
	next := f.seed(t, domain.Appointment{StartTime: utc(2, 10, 0)})
	cancelled := f.seed(t, domain.Appointment{StartTime: utc(2, 11, 0), Status: domain.AppointmentStatusCancelled})
	tomorrow := f.seed(t, domain.Appointment{StartTime: utc(3, 8, 0), Status: domain.AppointmentStatusConfirmed})
	f.seed(t, domain.Appointment{StartTime: utc(3, 10, 0)})

	today, err := f.svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{earlier.ID, next.ID, cancelled.ID}, ids(today))

	upcoming, err := f.svc.Upcoming(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{next.ID, tomorrow.ID}, ids(upcoming))
}

func TestChangeStatus(t *testing.T) {
	testCases := []struct {
		name     string
		seed     func(f *fixture) domain.Appointment
		to       string
		wantErr  error
		wantFrom string
	}{
		{
			name: "confirm with veterinarian",
			seed: func(f *fixture) domain.Appointment {
				return domain.Appointment{StartTime: utc(2, 10, 0), EmployeeID: ptr.Ptr(f.vetID)}
			},
			to:       "confirmed",
			wantFrom: "scheduled",
		},
		{
			name: "confirm clinical without employee",
			seed: func(*fixture) domain.Appointment {
				return domain.Appointment{StartTime: utc(2, 10, 0), ServiceType: domain.ServiceTypeSurgery}
			},
			to:      "confirmed",
			wantErr: domain.ErrValidationFailed,
		},
		{
			name: "start grooming without employee",
			seed: func(*fixture) domain.Appointment {
				return domain.Appointment{StartTime: utc(2, 10, 0), ServiceType: domain.ServiceTypeGrooming}
			},
			to:       "in_progress",
			wantFrom: "scheduled",
		},
		{
			name: "mark no show",
			seed: func(*fixture) domain.Appointment {
				return domain.Appointment{StartTime: utc(2, 10, 0), Status: domain.AppointmentStatusConfirmed}
			},
			to:       "no_show",
			wantFrom: "confirmed",
		},
		{
			name: "reopen completed",
			seed: func(f *fixture) domain.Appointment {
				return domain.Appointment{StartTime: utc(2, 10, 0), Status: domain.AppointmentStatusCompleted, EmployeeID: ptr.Ptr(f.vetID)}
			},
			to:      "in_progress",
			wantErr: domain.ErrInvalidStatusTransition,
		},
		{
			name: "complete scheduled",
			seed: func(*fixture) domain.Appointment {
				return domain.Appointment{StartTime: utc(2, 10, 0)}
			},
			to:      "completed",
			wantErr: domain.ErrInvalidStatusTransition,
		},
		{
			name: "unknown status",
			seed: func(*fixture) domain.Appointment {
				return domain.Appointment{StartTime: utc(2, 10, 0)}
			},
			to:      "paused",
			wantErr: domain.ErrValidationFailed,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t, time.UTC)
			a := f.seed(t, tc.seed(f))

			resp, err := f.svc.ChangeStatus(context.Background(), a.ID, &models.ChangeStatusRequest{
				Status: tc.to,
				Actor:  ptr.Ptr("vet-1"),
			})
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Empty(t, f.metrics.transitions)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.to, resp.Status)
			assert.Equal(t, "vet-1", *resp.UpdatedBy)
			assert.Equal(t, []string{tc.wantFrom + "->" + tc.to}, f.metrics.transitions)
		})
	}
}

func TestChangeStatus_CancelStampsTime(t *testing.T) {
	f := newFixture(t, time.UTC)
	a := f.seed(t, domain.Appointment{StartTime: utc(2, 10, 0)})

	resp, err := f.svc.ChangeStatus(context.Background(), a.ID, &models.ChangeStatusRequest{Status: "cancelled"})
	require.NoError(t, err)
	assert.True(t, resp.Cancelled)
	require.NotNil(t, resp.CancelledAt)
	assert.True(t, resp.CancelledAt.Equal(f.now))
}

func TestCancel_AppendsReasonOnce(t *testing.T) {
	f := newFixture(t, time.UTC)
	a := f.seed(t, domain.Appointment{
		StartTime: utc(2, 10, 0),
		Notes:     ptr.Ptr("Allergic to penicillin"),
	})
	req := &models.CancelAppointmentRequest{Reason: ptr.Ptr(" Owner is ill "), Actor: ptr.Ptr("reception-1")}

	resp, err := f.svc.Cancel(context.Background(), a.ID, req)
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "Allergic to penicillin\nCancellation reason: Owner is ill", *resp.Notes)
	assert.Equal(t, "Owner is ill", *resp.CancellationReason)

	again, err := f.svc.Cancel(context.Background(), a.ID, req)
	require.NoError(t, err)
	assert.Equal(t, *resp.Notes, *again.Notes)
	assert.Equal(t, []string{"scheduled->cancelled"}, f.metrics.transitions)
}

func TestCancel_WithoutReason(t *testing.T) {
	f := newFixture(t, time.UTC)
	a := f.seed(t, domain.Appointment{StartTime: utc(2, 10, 0)})

	resp, err := f.svc.Cancel(context.Background(), a.ID, &models.CancelAppointmentRequest{})
	require.NoError(t, err)
	assert.True(t, resp.Cancelled)
	assert.Nil(t, resp.Notes)
}

func TestCancel_Rejections(t *testing.T) {
	f := newFixture(t, time.UTC)
	completed := f.seed(t, domain.Appointment{StartTime: utc(2, 8, 0), Status: domain.AppointmentStatusCompleted})

	_, err := f.svc.Cancel(context.Background(), completed.ID, &models.CancelAppointmentRequest{Reason: ptr.Ptr("late")})
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	_, err = f.svc.Cancel(context.Background(), uuid.New(), &models.CancelAppointmentRequest{})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestDelete(t *testing.T) {
	f := newFixture(t, time.UTC)
	a := f.seed(t, domain.Appointment{StartTime: utc(2, 10, 0)})

	require.NoError(t, f.svc.Delete(context.Background(), a.ID))
	assert.Zero(t, f.store.Appointments().Count())

	err := f.svc.Delete(context.Background(), a.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorageUnavailable(t *testing.T) {
	f := newFixture(t, time.UTC)
	f.store.Err = errors.New("connection refused")

	_, err := f.svc.Today(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = f.svc.ChangeStatus(context.Background(), uuid.New(), &models.ChangeStatusRequest{Status: "confirmed"})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
