package waitingroom

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
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	"github.com/m04kA/SMC-VetClinicService/internal/service/waitingroom/models"
	"github.com/m04kA/SMC-VetClinicService/pkg/logger"
	"github.com/m04kA/SMC-VetClinicService/pkg/ptr"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

type fakeMetrics struct {
	mu     sync.Mutex
	length map[string]int
}

func (m *fakeMetrics) SetWaitingQueueLength(status string, n int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.length == nil {
		m.length = make(map[string]int)
	}
	m.length[status] = n
}

type fixture struct {
	svc     *Service
	store   *memory.Store
	metrics *fakeMetrics
	clock   *clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	store := memory.NewStore()
	dir := memory.NewDirectory()
	log := logger.NewNop()

	f := &fixture{
		store:   store,
		metrics: &fakeMetrics{},
		clock:   &clock{t: at(2, 12, 0)},
	}

	f.svc = NewService(
		store.WaitingRoom(),
		projection.NewProjector(dir, log),
		store.TxManager(),
		f.metrics,
		time.UTC,
		log,
	).WithTimeProvider(f.clock)

	return f
}

func at(day, h, m int) time.Time {
	return time.Date(2026, 3, day, h, m, 0, 0, time.UTC)
}

func (f *fixture) seed(t *testing.T, e domain.WaitingRoomEntry) *domain.WaitingRoomEntry {
	t.Helper()

	e.ClientID = uuid.New()
	e.PetID = uuid.New()
	if e.Status == "" {
		e.Status = domain.WaitingStatusWaiting
	}
	if e.Priority == 0 {
		e.Priority = domain.PriorityNormal
	}
	e.Reason = "checkup"

	created, err := f.store.WaitingRoom().Create(context.Background(), &e)
	require.NoError(t, err)
	return created
}

func ids(list []*projection.WaitingRoomEntryResponse) []uuid.UUID {
	result := make([]uuid.UUID, 0, len(list))
	for _, e := range list {
		result = append(result, e.ID)
	}
	return result
}

func TestQueue_OrderedByPriorityThenArrival(t *testing.T) {
	f := newFixture(t)

	normalEarly := f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 9, 0)})
	urgent := f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 9, 5), Priority: domain.PriorityUrgent})
	normalLate := f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 9, 10)})
	emergency := f.seed(t, domain.WaitingRoomEntry{
		ArrivalTime: at(2, 9, 20),
		Priority:    domain.PriorityEmergency,
		Status:      domain.WaitingStatusInConsultation,
	})
	f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 8, 0), Status: domain.WaitingStatusCompleted})
	f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 8, 30), Status: domain.WaitingStatusCancelled})

	queue, err := f.svc.Queue(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []uuid.UUID{emergency.ID, urgent.ID, normalEarly.ID, normalLate.ID}, ids(queue))
	assert.Equal(t, "emergency", queue[0].Priority)
	assert.Equal(t, map[string]int{"waiting": 3, "in_consultation": 1}, f.metrics.length)
}

func TestConsultationPipeline(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	e := f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 11, 30)})

	_, err := f.svc.Complete(ctx, e.ID, &models.TransitionRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	resp, err := f.svc.MoveToConsultation(ctx, e.ID, &models.TransitionRequest{Actor: ptr.Ptr("vet-1")})
	require.NoError(t, err)
	assert.Equal(t, "in_consultation", resp.Status)
	require.NotNil(t, resp.ConsultationStartedAt)
	assert.True(t, resp.ConsultationStartedAt.Equal(at(2, 12, 0)))
	require.NotNil(t, resp.WaitMinutes)
	assert.Equal(t, 30, *resp.WaitMinutes)

	_, err = f.svc.MoveToConsultation(ctx, e.ID, &models.TransitionRequest{})
	require.ErrorIs(t, err, domain.ErrInvalidStatusTransition)

	f.clock.t = at(2, 12, 40)
	resp, err = f.svc.Complete(ctx, e.ID, &models.TransitionRequest{})
	require.NoError(t, err)
	assert.Equal(t, "completed", resp.Status)
	require.NotNil(t, resp.CompletedAt)
	assert.True(t, resp.CompletedAt.Equal(at(2, 12, 40)))

	_, err = f.svc.Cancel(ctx, e.ID, &models.CancelEntryRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidStatusTransition)
}

func TestCancel(t *testing.T) {
	f := newFixture(t)
	e := f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 11, 0), Status: domain.WaitingStatusInConsultation})

	resp, err := f.svc.Cancel(context.Background(), e.ID, &models.CancelEntryRequest{Reason: ptr.Ptr(" owner left ")})
	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, "owner left", *resp.CancellationReason)
	require.NotNil(t, resp.CancelledAt)
	assert.True(t, resp.CancelledAt.Equal(at(2, 12, 0)))

	queue, err := f.svc.Queue(context.Background())
	require.NoError(t, err)
	assert.Empty(t, queue)
}

func TestUpdatePriority(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	waiting := f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 11, 0)})
	inConsultation := f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 11, 5), Status: domain.WaitingStatusInConsultation})

	resp, err := f.svc.UpdatePriority(ctx, waiting.ID, &models.UpdatePriorityRequest{Priority: "3"})
	require.NoError(t, err)
	assert.Equal(t, "emergency", resp.Priority)

	_, err = f.svc.UpdatePriority(ctx, inConsultation.ID, &models.UpdatePriorityRequest{Priority: "urgent"})
	assert.ErrorIs(t, err, domain.ErrInvalidOperation)

	_, err = f.svc.UpdatePriority(ctx, waiting.ID, &models.UpdatePriorityRequest{Priority: "asap"})
	assert.ErrorIs(t, err, domain.ErrValidationFailed)

	_, err = f.svc.UpdatePriority(ctx, uuid.New(), &models.UpdatePriorityRequest{Priority: "urgent"})
	require.ErrorIs(t, err, domain.ErrNotFound)

	var notFound *domain.NotFoundError
	require.ErrorAs(t, err, &notFound)
	assert.Equal(t, domain.KindWaitingRoomEntry, notFound.Kind)
}

func TestStatisticsAndToday(t *testing.T) {
	f := newFixture(t)

	first := f.seed(t, domain.WaitingRoomEntry{
		ArrivalTime:           at(2, 9, 0),
		Status:                domain.WaitingStatusCompleted,
		ConsultationStartedAt: ptr.Ptr(at(2, 9, 20)),
		CompletedAt:           ptr.Ptr(at(2, 9, 50)),
	})
	second := f.seed(t, domain.WaitingRoomEntry{
		ArrivalTime:           at(2, 10, 0),
		Status:                domain.WaitingStatusInConsultation,
		ConsultationStartedAt: ptr.Ptr(at(2, 10, 10)),
	})
	third := f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 11, 0)})
	// Пришёл вчера и всё ещё ждёт
	f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(1, 17, 0)})

	stats, err := f.svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Waiting)
	assert.Equal(t, 1, stats.InConsultation)
	assert.Equal(t, 3, stats.CreatedToday)
	require.NotNil(t, stats.AverageWaitMinutes)
	assert.InDelta(t, 15.0, *stats.AverageWaitMinutes, 0.001)

	today, err := f.svc.Today(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{first.ID, second.ID, third.ID}, ids(today))
}

func TestStatistics_NoConsultationsYet(t *testing.T) {
	f := newFixture(t)
	f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 11, 0)})

	stats, err := f.svc.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Waiting)
	assert.Nil(t, stats.AverageWaitMinutes)
}

func TestGet(t *testing.T) {
	f := newFixture(t)
	e := f.seed(t, domain.WaitingRoomEntry{ArrivalTime: at(2, 11, 0)})

	resp, err := f.svc.Get(context.Background(), e.ID)
	require.NoError(t, err)
	assert.Equal(t, e.ID, resp.ID)
	assert.Equal(t, "waiting", resp.Status)

	_, err = f.svc.Get(context.Background(), uuid.New())
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestStorageUnavailable(t *testing.T) {
	f := newFixture(t)
	f.store.Err = errors.New("connection refused")

	_, err := f.svc.Queue(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = f.svc.Statistics(context.Background())
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)

	_, err = f.svc.MoveToConsultation(context.Background(), uuid.New(), &models.TransitionRequest{})
	assert.ErrorIs(t, err, domain.ErrStorageUnavailable)
}
