//go:build integration

package waitingroom_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/infra/storage/storagetest"
	"github.com/m04kA/SMC-VetClinicService/internal/infra/storage/waitingroom"
)

func newEntry(clientID, petID uuid.UUID, priority domain.Priority, arrival time.Time) *domain.WaitingRoomEntry {
	return &domain.WaitingRoomEntry{
		ClientID:    clientID,
		PetID:       petID,
		ArrivalTime: arrival,
		Status:      domain.WaitingStatusWaiting,
		Priority:    priority,
		Reason:      "limping",
	}
}

func TestRepository_DuplicateWaitingEntry(t *testing.T) {
	pg := storagetest.StartPostgres(t)
	repo := waitingroom.NewRepository(pg.DB)
	ctx := context.Background()

	clientID, petID := uuid.New(), uuid.New()
	arrival := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

	first, err := repo.Create(ctx, newEntry(clientID, petID, domain.PriorityNormal, arrival))
	require.NoError(t, err)

	_, err = repo.Create(ctx, newEntry(clientID, petID, domain.PriorityUrgent, arrival.Add(time.Minute)))
	assert.ErrorIs(t, err, waitingroom.ErrDuplicateEntry)

	// После завершения пара снова может встать в очередь
	first.Status = domain.WaitingStatusCancelled
	now := arrival.Add(5 * time.Minute)
	first.CancelledAt = &now
	_, err = repo.Update(ctx, first)
	require.NoError(t, err)

	_, err = repo.Create(ctx, newEntry(clientID, petID, domain.PriorityNormal, arrival.Add(10*time.Minute)))
	assert.NoError(t, err)
}

func TestRepository_QueueOrder(t *testing.T) {
	pg := storagetest.StartPostgres(t)
	repo := waitingroom.NewRepository(pg.DB)
	ctx := context.Background()

	base := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	normal0900, err := repo.Create(ctx, newEntry(uuid.New(), uuid.New(), domain.PriorityNormal, base))
	require.NoError(t, err)
	urgent0905, err := repo.Create(ctx, newEntry(uuid.New(), uuid.New(), domain.PriorityUrgent, base.Add(5*time.Minute)))
	require.NoError(t, err)
	normal0910, err := repo.Create(ctx, newEntry(uuid.New(), uuid.New(), domain.PriorityNormal, base.Add(10*time.Minute)))
	require.NoError(t, err)

	queue, err := repo.List(ctx, domain.WaitingRoomFilter{Statuses: domain.ActiveQueueStatuses})
	require.NoError(t, err)
	require.Len(t, queue, 3)
	assert.Equal(t, urgent0905.ID, queue[0].ID)
	assert.Equal(t, normal0900.ID, queue[1].ID)
	assert.Equal(t, normal0910.ID, queue[2].ID)
}

func TestRepository_FindWaitingAndLockPair(t *testing.T) {
	pg := storagetest.StartPostgres(t)
	repo := waitingroom.NewRepository(pg.DB)
	ctx := context.Background()

	clientID, petID := uuid.New(), uuid.New()

	_, err := repo.FindWaiting(ctx, clientID, petID)
	assert.ErrorIs(t, err, waitingroom.ErrEntryNotFound)

	created, err := repo.Create(ctx, newEntry(clientID, petID, domain.PriorityEmergency, time.Now().UTC()))
	require.NoError(t, err)

	err = pg.Tx.DoSerializable(ctx, func(txCtx context.Context) error {
		if err := repo.LockPair(txCtx, clientID, petID); err != nil {
			return err
		}
		found, err := repo.FindWaiting(txCtx, clientID, petID)
		if err != nil {
			return err
		}
		assert.Equal(t, created.ID, found.ID)
		return nil
	})
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.PriorityEmergency, got.Priority)
}
