package waitingroom

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

// WaitingRoomRepository интерфейс репозитория очереди
type WaitingRoomRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.WaitingRoomEntry, error)
	List(ctx context.Context, filter domain.WaitingRoomFilter) ([]*domain.WaitingRoomEntry, error)
	Update(ctx context.Context, e *domain.WaitingRoomEntry) (*domain.WaitingRoomEntry, error)
}

// Projector интерфейс сборки ответов API
type Projector interface {
	WaitingRoomEntry(ctx context.Context, e *domain.WaitingRoomEntry) *projection.WaitingRoomEntryResponse
	WaitingRoomEntries(ctx context.Context, list []*domain.WaitingRoomEntry) []*projection.WaitingRoomEntryResponse
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics метрики очереди
type Metrics interface {
	SetWaitingQueueLength(status string, n int)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
