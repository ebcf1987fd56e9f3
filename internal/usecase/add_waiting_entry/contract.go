package add_waiting_entry

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

// WaitingRoomRepository интерфейс репозитория очереди
type WaitingRoomRepository interface {
	Create(ctx context.Context, e *domain.WaitingRoomEntry) (*domain.WaitingRoomEntry, error)
	FindWaiting(ctx context.Context, clientID, petID uuid.UUID) (*domain.WaitingRoomEntry, error)
	LockPair(ctx context.Context, clientID, petID uuid.UUID) error
}

// DirectoryResolver интерфейс справочника клиентов и питомцев
type DirectoryResolver interface {
	ResolveClient(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error)
	ResolvePet(ctx context.Context, id uuid.UUID) (*domain.PetSummary, error)
}

// Projector интерфейс сборки ответа API
type Projector interface {
	WaitingRoomEntry(ctx context.Context, e *domain.WaitingRoomEntry) *projection.WaitingRoomEntryResponse
}

// TransactionManager интерфейс для управления транзакциями
// Атомарность проверки и вставки обеспечивает advisory lock, поэтому достаточно read committed:
// каждый запрос после получения блокировки видит уже зафиксированные строки
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные метрики очереди
type Metrics interface {
	RecordWaitingRoomAdmission(priority string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
