package create_appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) (*domain.Appointment, error)
	FindOverlapping(ctx context.Context, employeeID uuid.UUID, start, end time.Time, excludeID *uuid.UUID) ([]*domain.Appointment, error)
	LockEmployee(ctx context.Context, employeeID uuid.UUID) error
}

// DirectoryResolver интерфейс справочника клиентов, питомцев и сотрудников
type DirectoryResolver interface {
	ResolveClient(ctx context.Context, id uuid.UUID) (*domain.ClientSummary, error)
	ResolvePet(ctx context.Context, id uuid.UUID) (*domain.PetSummary, error)
	ResolveEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeSummary, error)
}

// Projector интерфейс сборки ответа API
type Projector interface {
	Appointment(ctx context.Context, a *domain.Appointment) *projection.AppointmentResponse
}

// TransactionManager интерфейс для управления транзакциями
// Атомарность проверки и вставки обеспечивает advisory lock, поэтому достаточно read committed:
// каждый запрос после получения блокировки видит уже зафиксированные строки
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Metrics доменные метрики записи на приём
type Metrics interface {
	RecordAppointmentCreated(serviceType string)
	RecordSchedulingConflict()
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
