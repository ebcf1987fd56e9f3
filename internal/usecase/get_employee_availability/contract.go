package get_employee_availability

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// AppointmentRepository интерфейс репозитория приёмов
type AppointmentRepository interface {
	// List получает приёмы по фильтру, отсортированные по времени начала
	List(ctx context.Context, filter domain.AppointmentFilter) ([]*domain.Appointment, error)
}

// EmployeeResolver интерфейс справочника сотрудников
type EmployeeResolver interface {
	ResolveEmployee(ctx context.Context, id uuid.UUID) (*domain.EmployeeSummary, error)
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
