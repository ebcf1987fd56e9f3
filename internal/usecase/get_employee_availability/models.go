package get_employee_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// Request модель запроса свободных интервалов сотрудника
type Request struct {
	EmployeeID      uuid.UUID
	Date            time.Time // День в часовом поясе клиники, время игнорируется
	DurationMinutes int       // 0 - шаг сетки из конфигурации
}

// Response модель ответа со списком интервалов
type Response struct {
	EmployeeID      uuid.UUID
	EmployeeName    string
	Date            time.Time
	DurationMinutes int
	Slots           []domain.Slot // Все интервалы рабочего дня, занятые с Available=false
}

// Settings параметры сетки интервалов
type Settings struct {
	WorkingHours    domain.WorkingHours
	SlotStepMinutes int
	Location        *time.Location
}
