package get_employee_availability

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// generateSlots генерирует интервалы длительностью duration с шагом step
// от начала рабочего дня; интервал не выходит за время закрытия
// На сегодня отбрасываются интервалы, начавшиеся раньше now
func generateSlots(open, closing time.Time, duration, step time.Duration, now time.Time) []domain.Slot {
	slots := make([]domain.Slot, 0)

	for start := open; !start.Add(duration).After(closing); start = start.Add(step) {
		if start.Before(now) {
			continue
		}
		slots = append(slots, domain.Slot{
			Start: start,
			End:   start.Add(duration),
		})
	}

	return slots
}

// markAvailability помечает интервалы, не пересекающиеся с приёмами сотрудника
// Граничащие интервалы (конец одного равен началу другого) не конфликтуют
func markAvailability(slots []domain.Slot, employeeID uuid.UUID, appointments []*domain.Appointment) int {
	free := 0
	for i := range slots {
		conflict := domain.FindConflict(appointments, employeeID, slots[i].Start, slots[i].End, nil)
		slots[i].Available = conflict == nil
		if slots[i].Available {
			free++
		}
	}
	return free
}
