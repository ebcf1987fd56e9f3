package get_employee_availability

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// validateRequest валидирует входные данные запроса и возвращает длительность интервала
func validateRequest(req *Request, limits domain.SchedulingLimits, defaultMinutes int) (time.Duration, error) {
	if req.EmployeeID == uuid.Nil {
		return 0, domain.NewValidationError("employeeId", "is required")
	}

	if req.Date.IsZero() {
		return 0, domain.NewValidationError("date", "is required")
	}

	minutes := req.DurationMinutes
	if minutes == 0 {
		minutes = defaultMinutes
	}
	if minutes < limits.MinDurationMinutes || minutes > limits.MaxDurationMinutes {
		return 0, domain.NewValidationError("durationMinutes",
			fmt.Sprintf("must be between %d and %d", limits.MinDurationMinutes, limits.MaxDurationMinutes))
	}

	return time.Duration(minutes) * time.Minute, nil
}

// isDateInPast проверяет, что день раньше сегодняшнего в часовом поясе клиники
func isDateInPast(day, now time.Time, loc *time.Location) bool {
	return domain.StartOfDay(day, loc).Before(domain.StartOfDay(now, loc))
}
