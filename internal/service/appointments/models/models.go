package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// Request модели

// ListAppointmentsRequest фильтры списка приёмов
// Date и From/To взаимоисключающие
type ListAppointmentsRequest struct {
	From       *time.Time // Начало периода (по времени начала приёма, включительно)
	To         *time.Time // Конец периода (исключительно)
	Date       *time.Time // Календарный день, учитываются только год, месяц и число
	ClientID   *uuid.UUID
	PetID      *uuid.UUID
	EmployeeID *uuid.UUID
	Status     *string
}

// ChangeStatusRequest запрос на смену статуса приёма
type ChangeStatusRequest struct {
	Status string
	Actor  *string
}

// CancelAppointmentRequest запрос на отмену приёма
type CancelAppointmentRequest struct {
	Reason *string
	Actor  *string
}

// ToDomainFilter конвертирует request в domain фильтр
// Календарная дата Date переводится в интервал [начало дня, начало следующего дня) в поясе loc
func (r *ListAppointmentsRequest) ToDomainFilter(loc *time.Location) (domain.AppointmentFilter, error) {
	filter := domain.AppointmentFilter{
		From:       r.From,
		To:         r.To,
		ClientID:   r.ClientID,
		PetID:      r.PetID,
		EmployeeID: r.EmployeeID,
	}

	if r.Date != nil {
		if r.From != nil || r.To != nil {
			return filter, domain.NewValidationError("date", "date cannot be combined with from/to")
		}
		from := domain.CalendarDay(*r.Date, loc)
		to := from.AddDate(0, 0, 1)
		filter.From = &from
		filter.To = &to
	}

	if filter.From != nil && filter.To != nil && !filter.To.After(*filter.From) {
		return filter, domain.NewValidationError("to", "to must be after from")
	}

	if r.Status != nil {
		status, err := domain.ParseAppointmentStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Statuses = []domain.AppointmentStatus{status}
	}

	return filter, nil
}
