package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	createAppointment "github.com/m04kA/SMC-VetClinicService/internal/usecase/create_appointment"
)

// GuestRequest данные клиента без регистрации
type GuestRequest struct {
	Name  string  `json:"name" validate:"required"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	Title       string        `json:"title"`
	StartTime   time.Time     `json:"startTime" validate:"required"`                 // RFC3339
	EndTime     time.Time     `json:"endTime" validate:"required,gtfield=StartTime"` // RFC3339
	ServiceType string        `json:"serviceType" validate:"required"`               // consultation, surgery, ...
	ClientID    *uuid.UUID    `json:"clientId,omitempty"`                            // Зарегистрированный клиент
	Guest       *GuestRequest `json:"guest,omitempty"`                               // Или гость
	PetID       *uuid.UUID    `json:"petId,omitempty"`
	EmployeeID  *uuid.UUID    `json:"employeeId,omitempty"`
	Reason      *string       `json:"reason,omitempty"`
	Notes       *string       `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateAppointmentRequest) ToUseCaseRequest(actor *string) *createAppointment.Request {
	req := &createAppointment.Request{
		Title:       r.Title,
		StartTime:   r.StartTime,
		EndTime:     r.EndTime,
		ServiceType: r.ServiceType,
		ClientID:    r.ClientID,
		PetID:       r.PetID,
		EmployeeID:  r.EmployeeID,
		Reason:      r.Reason,
		Notes:       r.Notes,
		Actor:       actor,
	}
	if r.Guest != nil {
		req.Guest = &domain.GuestInfo{
			Name:  r.Guest.Name,
			Phone: r.Guest.Phone,
			Email: r.Guest.Email,
		}
	}
	return req
}
