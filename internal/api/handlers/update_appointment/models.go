package update_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	updateAppointment "github.com/m04kA/SMC-VetClinicService/internal/usecase/update_appointment"
)

// GuestRequest данные клиента без регистрации
type GuestRequest struct {
	Name  string  `json:"name" validate:"required"`
	Phone *string `json:"phone,omitempty"`
	Email *string `json:"email,omitempty" validate:"omitempty,email"`
}

// UpdateAppointmentRequest HTTP request model
// Отсутствующие поля не меняются
type UpdateAppointmentRequest struct {
	Title         *string       `json:"title,omitempty"`
	StartTime     *time.Time    `json:"startTime,omitempty"`
	EndTime       *time.Time    `json:"endTime,omitempty"`
	ServiceType   *string       `json:"serviceType,omitempty"`
	ClientID      *uuid.UUID    `json:"clientId,omitempty"`
	Guest         *GuestRequest `json:"guest,omitempty"`
	PetID         *uuid.UUID    `json:"petId,omitempty"`
	ClearPet      bool          `json:"clearPet,omitempty"`
	EmployeeID    *uuid.UUID    `json:"employeeId,omitempty"`
	ClearEmployee bool          `json:"clearEmployee,omitempty"`
	Reason        *string       `json:"reason,omitempty"`
	Notes         *string       `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *UpdateAppointmentRequest) ToUseCaseRequest(id uuid.UUID, actor *string) *updateAppointment.Request {
	req := &updateAppointment.Request{
		ID:            id,
		Title:         r.Title,
		StartTime:     r.StartTime,
		EndTime:       r.EndTime,
		ServiceType:   r.ServiceType,
		ClientID:      r.ClientID,
		PetID:         r.PetID,
		ClearPet:      r.ClearPet,
		EmployeeID:    r.EmployeeID,
		ClearEmployee: r.ClearEmployee,
		Reason:        r.Reason,
		Notes:         r.Notes,
		Actor:         actor,
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
