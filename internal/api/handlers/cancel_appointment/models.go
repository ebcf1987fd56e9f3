package cancel_appointment

import "github.com/m04kA/SMC-VetClinicService/internal/service/appointments/models"

// CancelAppointmentRequest HTTP request model, тело необязательно
type CancelAppointmentRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelAppointmentRequest) ToServiceRequest(actor *string) *models.CancelAppointmentRequest {
	return &models.CancelAppointmentRequest{
		Reason: r.Reason,
		Actor:  actor,
	}
}
