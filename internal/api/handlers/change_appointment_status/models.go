package change_appointment_status

import "github.com/m04kA/SMC-VetClinicService/internal/service/appointments/models"

// ChangeStatusRequest HTTP request model
type ChangeStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=scheduled confirmed in_progress completed cancelled no_show"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *ChangeStatusRequest) ToServiceRequest(actor *string) *models.ChangeStatusRequest {
	return &models.ChangeStatusRequest{
		Status: r.Status,
		Actor:  actor,
	}
}
