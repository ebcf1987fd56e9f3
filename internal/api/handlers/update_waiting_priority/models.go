package update_waiting_priority

import "github.com/m04kA/SMC-VetClinicService/internal/service/waitingroom/models"

// UpdatePriorityRequest HTTP request model
type UpdatePriorityRequest struct {
	Priority string `json:"priority" validate:"required"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *UpdatePriorityRequest) ToServiceRequest(actor *string) *models.UpdatePriorityRequest {
	return &models.UpdatePriorityRequest{
		Priority: r.Priority,
		Actor:    actor,
	}
}
