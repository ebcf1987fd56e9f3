package cancel_waiting_entry

import "github.com/m04kA/SMC-VetClinicService/internal/service/waitingroom/models"

// CancelEntryRequest HTTP request model, тело необязательно
type CancelEntryRequest struct {
	Reason *string `json:"reason,omitempty"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelEntryRequest) ToServiceRequest(actor *string) *models.CancelEntryRequest {
	return &models.CancelEntryRequest{
		Reason: r.Reason,
		Actor:  actor,
	}
}
