package add_waiting_entry

import (
	"github.com/google/uuid"

	addWaitingEntry "github.com/m04kA/SMC-VetClinicService/internal/usecase/add_waiting_entry"
)

// AddWaitingEntryRequest HTTP request model
type AddWaitingEntryRequest struct {
	ClientID uuid.UUID `json:"clientId" validate:"required"`
	PetID    uuid.UUID `json:"petId" validate:"required"`
	Reason   string    `json:"reason" validate:"required"`
	Priority string    `json:"priority,omitempty"` // normal (по умолчанию), urgent, emergency
	Notes    *string   `json:"notes,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *AddWaitingEntryRequest) ToUseCaseRequest(actor *string) *addWaitingEntry.Request {
	return &addWaitingEntry.Request{
		ClientID: r.ClientID,
		PetID:    r.PetID,
		Reason:   r.Reason,
		Priority: r.Priority,
		Notes:    r.Notes,
		Actor:    actor,
	}
}
