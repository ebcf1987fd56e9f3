package add_waiting_entry

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// validateRequest проверяет входные данные и возвращает приоритет
func validateRequest(req *Request, maxTextLength int) (domain.Priority, error) {
	if req.ClientID == uuid.Nil {
		return 0, domain.NewValidationError("clientId", "client is required")
	}
	if req.PetID == uuid.Nil {
		return 0, domain.NewValidationError("petId", "pet is required")
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return 0, domain.NewValidationError("reason", "reason is required")
	}
	if err := domain.ValidateLength("reason", &reason, maxTextLength); err != nil {
		return 0, err
	}
	if err := domain.ValidateLength("notes", req.Notes, domain.MaxNotesLength); err != nil {
		return 0, err
	}

	if strings.TrimSpace(req.Priority) == "" {
		return domain.PriorityNormal, nil
	}
	return domain.ParsePriority(req.Priority)
}
