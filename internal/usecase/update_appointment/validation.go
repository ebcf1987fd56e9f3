package update_appointment

import (
	"strings"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// changes набор изменённых полей, от которого зависят повторные проверки
type changes struct {
	client   bool
	pet      bool
	employee bool
	service  bool
	interval bool
}

// validateRequest проверяет запрос без загрузки текущего состояния
func validateRequest(req *Request) error {
	if req.ClientID != nil && req.Guest != nil {
		return domain.NewValidationError("client", "provide either a registered client or guest info, not both")
	}
	if req.PetID != nil && req.ClearPet {
		return domain.NewValidationError("petId", "cannot set and clear the pet at the same time")
	}
	if req.EmployeeID != nil && req.ClearEmployee {
		return domain.NewValidationError("employeeId", "cannot set and clear the employee at the same time")
	}
	if req.ServiceType != nil {
		if _, err := domain.ParseServiceType(*req.ServiceType); err != nil {
			return err
		}
	}
	return nil
}

// applyPatch накладывает изменения на копию приёма и возвращает набор изменений
func applyPatch(current *domain.Appointment, req *Request) (*domain.Appointment, changes) {
	updated := *current
	var ch changes

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if title == "" {
			title = domain.DefaultTitle(updated.ServiceType)
		}
		updated.Title = title
	}

	if req.ServiceType != nil && domain.ServiceType(*req.ServiceType) != current.ServiceType {
		updated.ServiceType = domain.ServiceType(*req.ServiceType)
		ch.service = true
	}

	if req.StartTime != nil && !req.StartTime.Equal(current.StartTime) {
		updated.StartTime = *req.StartTime
		ch.interval = true
	}
	if req.EndTime != nil && !req.EndTime.Equal(current.EndTime) {
		updated.EndTime = *req.EndTime
		ch.interval = true
	}

	switch {
	case req.ClientID != nil:
		if !sameID(current.ClientID, req.ClientID) || current.Guest != nil {
			ch.client = true
		}
		updated.ClientID = req.ClientID
		updated.Guest = nil
	case req.Guest != nil:
		updated.ClientID = nil
		updated.Guest = req.Guest
		ch.client = true
	}

	switch {
	case req.ClearPet:
		ch.pet = current.PetID != nil
		updated.PetID = nil
	case req.PetID != nil:
		ch.pet = !sameID(current.PetID, req.PetID)
		updated.PetID = req.PetID
	}

	switch {
	case req.ClearEmployee:
		ch.employee = current.EmployeeID != nil
		updated.EmployeeID = nil
	case req.EmployeeID != nil:
		ch.employee = !sameID(current.EmployeeID, req.EmployeeID)
		updated.EmployeeID = req.EmployeeID
	}

	if req.Reason != nil {
		updated.Reason = req.Reason
	}
	if req.Notes != nil {
		updated.Notes = req.Notes
	}
	if req.Actor != nil {
		updated.UpdatedBy = req.Actor
	}

	return &updated, ch
}

func sameID(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
