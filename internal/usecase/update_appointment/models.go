package update_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// Request частичное обновление приёма
// nil означает "не менять"
type Request struct {
	ID uuid.UUID

	Title       *string
	StartTime   *time.Time
	EndTime     *time.Time
	ServiceType *string

	// ClientID и Guest взаимоисключающие: установка одного сбрасывает другое
	ClientID *uuid.UUID
	Guest    *domain.GuestInfo

	PetID         *uuid.UUID
	ClearPet      bool
	EmployeeID    *uuid.UUID
	ClearEmployee bool

	Reason *string
	Notes  *string

	Actor *string
}
