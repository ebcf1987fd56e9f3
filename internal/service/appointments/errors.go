package appointments

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	appointmentRepo "github.com/m04kA/SMC-VetClinicService/internal/infra/storage/appointment"
)

// repositoryError переводит ошибки репозитория в доменные
func repositoryError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
		return domain.NewNotFound(domain.KindAppointment, id)
	}
	if domain.IsKnownError(err) {
		return err
	}
	return fmt.Errorf("%w: %s - repository error: %v", domain.ErrStorageUnavailable, op, err)
}
