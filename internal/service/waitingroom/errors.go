package waitingroom

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	waitingRoomRepo "github.com/m04kA/SMC-VetClinicService/internal/infra/storage/waitingroom"
)

// repositoryError переводит ошибки репозитория в доменные
func repositoryError(op string, id uuid.UUID, err error) error {
	if errors.Is(err, waitingRoomRepo.ErrEntryNotFound) {
		return domain.NewNotFound(domain.KindWaitingRoomEntry, id)
	}
	if domain.IsKnownError(err) {
		return err
	}
	return fmt.Errorf("%w: %s - repository error: %v", domain.ErrStorageUnavailable, op, err)
}
