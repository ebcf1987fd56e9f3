package add_waiting_entry

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	waitingRoomRepo "github.com/m04kA/SMC-VetClinicService/internal/infra/storage/waitingroom"
)

// storageError оборачивает ошибку хранилища в domain.ErrStorageUnavailable
// Доменные ошибки пробрасываются без изменений
func storageError(step string, err error) error {
	if domain.IsKnownError(err) {
		return err
	}
	return fmt.Errorf("%w: AddWaitingEntry - %s: %v", domain.ErrStorageUnavailable, step, err)
}

// isNotWaiting true, если для пары клиент-питомец нет ожидающей записи
func isNotWaiting(err error) bool {
	return errors.Is(err, waitingRoomRepo.ErrEntryNotFound)
}

// isDuplicate true, если сработал частичный уникальный индекс
func isDuplicate(err error) bool {
	return errors.Is(err, waitingRoomRepo.ErrDuplicateEntry)
}
