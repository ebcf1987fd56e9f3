package create_appointment

import (
	"fmt"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// storageError оборачивает ошибку хранилища в domain.ErrStorageUnavailable
// Доменные ошибки пробрасываются без изменений
func storageError(step string, err error) error {
	if domain.IsKnownError(err) {
		return err
	}
	return fmt.Errorf("%w: CreateAppointment - %s: %v", domain.ErrStorageUnavailable, step, err)
}
