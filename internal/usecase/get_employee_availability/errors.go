package get_employee_availability

import (
	"fmt"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// storageError оборачивает ошибку хранилища в domain.ErrStorageUnavailable
func storageError(step string, err error) error {
	if domain.IsKnownError(err) {
		return err
	}
	return fmt.Errorf("%w: GetEmployeeAvailability - %s: %v", domain.ErrStorageUnavailable, step, err)
}
