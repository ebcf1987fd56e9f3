package directory

import (
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// ToDomainError переводит ошибку справочника в доменную
// Отсутствие сущности -> NotFoundError, недоступность справочника -> ErrStorageUnavailable
func ToDomainError(err error, kind domain.EntityKind, id uuid.UUID) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrClientNotFound) || errors.Is(err, ErrPetNotFound) || errors.Is(err, ErrEmployeeNotFound) {
		return domain.NewNotFound(kind, id)
	}
	return fmt.Errorf("%w: directory lookup %s %s: %v", domain.ErrStorageUnavailable, kind, id, err)
}
