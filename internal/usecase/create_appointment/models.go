package create_appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// Request модель запроса на создание приёма
type Request struct {
	Title       string    // Заголовок (опционально, по умолчанию "<услуга> appointment")
	StartTime   time.Time // Начало приёма
	EndTime     time.Time // Конец приёма
	ServiceType string    // Тип услуги

	ClientID   *uuid.UUID        // Зарегистрированный клиент
	Guest      *domain.GuestInfo // Или гость без регистрации
	PetID      *uuid.UUID        // Питомец клиента (опционально)
	EmployeeID *uuid.UUID        // Сотрудник (опционально при создании)

	Reason *string // Причина визита
	Notes  *string // Заметки

	Actor *string // Кто создаёт (X-User-ID)
}
