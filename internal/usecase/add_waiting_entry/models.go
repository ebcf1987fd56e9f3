package add_waiting_entry

import "github.com/google/uuid"

// Request модель запроса на постановку в очередь
type Request struct {
	ClientID uuid.UUID
	PetID    uuid.UUID
	Reason   string
	Priority string  // normal | urgent | emergency (или 1..3), по умолчанию normal
	Notes    *string // Заметки администратора

	Actor *string // Кто добавил (X-User-ID)
}
