package waitingroom

import "errors"

var (
	// ErrEntryNotFound возвращается, когда запись очереди не найдена
	ErrEntryNotFound = errors.New("waitingroom.repository: entry not found")

	// ErrDuplicateEntry возвращается при нарушении уникальности ожидающей записи (клиент + питомец)
	ErrDuplicateEntry = errors.New("waitingroom.repository: pet is already waiting")

	// ErrTransaction возвращается, когда операция требует активной транзакции
	ErrTransaction = errors.New("waitingroom.repository: transaction required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("waitingroom.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("waitingroom.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("waitingroom.repository: failed to scan row")
)
