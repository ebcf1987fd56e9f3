package directory

import "errors"

var (
	// ErrClientNotFound возвращается, когда клиент не найден в справочнике
	ErrClientNotFound = errors.New("directory: client not found")

	// ErrPetNotFound возвращается, когда питомец не найден в справочнике
	ErrPetNotFound = errors.New("directory: pet not found")

	// ErrEmployeeNotFound возвращается, когда сотрудник не найден в справочнике
	ErrEmployeeNotFound = errors.New("directory: employee not found")

	// ErrInternal возвращается при внутренних ошибках клиента (сеть, таймаут)
	ErrInternal = errors.New("directory client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе справочника
	ErrInvalidResponse = errors.New("directory client: invalid response")
)
