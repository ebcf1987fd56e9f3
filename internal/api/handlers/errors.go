package handlers

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

const (
	msgStorageUnavailable = "сервис временно недоступен, повторите запрос позже"
)

// StatusForError возвращает HTTP статус для доменной ошибки
func StatusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrValidationFailed):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrSchedulingConflict),
		errors.Is(err, domain.ErrDuplicateWaitingEntry):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidStatusTransition),
		errors.Is(err, domain.ErrInvalidOperation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrStorageUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// RespondDomainError пишет ответ для ошибки usecase или сервиса и возвращает статус
// Текст доменной ошибки отдаётся клиенту, детали инфраструктурных ошибок нет
func RespondDomainError(w http.ResponseWriter, err error) int {
	status := StatusForError(err)

	switch status {
	case http.StatusBadRequest:
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			RespondValidationError(w, validationErr.Error(), map[string]string{validationErr.Field: validationErr.Reason})
			return status
		}
		RespondBadRequest(w, err.Error())
	case http.StatusServiceUnavailable:
		RespondError(w, status, msgStorageUnavailable)
	case http.StatusInternalServerError:
		RespondInternalError(w)
	default:
		RespondError(w, status, err.Error())
	}

	return status
}
