package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
)

const (
	msgInvalidAppointmentID = "некорректный ID приёма"
	msgInvalidRequestBody   = "некорректное тело запроса"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}/cancel
// Повторная отмена возвращает 200 без изменений
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req CancelAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), id, req.ToServiceRequest(middleware.Actor(r.Context())))
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel appointment: id=%s, error=%v", id, err)
		} else {
			h.logger.Warn("PATCH /appointments/{id}/cancel - Rejected: id=%s, %v", id, err)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
