package change_appointment_status

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-VetClinicService/pkg/validator"
)

const (
	msgInvalidAppointmentID = "некорректный ID приёма"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidStatus        = "некорректный статус"
)

type Handler struct {
	service   AppointmentService
	validator RequestValidator
	logger    Logger
}

func NewHandler(service AppointmentService, requestValidator RequestValidator, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: requestValidator,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}/status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req ChangeStatusRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("PATCH /appointments/{id}/status - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgInvalidStatus, validator.FieldErrors(err))
		return
	}

	result, err := h.service.ChangeStatus(r.Context(), id, req.ToServiceRequest(middleware.Actor(r.Context())))
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("PATCH /appointments/{id}/status - Failed to change status: id=%s, error=%v", id, err)
		} else {
			h.logger.Warn("PATCH /appointments/{id}/status - Rejected: id=%s, %v", id, err)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/status - Status changed: id=%s, status=%s", id, result.Status)
	handlers.RespondJSON(w, http.StatusOK, result)
}
