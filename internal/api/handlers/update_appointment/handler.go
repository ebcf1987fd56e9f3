package update_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-VetClinicService/pkg/validator"
)

const (
	msgInvalidAppointmentID = "некорректный ID приёма"
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgValidationFailed     = "некорректные параметры приёма"
)

type Handler struct {
	useCase   UpdateAppointmentUseCase
	validator RequestValidator
	logger    Logger
}

func NewHandler(useCase UpdateAppointmentUseCase, requestValidator RequestValidator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: requestValidator,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/appointments/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid appointment ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	var req UpdateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("PATCH /appointments/{id} - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(id, middleware.Actor(r.Context())))
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("PATCH /appointments/{id} - Failed to update appointment: id=%s, error=%v", id, err)
		} else {
			h.logger.Warn("PATCH /appointments/{id} - Rejected: id=%s, %v", id, err)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id} - Appointment updated successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
