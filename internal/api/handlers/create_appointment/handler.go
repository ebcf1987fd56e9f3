package create_appointment

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-VetClinicService/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные параметры приёма"
)

type Handler struct {
	useCase   CreateAppointmentUseCase
	validator RequestValidator
	logger    Logger
}

func NewHandler(useCase CreateAppointmentUseCase, requestValidator RequestValidator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: requestValidator,
		logger:    logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("POST /appointments - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(middleware.Actor(r.Context())))
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
		} else {
			h.logger.Warn("POST /appointments - Rejected: %v", err)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created successfully: id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
