package add_waiting_entry

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-VetClinicService/pkg/validator"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "некорректные параметры записи в очередь"
)

type Handler struct {
	useCase   AddWaitingEntryUseCase
	validator RequestValidator
	logger    Logger
}

func NewHandler(useCase AddWaitingEntryUseCase, requestValidator RequestValidator, logger Logger) *Handler {
	return &Handler{
		useCase:   useCase,
		validator: requestValidator,
		logger:    logger,
	}
}

// Handle POST /api/v1/waiting-room
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req AddWaitingEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /waiting-room - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("POST /waiting-room - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgValidationFailed, validator.FieldErrors(err))
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(middleware.Actor(r.Context())))
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("POST /waiting-room - Failed to add entry: %v", err)
		} else {
			h.logger.Warn("POST /waiting-room - Rejected: %v", err)
		}
		return
	}

	h.logger.Info("POST /waiting-room - Entry added: id=%s, priority=%s", result.ID, result.Priority)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
