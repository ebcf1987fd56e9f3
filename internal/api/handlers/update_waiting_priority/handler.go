package update_waiting_priority

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-VetClinicService/pkg/validator"
)

const (
	msgInvalidEntryID     = "некорректный ID записи очереди"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidPriority    = "некорректный приоритет"
)

type Handler struct {
	service   WaitingRoomService
	validator RequestValidator
	logger    Logger
}

func NewHandler(service WaitingRoomService, requestValidator RequestValidator, logger Logger) *Handler {
	return &Handler{
		service:   service,
		validator: requestValidator,
		logger:    logger,
	}
}

// Handle PATCH /api/v1/waiting-room/{id}/priority
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /waiting-room/{id}/priority - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	var req UpdatePriorityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /waiting-room/{id}/priority - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		h.logger.Warn("PATCH /waiting-room/{id}/priority - Validation failed: %v", err)
		handlers.RespondValidationError(w, msgInvalidPriority, validator.FieldErrors(err))
		return
	}

	result, err := h.service.UpdatePriority(r.Context(), id, req.ToServiceRequest(middleware.Actor(r.Context())))
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("PATCH /waiting-room/{id}/priority - Failed to update priority: id=%s, error=%v", id, err)
		} else {
			h.logger.Warn("PATCH /waiting-room/{id}/priority - Rejected: id=%s, %v", id, err)
		}
		return
	}

	h.logger.Info("PATCH /waiting-room/{id}/priority - Priority updated: id=%s, priority=%s", id, result.Priority)
	handlers.RespondJSON(w, http.StatusOK, result)
}
