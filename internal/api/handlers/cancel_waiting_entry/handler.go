package cancel_waiting_entry

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
)

const (
	msgInvalidEntryID     = "некорректный ID записи очереди"
	msgInvalidRequestBody = "некорректное тело запроса"
)

type Handler struct {
	service WaitingRoomService
	logger  Logger
}

func NewHandler(service WaitingRoomService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/waiting-room/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /waiting-room/{id}/cancel - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	var req CancelEntryRequest
	if err := handlers.DecodeJSON(r, &req); err != nil && !errors.Is(err, handlers.ErrEmptyBody) {
		h.logger.Warn("PATCH /waiting-room/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), id, req.ToServiceRequest(middleware.Actor(r.Context())))
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("PATCH /waiting-room/{id}/cancel - Failed to cancel entry: id=%s, error=%v", id, err)
		} else {
			h.logger.Warn("PATCH /waiting-room/{id}/cancel - Rejected: id=%s, %v", id, err)
		}
		return
	}

	h.logger.Info("PATCH /waiting-room/{id}/cancel - Entry cancelled: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
