package get_waiting_entry

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
)

const (
	msgInvalidEntryID = "некорректный ID записи очереди"
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

// Handle GET /api/v1/waiting-room/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("GET /waiting-room/{id} - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	result, err := h.service.Get(r.Context(), id)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /waiting-room/{id} - Failed to get entry: id=%s, error=%v", id, err)
		} else {
			h.logger.Warn("GET /waiting-room/{id} - %v", err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
