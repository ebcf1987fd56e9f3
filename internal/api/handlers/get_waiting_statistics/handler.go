package get_waiting_statistics

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
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

// Handle GET /api/v1/waiting-room/statistics
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Statistics(r.Context())
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /waiting-room/statistics - Failed to compute statistics: %v", err)
		} else {
			h.logger.Warn("GET /waiting-room/statistics - Rejected: %v", err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
