package get_waiting_queue

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

const (
	msgInvalidView = "view должен быть today или отсутствовать"
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

// Handle GET /api/v1/waiting-room/queue
// Без параметров возвращает активную очередь, view=today все записи за сегодня
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result []*projection.WaitingRoomEntryResponse
		err    error
	)

	switch view := r.URL.Query().Get("view"); view {
	case "":
		result, err = h.service.Queue(r.Context())
	case viewToday:
		result, err = h.service.Today(r.Context())
	default:
		h.logger.Warn("GET /waiting-room/queue - Unknown view %q", view)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /waiting-room/queue - Failed to get queue: %v", err)
		} else {
			h.logger.Warn("GET /waiting-room/queue - Rejected: %v", err)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, WaitingQueueResponse{
		Entries: result,
		Total:   len(result),
	})
}
