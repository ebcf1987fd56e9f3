package move_to_consultation

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/api/middleware"
	"github.com/m04kA/SMC-VetClinicService/internal/service/waitingroom/models"
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

// Handle PATCH /api/v1/waiting-room/{id}/consultation
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := handlers.PathUUID(r, "id")
	if err != nil {
		h.logger.Warn("PATCH /waiting-room/{id}/consultation - Invalid entry ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEntryID)
		return
	}

	req := &models.TransitionRequest{Actor: middleware.Actor(r.Context())}
	result, err := h.service.MoveToConsultation(r.Context(), id, req)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("PATCH /waiting-room/{id}/consultation - Failed to start consultation: id=%s, error=%v", id, err)
		} else {
			h.logger.Warn("PATCH /waiting-room/{id}/consultation - Rejected: id=%s, %v", id, err)
		}
		return
	}

	h.logger.Info("PATCH /waiting-room/{id}/consultation - Consultation started: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
