package list_appointments

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidView   = "view должен быть today или upcoming"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments
// Query params: view (today|upcoming) или from, to, date, clientId, petId, employeeId, status
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var (
		result []*projection.AppointmentResponse
		err    error
	)

	switch view := r.URL.Query().Get("view"); view {
	case viewToday:
		result, err = h.service.Today(r.Context())
	case viewUpcoming:
		result, err = h.service.Upcoming(r.Context())
	case "":
		serviceReq, parseErr := ToServiceRequest(r)
		if parseErr != nil {
			h.logger.Warn("GET /appointments - Invalid parameters: %v", parseErr)
			handlers.RespondBadRequest(w, msgInvalidParams)
			return
		}
		result, err = h.service.List(r.Context(), serviceReq)
	default:
		h.logger.Warn("GET /appointments - Unknown view %q", view)
		handlers.RespondBadRequest(w, msgInvalidView)
		return
	}

	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /appointments - Failed to list appointments: %v", err)
		} else {
			h.logger.Warn("GET /appointments - Rejected: %v", err)
		}
		return
	}

	h.logger.Info("GET /appointments - Found %d appointments", len(result))
	handlers.RespondJSON(w, http.StatusOK, ListAppointmentsResponse{
		Appointments: result,
		Total:        len(result),
	})
}
