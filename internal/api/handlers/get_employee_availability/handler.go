package get_employee_availability

import (
	"net/http"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
)

const (
	msgInvalidEmployeeID = "некорректный ID сотрудника"
	msgMissingDate       = "дата обязательна"
	msgInvalidParams     = "некорректный формат даты (YYYY-MM-DD) или длительности"
)

type Handler struct {
	useCase GetEmployeeAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetEmployeeAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/employees/{employeeId}/available-slots
// Query params: date (required, YYYY-MM-DD), durationMinutes (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	employeeID, err := handlers.PathUUID(r, "employeeId")
	if err != nil {
		h.logger.Warn("GET /employees/{id}/available-slots - Invalid employee ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEmployeeID)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /employees/{id}/available-slots - Missing date")
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(employeeID, dateStr, r.URL.Query().Get("durationMinutes"))
	if err != nil {
		h.logger.Warn("GET /employees/{id}/available-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		if status := handlers.RespondDomainError(w, err); status >= http.StatusInternalServerError {
			h.logger.Error("GET /employees/{id}/available-slots - Failed to get slots: employee_id=%s, error=%v", employeeID, err)
		} else {
			h.logger.Warn("GET /employees/{id}/available-slots - Rejected: employee_id=%s, %v", employeeID, err)
		}
		return
	}

	h.logger.Info("GET /employees/{id}/available-slots - Slots retrieved successfully: employee_id=%s, date=%s, slots_count=%d",
		employeeID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
