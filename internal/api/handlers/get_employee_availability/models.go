package get_employee_availability

import (
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	getEmployeeAvailability "github.com/m04kA/SMC-VetClinicService/internal/usecase/get_employee_availability"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	EmployeeID      uuid.UUID       `json:"employeeId"`
	EmployeeName    string          `json:"employeeName"`
	Date            string          `json:"date"`
	DurationMinutes int             `json:"durationMinutes"`
	Slots           []AvailableSlot `json:"slots"`
}

// AvailableSlot модель временного интервала
type AvailableSlot struct {
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
	Available bool      `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getEmployeeAvailability.Response) *AvailableSlotsResponse {
	slots := make([]AvailableSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = AvailableSlot{
			StartTime: slot.Start,
			EndTime:   slot.End,
			Available: slot.Available,
		}
	}

	return &AvailableSlotsResponse{
		EmployeeID:      resp.EmployeeID,
		EmployeeName:    resp.EmployeeName,
		Date:            resp.Date.Format(domain.DateFormat),
		DurationMinutes: resp.DurationMinutes,
		Slots:           slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(employeeID uuid.UUID, dateStr, durationStr string) (*getEmployeeAvailability.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getEmployeeAvailability.Request{
		EmployeeID: employeeID,
		Date:       date,
	}

	if durationStr != "" {
		if req.DurationMinutes, err = strconv.Atoi(durationStr); err != nil {
			return nil, err
		}
	}

	return req, nil
}
