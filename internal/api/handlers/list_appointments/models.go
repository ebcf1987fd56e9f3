package list_appointments

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-VetClinicService/internal/api/handlers"
	"github.com/m04kA/SMC-VetClinicService/internal/domain"
	"github.com/m04kA/SMC-VetClinicService/internal/service/appointments/models"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

const (
	viewToday    = "today"
	viewUpcoming = "upcoming"
)

// ListAppointmentsResponse HTTP response model
type ListAppointmentsResponse struct {
	Appointments []*projection.AppointmentResponse `json:"appointments"`
	Total        int                               `json:"total"`
}

// ToServiceRequest собирает фильтры из query параметров
// date в формате YYYY-MM-DD, from/to в RFC3339
func ToServiceRequest(r *http.Request) (*models.ListAppointmentsRequest, error) {
	req := &models.ListAppointmentsRequest{
		Status: handlers.QueryString(r, "status"),
	}

	var err error
	if req.From, err = handlers.QueryTime(r, "from"); err != nil {
		return nil, err
	}
	if req.To, err = handlers.QueryTime(r, "to"); err != nil {
		return nil, err
	}
	if req.ClientID, err = handlers.QueryUUID(r, "clientId"); err != nil {
		return nil, err
	}
	if req.PetID, err = handlers.QueryUUID(r, "petId"); err != nil {
		return nil, err
	}
	if req.EmployeeID, err = handlers.QueryUUID(r, "employeeId"); err != nil {
		return nil, err
	}

	if raw := r.URL.Query().Get("date"); raw != "" {
		date, err := time.Parse(domain.DateFormat, raw)
		if err != nil {
			return nil, fmt.Errorf("date: %w", err)
		}
		req.Date = &date
	}

	return req, nil
}
