package create_appointment

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-VetClinicService/internal/domain"
)

// buildAppointment валидирует входные данные и собирает новый приём без обращения к справочнику
func buildAppointment(req *Request, limits domain.SchedulingLimits, now time.Time) (*domain.Appointment, error) {
	serviceType, err := domain.ParseServiceType(req.ServiceType)
	if err != nil {
		return nil, err
	}

	if req.ClientID != nil && req.Guest != nil {
		return nil, domain.NewValidationError("client", "provide either a registered client or guest info, not both")
	}
	if err := domain.ValidateClientIdentification(req.ClientID, req.Guest); err != nil {
		return nil, err
	}
	if req.ClientID == nil && req.PetID != nil {
		return nil, domain.NewValidationError("petId", "guest appointments cannot reference a registered pet")
	}

	if err := domain.ValidateInterval(req.StartTime, req.EndTime, limits.MinDurationMinutes, limits.MaxDurationMinutes); err != nil {
		return nil, err
	}
	if !req.EndTime.After(now) {
		return nil, domain.NewValidationError("endTime", "appointment must end in the future")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = domain.DefaultTitle(serviceType)
	}

	a := &domain.Appointment{
		Title:       title,
		StartTime:   req.StartTime,
		EndTime:     req.EndTime,
		ServiceType: serviceType,
		Status:      domain.AppointmentStatusScheduled,
		ClientID:    req.ClientID,
		Guest:       req.Guest,
		PetID:       req.PetID,
		EmployeeID:  req.EmployeeID,
		Reason:      req.Reason,
		Notes:       req.Notes,
		CreatedBy:   req.Actor,
		UpdatedBy:   req.Actor,
	}

	if err := domain.ValidateAppointmentText(a, limits); err != nil {
		return nil, err
	}

	return a, nil
}
