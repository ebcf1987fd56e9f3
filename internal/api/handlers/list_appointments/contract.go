package list_appointments

import (
	"context"

	"github.com/m04kA/SMC-VetClinicService/internal/service/appointments/models"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

type AppointmentService interface {
	List(ctx context.Context, req *models.ListAppointmentsRequest) ([]*projection.AppointmentResponse, error)
	Today(ctx context.Context) ([]*projection.AppointmentResponse, error)
	Upcoming(ctx context.Context) ([]*projection.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
