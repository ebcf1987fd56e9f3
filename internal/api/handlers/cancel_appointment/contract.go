package cancel_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/service/appointments/models"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

type AppointmentService interface {
	Cancel(ctx context.Context, id uuid.UUID, req *models.CancelAppointmentRequest) (*projection.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
