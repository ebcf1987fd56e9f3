package change_appointment_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/service/appointments/models"
	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

type AppointmentService interface {
	ChangeStatus(ctx context.Context, id uuid.UUID, req *models.ChangeStatusRequest) (*projection.AppointmentResponse, error)
}

type RequestValidator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
