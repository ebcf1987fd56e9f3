package update_appointment

import (
	"context"

	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	updateAppointment "github.com/m04kA/SMC-VetClinicService/internal/usecase/update_appointment"
)

type UpdateAppointmentUseCase interface {
	Execute(ctx context.Context, req *updateAppointment.Request) (*projection.AppointmentResponse, error)
}

type RequestValidator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
