package create_appointment

import (
	"context"

	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	createAppointment "github.com/m04kA/SMC-VetClinicService/internal/usecase/create_appointment"
)

type CreateAppointmentUseCase interface {
	Execute(ctx context.Context, req *createAppointment.Request) (*projection.AppointmentResponse, error)
}

type RequestValidator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
