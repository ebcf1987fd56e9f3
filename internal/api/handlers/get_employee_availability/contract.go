package get_employee_availability

import (
	"context"

	getEmployeeAvailability "github.com/m04kA/SMC-VetClinicService/internal/usecase/get_employee_availability"
)

type GetEmployeeAvailabilityUseCase interface {
	Execute(ctx context.Context, req *getEmployeeAvailability.Request) (*getEmployeeAvailability.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
