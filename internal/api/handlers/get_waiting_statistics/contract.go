package get_waiting_statistics

import (
	"context"

	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

type WaitingRoomService interface {
	Statistics(ctx context.Context) (*projection.StatisticsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
