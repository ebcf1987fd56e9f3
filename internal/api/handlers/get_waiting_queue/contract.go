package get_waiting_queue

import (
	"context"

	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

type WaitingRoomService interface {
	Queue(ctx context.Context) ([]*projection.WaitingRoomEntryResponse, error)
	Today(ctx context.Context) ([]*projection.WaitingRoomEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
