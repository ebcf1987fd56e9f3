package get_waiting_entry

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
)

type WaitingRoomService interface {
	Get(ctx context.Context, id uuid.UUID) (*projection.WaitingRoomEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
