package update_waiting_priority

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	"github.com/m04kA/SMC-VetClinicService/internal/service/waitingroom/models"
)

type WaitingRoomService interface {
	UpdatePriority(ctx context.Context, id uuid.UUID, req *models.UpdatePriorityRequest) (*projection.WaitingRoomEntryResponse, error)
}

type RequestValidator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
