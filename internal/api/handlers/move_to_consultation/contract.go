package move_to_consultation

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	"github.com/m04kA/SMC-VetClinicService/internal/service/waitingroom/models"
)

type WaitingRoomService interface {
	MoveToConsultation(ctx context.Context, id uuid.UUID, req *models.TransitionRequest) (*projection.WaitingRoomEntryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
