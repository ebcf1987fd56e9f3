package add_waiting_entry

import (
	"context"

	"github.com/m04kA/SMC-VetClinicService/internal/service/projection"
	addWaitingEntry "github.com/m04kA/SMC-VetClinicService/internal/usecase/add_waiting_entry"
)

type AddWaitingEntryUseCase interface {
	Execute(ctx context.Context, req *addWaitingEntry.Request) (*projection.WaitingRoomEntryResponse, error)
}

type RequestValidator interface {
	Struct(s interface{}) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
