package save_booking_draft

import (
	"context"

	saveDraft "github.com/m04kA/SMC-ParkingService/internal/usecase/save_draft"
)

type SaveDraftUseCase interface {
	Execute(ctx context.Context, req *saveDraft.Request) (*saveDraft.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
