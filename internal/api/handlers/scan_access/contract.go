package scan_access

import (
	"context"

	scanAccess "github.com/m04kA/SMC-ParkingService/internal/usecase/scan_access"
)

type ScanAccessUseCase interface {
	Execute(ctx context.Context, req *scanAccess.Request) (*scanAccess.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
