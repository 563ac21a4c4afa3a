package spotconfig

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// SpotRepository интерфейс репозитория парковок
type SpotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error)
	UpdateConfig(ctx context.Context, id uuid.UUID, update domain.SpotConfigUpdate) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
