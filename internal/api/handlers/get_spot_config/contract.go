package get_spot_config

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/service/spotconfig/models"
)

type ConfigService interface {
	Get(ctx context.Context, spotID uuid.UUID) (*models.ConfigResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
