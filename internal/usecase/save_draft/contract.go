package save_draft

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// DraftRepository интерфейс хранилища черновиков бронирований
type DraftRepository interface {
	Save(ctx context.Context, d *domain.DraftBooking) error
	TTL() time.Duration
}

// SpotRepository интерфейс репозитория парковок
type SpotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
