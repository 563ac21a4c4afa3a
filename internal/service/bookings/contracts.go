package bookings

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByUserID(ctx context.Context, userID int64, status *domain.BookingStatus) ([]*domain.Booking, error)
	GetBySpotWithFilter(ctx context.Context, filter domain.SpotBookingsFilter) ([]*domain.Booking, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) error
}

// SpotRepository интерфейс репозитория парковок (для проверки прав оператора)
type SpotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
