package scan_access

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	GetByQRCode(ctx context.Context, qrCode string) (*domain.Booking, error)
	GetByPIN(ctx context.Context, spotID uuid.UUID, pin string) (*domain.Booking, error)
}

// SpotRepository интерфейс репозитория парковок (для проверки прав оператора)
type SpotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error)
}

// LifecycleService интерфейс сервиса жизненного цикла бронирования
type LifecycleService interface {
	RegisterEntry(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
	RegisterExit(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
