package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/vehicleservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	// GetBySpotWithFilter внутри транзакции с фильтром на одну дату блокирует
	// строки (FOR UPDATE) - на этом строится защита от двойного бронирования
	GetBySpotWithFilter(ctx context.Context, filter domain.SpotBookingsFilter) ([]*domain.Booking, error)
}

// SpotRepository интерфейс репозитория парковок
type SpotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error)
}

// DraftRepository интерфейс хранилища черновиков бронирований
type DraftRepository interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.DraftBooking, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleServiceClient интерфейс клиента для VehicleService
type VehicleServiceClient interface {
	GetSelectedVehicleWithGracefulDegradation(ctx context.Context, userID int64) (*vehicleservice.Vehicle, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
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
