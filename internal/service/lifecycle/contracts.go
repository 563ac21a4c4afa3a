package lifecycle

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	ConfirmPayment(ctx context.Context, id uuid.UUID) error
	RejectPayment(ctx context.Context, id uuid.UUID, reason string) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus) error
}

// SpotRepository интерфейс репозитория парковок (счетчик свободных мест)
type SpotRepository interface {
	DecrementAvailable(ctx context.Context, id uuid.UUID) error
	IncrementAvailable(ctx context.Context, id uuid.UUID) error
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	DoReadOnly(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
