package verify_payment

import (
	"context"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	"github.com/m04kA/SMC-ParkingService/internal/integrations/ocrservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
}

// SlipRepository интерфейс репозитория платежных документов
type SlipRepository interface {
	Create(ctx context.Context, slip *domain.PaymentSlip) (*domain.PaymentSlip, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.PaymentSlip, error)
	SaveOCRResult(ctx context.Context, id uuid.UUID, text string, confidence float64, verified bool) error
	SetDecision(ctx context.Context, id uuid.UUID, status domain.SlipStatus, verifiedBy *int64) error
}

// SpotRepository интерфейс репозитория парковок (для проверки прав оператора)
type SpotRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ParkingSpot, error)
}

// OCRServiceClient интерфейс клиента OCR-сервиса
type OCRServiceClient interface {
	RecognizeWithGracefulDegradation(ctx context.Context, imageURL string) (*ocrservice.RecognizeResponse, error)
}

// LifecycleService интерфейс сервиса жизненного цикла бронирования
type LifecycleService interface {
	ApplyVerification(ctx context.Context, bookingID uuid.UUID, accepted bool, reason string) (*domain.Booking, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
