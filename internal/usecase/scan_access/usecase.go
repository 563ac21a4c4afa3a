package scan_access

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	"github.com/m04kA/SMC-ParkingService/internal/service/lifecycle"
)

// UseCase use case сканирования кода доступа на шлагбауме
//
// По одному и тому же коду определяется направление: подтвержденное
// бронирование означает въезд, активное - выезд. Повторное сканирование
// завершенного бронирования не выполняет действий и не трогает счетчик мест
type UseCase struct {
	bookingRepo      BookingRepository
	spotRepo         SpotRepository
	lifecycleService LifecycleService
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	lifecycleService LifecycleService,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		spotRepo:         spotRepo,
		lifecycleService: lifecycleService,
		logger:           logger,
	}
}

// Execute выполняет use case сканирования кода доступа
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ScanAccess: operator=%d, spot=%s", req.OperatorID, req.SpotID)

	// 1. Валидация входных данных
	if req.OperatorID <= 0 {
		return nil, fmt.Errorf("%w: operatorID must be positive", ErrInvalidInput)
	}
	if req.SpotID == uuid.Nil {
		return nil, fmt.Errorf("%w: spotID is required", ErrInvalidInput)
	}

	credential := parseCredential(req.Code)
	if credential.kind == credentialUnknown {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	// 2. Сканировать коды может только оператор парковки
	if err := uc.checkOperatorAccess(ctx, req.SpotID, req.OperatorID); err != nil {
		return nil, err
	}

	// 3. Находим бронирование по коду
	booking, err := uc.resolveBooking(ctx, req.SpotID, credential)
	if err != nil {
		return nil, err
	}

	// 4. Код должен относиться к парковке, на которой сканируют
	if booking.SpotID != req.SpotID {
		uc.logger.Warn("ScanAccess: booking=%s belongs to spot=%s, scanned at spot=%s",
			booking.ID, booking.SpotID, req.SpotID)
		return nil, ErrSpotMismatch
	}

	// 5. Определяем действие по текущему статусу бронирования
	switch {
	case booking.CanEnter():
		return uc.handleEntry(ctx, booking)

	case booking.CanExit():
		return uc.handleExit(ctx, booking)

	case booking.Status == domain.StatusPending:
		// Въезд без подтвержденной оплаты запрещен
		uc.logger.Warn("ScanAccess: booking=%s payment not verified", booking.ID)
		return nil, ErrPaymentNotVerified

	default:
		// Завершенное или отмененное бронирование: проезд запрещен,
		// повторное сканирование ничего не меняет
		uc.logger.Info("ScanAccess: booking=%s is %s, no action taken", booking.ID, booking.Status)
		return deniedResponse(booking, fmt.Sprintf("booking is %s", booking.Status)), nil
	}
}

func (uc *UseCase) handleEntry(ctx context.Context, booking *domain.Booking) (*Response, error) {
	updated, err := uc.lifecycleService.RegisterEntry(ctx, booking.ID)
	if err != nil {
		switch {
		case errors.Is(err, lifecycle.ErrNoFreeSlots):
			return nil, ErrNoFreeSlots
		case errors.Is(err, lifecycle.ErrInvalidTransition):
			// Статус изменился между чтением и регистрацией - проезд запрещен
			uc.logger.Warn("ScanAccess: entry race for booking=%s", booking.ID)
			return deniedResponse(booking, "booking state changed, rescan the code"), nil
		default:
			uc.logger.Error("ScanAccess: failed to register entry for booking=%s: %v", booking.ID, err)
			return nil, fmt.Errorf("%w: failed to register entry: %v", ErrInternal, err)
		}
	}

	uc.logger.Info("ScanAccess: entry registered for booking=%s", updated.ID)
	return allowedResponse(updated, ActionEntry, "entry registered"), nil
}

func (uc *UseCase) handleExit(ctx context.Context, booking *domain.Booking) (*Response, error) {
	updated, err := uc.lifecycleService.RegisterExit(ctx, booking.ID)
	if err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			uc.logger.Warn("ScanAccess: exit race for booking=%s", booking.ID)
			return deniedResponse(booking, "booking state changed, rescan the code"), nil
		}
		uc.logger.Error("ScanAccess: failed to register exit for booking=%s: %v", booking.ID, err)
		return nil, fmt.Errorf("%w: failed to register exit: %v", ErrInternal, err)
	}

	uc.logger.Info("ScanAccess: exit registered for booking=%s", updated.ID)
	return allowedResponse(updated, ActionExit, "exit registered"), nil
}

// resolveBooking находит бронирование по распознанному коду
func (uc *UseCase) resolveBooking(ctx context.Context, spotID uuid.UUID, credential parsedCredential) (*domain.Booking, error) {
	var booking *domain.Booking
	var err error

	switch credential.kind {
	case credentialPIN:
		// PIN уникален в рамках парковки
		booking, err = uc.bookingRepo.GetByPIN(ctx, spotID, credential.pin)

	case credentialPayload:
		// Структурированный payload несет id бронирования и парковки
		if credential.payload.SpotID != uuid.Nil && credential.payload.SpotID != spotID {
			uc.logger.Warn("ScanAccess: qr payload for spot=%s scanned at spot=%s",
				credential.payload.SpotID, spotID)
			return nil, ErrSpotMismatch
		}
		booking, err = uc.bookingRepo.GetByID(ctx, credential.payload.BookingID)

	case credentialFlatCode:
		// Плоский токен (legacy формат) разрешается напрямую
		booking, err = uc.bookingRepo.GetByQRCode(ctx, credential.flat)

	default:
		return nil, fmt.Errorf("%w: unsupported credential", ErrInvalidInput)
	}

	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("ScanAccess: no booking found for scanned code at spot=%s", spotID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("ScanAccess: failed to resolve booking: %v", err)
		return nil, fmt.Errorf("%w: failed to resolve booking: %v", ErrInternal, err)
	}

	return booking, nil
}

func (uc *UseCase) checkOperatorAccess(ctx context.Context, spotID uuid.UUID, operatorID int64) error {
	spot, err := uc.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			uc.logger.Warn("ScanAccess: spot=%s not found", spotID)
			return ErrSpotNotFound
		}
		uc.logger.Error("ScanAccess: failed to get spot=%s: %v", spotID, err)
		return fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
	}

	if !spot.IsOwnedBy(operatorID) {
		uc.logger.Warn("ScanAccess: user=%d is not an operator of spot=%s", operatorID, spotID)
		return ErrAccessDenied
	}

	return nil
}

func allowedResponse(booking *domain.Booking, action, message string) *Response {
	return &Response{
		Allowed:       true,
		Action:        action,
		Message:       message,
		BookingID:     booking.ID,
		BookingStatus: string(booking.Status),
		UserID:        booking.UserID,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		VehiclePlate:  booking.VehiclePlate,
	}
}

func deniedResponse(booking *domain.Booking, message string) *Response {
	return &Response{
		Allowed:       false,
		Action:        ActionNone,
		Message:       message,
		BookingID:     booking.ID,
		BookingStatus: string(booking.Status),
		UserID:        booking.UserID,
		StartTime:     booking.StartTime,
		EndTime:       booking.EndTime,
		VehiclePlate:  booking.VehiclePlate,
	}
}
