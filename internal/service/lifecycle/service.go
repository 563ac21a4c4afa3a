package lifecycle

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
)

// Service сервис жизненного цикла бронирования
//
// Единственная точка, через которую меняется статус бронирования и
// счетчик свободных мест парковки. Счетчик мутируется ТОЛЬКО здесь:
// -1 при въезде, +1 при выезде. Создание и отмена бронирования
// счетчик не трогают - до физического въезда место не занято.
type Service struct {
	bookingRepo BookingRepository
	spotRepo    SpotRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса жизненного цикла
func NewService(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		spotRepo:    spotRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// ApplyVerification применяет результат проверки оплаты к бронированию
// accepted=true: pending -> confirmed, payment_status -> verified
// accepted=false: pending -> cancelled, payment_status -> rejected
// Переход возможен только из pending с неподтвержденной оплатой
func (s *Service) ApplyVerification(ctx context.Context, bookingID uuid.UUID, accepted bool, reason string) (*domain.Booking, error) {
	s.logger.Info("ApplyVerification: booking id=%s, accepted=%t", bookingID, accepted)

	var result *domain.Booking

	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, bookingID, "ApplyVerification")
		if err != nil {
			return err
		}

		if booking.Status != domain.StatusPending || booking.PaymentStatus != domain.PaymentPending {
			s.logger.Warn("ApplyVerification: booking id=%s in status=%s/payment=%s, transition rejected",
				bookingID, booking.Status, booking.PaymentStatus)
			return ErrInvalidTransition
		}

		if accepted {
			if err := s.bookingRepo.ConfirmPayment(ctx, bookingID); err != nil {
				s.logger.Error("ApplyVerification: confirm payment failed for booking id=%s: %v", bookingID, err)
				return fmt.Errorf("%w: ApplyVerification - confirm payment: %v", ErrInternal, err)
			}
			booking.Status = domain.StatusConfirmed
			booking.PaymentStatus = domain.PaymentVerified
		} else {
			if err := s.bookingRepo.RejectPayment(ctx, bookingID, reason); err != nil {
				s.logger.Error("ApplyVerification: reject payment failed for booking id=%s: %v", bookingID, err)
				return fmt.Errorf("%w: ApplyVerification - reject payment: %v", ErrInternal, err)
			}
			booking.Status = domain.StatusCancelled
			booking.PaymentStatus = domain.PaymentRejected
		}

		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("ApplyVerification: booking id=%s -> status=%s", bookingID, result.Status)
	return result, nil
}

// RegisterEntry регистрирует въезд по бронированию
// confirmed -> active, счетчик свободных мест уменьшается на единицу
//
// Проверка статуса и мутация счетчика выполняются в serializable транзакции:
// повторное сканирование того же QR-кода не спишет место дважды
func (s *Service) RegisterEntry(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	s.logger.Info("RegisterEntry: booking id=%s", bookingID)

	var result *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, bookingID, "RegisterEntry")
		if err != nil {
			return err
		}

		if !booking.CanEnter() {
			s.logger.Warn("RegisterEntry: booking id=%s in status=%s, entry rejected", bookingID, booking.Status)
			return ErrInvalidTransition
		}

		if err := s.spotRepo.DecrementAvailable(ctx, booking.SpotID); err != nil {
			if errors.Is(err, spotRepo.ErrNoFreeSlots) {
				s.logger.Warn("RegisterEntry: no free slots on spot=%s for booking id=%s", booking.SpotID, bookingID)
				return ErrNoFreeSlots
			}
			s.logger.Error("RegisterEntry: decrement failed for spot=%s: %v", booking.SpotID, err)
			return fmt.Errorf("%w: RegisterEntry - decrement available: %v", ErrInternal, err)
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusActive); err != nil {
			s.logger.Error("RegisterEntry: update status failed for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: RegisterEntry - update status: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusActive
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("RegisterEntry: booking id=%s is now active", bookingID)
	return result, nil
}

// RegisterExit регистрирует выезд по бронированию
// active -> completed, счетчик свободных мест увеличивается на единицу
func (s *Service) RegisterExit(ctx context.Context, bookingID uuid.UUID) (*domain.Booking, error) {
	s.logger.Info("RegisterExit: booking id=%s", bookingID)

	var result *domain.Booking

	err := s.txManager.DoSerializable(ctx, func(ctx context.Context) error {
		booking, err := s.getBooking(ctx, bookingID, "RegisterExit")
		if err != nil {
			return err
		}

		if !booking.CanExit() {
			s.logger.Warn("RegisterExit: booking id=%s in status=%s, exit rejected", bookingID, booking.Status)
			return ErrInvalidTransition
		}

		if err := s.bookingRepo.UpdateStatus(ctx, bookingID, domain.StatusCompleted); err != nil {
			s.logger.Error("RegisterExit: update status failed for booking id=%s: %v", bookingID, err)
			return fmt.Errorf("%w: RegisterExit - update status: %v", ErrInternal, err)
		}

		if err := s.spotRepo.IncrementAvailable(ctx, booking.SpotID); err != nil {
			s.logger.Error("RegisterExit: increment failed for spot=%s: %v", booking.SpotID, err)
			return fmt.Errorf("%w: RegisterExit - increment available: %v", ErrInternal, err)
		}

		booking.Status = domain.StatusCompleted
		result = booking
		return nil
	})

	if err != nil {
		return nil, err
	}

	s.logger.Info("RegisterExit: booking id=%s is now completed", bookingID)
	return result, nil
}

func (s *Service) getBooking(ctx context.Context, bookingID uuid.UUID, op string) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}
