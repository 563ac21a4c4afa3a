package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings/models"
)

// Service сервис для работы с бронированиями
type Service struct {
	bookingRepo BookingRepository
	spotRepo    SpotRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		spotRepo:    spotRepo,
		logger:      logger,
	}
}

// GetByID получает бронирование по ID
// Проверяет права доступа - пользователь может видеть только своё бронирование
// или если он является оператором парковки
func (s *Service) GetByID(ctx context.Context, id uuid.UUID, userID int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s for user=%d", id, userID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%s not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, userID); err != nil {
		s.logger.Warn("GetByID: access denied for user=%d to booking id=%s", userID, id)
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю бронирований пользователя
// Опционально фильтрует по статусу
func (s *Service) GetUserBookings(ctx context.Context, req *models.GetUserBookingsRequest) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d, status=%v", req.UserID, req.Status)

	// Конвертируем статус из строки в domain.BookingStatus
	var domainStatus *domain.BookingStatus
	if req.Status != nil {
		status, err := models.ToDomainBookingStatus(*req.Status)
		if err != nil {
			s.logger.Warn("GetUserBookings: invalid status=%s for user=%d", *req.Status, req.UserID)
			return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
		}
		domainStatus = &status
	}

	bookings, err := s.bookingRepo.GetByUserID(ctx, req.UserID, domainStatus)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(bookings), req.UserID)
	return models.FromDomainBookingList(bookings), nil
}

// GetSpotBookings получает бронирования парковки с гибкой фильтрацией
// Поддерживает фильтрацию по периоду, статусу и включению неактивных бронирований
// Доступно только оператору парковки
//
// Примеры использования:
// - Все активные бронирования: GetSpotBookings(ctx, &GetSpotBookingsRequest{SpotID: ..., UserID: 456})
// - Бронирования на дату: StartDate и EndDate указывают на одну дату
// - Бронирования за период: StartDate и EndDate указывают на разные даты
// - Только подтвержденные: указать Status = "confirmed"
// - Включая отменённые: IncludeInactive = true
func (s *Service) GetSpotBookings(ctx context.Context, req *models.GetSpotBookingsRequest) (*models.BookingListResponse, error) {
	// Логируем запрос с деталями фильтрации
	logMsg := fmt.Sprintf("GetSpotBookings: fetching bookings for spot=%s, user=%d", req.SpotID, req.UserID)
	if req.StartDate != nil && req.EndDate != nil {
		logMsg += fmt.Sprintf(", period=%s to %s", req.StartDate.Format("2006-01-02"), req.EndDate.Format("2006-01-02"))
	}
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.IncludeInactive {
		logMsg += ", includeInactive=true"
	}
	s.logger.Info(logMsg)

	// Проверяем права доступа оператора
	if err := s.checkOperatorAccess(ctx, req.SpotID, req.UserID); err != nil {
		return nil, err
	}

	// Конвертируем request в domain фильтр
	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("GetSpotBookings: invalid filter for spot=%s: %v", req.SpotID, err)
		return nil, fmt.Errorf("%w: invalid filter", ErrInvalidInput)
	}

	// Получаем бронирования с фильтрацией
	bookings, err := s.bookingRepo.GetBySpotWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("GetSpotBookings: repository error for spot=%s: %v", req.SpotID, err)
		return nil, fmt.Errorf("%w: GetSpotBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetSpotBookings: successfully fetched %d bookings for spot=%s", len(bookings), req.SpotID)
	return models.FromDomainBookingList(bookings), nil
}

// Cancel отменяет бронирование
// Пользователь может отменить своё бронирование, оператор - любое бронирование своей парковки
// Отмена возможна только из статусов pending и confirmed
func (s *Service) Cancel(ctx context.Context, bookingID uuid.UUID, req *models.CancelBookingRequest) error {
	s.logger.Info("Cancel: cancelling booking id=%s by user=%d", bookingID, req.UserID)

	// Получаем бронирование
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	// Проверяем права доступа
	if err := s.checkUserAccess(ctx, booking, req.UserID); err != nil {
		s.logger.Warn("Cancel: access denied for user=%d to cancel booking id=%s", req.UserID, bookingID)
		return err
	}

	// Проверяем, можно ли отменить бронирование
	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%s cannot be cancelled, status=%s", bookingID, booking.Status)
		return ErrCannotCancel
	}

	// Отменяем бронирование
	if err := s.bookingRepo.Cancel(ctx, bookingID, req.CancellationReason); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%s not found during cancellation", bookingID)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%s: %v", bookingID, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%s", bookingID)
	return nil
}

// Вспомогательные методы

// checkUserAccess проверяет, что пользователь имеет доступ к бронированию
// Пользователь может видеть своё бронирование или если он оператор парковки
func (s *Service) checkUserAccess(ctx context.Context, booking *domain.Booking, userID int64) error {
	// Если пользователь владелец бронирования - доступ разрешён
	if booking.UserID == userID {
		return nil
	}

	// Проверяем, является ли пользователь оператором парковки
	if err := s.checkOperatorAccess(ctx, booking.SpotID, userID); err != nil {
		// Ошибка уже залогирована в checkOperatorAccess
		return ErrAccessDenied
	}

	return nil
}

// checkOperatorAccess проверяет, что пользователь является оператором парковки
func (s *Service) checkOperatorAccess(ctx context.Context, spotID uuid.UUID, userID int64) error {
	spot, err := s.spotRepo.GetByID(ctx, spotID)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			s.logger.Warn("checkOperatorAccess: spot id=%s not found", spotID)
			return ErrSpotNotFound
		}
		s.logger.Error("checkOperatorAccess: failed to get spot id=%s: %v", spotID, err)
		return fmt.Errorf("%w: checkOperatorAccess - failed to get spot: %v", ErrInternal, err)
	}

	if !spot.IsOwnedBy(userID) {
		s.logger.Warn("checkOperatorAccess: user=%d is not an operator of spot=%s", userID, spotID)
		return ErrAccessDenied
	}

	return nil
}
