package get_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
)

// UseCase use case для получения сетки доступных слотов парковки на день
type UseCase struct {
	bookingRepo  BookingRepository
	spotRepo     SpotRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		spotRepo:     spotRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения сетки слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: user=%d, spot=%s, date=%s",
		req.UserID, req.SpotID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if req.SpotID == uuid.Nil {
		uc.logger.Warn("GetAvailability: empty spot id")
		return nil, fmt.Errorf("%w: spotId is required", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		uc.logger.Warn("GetAvailability: empty date")
		return nil, fmt.Errorf("%w: date is required", ErrInvalidDate)
	}

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Получаем парковку
	spot, err := uc.spotRepo.GetByID(ctx, req.SpotID)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			uc.logger.Warn("GetAvailability: spot=%s not found", req.SpotID)
			return nil, ErrSpotNotFound
		}
		uc.logger.Error("GetAvailability: failed to get spot=%s: %v", req.SpotID, err)
		return nil, fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
	}

	// 4. Для прошедшей даты сетка пуста
	if isDateInPast(req.Date, now) {
		uc.logger.Info("GetAvailability: date %s is in the past", req.Date.Format(domain.DateFormat))
		return &Response{
			Date:   req.Date,
			SpotID: req.SpotID,
			IsOpen: false,
			Slots:  []Slot{},
		}, nil
	}

	// 5. Проверяем расписание на указанную дату
	hours := spot.ResolveDay(req.Date)
	if !hours.IsOpen {
		uc.logger.Info("GetAvailability: spot=%s is closed on %s", req.SpotID, req.Date.Format(domain.DateFormat))
		return &Response{
			Date:   req.Date,
			SpotID: req.SpotID,
			IsOpen: false,
			Slots:  []Slot{},
		}, nil
	}

	// 6. Получаем активные бронирования на эту дату
	filter := domain.SpotBookingsFilter{
		SpotID:          req.SpotID,
		StartDate:       &req.Date,
		EndDate:         &req.Date,
		IncludeInactive: false, // Только активные бронирования
	}

	bookings, err := uc.bookingRepo.GetBySpotWithFilter(ctx, filter)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to get bookings for spot=%s: %v", req.SpotID, err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	// 7. Строим сетку слотов со статусами и ценами
	slots, err := classifySlots(spot, req.Date, now, bookings)
	if err != nil {
		uc.logger.Error("GetAvailability: failed to classify slots for spot=%s: %v", req.SpotID, err)
		return nil, fmt.Errorf("%w: failed to classify slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailability: generated %d slots for spot=%s, date=%s",
		len(slots), req.SpotID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:   req.Date,
		SpotID: req.SpotID,
		IsOpen: true,
		Slots:  slots,
	}, nil
}
