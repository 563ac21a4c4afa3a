package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	draftRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/draft"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	vehicleClient "github.com/m04kA/SMC-ParkingService/internal/integrations/vehicleservice"
)

// UseCase use case для создания бронирования
type UseCase struct {
	bookingRepo   BookingRepository
	spotRepo      SpotRepository
	draftRepo     DraftRepository
	vehicleClient VehicleServiceClient
	txManager     TransactionManager
	timeProvider  TimeProvider
	logger        Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	spotRepo SpotRepository,
	draftRepo DraftRepository,
	vehicleClient VehicleServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		spotRepo:      spotRepo,
		draftRepo:     draftRepo,
		vehicleClient: vehicleClient,
		txManager:     txManager,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute выполняет use case создания бронирования
// Проверка пересечений и вставка выполняются в сериализуемой транзакции
// с блокировкой бронирований на дату (FOR UPDATE) - два конкурирующих запроса
// на последнее место не смогут создать пересекающиеся бронирования
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Если указан черновик - восстанавливаем из него параметры выбора
	if req.DraftID != nil {
		if err := uc.applyDraft(ctx, req); err != nil {
			return nil, err
		}
	}

	uc.logger.Info("CreateBooking: user=%d, spot=%s, date=%s, slots=%v",
		req.UserID, req.SpotID, req.Date.Format(domain.DateFormat), req.SlotStarts)

	// 2. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 3. Получаем текущее время
	now := uc.timeProvider.Now()

	// 4. Проверяем дату
	if isDateInPast(req.Date, now) {
		uc.logger.Warn("CreateBooking: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 5. Проверяем непрерывность выбранных слотов
	slots, err := buildConsecutiveSlots(req.SlotStarts)
	if err != nil {
		uc.logger.Warn("CreateBooking: slot chain validation failed: %v", err)
		return nil, err
	}

	// 6. Получаем выбранный транспорт пользователя
	// При недоступности VehicleService бронирование создается без номера авто
	var vehicleID int64
	var vehiclePlate *string

	vehicle, err := uc.vehicleClient.GetSelectedVehicleWithGracefulDegradation(ctx, req.UserID)
	switch {
	case err == nil:
		vehicleID = vehicle.ID
		vehiclePlate = &vehicle.LicensePlate
	case errors.Is(err, vehicleClient.ErrVehicleNotFound):
		uc.logger.Warn("CreateBooking: user=%d has no selected vehicle", req.UserID)
		return nil, ErrVehicleNotFound
	case errors.Is(err, vehicleClient.ErrServiceDegraded):
		uc.logger.Warn("CreateBooking: vehicle service degraded, creating booking without plate for user=%d", req.UserID)
	default:
		uc.logger.Error("CreateBooking: failed to get vehicle for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: failed to get vehicle: %v", ErrInternal, err)
	}

	// Переменные для хранения результата
	var result *domain.Booking
	var pricedSlots []PricedSlot

	// 7. Выполняем операции с БД в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 7.1. Получаем парковку
		spot, err := uc.spotRepo.GetByID(txCtx, req.SpotID)
		if err != nil {
			if errors.Is(err, spotRepo.ErrSpotNotFound) {
				uc.logger.Warn("CreateBooking: spot=%s not found", req.SpotID)
				return ErrSpotNotFound
			}
			uc.logger.Error("CreateBooking: failed to get spot=%s: %v", req.SpotID, err)
			return fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
		}

		// 7.2. Проверяем расписание на указанную дату
		hours := spot.ResolveDay(req.Date)
		if !hours.IsOpen {
			uc.logger.Warn("CreateBooking: spot=%s is closed on %s", req.SpotID, req.Date.Format(domain.DateFormat))
			return ErrSpotClosed
		}

		// 7.3. Все слоты должны лежать в часах работы
		if err := validateSlotsWithinHours(slots, hours); err != nil {
			uc.logger.Warn("CreateBooking: slots outside operating hours: %v", err)
			return err
		}

		// 7.4. Временная доступность: будущие слоты или начавшийся с достаточным остатком
		if err := validateSlotsSelectable(slots, req.Date, now); err != nil {
			uc.logger.Warn("CreateBooking: slot selectability check failed: %v", err)
			return err
		}

		// 7.5. Получаем все активные бронирования на эту дату с блокировкой (FOR UPDATE)
		filter := domain.SpotBookingsFilter{
			SpotID:          req.SpotID,
			StartDate:       &req.Date,
			EndDate:         &req.Date,
			IncludeInactive: false, // Только активные бронирования
		}

		bookings, err := uc.bookingRepo.GetBySpotWithFilter(txCtx, filter)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get bookings: %v", err)
			return fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
		}

		// 7.6. Проверяем вместимость каждого выбранного слота
		for _, slot := range slots {
			overlapping, err := slot.CountOverlappingBookings(req.Date, bookings)
			if err != nil {
				uc.logger.Error("CreateBooking: failed to count overlapping bookings: %v", err)
				return fmt.Errorf("%w: failed to count overlapping bookings: %v", ErrInternal, err)
			}

			// При TotalSlots = 4 допустимо overlapping = 0, 1, 2, 3
			if overlapping >= spot.TotalSlots {
				uc.logger.Warn("CreateBooking: slot %s-%s is full, %d/%d spots taken",
					slot.Start, slot.End, overlapping, spot.TotalSlots)
				return ErrSlotConflict
			}
		}

		// 7.7. Рассчитываем цену выбора
		priced, totalCost, err := priceSlots(slots, spot.PricePerHour, req.Date, now)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to price slots: %v", err)
			return err
		}
		pricedSlots = priced

		// 7.8. Абсолютные границы бронирования: начало первого и конец последнего слота
		startTime, err := slots[0].Start.OnDate(req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to compute start time: %v", ErrInternal, err)
		}
		endTime, err := slots[len(slots)-1].End.OnDate(req.Date)
		if err != nil {
			return fmt.Errorf("%w: failed to compute end time: %v", ErrInternal, err)
		}

		// 7.9. Создаем бронирование с учетными данными доступа
		bookingID := uuid.New()
		booking := &domain.Booking{
			ID:            bookingID,
			UserID:        req.UserID,
			SpotID:        req.SpotID,
			VehicleID:     vehicleID,
			StartTime:     startTime,
			EndTime:       endTime,
			TotalCost:     totalCost,
			Status:        domain.StatusPending,
			PaymentStatus: domain.PaymentPending,
			// Учетные данные доступа
			QRCode: domain.NewQRCode(),
			PIN:    domain.GeneratePIN(bookingID, req.SpotID),
			// Денормализация данных парковки и транспорта
			SpotName:     spot.Name,
			VehiclePlate: vehiclePlate,
			// Заметки
			Notes: req.Notes,
		}

		// 7.10. Сохраняем бронирование
		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	// 8. Использованный черновик удаляем; ошибка удаления не влияет на результат
	if req.DraftID != nil {
		if err := uc.draftRepo.Delete(ctx, *req.DraftID); err != nil {
			uc.logger.Warn("CreateBooking: failed to delete draft id=%s: %v", *req.DraftID, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s, total=%.2f", result.ID, result.TotalCost)

	// Конвертируем в response
	return &Response{
		ID:            result.ID,
		UserID:        result.UserID,
		SpotID:        result.SpotID,
		VehicleID:     result.VehicleID,
		StartTime:     result.StartTime,
		EndTime:       result.EndTime,
		TotalCost:     result.TotalCost,
		Status:        string(result.Status),
		PaymentStatus: string(result.PaymentStatus),
		QRCode:        result.QRCode,
		PIN:           result.PIN,
		SpotName:      result.SpotName,
		VehiclePlate:  result.VehiclePlate,
		Notes:         result.Notes,
		Slots:         pricedSlots,
		CreatedAt:     result.CreatedAt,
		UpdatedAt:     result.UpdatedAt,
	}, nil
}

// applyDraft восстанавливает параметры выбора из сохраненного черновика
func (uc *UseCase) applyDraft(ctx context.Context, req *Request) error {
	draft, err := uc.draftRepo.Get(ctx, *req.DraftID)
	if err != nil {
		if errors.Is(err, draftRepo.ErrDraftNotFound) {
			uc.logger.Warn("CreateBooking: draft id=%s not found or expired", *req.DraftID)
			return ErrDraftNotFound
		}
		uc.logger.Error("CreateBooking: failed to get draft id=%s: %v", *req.DraftID, err)
		return fmt.Errorf("%w: failed to get draft: %v", ErrInternal, err)
	}

	if draft.UserID != req.UserID {
		uc.logger.Warn("CreateBooking: draft id=%s belongs to user=%d, requested by user=%d",
			*req.DraftID, draft.UserID, req.UserID)
		return ErrAccessDenied
	}

	req.SpotID = draft.SpotID
	req.Date = draft.Date
	req.SlotStarts = draft.SlotStarts
	if req.Notes == nil {
		req.Notes = draft.Notes
	}

	uc.logger.Info("CreateBooking: restored selection from draft id=%s", *req.DraftID)
	return nil
}
