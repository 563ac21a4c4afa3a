package verify_payment

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-ParkingService/internal/domain"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	slipRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/paymentslip"
	spotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/spot"
	"github.com/m04kA/SMC-ParkingService/internal/service/lifecycle"
)

// UseCase use case проверки оплаты бронирования
//
// Загрузка документа запускает автоматическую проверку: текст распознается
// OCR-сервисом и сопоставляется с суммой бронирования. Уверенное совпадение
// подтверждает бронирование автоматически, во всех остальных случаях документ
// остается в ожидании ручного решения оператора
type UseCase struct {
	bookingRepo      BookingRepository
	slipRepo         SlipRepository
	spotRepo         SpotRepository
	ocrClient        OCRServiceClient
	lifecycleService LifecycleService
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	slipRepo SlipRepository,
	spotRepo SpotRepository,
	ocrClient OCRServiceClient,
	lifecycleService LifecycleService,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:      bookingRepo,
		slipRepo:         slipRepo,
		spotRepo:         spotRepo,
		ocrClient:        ocrClient,
		lifecycleService: lifecycleService,
		logger:           logger,
	}
}

// SubmitSlip регистрирует загруженный платежный документ и запускает
// автоматическую проверку
func (uc *UseCase) SubmitSlip(ctx context.Context, req *SubmitSlipRequest) (*SlipResponse, error) {
	uc.logger.Info("SubmitSlip: user=%d, booking=%s", req.UserID, req.BookingID)

	// 1. Валидация входных данных
	if req.UserID <= 0 {
		return nil, fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.BookingID == uuid.Nil {
		return nil, fmt.Errorf("%w: bookingID is required", ErrInvalidInput)
	}
	if req.ImageURL == "" {
		return nil, fmt.Errorf("%w: imageUrl is required", ErrInvalidInput)
	}

	// 2. Получаем бронирование
	booking, err := uc.getBooking(ctx, req.BookingID, "SubmitSlip")
	if err != nil {
		return nil, err
	}

	// 3. Документ может загрузить только владелец бронирования
	if booking.UserID != req.UserID {
		uc.logger.Warn("SubmitSlip: user=%d is not the owner of booking=%s", req.UserID, req.BookingID)
		return nil, ErrAccessDenied
	}

	// 4. Бронирование должно ожидать оплаты
	if booking.Status != domain.StatusPending || booking.PaymentStatus != domain.PaymentPending {
		uc.logger.Warn("SubmitSlip: booking=%s in status=%s/payment=%s does not await payment",
			req.BookingID, booking.Status, booking.PaymentStatus)
		return nil, ErrBookingNotPayable
	}

	// 5. Регистрируем документ
	slip := &domain.PaymentSlip{
		ID:        uuid.New(),
		BookingID: req.BookingID,
		ImageURL:  req.ImageURL,
		Status:    domain.SlipPending,
	}

	created, err := uc.slipRepo.Create(ctx, slip)
	if err != nil {
		uc.logger.Error("SubmitSlip: failed to create slip for booking=%s: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: failed to create slip: %v", ErrInternal, err)
	}

	// 6. Распознаем текст документа
	// При недоступности OCR документ остается в ручной проверке
	ocrResult, err := uc.ocrClient.RecognizeWithGracefulDegradation(ctx, req.ImageURL)
	if err != nil {
		uc.logger.Warn("SubmitSlip: OCR degraded for slip=%s, leaving for manual review: %v", created.ID, err)
		return toSlipResponse(created, booking), nil
	}

	// 7. Сопоставляем распознанный текст с суммой бронирования
	verdict := AnalyzeSlip(ocrResult.Text, booking.TotalCost)

	if err := uc.slipRepo.SaveOCRResult(ctx, created.ID, ocrResult.Text, verdict.Confidence, verdict.Verified); err != nil {
		uc.logger.Error("SubmitSlip: failed to save OCR result for slip=%s: %v", created.ID, err)
		return nil, fmt.Errorf("%w: failed to save OCR result: %v", ErrInternal, err)
	}

	created.OCRText = &ocrResult.Text
	created.OCRConfidence = &verdict.Confidence
	created.OCRVerified = verdict.Verified

	uc.logger.Info("SubmitSlip: slip=%s analyzed, verified=%t, confidence=%.2f (%s)",
		created.ID, verdict.Verified, verdict.Confidence, verdict.Notes)

	// 8. Уверенное совпадение подтверждает бронирование автоматически,
	// иначе документ ждет ручного решения оператора
	if verdict.Verified {
		if err := uc.slipRepo.SetDecision(ctx, created.ID, domain.SlipVerified, nil); err != nil {
			uc.logger.Error("SubmitSlip: failed to set decision for slip=%s: %v", created.ID, err)
			return nil, fmt.Errorf("%w: failed to set decision: %v", ErrInternal, err)
		}
		created.Status = domain.SlipVerified

		updated, err := uc.lifecycleService.ApplyVerification(ctx, req.BookingID, true, "")
		if err != nil {
			if errors.Is(err, lifecycle.ErrInvalidTransition) {
				return nil, ErrBookingNotPayable
			}
			uc.logger.Error("SubmitSlip: failed to confirm booking=%s: %v", req.BookingID, err)
			return nil, fmt.Errorf("%w: failed to confirm booking: %v", ErrInternal, err)
		}
		booking = updated
	}

	return toSlipResponse(created, booking), nil
}

// ManualVerify применяет решение оператора по платежному документу
// Доступно только оператору парковки, к которой относится бронирование
func (uc *UseCase) ManualVerify(ctx context.Context, req *ManualVerifyRequest) (*SlipResponse, error) {
	uc.logger.Info("ManualVerify: operator=%d, slip=%s, accepted=%t", req.OperatorID, req.SlipID, req.Accepted)

	// 1. Валидация входных данных
	if req.OperatorID <= 0 {
		return nil, fmt.Errorf("%w: operatorID must be positive", ErrInvalidInput)
	}
	if req.SlipID == uuid.Nil {
		return nil, fmt.Errorf("%w: slipID is required", ErrInvalidInput)
	}

	// 2. Получаем документ
	slip, err := uc.slipRepo.GetByID(ctx, req.SlipID)
	if err != nil {
		if errors.Is(err, slipRepo.ErrSlipNotFound) {
			uc.logger.Warn("ManualVerify: slip=%s not found", req.SlipID)
			return nil, ErrSlipNotFound
		}
		uc.logger.Error("ManualVerify: failed to get slip=%s: %v", req.SlipID, err)
		return nil, fmt.Errorf("%w: failed to get slip: %v", ErrInternal, err)
	}

	// 3. Решение принимается один раз
	if !slip.IsPending() {
		uc.logger.Warn("ManualVerify: slip=%s already decided, status=%s", req.SlipID, slip.Status)
		return nil, ErrSlipAlreadyDecided
	}

	// 4. Получаем бронирование
	booking, err := uc.getBooking(ctx, slip.BookingID, "ManualVerify")
	if err != nil {
		return nil, err
	}

	// 5. Проверяем права оператора
	spot, err := uc.spotRepo.GetByID(ctx, booking.SpotID)
	if err != nil {
		if errors.Is(err, spotRepo.ErrSpotNotFound) {
			uc.logger.Warn("ManualVerify: spot=%s not found", booking.SpotID)
			return nil, ErrInternal
		}
		uc.logger.Error("ManualVerify: failed to get spot=%s: %v", booking.SpotID, err)
		return nil, fmt.Errorf("%w: failed to get spot: %v", ErrInternal, err)
	}
	if !spot.IsOwnedBy(req.OperatorID) {
		uc.logger.Warn("ManualVerify: operator=%d is not an operator of spot=%s", req.OperatorID, booking.SpotID)
		return nil, ErrAccessDenied
	}

	// 6. Фиксируем решение по документу
	slipStatus := domain.SlipRejected
	if req.Accepted {
		slipStatus = domain.SlipVerified
	}

	if err := uc.slipRepo.SetDecision(ctx, req.SlipID, slipStatus, &req.OperatorID); err != nil {
		uc.logger.Error("ManualVerify: failed to set decision for slip=%s: %v", req.SlipID, err)
		return nil, fmt.Errorf("%w: failed to set decision: %v", ErrInternal, err)
	}
	slip.Status = slipStatus
	slip.VerifiedBy = &req.OperatorID

	// 7. Применяем вердикт к бронированию
	reason := req.Reason
	if !req.Accepted && reason == "" {
		reason = "payment rejected by operator"
	}

	updated, err := uc.lifecycleService.ApplyVerification(ctx, slip.BookingID, req.Accepted, reason)
	if err != nil {
		if errors.Is(err, lifecycle.ErrInvalidTransition) {
			uc.logger.Warn("ManualVerify: booking=%s no longer awaits payment", slip.BookingID)
			return nil, ErrBookingNotPayable
		}
		uc.logger.Error("ManualVerify: failed to apply verification to booking=%s: %v", slip.BookingID, err)
		return nil, fmt.Errorf("%w: failed to apply verification: %v", ErrInternal, err)
	}

	uc.logger.Info("ManualVerify: slip=%s -> %s, booking=%s -> %s",
		req.SlipID, slipStatus, slip.BookingID, updated.Status)

	return toSlipResponse(slip, updated), nil
}

func (uc *UseCase) getBooking(ctx context.Context, bookingID uuid.UUID, op string) (*domain.Booking, error) {
	booking, err := uc.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Warn("%s: booking=%s not found", op, bookingID)
			return nil, ErrBookingNotFound
		}
		uc.logger.Error("%s: failed to get booking=%s: %v", op, bookingID, err)
		return nil, fmt.Errorf("%w: failed to get booking: %v", ErrInternal, err)
	}
	return booking, nil
}
