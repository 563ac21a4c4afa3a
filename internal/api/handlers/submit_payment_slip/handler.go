package submit_payment_slip

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	verifyPayment "github.com/m04kA/SMC-ParkingService/internal/usecase/verify_payment"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование не найдено"
	msgForbidden          = "доступ запрещен"
	msgNotPayable         = "бронирование не ожидает оплаты"
	msgInvalidInput       = "некорректные данные платежного документа"
)

type Handler struct {
	useCase VerifyPaymentUseCase
	logger  Logger
}

func NewHandler(useCase VerifyPaymentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/{bookingId}/payment-slips
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем bookingId из URL
	vars := mux.Vars(r)
	bookingID, err := uuid.Parse(vars["bookingId"])
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/payment-slips - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	// Декодируем body
	var req SubmitSlipRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/{id}/payment-slips - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Загружаем документ (OCR выполняется синхронно, вердикт применяется сразу)
	result, err := h.useCase.SubmitSlip(r.Context(), req.ToUseCaseRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, verifyPayment.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/payment-slips - Booking not found: booking_id=%s", bookingID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, verifyPayment.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/payment-slips - Access denied: booking_id=%s, user_id=%d",
				bookingID, req.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, verifyPayment.ErrBookingNotPayable):
			h.logger.Warn("POST /bookings/{id}/payment-slips - Booking not payable: booking_id=%s", bookingID)
			handlers.RespondError(w, http.StatusConflict, msgNotPayable)

		case errors.Is(err, verifyPayment.ErrInvalidInput):
			h.logger.Warn("POST /bookings/{id}/payment-slips - Invalid input: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/{id}/payment-slips - Failed to submit slip: booking_id=%s, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/payment-slips - Slip submitted successfully: slip_id=%s, booking_id=%s, status=%s",
		result.ID, bookingID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
