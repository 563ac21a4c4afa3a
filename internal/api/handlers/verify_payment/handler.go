package verify_payment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	verifyPayment "github.com/m04kA/SMC-ParkingService/internal/usecase/verify_payment"
)

const (
	msgInvalidSlipID      = "некорректный ID платежного документа"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgSlipNotFound       = "платежный документ не найден"
	msgBookingNotFound    = "бронирование не найдено"
	msgAlreadyDecided     = "по документу уже принято решение"
	msgNotPayable         = "бронирование не ожидает оплаты"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные проверки"
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

// Handle PATCH /api/v1/payment-slips/{slipId}/verify
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем slipId из URL
	vars := mux.Vars(r)
	slipID, err := uuid.Parse(vars["slipId"])
	if err != nil {
		h.logger.Warn("PATCH /payment-slips/{id}/verify - Invalid slip ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSlipID)
		return
	}

	// Декодируем body
	var req ManualVerifyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /payment-slips/{id}/verify - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Применяем решение оператора (use case сам проверит права)
	result, err := h.useCase.ManualVerify(r.Context(), req.ToUseCaseRequest(slipID))
	if err != nil {
		switch {
		case errors.Is(err, verifyPayment.ErrSlipNotFound):
			h.logger.Warn("PATCH /payment-slips/{id}/verify - Slip not found: slip_id=%s", slipID)
			handlers.RespondNotFound(w, msgSlipNotFound)

		case errors.Is(err, verifyPayment.ErrBookingNotFound):
			h.logger.Warn("PATCH /payment-slips/{id}/verify - Booking not found: slip_id=%s", slipID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, verifyPayment.ErrSlipAlreadyDecided):
			h.logger.Warn("PATCH /payment-slips/{id}/verify - Already decided: slip_id=%s", slipID)
			handlers.RespondError(w, http.StatusConflict, msgAlreadyDecided)

		case errors.Is(err, verifyPayment.ErrBookingNotPayable):
			h.logger.Warn("PATCH /payment-slips/{id}/verify - Booking not payable: slip_id=%s", slipID)
			handlers.RespondError(w, http.StatusConflict, msgNotPayable)

		case errors.Is(err, verifyPayment.ErrAccessDenied):
			h.logger.Warn("PATCH /payment-slips/{id}/verify - Access denied: slip_id=%s, operator_id=%d",
				slipID, req.OperatorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, verifyPayment.ErrInvalidInput):
			h.logger.Warn("PATCH /payment-slips/{id}/verify - Invalid input: slip_id=%s, error=%v", slipID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /payment-slips/{id}/verify - Failed to verify slip: slip_id=%s, error=%v",
				slipID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /payment-slips/{id}/verify - Slip verified: slip_id=%s, operator_id=%d, accepted=%t",
		slipID, req.OperatorID, req.Accepted)
	handlers.RespondJSON(w, http.StatusOK, result)
}
