package scan_access

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	scanAccess "github.com/m04kA/SMC-ParkingService/internal/usecase/scan_access"
)

const (
	msgInvalidSpotID      = "некорректный ID парковки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgBookingNotFound    = "бронирование по коду не найдено"
	msgSpotNotFound       = "парковка не найдена"
	msgSpotMismatch       = "код относится к другой парковке"
	msgPaymentNotVerified = "оплата не подтверждена"
	msgNoFreeSlots        = "на парковке нет свободных мест"
	msgForbidden          = "доступ запрещен"
	msgInvalidInput       = "некорректные данные сканирования"
)

type Handler struct {
	useCase ScanAccessUseCase
	logger  Logger
}

func NewHandler(useCase ScanAccessUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/spots/{spotId}/scan
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем spotId из URL
	vars := mux.Vars(r)
	spotID, err := uuid.Parse(vars["spotId"])
	if err != nil {
		h.logger.Warn("POST /spots/{id}/scan - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	// Декодируем body
	var req ScanRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /spots/{id}/scan - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Выполняем сканирование (use case сам определит въезд или выезд)
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(spotID))
	if err != nil {
		switch {
		case errors.Is(err, scanAccess.ErrBookingNotFound):
			h.logger.Warn("POST /spots/{id}/scan - Booking not found: spot_id=%s", spotID)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, scanAccess.ErrSpotNotFound):
			h.logger.Warn("POST /spots/{id}/scan - Spot not found: spot_id=%s", spotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, scanAccess.ErrSpotMismatch):
			h.logger.Warn("POST /spots/{id}/scan - Spot mismatch: spot_id=%s", spotID)
			handlers.RespondError(w, http.StatusConflict, msgSpotMismatch)

		case errors.Is(err, scanAccess.ErrPaymentNotVerified):
			h.logger.Warn("POST /spots/{id}/scan - Payment not verified: spot_id=%s", spotID)
			handlers.RespondError(w, http.StatusConflict, msgPaymentNotVerified)

		case errors.Is(err, scanAccess.ErrNoFreeSlots):
			h.logger.Warn("POST /spots/{id}/scan - No free slots: spot_id=%s", spotID)
			handlers.RespondError(w, http.StatusConflict, msgNoFreeSlots)

		case errors.Is(err, scanAccess.ErrAccessDenied):
			h.logger.Warn("POST /spots/{id}/scan - Access denied: spot_id=%s, operator_id=%d",
				spotID, req.OperatorID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, scanAccess.ErrInvalidInput):
			h.logger.Warn("POST /spots/{id}/scan - Invalid input: spot_id=%s, error=%v", spotID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /spots/{id}/scan - Failed to process scan: spot_id=%s, error=%v",
				spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /spots/{id}/scan - Scan processed: spot_id=%s, booking_id=%s, action=%s, allowed=%t",
		spotID, result.BookingID, result.Action, result.Allowed)
	handlers.RespondJSON(w, http.StatusOK, result)
}
