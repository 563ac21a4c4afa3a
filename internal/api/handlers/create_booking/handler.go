package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	createBooking "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody  = "некорректное тело запроса"
	msgSpotNotFound        = "парковка не найдена"
	msgVehicleNotFound     = "у пользователя не выбран транспорт"
	msgDraftNotFound       = "черновик не найден или истек"
	msgNonConsecutiveSlots = "слоты должны образовывать непрерывную цепочку"
	msgSlotUnavailable     = "слот недоступен для бронирования"
	msgSlotConflict        = "все места в выбранном слоте уже заняты"
	msgSpotClosed          = "парковка закрыта в выбранную дату"
	msgInvalidDate         = "некорректная дата бронирования"
	msgForbidden           = "доступ запрещен"
	msgInvalidInput        = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в запрос use case (с парсингом даты и времени слотов)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Invalid request data: user_id=%d, error=%v", req.UserID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Создаем бронирование
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSpotNotFound):
			h.logger.Warn("POST /bookings - Spot not found: user_id=%d, spot_id=%s", req.UserID, req.SpotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, createBooking.ErrVehicleNotFound):
			h.logger.Warn("POST /bookings - Vehicle not found: user_id=%d", req.UserID)
			handlers.RespondBadRequest(w, msgVehicleNotFound)

		case errors.Is(err, createBooking.ErrDraftNotFound):
			h.logger.Warn("POST /bookings - Draft not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgDraftNotFound)

		case errors.Is(err, createBooking.ErrNonConsecutiveSlots):
			h.logger.Warn("POST /bookings - Non-consecutive slots: user_id=%d, spot_id=%s", req.UserID, req.SpotID)
			handlers.RespondBadRequest(w, msgNonConsecutiveSlots)

		case errors.Is(err, createBooking.ErrSlotUnavailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, spot_id=%s", req.UserID, req.SpotID)
			handlers.RespondBadRequest(w, msgSlotUnavailable)

		case errors.Is(err, createBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: user_id=%d, spot_id=%s", req.UserID, req.SpotID)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, createBooking.ErrSpotClosed):
			h.logger.Warn("POST /bookings - Spot closed: user_id=%d, spot_id=%s", req.UserID, req.SpotID)
			handlers.RespondBadRequest(w, msgSpotClosed)

		case errors.Is(err, createBooking.ErrInvalidDate):
			h.logger.Warn("POST /bookings - Invalid booking date: user_id=%d, spot_id=%s", req.UserID, req.SpotID)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /bookings - Access denied: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, error=%v", req.UserID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, spot_id=%s, error=%v",
				req.UserID, req.SpotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, user_id=%d, spot_id=%s",
		result.ID, req.UserID, result.SpotID)
	handlers.RespondJSON(w, http.StatusCreated, response)
}
