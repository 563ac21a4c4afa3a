package get_spot_bookings

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/service/bookings"
)

const (
	msgInvalidSpotID = "некорректный ID парковки"
	msgMissingUserID = "отсутствует ID пользователя"
	msgInvalidParams = "некорректные параметры запроса"
	msgSpotNotFound  = "парковка не найдена"
	msgForbidden     = "доступ запрещен"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/spots/{spotId}/bookings
// Query params: status, date, includeInactive (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем spotId из URL
	vars := mux.Vars(r)
	spotID, err := uuid.Parse(vars["spotId"])
	if err != nil {
		h.logger.Warn("GET /spots/{id}/bookings - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /spots/{id}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Получаем опциональные query параметры
	statusStr := r.URL.Query().Get("status")
	dateStr := r.URL.Query().Get("date")
	includeInactiveStr := r.URL.Query().Get("includeInactive")

	// Формируем запрос к сервису
	serviceReq, err := ToServiceRequest(spotID, userID, statusStr, dateStr, includeInactiveStr)
	if err != nil {
		h.logger.Warn("GET /spots/{id}/bookings - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	// Получаем бронирования парковки (сервис сам проверит права оператора)
	result, err := h.service.GetSpotBookings(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrSpotNotFound):
			h.logger.Warn("GET /spots/{id}/bookings - Spot not found: spot_id=%s", spotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /spots/{id}/bookings - Access denied: spot_id=%s, user_id=%d",
				spotID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /spots/{id}/bookings - Invalid parameters: spot_id=%s, error=%v", spotID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		default:
			h.logger.Error("GET /spots/{id}/bookings - Failed to get bookings: spot_id=%s, error=%v",
				spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /spots/{id}/bookings - Bookings retrieved successfully: spot_id=%s, count=%d",
		spotID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result.Bookings)
}
