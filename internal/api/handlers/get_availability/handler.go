package get_availability

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	getAvailability "github.com/m04kA/SMC-ParkingService/internal/usecase/get_availability"
)

const (
	msgInvalidSpotID = "некорректный ID парковки"
	msgMissingDate   = "дата обязательна"
	msgInvalidDate   = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgSpotNotFound  = "парковка не найдена"
)

type Handler struct {
	useCase GetAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/spots/{spotId}/availability
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	// Извлекаем spotId из URL
	spotID, err := uuid.Parse(vars["spotId"])
	if err != nil {
		h.logger.Warn("GET /spots/{id}/availability - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	// Извлекаем date из query параметров
	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /spots/{id}/availability - Missing date: spot_id=%s", spotID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	// Endpoint публичный: userID заполняется, если запрос прошел через Auth
	userID, _ := middleware.GetUserID(r.Context())

	// Формируем запрос к use case (с парсингом даты)
	useCaseReq, err := ToUseCaseRequest(userID, spotID, dateStr)
	if err != nil {
		h.logger.Warn("GET /spots/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	// Вызываем use case
	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrSpotNotFound):
			h.logger.Warn("GET /spots/{id}/availability - Spot not found: spot_id=%s", spotID)
			handlers.RespondNotFound(w, msgSpotNotFound)

		case errors.Is(err, getAvailability.ErrInvalidInput), errors.Is(err, getAvailability.ErrInvalidDate):
			h.logger.Warn("GET /spots/{id}/availability - Invalid input: spot_id=%s, error=%v", spotID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("GET /spots/{id}/availability - Failed to get availability: spot_id=%s, error=%v",
				spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := FromUseCaseResponse(result)

	h.logger.Info("GET /spots/{id}/availability - Availability retrieved successfully: spot_id=%s, date=%s, slots_count=%d",
		spotID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, response)
}
