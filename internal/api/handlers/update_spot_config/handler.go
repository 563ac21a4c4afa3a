package update_spot_config

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ParkingService/internal/api/handlers"
	"github.com/m04kA/SMC-ParkingService/internal/service/spotconfig"
)

const (
	msgInvalidSpotID      = "некорректный ID парковки"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "парковка не найдена"
	msgForbidden          = "доступ запрещен"
	msgInvalidData        = "некорректные данные конфигурации"
)

type Handler struct {
	service ConfigService
	logger  Logger
}

func NewHandler(service ConfigService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/spots/{spotId}/config
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Извлекаем spotId из URL
	vars := mux.Vars(r)
	spotID, err := uuid.Parse(vars["spotId"])
	if err != nil {
		h.logger.Warn("PUT /spots/{id}/config - Invalid spot ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidSpotID)
		return
	}

	// Декодируем body
	var req UpdateSpotConfigRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /spots/{id}/config - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем в модель сервиса
	serviceReq := req.ToServiceRequest()

	// Обновляем конфигурацию (сервис сам проверит права оператора)
	result, err := h.service.Update(r.Context(), spotID, serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, spotconfig.ErrSpotNotFound):
			h.logger.Warn("PUT /spots/{id}/config - Spot not found: spot_id=%s", spotID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, spotconfig.ErrAccessDenied):
			h.logger.Warn("PUT /spots/{id}/config - Access denied: spot_id=%s, user_id=%d",
				spotID, req.UserID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, spotconfig.ErrInvalidInput):
			h.logger.Warn("PUT /spots/{id}/config - Invalid data: spot_id=%s, error=%v", spotID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PUT /spots/{id}/config - Failed to update config: spot_id=%s, error=%v",
				spotID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /spots/{id}/config - Config updated successfully: spot_id=%s, user_id=%d",
		spotID, req.UserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
